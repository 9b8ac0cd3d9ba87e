package ambient

import (
	"errors"
	"fmt"
	"strings"
)

// Background identifies an ambient texture.
type Background string

const (
	// BackgroundNone plays nothing.
	BackgroundNone Background = "none"
	// BackgroundRain is high-passed noise.
	BackgroundRain Background = "rain"
	// BackgroundWhiteNoise is unfiltered noise.
	BackgroundWhiteNoise Background = "white_noise"
	// BackgroundDeltaWaves is low-passed noise with a slow swell.
	BackgroundDeltaWaves Background = "delta_waves"
)

// ErrUnknownBackground indicates that a texture name is not recognized.
var ErrUnknownBackground = errors.New("unknown background")

// Backgrounds returns every texture, none first.
func Backgrounds() []Background {
	return []Background{BackgroundNone, BackgroundRain, BackgroundWhiteNoise, BackgroundDeltaWaves}
}

// ParseBackground parses a texture name; an empty name is none.
func ParseBackground(value string) (Background, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return BackgroundNone, nil
	}

	for _, bg := range Backgrounds() {
		if string(bg) == value {
			return bg, nil
		}
	}

	return BackgroundNone, fmt.Errorf("%w: '%s'", ErrUnknownBackground, value)
}

// Label returns the human readable name.
func (b Background) Label() string {
	switch b {
	case BackgroundRain:
		return "Rain"
	case BackgroundWhiteNoise:
		return "White noise"
	case BackgroundDeltaWaves:
		return "Delta waves"
	default:
		return "None"
	}
}

// Audible reports whether the texture produces sound.
func (b Background) Audible() bool {
	return b != "" && b != BackgroundNone
}
