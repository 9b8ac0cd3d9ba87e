package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"

	"github.com/oshokin/studycast/internal/constants"
)

// Static error definitions for better error handling.
var (
	// ErrUnsupportedFormat indicates that no decoder handles the resource.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrEmptyResource indicates that the resource has no data.
	ErrEmptyResource = errors.New("audio resource is empty")
)

// resampleQuality is the interpolation quality used when the source rate differs from the output rate.
const resampleQuality = 4

// memoryFile is a fully buffered resource that decoders can seek in.
type memoryFile struct {
	*bytes.Reader
}

// Close implements io.Closer.
func (memoryFile) Close() error {
	return nil
}

// Buffer reads r completely and returns a seekable copy of it.
func Buffer(r io.Reader) (io.ReadSeekCloser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to buffer audio resource: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrEmptyResource
	}

	return memoryFile{Reader: bytes.NewReader(data)}, nil
}

// ExtensionFromName guesses the container extension from a file name or URL, then from a content type.
// It falls back to mp3, which is what the generation backend produces.
func ExtensionFromName(name, contentType string) string {
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case constants.ExtensionMP3, constants.ExtensionWAV, constants.ExtensionFLAC:
		return ext
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		switch mediaType {
		case "audio/wav", "audio/x-wav", "audio/wave":
			return constants.ExtensionWAV
		case "audio/flac", "audio/x-flac":
			return constants.ExtensionFLAC
		}
	}

	return constants.ExtensionMP3
}

// Decode decodes rc according to the extension and takes ownership of it.
func Decode(rc io.ReadCloser, extension string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)

	switch extension {
	case constants.ExtensionMP3:
		streamer, format, err = mp3.Decode(rc)
	case constants.ExtensionWAV:
		streamer, format, err = wav.Decode(rc)
	case constants.ExtensionFLAC:
		streamer, format, err = flac.Decode(rc)
	default:
		_ = rc.Close()

		return nil, beep.Format{}, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, extension)
	}

	if err != nil {
		_ = rc.Close()

		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", extension, err)
	}

	return streamer, format, nil
}

// Resample converts s from one sample rate to another, returning s unchanged when they match.
func Resample(s beep.Streamer, from, to beep.SampleRate) beep.Streamer {
	if from == to {
		return s
	}

	return beep.Resample(resampleQuality, from, to, s)
}
