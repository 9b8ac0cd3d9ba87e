package studycast

//go:generate $MOCKGEN -source=resolver.go -destination=mocks/resolver_mock.go

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/studycast/internal/store"
)

// Decision is the answer to a duplicate conflict.
type Decision string

const (
	// DecisionAsk asks the user every time.
	DecisionAsk Decision = "ask"
	// DecisionReplace deletes the existing podcast and generates a new one.
	DecisionReplace Decision = "replace"
	// DecisionKeep keeps the existing podcast and skips generation.
	DecisionKeep Decision = "keep"
)

// ParseDecision parses a decision name.
func ParseDecision(value string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(value))); d {
	case DecisionAsk, DecisionReplace, DecisionKeep:
		return d, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownDecision, value)
	}
}

// Conflict describes an existing podcast covering the requested material.
type Conflict struct {
	// PodcastID is the existing row.
	PodcastID string
	// Key is the shared duplicate key.
	Key store.DuplicateKey
}

// DuplicateResolver decides between replacing and keeping an existing podcast.
type DuplicateResolver interface {
	// Resolve returns DecisionReplace or DecisionKeep.
	Resolve(ctx context.Context, conflict Conflict) (Decision, error)
}

// StaticResolver always returns the same decision.
type StaticResolver struct {
	// Decision is returned for every conflict.
	Decision Decision
}

// Resolve returns the configured decision.
func (r StaticResolver) Resolve(context.Context, Conflict) (Decision, error) {
	return r.Decision, nil
}

// PromptResolver asks on a terminal.
type PromptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptResolver creates a resolver reading answers from in and writing questions to out.
func NewPromptResolver(in io.Reader, out io.Writer) *PromptResolver {
	return &PromptResolver{in: bufio.NewReader(in), out: out}
}

// Resolve asks whether to replace the existing podcast. Anything but yes keeps it.
func (r *PromptResolver) Resolve(_ context.Context, conflict Conflict) (Decision, error) {
	fmt.Fprintf(r.out,
		"You already have a %s StudyCast for %s: %s (%s, %s).\nReplace it with a new one? [y/N]: ",
		conflict.Key.Mode, conflict.Key.Subject, conflict.Key.Topic, conflict.Key.ExamBoard, conflict.Key.Level)

	answer, err := r.in.ReadString('\n')
	if err != nil && answer == "" {
		if errors.Is(err, io.EOF) {
			return DecisionKeep, nil
		}

		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "r", "replace":
		return DecisionReplace, nil
	default:
		return DecisionKeep, nil
	}
}

// NewResolver returns the resolver for a decision; DecisionAsk prompts on in and out.
func NewResolver(decision Decision, in io.Reader, out io.Writer) DuplicateResolver {
	if decision == DecisionAsk {
		return NewPromptResolver(in, out)
	}

	return StaticResolver{Decision: decision}
}
