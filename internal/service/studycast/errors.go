package studycast

import "errors"

// Static error definitions for better error handling.
var (
	// ErrAudioNotReady indicates a saved podcast that has no audio yet.
	ErrAudioNotReady = errors.New("this StudyCast is still processing")
	// ErrMissingUserID indicates an operation that needs a signed-in user.
	ErrMissingUserID = errors.New("no signed-in user, run 'studycast auth login' first")
	// ErrReplaceFailed indicates that the existing duplicate could not be deleted.
	ErrReplaceFailed = errors.New("couldn't remove the old podcast")
	// ErrGenerationFailed indicates a failed generation call.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrIncompleteDownload indicates a download shorter than announced.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrEmptyFullName indicates a profile name update without a name.
	ErrEmptyFullName = errors.New("full name cannot be empty")
	// ErrUnknownDecision indicates an unsupported duplicate decision.
	ErrUnknownDecision = errors.New("unknown duplicate decision")
)
