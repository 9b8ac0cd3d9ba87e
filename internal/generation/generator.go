package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/oshokin/studycast/internal/client/supabase"
	"github.com/oshokin/studycast/internal/logger"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidRequest indicates a request that fails validation.
	ErrInvalidRequest = errors.New("invalid generation request")
	// ErrGenerationInFlight indicates that an identical request is still running.
	ErrGenerationInFlight = errors.New("an identical generation request is already in progress")
	// ErrSuperseded indicates that a newer request was started before this one returned.
	ErrSuperseded = errors.New("generation request was superseded by a newer one")
	// ErrGenerationTimeout indicates that the backend did not answer in time.
	ErrGenerationTimeout = errors.New("generation timed out")
)

const (
	// mockDuration is the length label of canned previews.
	mockDuration = "5m 30s"
	// sleepCastMode is the studio name of the repetition mode.
	sleepCastMode = "SleepCast"
)

// Invoker calls the generation function of the backend.
type Invoker interface {
	// GeneratePodcast invokes the generation function.
	GeneratePodcast(
		ctx context.Context,
		req *supabase.GeneratePodcastRequest,
	) (*supabase.GeneratePodcastResponse, error)
}

// Request describes one generation.
type Request struct {
	// Subject is the subject name.
	Subject string `validate:"required"`
	// Topic is the topic or subtopic title.
	Topic string `validate:"required"`
	// ExamBoard is the exam board.
	ExamBoard string `validate:"required,oneof=AQA Edexcel OCR WJEC CCEA SQA"`
	// Level is the tier.
	Level string `validate:"required,oneof=Foundation Higher"`
	// Mode is the studio mode.
	Mode string `validate:"required,oneof=FocusCast SleepCast"`
	// RepetitionLevel is how often key facts repeat, SleepCast only.
	RepetitionLevel int `validate:"omitempty,min=1,max=5"`
	// PreviewOnly asks for a script without audio.
	PreviewOnly bool
	// EditedScript replaces the generated script.
	EditedScript string
	// VoiceID selects the narrator voice.
	VoiceID string
	// SpeakingSpeed scales the narration, 1 is normal.
	SpeakingSpeed float64 `validate:"omitempty,gte=0.5,lte=2"`
}

// fingerprint identifies identical requests.
func (r Request) fingerprint() string {
	return strings.Join([]string{
		r.Subject, r.Topic, r.ExamBoard, r.Level, r.Mode,
		fmt.Sprint(r.RepetitionLevel), fmt.Sprint(r.PreviewOnly), r.EditedScript, r.VoiceID,
		fmt.Sprint(r.SpeakingSpeed),
	}, "|")
}

func (r Request) toWire() *supabase.GeneratePodcastRequest {
	return &supabase.GeneratePodcastRequest{
		Subject:         r.Subject,
		Topic:           r.Topic,
		ExamBoard:       r.ExamBoard,
		Level:           r.Level,
		Mode:            r.Mode,
		RepetitionLevel: r.RepetitionLevel,
		PreviewOnly:     r.PreviewOnly,
		EditedScript:    r.EditedScript,
		VoiceID:         r.VoiceID,
		SpeakingSpeed:   r.SpeakingSpeed,
	}
}

// Result is the outcome of a generation.
type Result struct {
	// ID correlates log lines of one generation.
	ID string
	// Seq is the sequence number of the request.
	Seq uint64
	// Request is the request that produced the result.
	Request Request
	// Title is the display title.
	Title string
	// AudioURL is the rendered audio, empty for previews or failed renders.
	AudioURL string
	// Transcript is the narration script.
	Transcript string
	// DurationSeconds is the reported length, zero when unknown.
	DurationSeconds int
	// PodcastID is the stored row on the database path.
	PodcastID string
	// Cached is set when the backend returned an existing row.
	Cached bool
	// Mock is set when a canned preview replaced a failed call.
	Mock bool
}

// HasAudio reports whether the result can be played.
func (r *Result) HasAudio() bool {
	return r.AudioURL != ""
}

// Options configures a Generator.
type Options struct {
	// Timeout bounds a single call; zero disables it.
	Timeout time.Duration
	// MockPreviewFallback substitutes a canned preview when a preview-only call fails.
	MockPreviewFallback bool
}

// Generator submits generation requests.
type Generator struct {
	// invoker calls the backend function.
	invoker Invoker
	// validate checks requests.
	validate *validator.Validate
	// opts holds the timeout and fallback settings.
	opts Options
	// mu guards seq and inFlight.
	mu sync.Mutex
	// seq is the number of the newest request.
	seq uint64
	// inFlight holds the fingerprints of running requests.
	inFlight map[string]struct{}
}

// NewGenerator creates a Generator.
func NewGenerator(invoker Invoker, opts Options) *Generator {
	return &Generator{
		invoker:  invoker,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		opts:     opts,
		inFlight: make(map[string]struct{}),
	}
}

// Generate validates and submits a request. The result of a request is dropped with
// ErrSuperseded when a newer request was started or Abandon was called meanwhile.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := g.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	seq, err := g.begin(req)
	if err != nil {
		return nil, err
	}

	defer g.finish(req)

	id := uuid.NewString()
	ctx = logger.WithKV(ctx, "generation_id", id)

	logger.Infof(ctx, "Generating %s: %s (%s, %s, %s)", req.Subject, req.Topic, req.Mode, req.ExamBoard, req.Level)

	response, mock, err := g.invoke(ctx, req)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	latest := g.seq
	g.mu.Unlock()

	if seq != latest {
		logger.Debugf(ctx, "Dropping result of request %d, newest is %d", seq, latest)

		return nil, ErrSuperseded
	}

	result := &Result{
		ID:              id,
		Seq:             seq,
		Request:         req,
		Title:           response.Title,
		Transcript:      response.ScriptText,
		DurationSeconds: supabase.ParseDurationLabel(response.Duration),
		PodcastID:       response.PodcastID,
		Cached:          response.Cached,
		Mock:            mock,
	}

	if response.AudioURL != nil {
		result.AudioURL = strings.TrimSpace(*response.AudioURL)
	}

	return result, nil
}

// Abandon supersedes every request that is still running.
func (g *Generator) Abandon() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
}

// InFlight reports whether any request is running.
func (g *Generator) InFlight() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.inFlight) > 0
}

func (g *Generator) begin(req Request) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := req.fingerprint()
	if _, ok := g.inFlight[key]; ok {
		return 0, ErrGenerationInFlight
	}

	g.inFlight[key] = struct{}{}
	g.seq++

	return g.seq, nil
}

func (g *Generator) finish(req Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, req.fingerprint())
}

func (g *Generator) invoke(ctx context.Context, req Request) (*supabase.GeneratePodcastResponse, bool, error) {
	callCtx := ctx

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc

		callCtx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	response, err := g.invoker.GeneratePodcast(callCtx, req.toWire())
	if err == nil {
		return response, false, nil
	}

	if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w after %s: %w", ErrGenerationTimeout, g.opts.Timeout, err)
	}

	// Canned previews are never used for final audio or after the caller gave up.
	if !req.PreviewOnly || !g.opts.MockPreviewFallback || ctx.Err() != nil {
		return nil, false, err
	}

	logger.Warnf(ctx, "Falling back to a mock preview: %v", err)

	return mockResponse(req), true, nil
}

func mockResponse(req Request) *supabase.GeneratePodcastResponse {
	modeLabel := "Explainer"
	script := fmt.Sprintf("Let's dive into %s. This is a clear walkthrough...", req.Topic)

	if req.Mode == sleepCastMode {
		modeLabel = "Repetition"
		script = fmt.Sprintf("%[1]s: repeating key facts... %[1]s: repeating key facts...", req.Topic)
	}

	repetitionLabel := ""
	if req.RepetitionLevel > 0 {
		repetitionLabel = fmt.Sprintf(" x%d", req.RepetitionLevel)
	}

	return &supabase.GeneratePodcastResponse{
		Title:      fmt.Sprintf("%s – %s (%s%s)", req.Subject, req.Topic, modeLabel, repetitionLabel),
		ScriptText: script,
		Duration:   mockDuration,
	}
}
