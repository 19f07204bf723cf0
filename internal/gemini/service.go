package gemini

import (
	"context"
	"errors"
)

// ErrMissingCredential is returned before any network call is attempted when
// no API key was injected at construction time.
var ErrMissingCredential = errors.New("gemini: api key not configured")

// RawQuestion is the wire shape the generation service is asked to emit for
// exam questions. CorrectAnswer is a zero-based index into Options.
type RawQuestion struct {
	ID            int64    `json:"id"`
	Domain        string   `json:"domain,omitempty"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"min=2,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" validate:"gte=0"`
	Explanation   string   `json:"explanation" validate:"required"`
}

// Service abstracts the text/structured generation backend. Everything the
// core needs from the model goes through these three calls.
type Service interface {
	// GenerateMarkdown runs a single free-form completion (study guides).
	GenerateMarkdown(ctx context.Context, prompt string) (string, error)
	// GenerateQuestions runs a JSON-schema constrained completion and decodes
	// the result. Shape validation beyond JSON decoding is the caller's job.
	GenerateQuestions(ctx context.Context, prompt string) ([]RawQuestion, error)
	// NewChat opens a stateful multi-turn conversation seeded with a system
	// instruction (lab device persona). History lives in the returned handle.
	NewChat(ctx context.Context, systemInstruction string) (Chat, error)
}

type Chat interface {
	Send(ctx context.Context, message string) (string, error)
}
