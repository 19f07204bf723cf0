package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks caller errors: out-of-range indexes, empty
	// question sets, blank targets. Correct driving code never triggers it.
	ErrInvalidInput = errors.New("quiz: invalid input")

	// ErrInvalidTransition is returned when an event arrives in a stage that
	// does not accept it (answering while generating, submitting twice, ...).
	ErrInvalidTransition = errors.New("quiz: invalid stage transition")

	// ErrStaleGeneration is returned to a generation call whose session moved
	// on (reset or replaced) while the call was in flight; its result has
	// been discarded rather than installed over the newer state.
	ErrStaleGeneration = errors.New("quiz: stale generation result discarded")
)

// GenerationError wraps any failure to produce a usable question set:
// unreachable service, malformed JSON, short sets, schema violations. It is
// fatal to the current generating attempt only; the session returns to
// configuring and no partial set is installed.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string { return fmt.Sprintf("quiz: generate %s: %v", e.Op, e.Err) }
func (e *GenerationError) Unwrap() error { return e.Err }
