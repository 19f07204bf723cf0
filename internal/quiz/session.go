package quiz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Options sizes a session. Zero fields fall back to the defaults below.
type Options struct {
	DrillCount        int
	SimulationCount   int
	SimulationSeconds int
}

const (
	defaultDrillCount        = 5
	defaultSimulationCount   = 25
	defaultSimulationSeconds = 5400
)

func (o Options) withDefaults() Options {
	if o.DrillCount <= 0 {
		o.DrillCount = defaultDrillCount
	}
	if o.SimulationCount <= 0 {
		o.SimulationCount = defaultSimulationCount
	}
	if o.SimulationSeconds <= 0 {
		o.SimulationSeconds = defaultSimulationSeconds
	}
	return o
}

// Session owns one exam attempt: the stage, the question set, the cursor and
// the countdown. All mutation happens under mu in response to discrete events
// (user calls or timer ticks); the question slice is never shared out.
type Session struct {
	mu        sync.Mutex
	id        string
	mode      Mode
	stage     Stage
	questions []Question
	current   int
	remaining int // seconds left; 0 when untimed
	timed     bool
	report    *Report

	// genSeq tokens in-flight generation calls so a call that outlives
	// interest (session reset or replaced) cannot install its result over
	// newer state.
	genSeq int

	source   QuestionSource
	opts     Options
	stopTick chan struct{}
}

func NewSession(source QuestionSource, opts Options) *Session {
	return &Session{
		id:     uuid.NewString(),
		stage:  StageSelectingMode,
		source: source,
		opts:   opts.withDefaults(),
	}
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// ChooseMode: selecting_mode -> configuring.
func (s *Session) ChooseMode(m Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageSelectingMode {
		return ErrInvalidTransition
	}
	if m != ModeDrill && m != ModeSimulation {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, m)
	}
	s.mode = m
	s.stage = StageConfiguring
	return nil
}

// Start: configuring -> generating -> active (or back to configuring on
// failure). The fetch is the session's only suspend point; the lock is
// released around it and the result is installed only if the session is
// still the same generating attempt when the call resolves.
func (s *Session) Start(ctx context.Context, target string) error {
	s.mu.Lock()
	if s.stage != StageConfiguring {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	mode := s.mode
	s.stage = StageGenerating
	s.genSeq++
	seq := s.genSeq
	s.mu.Unlock()

	var qs []Question
	var err error
	switch mode {
	case ModeDrill:
		qs, err = s.source.FetchDrill(ctx, target, s.opts.DrillCount)
	case ModeSimulation:
		qs, err = s.source.FetchSimulation(ctx, s.opts.SimulationCount, SimulationWeights)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.genSeq != seq || s.stage != StageGenerating {
		// Session moved on while the call was in flight; drop the result.
		return ErrStaleGeneration
	}
	if err != nil {
		s.stage = StageConfiguring
		return err
	}
	for i := range qs {
		qs[i].UserAnswer = nil
		qs[i].Flagged = false
	}
	s.questions = qs
	s.current = 0
	s.report = nil
	if mode == ModeSimulation {
		s.timed = true
		s.remaining = s.opts.SimulationSeconds
		s.stopTick = make(chan struct{})
		go s.runTimer(s.stopTick)
	} else {
		s.timed = false
		s.remaining = 0
	}
	s.stage = StageActive
	return nil
}

func (s *Session) runTimer(stop chan struct{}) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if s.Tick() {
				return
			}
		case <-stop:
			return
		}
	}
}

// Tick advances the countdown by one second, auto-submitting at zero through
// the same path as an explicit submit. Returns true once no further tick
// should fire.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive || !s.timed {
		return true
	}
	s.remaining--
	if s.remaining > 0 {
		return false
	}
	s.remaining = 0
	s.submitLocked()
	return true
}

// Answer records option i for the current question. Repeat selections
// overwrite; an answer is never unset.
func (s *Session) Answer(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive {
		return ErrInvalidTransition
	}
	q := &s.questions[s.current]
	if i < 0 || i >= len(q.Options) {
		return fmt.Errorf("%w: option %d out of range", ErrInvalidInput, i)
	}
	v := i
	q.UserAnswer = &v
	return nil
}

func (s *Session) ToggleFlag() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive {
		return ErrInvalidTransition
	}
	s.questions[s.current].Flagged = !s.questions[s.current].Flagged
	return nil
}

// Goto moves the cursor. Navigation is unrestricted: skipping is legal and
// never touches answers or flags.
func (s *Session) Goto(j int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive {
		return ErrInvalidTransition
	}
	if j < 0 || j >= len(s.questions) {
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidInput, j)
	}
	s.current = j
	return nil
}

// Submit: active -> review. Safe against the timer because both routes run
// under the lock through submitLocked.
func (s *Session) Submit() (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageActive {
		return Report{}, ErrInvalidTransition
	}
	s.submitLocked()
	return *s.report, nil
}

func (s *Session) submitLocked() {
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
	s.stage = StageReview
	if r, err := Score(s.questions); err == nil {
		s.report = &r
	}
}

// NewAttempt: review -> configuring, mode retained, question set discarded.
func (s *Session) NewAttempt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageReview {
		return ErrInvalidTransition
	}
	s.discardLocked()
	s.stage = StageConfiguring
	return nil
}

// Reset returns to mode selection from any stage, discarding everything and
// invalidating any in-flight generation.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
	s.mode = ""
	s.stage = StageSelectingMode
}

// Close stops the timer and invalidates in-flight generation. Used when the
// session is replaced wholesale by a new one.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
	s.genSeq++
}

func (s *Session) discardLocked() {
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
	s.genSeq++
	s.questions = nil
	s.current = 0
	s.remaining = 0
	s.timed = false
	s.report = nil
}
