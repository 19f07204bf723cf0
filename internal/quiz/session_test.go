package quiz_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cert-lab/ccna-prep/internal/quiz"
)

// fakeSource hands out canned question sets. If block is non-nil the fetch
// parks until it is closed; started is closed when the first fetch begins.
type fakeSource struct {
	mu      sync.Mutex
	qs      []quiz.Question
	err     error
	block   chan struct{}
	started chan struct{}
	calls   int
}

func (f *fakeSource) fetch(count int) ([]quiz.Question, error) {
	f.mu.Lock()
	f.calls++
	if f.calls == 1 && f.started != nil {
		close(f.started)
	}
	block := f.block
	err := f.err
	out := make([]quiz.Question, len(f.qs))
	copy(out, f.qs)
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeSource) FetchDrill(ctx context.Context, target string, count int) ([]quiz.Question, error) {
	return f.fetch(count)
}

func (f *fakeSource) FetchSimulation(ctx context.Context, count int, weights map[string]float64) ([]quiz.Question, error) {
	return f.fetch(count)
}

func cannedQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:           "q" + string(rune('0'+i)),
			Domain:       "1.0 Network Fundamentals",
			Prompt:       "which layer",
			Options:      []string{"one", "two", "three", "four"},
			CorrectIndex: 1,
			Explanation:  "layer two",
		}
	}
	return qs
}

func startedDrill(t *testing.T, n int) *quiz.Session {
	t.Helper()
	src := &fakeSource{qs: cannedQuestions(n)}
	s := quiz.NewSession(src, quiz.Options{DrillCount: n})
	if err := s.ChooseMode(quiz.ModeDrill); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(context.Background(), "3.0 IP Connectivity"); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDrillHappyPath(t *testing.T) {
	s := startedDrill(t, 3)

	v := s.View()
	if v.Stage != quiz.StageActive {
		t.Fatalf("stage = %s, want active", v.Stage)
	}
	if v.Timed || v.TimeRemaining != 0 {
		t.Fatalf("drill must be untimed, got timed=%v remaining=%d", v.Timed, v.TimeRemaining)
	}
	if len(v.Questions) != 3 || v.CurrentIndex != 0 {
		t.Fatalf("questions=%d cursor=%d", len(v.Questions), v.CurrentIndex)
	}
	// Answer keys are hidden while active.
	if v.Questions[0].CorrectIndex != nil || v.Questions[0].Explanation != "" {
		t.Fatal("answer key leaked into active view")
	}

	if err := s.Answer(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Goto(1); err != nil {
		t.Fatal(err)
	}
	r, err := s.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if r.Correct != 1 || r.Total != 3 {
		t.Fatalf("report = %d/%d", r.Correct, r.Total)
	}
	v = s.View()
	if v.Stage != quiz.StageReview || v.Report == nil {
		t.Fatalf("stage=%s report=%v", v.Stage, v.Report)
	}
	if v.Questions[0].CorrectIndex == nil || *v.Questions[0].CorrectIndex != 1 {
		t.Fatal("review view must expose correct index")
	}
}

func TestInvalidTransitionsRejected(t *testing.T) {
	src := &fakeSource{qs: cannedQuestions(2)}
	s := quiz.NewSession(src, quiz.Options{DrillCount: 2})

	if err := s.Answer(0); !errors.Is(err, quiz.ErrInvalidTransition) {
		t.Fatalf("answer in selecting_mode: %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, quiz.ErrInvalidTransition) {
		t.Fatalf("submit in selecting_mode: %v", err)
	}
	if err := s.Start(context.Background(), "x"); !errors.Is(err, quiz.ErrInvalidTransition) {
		t.Fatalf("start before mode chosen: %v", err)
	}
	if err := s.ChooseMode("oral-exam"); !errors.Is(err, quiz.ErrInvalidInput) {
		t.Fatalf("bogus mode: %v", err)
	}
	if err := s.ChooseMode(quiz.ModeDrill); err != nil {
		t.Fatal(err)
	}
	if err := s.ChooseMode(quiz.ModeDrill); !errors.Is(err, quiz.ErrInvalidTransition) {
		t.Fatalf("choose mode twice: %v", err)
	}
}

func TestAnswerOverwriteAndFlagToggle(t *testing.T) {
	s := startedDrill(t, 2)

	if err := s.Answer(0); err != nil {
		t.Fatal(err)
	}
	if err := s.Answer(0); err != nil {
		t.Fatal(err)
	}
	v := s.View()
	if v.Questions[0].UserAnswer == nil || *v.Questions[0].UserAnswer != 0 {
		t.Fatalf("answer = %v", v.Questions[0].UserAnswer)
	}
	// Overwrite, never unset.
	if err := s.Answer(2); err != nil {
		t.Fatal(err)
	}
	if v := s.View(); *v.Questions[0].UserAnswer != 2 {
		t.Fatalf("answer = %d, want 2", *v.Questions[0].UserAnswer)
	}
	if err := s.Answer(7); !errors.Is(err, quiz.ErrInvalidInput) {
		t.Fatalf("out-of-range answer: %v", err)
	}

	if err := s.ToggleFlag(); err != nil {
		t.Fatal(err)
	}
	if !s.View().Questions[0].Flagged {
		t.Fatal("flag not set")
	}
	if err := s.ToggleFlag(); err != nil {
		t.Fatal(err)
	}
	if s.View().Questions[0].Flagged {
		t.Fatal("double toggle must return to original")
	}
}

func TestNavigationLeavesStateUntouched(t *testing.T) {
	s := startedDrill(t, 4)
	if err := s.Answer(3); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleFlag(); err != nil {
		t.Fatal(err)
	}
	before := s.View()

	if err := s.Goto(2); err != nil {
		t.Fatal(err)
	}
	if err := s.Goto(0); err != nil {
		t.Fatal(err)
	}
	if err := s.Goto(9); !errors.Is(err, quiz.ErrInvalidInput) {
		t.Fatalf("out-of-range goto: %v", err)
	}

	after := s.View()
	for i := range before.Questions {
		b, a := before.Questions[i], after.Questions[i]
		if b.Flagged != a.Flagged {
			t.Fatalf("question %d flag changed by navigation", i)
		}
		if (b.UserAnswer == nil) != (a.UserAnswer == nil) {
			t.Fatalf("question %d answer changed by navigation", i)
		}
		if b.UserAnswer != nil && *b.UserAnswer != *a.UserAnswer {
			t.Fatalf("question %d answer changed by navigation", i)
		}
	}
}

func TestGenerationFailureReturnsToConfiguring(t *testing.T) {
	src := &fakeSource{err: &quiz.GenerationError{Op: "drill", Err: errors.New("upstream 503")}}
	s := quiz.NewSession(src, quiz.Options{DrillCount: 2})
	if err := s.ChooseMode(quiz.ModeDrill); err != nil {
		t.Fatal(err)
	}

	err := s.Start(context.Background(), "2.0 Network Access")
	var ge *quiz.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("want GenerationError, got %v", err)
	}
	v := s.View()
	if v.Stage != quiz.StageConfiguring || len(v.Questions) != 0 {
		t.Fatalf("stage=%s questions=%d after failure", v.Stage, len(v.Questions))
	}

	// Manual retry from configuring succeeds.
	src.mu.Lock()
	src.err = nil
	src.qs = cannedQuestions(2)
	src.mu.Unlock()
	if err := s.Start(context.Background(), "2.0 Network Access"); err != nil {
		t.Fatal(err)
	}
	if s.View().Stage != quiz.StageActive {
		t.Fatal("retry did not reach active")
	}
}

func TestTimerExpiryAutoSubmits(t *testing.T) {
	src := &fakeSource{qs: cannedQuestions(3)}
	s := quiz.NewSession(src, quiz.Options{SimulationCount: 3, SimulationSeconds: 1})
	if err := s.ChooseMode(quiz.ModeSimulation); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	v := s.View()
	if !v.Timed || v.TimeRemaining != 1 {
		t.Fatalf("timed=%v remaining=%d", v.Timed, v.TimeRemaining)
	}

	if done := s.Tick(); !done {
		t.Fatal("tick to zero must stop the countdown")
	}
	v = s.View()
	if v.Stage != quiz.StageReview {
		t.Fatalf("stage = %s, want review after expiry", v.Stage)
	}
	if v.Report == nil || v.Report.Scaled != 300 {
		t.Fatalf("unanswered auto-submit report = %+v", v.Report)
	}
	// A straggling tick after review is inert.
	if done := s.Tick(); !done {
		t.Fatal("tick after review must be a no-op")
	}
	if s.View().TimeRemaining != 0 {
		t.Fatal("remaining moved after review")
	}
}

func TestStaleGenerationDiscarded(t *testing.T) {
	src := &fakeSource{
		qs:      cannedQuestions(2),
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	s := quiz.NewSession(src, quiz.Options{DrillCount: 2})
	if err := s.ChooseMode(quiz.ModeDrill); err != nil {
		t.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(context.Background(), "1.0 Network Fundamentals") }()
	<-src.started

	// User abandons the attempt while the call is in flight.
	s.Reset()
	close(src.block)

	select {
	case err := <-errCh:
		if !errors.Is(err, quiz.ErrStaleGeneration) {
			t.Fatalf("want ErrStaleGeneration, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("generation call never resolved")
	}
	v := s.View()
	if v.Stage != quiz.StageSelectingMode || len(v.Questions) != 0 {
		t.Fatalf("stale result leaked: stage=%s questions=%d", v.Stage, len(v.Questions))
	}
}

func TestNewAttemptKeepsModeDiscardsQuestions(t *testing.T) {
	s := startedDrill(t, 2)
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if err := s.NewAttempt(); err != nil {
		t.Fatal(err)
	}
	v := s.View()
	if v.Stage != quiz.StageConfiguring || v.Mode != quiz.ModeDrill {
		t.Fatalf("stage=%s mode=%s", v.Stage, v.Mode)
	}
	if len(v.Questions) != 0 || v.Report != nil {
		t.Fatal("prior attempt state survived NewAttempt")
	}
}

func TestRegistryReplacesSession(t *testing.T) {
	src := &fakeSource{qs: cannedQuestions(2)}
	reg := quiz.NewRegistry(src, quiz.Options{DrillCount: 2})

	first := reg.New("alice")
	second := reg.New("alice")
	if first == second {
		t.Fatal("New must hand out a fresh session")
	}
	got, ok := reg.Get("alice")
	if !ok || got != second {
		t.Fatal("registry did not replace the session")
	}
	if _, ok := reg.Get("bob"); ok {
		t.Fatal("sessions must not cross users")
	}
}
