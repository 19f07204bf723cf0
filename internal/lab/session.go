package lab

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cert-lab/ccna-prep/internal/gemini"
)

// ErrBusy rejects a command while an exchange is still in flight. Commands
// are never queued.
var ErrBusy = errors.New("lab: exchange already in flight")

type TurnKind string

const (
	TurnUserInput    TurnKind = "user-input"
	TurnDeviceOutput TurnKind = "device-output"
	TurnSystemNotice TurnKind = "system-notice"
)

type Turn struct {
	ID   string    `json:"id"`
	Kind TurnKind  `json:"kind"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

const systemInstruction = "You are a realistic Cisco IOS network device simulator."

// Session is a transcript-accumulation machine over a stateful device-persona
// conversation. No timer, no scoring; failures are local and recoverable.
type Session struct {
	mu         sync.Mutex
	id         string
	scenario   Scenario
	chat       gemini.Chat
	transcript []Turn
	completed  bool
	busy       bool
}

// StartSession seeds the persona and records the opening exchange. A failure
// here is fatal to the start (no half-connected session is returned); once
// running, exchange failures only append a notice.
func StartSession(ctx context.Context, svc gemini.Service, sc Scenario) (*Session, error) {
	chat, err := svc.NewChat(ctx, systemInstruction)
	if err != nil {
		return nil, err
	}
	reply, err := chat.Send(ctx, sc.SeedPrompt)
	if err != nil {
		return nil, err
	}
	s := &Session{id: uuid.NewString(), scenario: sc, chat: chat}
	s.appendLocked(TurnSystemNotice, "Scenario: "+sc.Title)
	s.appendLocked(TurnSystemNotice, "Objective: "+sc.Objective)
	s.appendLocked(TurnSystemNotice, "--- Terminal Connected ---")
	s.recordDeviceOutputLocked(reply)
	return s, nil
}

// SubmitCommand sends one command to the device. Blank input is a no-op; a
// command while another is pending is rejected with ErrBusy. A service
// failure appends a notice and leaves the transcript and completed flag
// otherwise untouched, so the user can simply retry.
func (s *Session) SubmitCommand(ctx context.Context, text string) error {
	cmd := strings.TrimSpace(text)
	if cmd == "" {
		return nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.appendLocked(TurnUserInput, cmd)
	s.mu.Unlock()

	reply, err := s.chat.Send(ctx, cmd)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.appendLocked(TurnSystemNotice, "Connection interrupted.")
		return nil
	}
	s.recordDeviceOutputLocked(reply)
	return nil
}

// recordDeviceOutputLocked detects the completion marker before stripping it
// from the displayed text. completed latches: once true it never reverts.
func (s *Session) recordDeviceOutputLocked(text string) {
	if strings.Contains(text, CompletionMarker) {
		s.completed = true
		text = strings.ReplaceAll(text, CompletionMarker, "")
	}
	s.appendLocked(TurnDeviceOutput, strings.TrimSpace(text))
}

func (s *Session) appendLocked(kind TurnKind, text string) {
	s.transcript = append(s.transcript, Turn{
		ID:   uuid.NewString(),
		Kind: kind,
		Text: text,
		At:   time.Now(),
	})
}

type View struct {
	ID        string   `json:"id"`
	Scenario  Scenario `json:"scenario"`
	Completed bool     `json:"completed"`
	Busy      bool     `json:"busy"`
	Turns     []Turn   `json:"turns"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:        s.id,
		Scenario:  s.scenario,
		Completed: s.completed,
		Busy:      s.busy,
		Turns:     append([]Turn(nil), s.transcript...),
	}
}

func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}
