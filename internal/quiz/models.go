package quiz

type Mode string

const (
	ModeDrill      Mode = "drill"      // short, single-topic, untimed
	ModeSimulation Mode = "simulation" // full-length, domain-weighted, timed
)

// Stage is the exam session lifecycle. Every mutation goes through a
// stage-guarded method; illegal (stage, event) pairs are rejected with
// ErrInvalidTransition instead of silently no-op'ing.
type Stage string

const (
	StageSelectingMode Stage = "selecting_mode"
	StageConfiguring   Stage = "configuring"
	StageGenerating    Stage = "generating"
	StageActive        Stage = "active"
	StageReview        Stage = "review"
)

type Question struct {
	ID           string   `json:"id"`
	Domain       string   `json:"domain,omitempty"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	UserAnswer   *int     `json:"user_answer,omitempty"` // nil until the user picks an option
	Flagged      bool     `json:"flagged"`
}

func (q Question) Answered() bool { return q.UserAnswer != nil }

func (q Question) AnsweredCorrectly() bool {
	return q.UserAnswer != nil && *q.UserAnswer == q.CorrectIndex
}
