package quiz

// QuestionView is the student-safe projection of a Question. CorrectIndex and
// Explanation are withheld until the session reaches review, parity with
// hiding answer keys from an in-progress attempt.
type QuestionView struct {
	ID           string   `json:"id"`
	Domain       string   `json:"domain,omitempty"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	UserAnswer   *int     `json:"user_answer,omitempty"`
	Flagged      bool     `json:"flagged"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

type View struct {
	ID            string         `json:"id"`
	Mode          Mode           `json:"mode,omitempty"`
	Stage         Stage          `json:"stage"`
	Questions     []QuestionView `json:"questions,omitempty"`
	CurrentIndex  int            `json:"current_index"`
	Timed         bool           `json:"timed"`
	TimeRemaining int            `json:"time_remaining_seconds"`
	Report        *Report        `json:"report,omitempty"`
}

// View snapshots the session for rendering. The returned value aliases
// nothing mutable inside the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:            s.id,
		Mode:          s.mode,
		Stage:         s.stage,
		CurrentIndex:  s.current,
		Timed:         s.timed,
		TimeRemaining: s.remaining,
	}
	if s.report != nil {
		r := *s.report
		v.Report = &r
	}
	review := s.stage == StageReview
	for i := range s.questions {
		q := s.questions[i]
		qv := QuestionView{
			ID:      q.ID,
			Domain:  q.Domain,
			Prompt:  q.Prompt,
			Options: append([]string(nil), q.Options...),
			Flagged: q.Flagged,
		}
		if q.UserAnswer != nil {
			a := *q.UserAnswer
			qv.UserAnswer = &a
		}
		if review {
			c := q.CorrectIndex
			qv.CorrectIndex = &c
			qv.Explanation = q.Explanation
		}
		v.Questions = append(v.Questions, qv)
	}
	return v
}
