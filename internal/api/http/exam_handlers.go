package http

import (
	"encoding/json"
	"net/http"

	"github.com/cert-lab/ccna-prep/internal/auth"
	"github.com/cert-lab/ccna-prep/internal/quiz"
)

// NewExamSessionHandler begins a fresh session (replacing any prior one) and
// applies the mode choice: selecting_mode -> configuring.
func NewExamSessionHandler(reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mode quiz.Mode `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sess := reg.New(auth.SubjectFromContext(r.Context()))
		if err := sess.ChooseMode(req.Mode); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, sess.View())
	}
}

// StartExamHandler runs configuring -> generating -> active. The request
// blocks on the generation call; on failure the session is back in
// configuring and the client may simply try again.
func StartExamHandler(reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Target string `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sess, ok := reg.Get(auth.SubjectFromContext(r.Context()))
		if !ok {
			http.Error(w, "no exam session", http.StatusNotFound)
			return
		}
		if err := sess.Start(r.Context(), req.Target); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, sess.View())
	}
}

func AnswerHandler(reg *quiz.Registry) http.HandlerFunc {
	return withSession(reg, func(sess *quiz.Session, r *http.Request) error {
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return sess.Answer(req.Index)
	})
}

func ToggleFlagHandler(reg *quiz.Registry) http.HandlerFunc {
	return withSession(reg, func(sess *quiz.Session, r *http.Request) error {
		return sess.ToggleFlag()
	})
}

func GotoHandler(reg *quiz.Registry) http.HandlerFunc {
	return withSession(reg, func(sess *quiz.Session, r *http.Request) error {
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return sess.Goto(req.Index)
	})
}

func SubmitExamHandler(reg *quiz.Registry) http.HandlerFunc {
	return withSession(reg, func(sess *quiz.Session, r *http.Request) error {
		_, err := sess.Submit()
		return err
	})
}

func NewAttemptHandler(reg *quiz.Registry) http.HandlerFunc {
	return withSession(reg, func(sess *quiz.Session, r *http.Request) error {
		return sess.NewAttempt()
	})
}

func GetExamSessionHandler(reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := reg.Get(auth.SubjectFromContext(r.Context()))
		if !ok {
			http.Error(w, "no exam session", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sess.View())
	}
}

var errBadJSON = &badJSONError{}

type badJSONError struct{}

func (*badJSONError) Error() string { return "bad json" }

// withSession factors the lookup-apply-render shape shared by the event
// handlers above.
func withSession(reg *quiz.Registry, apply func(*quiz.Session, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := reg.Get(auth.SubjectFromContext(r.Context()))
		if !ok {
			http.Error(w, "no exam session", http.StatusNotFound)
			return
		}
		if err := apply(sess, r); err != nil {
			if err == errBadJSON {
				http.Error(w, "bad json", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, sess.View())
	}
}
