package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cert-lab/ccna-prep/internal/auth"
	"github.com/cert-lab/ccna-prep/internal/gemini"
	"github.com/cert-lab/ccna-prep/internal/lab"
)

func ListScenariosHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, lab.Scenarios)
	}
}

// StartLabHandler seeds a device-persona conversation for the chosen
// scenario and installs it as the user's lab session, replacing any prior
// one. Failure to seed is fatal to the start; nothing is installed.
func StartLabHandler(svc gemini.Service, reg *lab.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := lab.ScenarioByID(chi.URLParam(r, "scenarioID"))
		if !ok {
			http.Error(w, "unknown scenario", http.StatusNotFound)
			return
		}
		sess, err := lab.StartSession(r.Context(), svc, sc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		reg.Put(auth.SubjectFromContext(r.Context()), sess)
		writeJSON(w, http.StatusOK, sess.View())
	}
}

func LabCommandHandler(reg *lab.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Command string `json:"command"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sess, ok := reg.Get(auth.SubjectFromContext(r.Context()))
		if !ok {
			http.Error(w, "no lab session", http.StatusNotFound)
			return
		}
		if err := sess.SubmitCommand(r.Context(), req.Command); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, sess.View())
	}
}

func GetLabSessionHandler(reg *lab.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := reg.Get(auth.SubjectFromContext(r.Context()))
		if !ok {
			http.Error(w, "no lab session", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sess.View())
	}
}
