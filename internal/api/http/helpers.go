package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cert-lab/ccna-prep/internal/lab"
	"github.com/cert-lab/ccna-prep/internal/quiz"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps core errors onto HTTP statuses. Generation failures are the
// upstream service's fault (502); transition and busy rejections are
// conflicts; everything else is a caller error.
func statusFor(err error) int {
	var ge *quiz.GenerationError
	switch {
	case errors.As(err, &ge):
		return http.StatusBadGateway
	case errors.Is(err, quiz.ErrInvalidTransition),
		errors.Is(err, quiz.ErrStaleGeneration),
		errors.Is(err, lab.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
