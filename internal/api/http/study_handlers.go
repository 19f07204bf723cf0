package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cert-lab/ccna-prep/internal/study"
)

func ListTopicsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, study.Topics)
	}
}

func GuideHandler(svc *study.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "topicID")
		md, err := svc.Guide(r.Context(), id)
		if err != nil {
			if errors.Is(err, study.ErrUnknownTopic) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"topic_id": id, "markdown": md})
	}
}
