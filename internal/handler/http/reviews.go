package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

func (h *Handler) listWorkerReviews(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.ReviewService.ListByWorker(r.Context(), chi.URLParam(r, "workerID"))
	if err != nil {
		writeServiceError(w, r, err, "listing reviews failed")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var review models.Review
	if err := decodeJSON(r, &review); err != nil {
		writeServiceError(w, r, err, "invalid review form")
		return
	}

	created, err := h.services.ReviewService.Create(r.Context(), *user, review)
	if err != nil {
		writeServiceError(w, r, err, "creating review failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
