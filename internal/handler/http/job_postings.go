package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

func pageFromQuery(r *http.Request) (models.Page, error) {
	var page models.Page
	query := r.URL.Query()

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return page, fmt.Errorf("%w: limit: %w", ErrInvalidQuery, err)
		}
		page.Limit = n
	}
	if offset := query.Get("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			return page, fmt.Errorf("%w: offset: %w", ErrInvalidQuery, err)
		}
		page.Offset = n
	}

	return page, nil
}

func (h *Handler) listJobPostings(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid paging")
		return
	}

	query := r.URL.Query()
	filter := models.JobPostingFilter{
		Category: models.JobCategory(query.Get("category")),
		City:     query.Get("city"),
		Status:   models.JobStatus(query.Get("status")),
	}

	result, err := h.services.JobPostingService.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, err, "listing job postings failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getJobPosting(w http.ResponseWriter, r *http.Request) {
	posting, err := h.services.JobPostingService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "job posting lookup failed")
		return
	}

	utils.WriteJSON(w, posting, http.StatusOK)
}

func (h *Handler) listOwnJobPostings(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid paging")
		return
	}

	result, err := h.services.JobPostingService.ListByOwner(r.Context(), *user, page)
	if err != nil {
		writeServiceError(w, r, err, "listing own job postings failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) createJobPosting(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var posting models.JobPosting
	if err := decodeJSON(r, &posting); err != nil {
		writeServiceError(w, r, err, "invalid job posting form")
		return
	}

	created, err := h.services.JobPostingService.Create(r.Context(), *user, posting)
	if err != nil {
		writeServiceError(w, r, err, "creating job posting failed")
		return
	}

	logger.FromRequest(r).Info().Str("job_posting_id", created.ID).Msg("job posting created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

// getOwnJobPosting opens a posting in the editor; only its owner and
// moderators may do that.
func (h *Handler) getOwnJobPosting(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	posting, err := h.services.JobPostingService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "job posting lookup failed")
		return
	}

	if !user.CanManage(posting) {
		writeServiceError(w, r, service.ErrAccessDenied, "job posting of another owner")
		return
	}

	utils.WriteJSON(w, posting, http.StatusOK)
}

func (h *Handler) updateJobPosting(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var update models.JobPostingUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "invalid job posting update")
		return
	}

	updated, err := h.services.JobPostingService.Update(r.Context(), *user, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, err, "updating job posting failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteJobPosting(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.services.JobPostingService.Delete(r.Context(), *user, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "deleting job posting failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
