package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// viewFile redirects to a short-lived or public view URL of a stored photo.
func (h *Handler) viewFile(w http.ResponseWriter, r *http.Request) {
	url, err := h.services.FileService.ViewURL(r.Context(), chi.URLParam(r, "fileID"))
	if err != nil {
		writeServiceError(w, r, err, "file lookup failed")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}
