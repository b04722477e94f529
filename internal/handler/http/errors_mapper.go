package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidQuery, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrMissingPhoto, errorResponse{http.StatusBadRequest, app.MsgFileRejected}},

	{service.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrAccessDenied, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
	{service.ErrJobPostingNotFound, errorResponse{http.StatusNotFound, app.MsgJobPostingNotFound}},
	{service.ErrJobPostingConflict, errorResponse{http.StatusConflict, app.MsgInvalidDataProvided}},
	{service.ErrReviewAlreadyExists, errorResponse{http.StatusConflict, app.MsgReviewAlreadyExists}},
	{service.ErrFileNotFound, errorResponse{http.StatusNotFound, app.MsgFileNotFound}},
	{service.ErrFileTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgFileRejected}},
	{service.ErrUnsupportedFileType, errorResponse{http.StatusUnsupportedMediaType, app.MsgFileRejected}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and writes its mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	utils.WriteError(w, resp.message, resp.status)
}
