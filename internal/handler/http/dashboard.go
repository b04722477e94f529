package http

import (
	"errors"
	"maps"
	"net/http"

	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

const maxUploadMemory = 1 << 20

type passwordForm struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	OldPassword     string `json:"oldPassword"`
}

type roleForm struct {
	Role string `json:"role"`
}

type photoResponse struct {
	FileID string `json:"fileId"`
	URL    string `json:"url,omitempty"`
	models.AuthResult
}

// currentUser returns the verified user or writes 401.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := h.provider(r).Init(r.Context()).User
	if user == nil {
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid profile form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.UpdateProfile(r.Context(), update)
	h.writeAuthResult(w, r, "update_profile", p, result, http.StatusBadRequest, "")
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var form passwordForm
	if err := decodeJSON(r, &form); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid password form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if form.PasswordConfirm != "" && form.Password != form.PasswordConfirm {
		h.metrics.observeAuthAction("update_password", false)
		utils.WriteJSON(w, authResponse{AuthResult: models.AuthFailure(app.MsgPasswordMismatch)}, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.UpdatePassword(r.Context(), form.Password, form.OldPassword)
	h.writeAuthResult(w, r, "update_password", p, result, http.StatusBadRequest, "")
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs map[string]any
	if err := decodeJSON(r, &prefs); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid preferences form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.UpdatePreferences(r.Context(), prefs)
	h.writeAuthResult(w, r, "update_preferences", p, result, http.StatusBadRequest, "")
}

func (h *Handler) setRole(w http.ResponseWriter, r *http.Request) {
	var form roleForm
	if err := decodeJSON(r, &form); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid role form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.SetRole(r.Context(), models.Role(form.Role))
	h.writeAuthResult(w, r, "set_role", p, result, http.StatusBadRequest, "")
}

// uploadProfilePhoto stores the "photo" form part and saves its id in the
// user's preferences.
func (h *Handler) uploadProfilePhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxPhotoSize+maxUploadMemory)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(w, r, service.ErrFileTooLarge, "photo upload too large")
			return
		}
		writeServiceError(w, r, errors.Join(ErrMissingPhoto, err), "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeServiceError(w, r, errors.Join(ErrMissingPhoto, err), "no photo in form")
		return
	}
	defer file.Close()

	fileID, err := h.services.FileService.Upload(r.Context(), *user, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeServiceError(w, r, err, "photo upload failed")
		return
	}

	prefs := make(map[string]any, len(user.Prefs)+1)
	maps.Copy(prefs, user.Prefs)
	prefs[models.PrefAvatarFileID] = fileID

	p := h.provider(r)
	result := p.UpdatePreferences(r.Context(), prefs)
	h.metrics.observeAuthAction("update_preferences", result.Success)

	url, err := h.services.FileService.ViewURL(r.Context(), fileID)
	if err != nil {
		log.Warn().Err(err).Str("file_id", fileID).Msg("view url not available")
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusBadGateway
	}
	utils.WriteJSON(w, photoResponse{FileID: fileID, URL: url, AuthResult: result}, status)
}
