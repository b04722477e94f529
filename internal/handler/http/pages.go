package http

import (
	"net/http"

	"github.com/MKhiriev/go-helper-market/internal/authctx"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

// pageState describes what a page needs to render.
type pageState struct {
	Page     string        `json:"page"`
	Auth     authctx.State `json:"auth"`
	Redirect string        `json:"redirect,omitempty"`

	Roles        []models.Role `json:"roles,omitempty"`
	CanPostJob   bool          `json:"canPostJob,omitempty"`
	CanReview    bool          `json:"canReview,omitempty"`
	ResetUserID  string        `json:"resetUserId,omitempty"`
	ResetSecret  string        `json:"resetSecret,omitempty"`
	AvatarFileID string        `json:"avatarFileId,omitempty"`
}

func (h *Handler) pageFor(r *http.Request, page string) pageState {
	return pageState{
		Page: page,
		Auth: h.provider(r).Init(r.Context()),
	}
}

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.pageFor(r, "home"), http.StatusOK)
}

func (h *Handler) aboutPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.pageFor(r, "aboutus"), http.StatusOK)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	state := h.pageFor(r, "login")
	if target := r.URL.Query().Get("redirect"); isLocalPath(target) {
		state.Redirect = target
	}
	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.pageFor(r, "signup"), http.StatusOK)
}

func (h *Handler) forgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.pageFor(r, "forgot-password"), http.StatusOK)
}

// resetPasswordPage echoes the userId and secret of the recovery link so the
// form can post them back.
func (h *Handler) resetPasswordPage(w http.ResponseWriter, r *http.Request) {
	state := h.pageFor(r, "reset-password")
	state.ResetUserID = r.URL.Query().Get("userId")
	state.ResetSecret = r.URL.Query().Get("secret")
	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	state := h.pageFor(r, "dashboard")
	if user := state.Auth.User; user != nil {
		state.Roles = user.Roles()
		state.CanPostJob = user.Can(models.CapPostJob)
		state.CanReview = user.Can(models.CapWriteReview)
		state.AvatarFileID = user.PrefString(models.PrefAvatarFileID)
	}
	utils.WriteJSON(w, state, http.StatusOK)
}
