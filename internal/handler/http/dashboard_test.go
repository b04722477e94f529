package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/models"
)

func photoRequest(t *testing.T, field, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="foto.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/profile/photo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withSessionCookie(req, "s-1")
}

func TestUploadProfilePhoto(t *testing.T) {
	h, mocks := newTestHandler(t)
	user := worker()
	user.Prefs = map[string]any{"theme": "gelap"}
	updated := *user
	updated.Prefs = map[string]any{"theme": "gelap", models.PrefAvatarFileID: "f-1"}

	gomock.InOrder(
		mocks.auth.EXPECT().GetCurrentUser(sessionSecret("s-1")).Return(user),
		mocks.files.EXPECT().Upload(gomock.Any(), *user, "foto.jpg", "image/jpeg", int64(4), gomock.Any()).
			DoAndReturn(func(_ any, _ models.User, _, _ string, _ int64, r io.Reader) (string, error) {
				content, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, "jpeg", string(content))
				return "f-1", nil
			}),
		mocks.auth.EXPECT().UpdatePreferences(gomock.Any(), map[string]any{"theme": "gelap", models.PrefAvatarFileID: "f-1"}).
			Return(updated, nil),
		mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(&updated),
		mocks.files.EXPECT().ViewURL(gomock.Any(), "f-1").Return("https://files/f-1", nil),
	)

	rec := serve(h, photoRequest(t, "photo", "image/jpeg", []byte("jpeg")))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[photoResponse](t, rec)
	assert.Equal(t, "f-1", resp.FileID)
	assert.Equal(t, "https://files/f-1", resp.URL)
	assert.True(t, resp.Success)
	assert.Equal(t, "f-1", resp.User.PrefString(models.PrefAvatarFileID))
}

func TestUploadProfilePhoto_Rejected(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(worker())
	mocks.files.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "text/plain", gomock.Any(), gomock.Any()).
		Return("", service.ErrUnsupportedFileType)

	rec := serve(h, photoRequest(t, "photo", "text/plain", []byte("bukan gambar")))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.JSONEq(t, `{"error":"`+app.MsgFileRejected+`"}`, rec.Body.String())
}

func TestUploadProfilePhoto_MissingPart(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(worker())

	rec := serve(h, photoRequest(t, "document", "image/png", []byte("png")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfile_EmailWithoutPassword(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(worker())
	mocks.auth.EXPECT().UpdateProfile(gomock.Any(), models.ProfileUpdate{Name: "Rina", Email: "baru@example.com"}).
		Return(models.User{}, &service.AuthError{Kind: service.KindValidation, Message: app.MsgEmailChangeNeedsPassword})

	req := httptest.NewRequest(http.MethodPatch, "/dashboard/profile", strings.NewReader(`{"name":"Rina","email":"baru@example.com"}`))
	rec := serve(h, withSessionCookie(req, "s-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgEmailChangeNeedsPassword, decodeBody[authResponse](t, rec).Error)
}

func TestUpdatePassword_Mismatch(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(worker())

	req := httptest.NewRequest(http.MethodPut, "/dashboard/password",
		strings.NewReader(`{"password":"baru12345","passwordConfirm":"baru54321","oldPassword":"lama12345"}`))
	rec := serve(h, withSessionCookie(req, "s-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgPasswordMismatch, decodeBody[authResponse](t, rec).Error)
}

func TestSetRole_Handler(t *testing.T) {
	h, mocks := newTestHandler(t)
	gomock.InOrder(
		mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(worker()),
		mocks.auth.EXPECT().AssignRole(gomock.Any(), "wrk-1", []string{"majikan"}).Return(models.User{}, nil),
		mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(&models.User{ID: "wrk-1", Status: true, Labels: []string{"majikan"}}),
	)

	req := httptest.NewRequest(http.MethodPut, "/dashboard/role", strings.NewReader(`{"role":"majikan"}`))
	rec := serve(h, withSessionCookie(req, "s-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[authResponse](t, rec).User.HasRole(models.RoleEmployer))
}

func TestGetOwnJobPosting_OtherOwner(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(employer())
	mocks.jobs.EXPECT().Get(gomock.Any(), "j1").Return(models.JobPosting{ID: "j1", OwnerID: "someone-else"}, nil)

	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard/lowongan/j1", nil), "s-1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetOwnJobPosting_OwnerWithoutEmployerRole(t *testing.T) {
	h, mocks := newTestHandler(t)
	former := worker()
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(former)
	mocks.jobs.EXPECT().Get(gomock.Any(), "j1").Return(models.JobPosting{ID: "j1", OwnerID: former.ID}, nil)

	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard/lowongan/j1", nil), "s-1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetOwnJobPosting_Owner(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(employer())
	mocks.jobs.EXPECT().Get(gomock.Any(), "j1").Return(models.JobPosting{ID: "j1", OwnerID: "emp-1"}, nil)

	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard/lowongan/j1", nil), "s-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "j1", decodeBody[models.JobPosting](t, rec).ID)
}

func TestDeleteJobPosting(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(employer())
	mocks.jobs.EXPECT().Delete(gomock.Any(), *employer(), "j1").Return(nil)

	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodDelete, "/dashboard/lowongan/j1", nil), "s-1"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateJobPosting_NotFound(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(employer())
	mocks.jobs.EXPECT().Update(gomock.Any(), gomock.Any(), "missing", gomock.Any()).Return(models.JobPosting{}, service.ErrJobPostingNotFound)

	req := httptest.NewRequest(http.MethodPut, "/dashboard/lowongan/missing", strings.NewReader(`{"title":"baru"}`))
	rec := serve(h, withSessionCookie(req, "s-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReview(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(employer())
	mocks.reviews.EXPECT().Create(gomock.Any(), *employer(), models.Review{WorkerID: "wrk-1", Rating: 5, Comment: "Rajin"}).
		Return(models.Review{ID: "r1", WorkerID: "wrk-1", Rating: 5}, nil)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/reviews", strings.NewReader(`{"workerId":"wrk-1","rating":5,"comment":"Rajin"}`))
	rec := serve(h, withSessionCookie(req, "s-1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "r1", decodeBody[models.Review](t, rec).ID)
}

func TestListWorkerReviews(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.reviews.EXPECT().ListByWorker(gomock.Any(), "wrk-1").
		Return(models.ReviewSummary{WorkerID: "wrk-1", Average: 4.5, Total: 2}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/workers/wrk-1/reviews", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 4.5, decodeBody[models.ReviewSummary](t, rec).Average, 0.001)
}

func TestCurrentUser_WithoutProvider(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().GetCurrentUser(gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	_, ok := h.currentUser(rec, httptest.NewRequest(http.MethodGet, "/dashboard/lowongan", nil))

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
