package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/mock"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

const (
	testProjectID  = "proj"
	testCookieName = "a_session_proj"
)

type testServices struct {
	auth    *mock.MockAuthService
	jobs    *mock.MockJobPostingService
	reviews *mock.MockReviewService
	files   *mock.MockFileService
	appInfo *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:     config.App{PublicOrigin: "https://pembantu.id"},
		Backend: config.Backend{ProjectID: testProjectID},
		Server:  config.Server{RateLimitRPS: 100, RateLimitBurst: 100},
		Guard: config.Guard{
			ProtectedPrefixes: []string{"/dashboard"},
			AuthOnlyPrefixes:  []string{"/login", "/signup"},
		},
	}
}

func newTestHandlerWithConfig(t *testing.T, cfg config.StructuredConfig) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		jobs:    mock.NewMockJobPostingService(ctrl),
		reviews: mock.NewMockReviewService(ctrl),
		files:   mock.NewMockFileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:       mocks.auth,
		JobPostingService: mocks.jobs,
		ReviewService:     mocks.reviews,
		FileService:       mocks.files,
		AppInfoService:    mocks.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), mocks
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	return newTestHandlerWithConfig(t, testConfig())
}

// sessionSecret matches a context carrying the given session secret.
type sessionSecret string

func (m sessionSecret) Matches(x any) bool {
	ctx, ok := x.(context.Context)
	if !ok {
		return false
	}
	got, ok := utils.GetSessionSecretFromContext(ctx)
	return ok && got == string(m)
}

func (m sessionSecret) String() string {
	return "context with session secret " + string(m)
}

func employer() *models.User {
	return &models.User{ID: "emp-1", Name: "Ibu Sari", Status: true, Labels: []string{"majikan"}}
}

func worker() *models.User {
	return &models.User{ID: "wrk-1", Name: "Mbak Rina", Status: true, Labels: []string{"pekerja"}}
}

func withSessionCookie(req *http.Request, secret string) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: secret})
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestNewHandler(t *testing.T) {
	h, _ := newTestHandler(t)

	require.NotNil(t, h)
	assert.Equal(t, testCookieName, h.cookieName)
	assert.Equal(t, "/login", h.rules.LoginPath)
	assert.Equal(t, "/dashboard", h.rules.DashboardPath)
	assert.Equal(t, []string{"/dashboard"}, h.rules.Protected)
	assert.Equal(t, "https://pembantu.id", h.publicOrigin)
	assert.NotNil(t, h.limiter)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	h1, _ := newTestHandler(t)
	h2, _ := newTestHandler(t)

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

func TestGetServerVersion(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestGetAppInfo(t *testing.T) {
	h, mocks := newTestHandler(t)
	info := models.AppInfo{Version: "1.2.3", ProjectID: "proj", DataStore: "backend", FileStore: "backend"}
	mocks.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(info)

	rec := httptest.NewRecorder()
	h.getAppInfo(rec, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, info, decodeBody[models.AppInfo](t, rec))
}
