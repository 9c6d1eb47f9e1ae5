package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/mock"
	"github.com/kashishbhadauriya/Careersphere/internal/service"
	"github.com/kashishbhadauriya/Careersphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, ctrl *gomock.Controller, cfg config.Server) (http.Handler, *mock.MockAuthService, *mock.MockAssessmentService) {
	t.Helper()
	authSvc := mock.NewMockAuthService(ctrl)
	assessmentSvc := mock.NewMockAssessmentService(ctrl)

	health := pingFunc(func(context.Context) error { return nil })
	h := NewHandler(&service.Services{AuthService: authSvc, AssessmentService: assessmentSvc}, health, cfg, logger.Nop())

	return h.Init(), authSvc, assessmentSvc
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestInit_PublicRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl, config.Server{})

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/signup", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/logout", http.StatusFound},
		{http.MethodGet, "/unknown", http.StatusNotFound},
		{http.MethodPut, "/signup", http.StatusNotFound},
		{http.MethodDelete, "/dashboard", http.StatusNotFound},
	}

	for _, tt := range tests {
		rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.wantStatus, rr.Code, "%s %s", tt.method, tt.path)
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader), "%s %s", tt.method, tt.path)
	}
}

func TestInit_ProtectedRoutesRedirectWithoutCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl, config.Server{})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/dashboard", nil),
		httptest.NewRequest(http.MethodGet, "/assessment", nil),
		httptest.NewRequest(http.MethodPost, "/assessment", nil),
		httptest.NewRequest(http.MethodGet, "/assessment/11", nil),
	} {
		rr := serve(router, req)
		assert.Equal(t, http.StatusFound, rr.Code, req.URL.Path)
		assert.Equal(t, "/", rr.Header().Get("Location"), req.URL.Path)
	}
}

func TestInit_ProtectedRoutesWithCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, authSvc, assessmentSvc := newTestRouter(t, ctrl, config.Server{})
	authSvc.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Claims: testClaims}, nil).Times(2)
	assessmentSvc.EXPECT().ListByUser(gomock.Any(), "7").Return(nil, nil)
	assessmentSvc.EXPECT().Get(gomock.Any(), "7", "11").Return(models.Assessment{ID: "11", UserID: "7", AIAnalysis: "report"}, nil)

	for _, path := range []string{"/dashboard", "/assessment/11"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "good"})

		rr := serve(router, req)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestInit_HealthzReportsStoreFailure(t *testing.T) {
	h := NewHandler(&service.Services{}, pingFunc(func(context.Context) error {
		return errors.New("down")
	}), config.Server{}, logger.Nop())

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestInit_RequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, authSvc, assessmentSvc := newTestRouter(t, ctrl, config.Server{RequestTimeout: 50 * time.Millisecond})
	authSvc.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Claims: testClaims}, nil)
	assessmentSvc.EXPECT().ListByUser(gomock.Any(), "7").DoAndReturn(
		func(ctx context.Context, _ string) ([]models.Assessment, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "request context carries the server deadline")
			return nil, nil
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "good"})
	assert.Equal(t, http.StatusOK, serve(router, req).Code)
}

func TestInit_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl, config.Server{AllowedOrigins: []string{"https://app.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/assessment", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := serve(router, req)
	require.Less(t, rr.Code, 300)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = serve(router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
