package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/mock"
	"github.com/MKhiriev/notes-board/internal/service"
	"github.com/MKhiriev/notes-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	auth  *mock.MockAccountService
	notes *mock.MockNoteService
	info  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := testServices{
		auth:  mock.NewMockAccountService(ctrl),
		notes: mock.NewMockNoteService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    svcs.auth,
		NoteService:    svcs.notes,
		AppInfoService: svcs.info,
	}, config.Server{RequestTimeout: 5 * time.Second, FeedMaxLimit: 50}, logger.Nop())

	return h, svcs
}

func serve(h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestNewHandler_DefaultFeedMaxLimit(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, config.DefaultFeedMaxLimit, h.feedMaxLimit)
}

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/auth/login", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetServerVersion(t *testing.T) {
	h, svcs := newTestHandler(t)
	svcs.info.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "abc"})

	rr := serve(h, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.0.0","date":"N/A","commit":"abc"}`, rr.Body.String())
}
