package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(userSvc service.UserService) http.Handler {
	h := NewHandler(&service.Services{
		UserService:    userSvc,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
	return h.Init()
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(&mockUserService{row: testRow("Ana", "ana1", "pw")})

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{name: "root", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "hello", method: http.MethodGet, target: "/hello/Ana", wantStatus: http.StatusOK},
		{name: "read one", method: http.MethodGet, target: "/users/ana1", wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, target: "/api/version", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
		{name: "unsupported method is hidden as 404", method: http.MethodPut, target: "/users", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_CreateThenConflictShape(t *testing.T) {
	t.Run("create over the router", func(t *testing.T) {
		router := newTestRouter(&mockUserService{})

		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"nome":"Ana","login":"ana1","senha":"pw"}`))
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status_msg":"user created successfully","error":null}`, rec.Body.String())
	})

	t.Run("duplicate create over the router", func(t *testing.T) {
		router := newTestRouter(&mockUserService{err: store.ErrLoginAlreadyExists})

		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"nome":"Ana","login":"ana1","senha":"pw"}`))
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(&mockUserService{row: testRow("Ana", "ana1", "pw")})

	req := httptest.NewRequest(http.MethodGet, "/users/ana1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
