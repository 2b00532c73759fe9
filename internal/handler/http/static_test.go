package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withNameParam(req *http.Request, name string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRoot(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Hello, World!")
}

func TestHello(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	t.Run("json greeting", func(t *testing.T) {
		req := withNameParam(httptest.NewRequest(http.MethodGet, "/hello/Ana", nil), "Ana")
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		h.hello(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hello":"Ana"}`, rec.Body.String())
	})

	t.Run("html greeting", func(t *testing.T) {
		req := withNameParam(httptest.NewRequest(http.MethodGet, "/hello/Ana", nil), "Ana")
		rec := httptest.NewRecorder()

		h.hello(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1> Hello, Ana </h1>")
	})

	t.Run("quotes in the name are escaped in html", func(t *testing.T) {
		req := withNameParam(httptest.NewRequest(http.MethodGet, "/hello/O'Brien", nil), "O'Brien")
		rec := httptest.NewRecorder()

		h.hello(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `Hello, O\'Brien`)
	})
}
