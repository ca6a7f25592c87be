package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/spendwatch/internal/config"
	handlers "github.com/davidbz/spendwatch/internal/http"
	"github.com/davidbz/spendwatch/internal/http/middleware"
	"github.com/davidbz/spendwatch/internal/mocks"
)

func TestServer_Routes(t *testing.T) {
	handler := newHandler(mocks.NewMockBillingSource(t), mocks.NewMockNotificationSink(t))
	server := handlers.NewServer(&config.Config{}, handler, middleware.Trace(nil), nil)

	routes := server.Routes()

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("notify rejects GET", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billing/notify", nil))

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	handler := newHandler(mocks.NewMockBillingSource(t), mocks.NewMockNotificationSink(t))
	server := handlers.NewServer(&config.Config{}, handler, nil, nil)

	require.NoError(t, server.Shutdown(context.Background()))
}
