package server_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/hola-servers/internal/config"
	handler "github.com/MKhiriev/hola-servers/internal/handler/http"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/server"
	"github.com/MKhiriev/hola-servers/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer binds h on port and serves it until the test ends.
func startServer(t *testing.T, h http.Handler, port int) *server.HTTPServer {
	t.Helper()

	srv := server.NewHTTPServer(h, port, logger.Nop())
	if err := srv.Listen(); err != nil {
		if errors.Is(err, server.ErrBindFailed) && port != 0 {
			t.Skipf("port %d unavailable: %v", port, err)
		}
		require.NoError(t, err)
	}

	go srv.Serve()
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	return srv
}

func do(t *testing.T, method, url string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func plainServer(t *testing.T) *server.HTTPServer {
	t.Helper()

	cfg, err := config.LoadPlainConfig(logger.Nop(), filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Port)

	services, err := service.NewGreetingServices(service.PlainGreetingFormat, cfg, logger.Nop())
	require.NoError(t, err)

	// bound on a free port: the configured 3000 is asserted above
	return startServer(t, handler.NewHandler(services, logger.Nop()).InitPlainGreeting(), 0)
}

func routedServer(t *testing.T, port int) *server.HTTPServer {
	t.Helper()

	cfg, err := config.LoadRoutedConfig(logger.Nop())
	require.NoError(t, err)

	services, err := service.NewGreetingServices(service.RoutedGreetingFormat, cfg, logger.Nop())
	require.NoError(t, err)

	if port < 0 {
		port = cfg.Port
	}
	return startServer(t, handler.NewHandler(services, logger.Nop()).InitRoutedGreeting(), port)
}

func TestScenario_PlainDefaultName(t *testing.T) {
	t.Setenv("NOMBRE", "")
	srv := plainServer(t)

	resp, body := do(t, http.MethodGet, srv.URL()+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Hola, Usuario!", body)
}

func TestScenario_PlainConfiguredNameAnyPath(t *testing.T) {
	t.Setenv("NOMBRE", "Ana")
	srv := plainServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			resp, body := do(t, method, srv.URL()+"/anything")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "Hola, Ana!", body)
		})
	}
}

func TestScenario_RoutedNameAndPort(t *testing.T) {
	t.Setenv("NAME", "Luis")
	t.Setenv("PORT", "4000")
	srv := routedServer(t, -1)

	require.Equal(t, 4000, srv.Port())
	assert.Equal(t, "http://localhost:4000", srv.URL())

	resp, body := do(t, http.MethodGet, srv.URL()+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.Equal(t, "¡Hola Luis desde Express.js!", body)
}

func TestScenario_RoutedUnknownPath(t *testing.T) {
	t.Setenv("NAME", "")
	t.Setenv("PORT", "")
	srv := routedServer(t, 0)

	resp, body := do(t, http.MethodGet, srv.URL()+"/missing")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotContains(t, body, "Hola")
}
