package gin_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	ginpkg "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infragin "github.com/Kartheepan1991/eks-setup-terraform/internal/infra/gin"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/metrics"
)

const clientTimeout = 2 * time.Second

func newLoopbackServer(t *testing.T, port int) *infragin.Server {
	t.Helper()

	return infragin.NewServerBuilder("test-service", port).
		WithHost("127.0.0.1").
		WithLogger(logger.NewNop()).
		WithHealthHandler(func(c *ginpkg.Context) {
			c.JSON(http.StatusOK, ginpkg.H{"status": "healthy"})
		}).
		WithNoRoute(func(c *ginpkg.Context) {
			c.JSON(http.StatusNotFound, ginpkg.H{"error": "not found"})
		}).
		WithMetrics(metrics.New("test")).
		WithTracing(true).
		WithRoutes(func(r *ginpkg.Engine) {
			r.GET("/ping", func(c *ginpkg.Context) { c.String(http.StatusOK, "pong") })
		}).
		Build()
}

// startServer binds a free loopback port and serves until the test ends.
func startServer(t *testing.T) (*infragin.Server, string) {
	t.Helper()

	srv := newLoopbackServer(t, 0)
	require.NoError(t, srv.Listen())

	served := make(chan error, 1)
	go func() { served <- srv.Serve() }()

	t.Cleanup(func() {
		_ = srv.Close()
		<-served
	})

	return srv, "http://" + srv.Addr().String()
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	client := &http.Client{Timeout: clientTimeout}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_ServesOverTCP(t *testing.T) {
	_, base := startServer(t)

	resp, body := get(t, base+"/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", body)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 32)

	resp, body = get(t, base+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, body)

	resp, _ = get(t, base+"/health/memory")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = get(t, base+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/ping",status="200"} 1`)

	resp, body = get(t, base+"/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, body)
}

func TestServer_HeadHealth(t *testing.T) {
	_, base := startServer(t)

	client := &http.Client{Timeout: clientTimeout}
	resp, err := client.Head(base + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_CloseReleasesListener(t *testing.T) {
	srv := newLoopbackServer(t, 0)
	require.NoError(t, srv.Listen())
	addr := srv.Addr().String()

	served := make(chan error, 1)
	go func() { served <- srv.Serve() }()

	require.NoError(t, srv.Close())
	require.NoError(t, <-served, "Serve returns nil after Close")
	require.NoError(t, srv.Close(), "second Close is harmless")

	_, err := net.DialTimeout("tcp", addr, clientTimeout)
	assert.Error(t, err, "connections must be refused after Close")
}

func TestServer_ListenPortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	port := occupied.Addr().(*net.TCPAddr).Port
	srv := newLoopbackServer(t, port)

	err = srv.Listen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("listen 127.0.0.1:%d", port))
	assert.Nil(t, srv.Addr())
}

func TestServer_ListenTwice(t *testing.T) {
	srv := newLoopbackServer(t, 0)
	require.NoError(t, srv.Listen())
	t.Cleanup(func() { _ = srv.Close() })

	assert.Error(t, srv.Listen())
}

func TestServer_ServeWithoutListen(t *testing.T) {
	srv := newLoopbackServer(t, 0)

	assert.ErrorIs(t, srv.Serve(), infragin.ErrNotListening)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv := newLoopbackServer(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, clientTimeout, 10*time.Millisecond)
	resp, body := get(t, "http://"+srv.Addr().String()+"/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", body)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(clientTimeout):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestServer_StartServesUntilClosed(t *testing.T) {
	srv := newLoopbackServer(t, 0)

	started := make(chan error, 1)
	go func() { started <- srv.Start() }()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, clientTimeout, 10*time.Millisecond)
	resp, body := get(t, "http://"+srv.Addr().String()+"/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", body)

	require.NoError(t, srv.Close())
	select {
	case err := <-started:
		assert.NoError(t, err)
	case <-time.After(clientTimeout):
		t.Fatal("Start did not return after Close")
	}
}

func TestServer_TrailingSlashIsNotRedirected(t *testing.T) {
	_, base := startServer(t)

	resp, body := get(t, base+"/ping/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, body)
}
