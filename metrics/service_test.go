package metrics

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	logTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLifecycle(t *testing.T) {
	hook := logTest.NewGlobal()
	service := NewService("127.0.0.1:0", NewRegistry())

	require.NoError(t, service.Start())
	assertLogsContain(t, hook, "Starting service")

	require.NoError(t, service.Stop())
	assertLogsContain(t, hook, "Stopping service")
	assert.NoError(t, service.Status())
}

func TestServiceBindFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	service := NewService(lis.Addr().String(), NewRegistry())
	err = service.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not listen")
}

func TestMetricsEndpoint(t *testing.T) {
	registry := NewRegistry()
	registry.IncrSuccess(testRoute, "my-topic", testHost)
	registry.ObserveResponseTime(testRoute, "my-topic", testHost, 5*time.Millisecond)

	service := NewService("127.0.0.1:0", registry)
	require.NoError(t, service.Start())
	defer func() {
		require.NoError(t, service.Stop())
	}()

	first := scrape(t, service.Addr())
	assert.Contains(t, first, `eventsgateway_client_requests_success_counter{clientHost="test-host",route="/eventsgateway.GRPCForwarder/SendEvent",topic="my-topic"} 1`)
	assert.Contains(t, first, "eventsgateway_client_response_time_ms")

	// no writes in between, so the scrape is byte-identical
	second := scrape(t, service.Addr())
	assert.Equal(t, first, second)
}

func TestMetricsEndpointContentType(t *testing.T) {
	service := NewService("127.0.0.1:0", NewRegistry())
	require.NoError(t, service.Start())
	defer func() {
		require.NoError(t, service.Stop())
	}()

	res, err := http.Get("http://" + service.Addr() + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/plain")
}

func TestHealthz(t *testing.T) {
	service := NewService("127.0.0.1:0", NewRegistry())
	require.NoError(t, service.Start())
	defer func() {
		require.NoError(t, service.Stop())
	}()

	res, err := http.Get("http://" + service.Addr() + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func scrape(t *testing.T, addr string) string {
	t.Helper()
	res, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}

func assertLogsContain(t *testing.T, hook *logTest.Hook, want string) {
	t.Helper()
	for _, entry := range hook.AllEntries() {
		if entry.Message == want {
			return
		}
	}
	t.Errorf("expected log message %q was not found", want)
}
