package metrics

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRoute = "/eventsgateway.GRPCForwarder/SendEvent"
	testHost  = "test-host"
)

func counterValue(t *testing.T, r *Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := r.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m.GetLabel(), labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, labels map[string]string) bool {
	if len(pairs) != len(labels) {
		return false
	}
	for _, p := range pairs {
		if labels[p.GetName()] != p.GetValue() {
			return false
		}
	}
	return true
}

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	r.IncrSuccess(testRoute, "my-topic", testHost)
	r.IncrSuccess(testRoute, "my-topic", testHost)
	r.IncrFailure(testRoute, "my-topic", testHost, "some error occured")

	success := counterValue(t, r, "eventsgateway_client_requests_success_counter", map[string]string{
		"route":      testRoute,
		"topic":      "my-topic",
		"clientHost": testHost,
	})
	assert.Equal(t, 2.0, success)

	failure := counterValue(t, r, "eventsgateway_client_requests_failure_counter", map[string]string{
		"route":      testRoute,
		"topic":      "my-topic",
		"clientHost": testHost,
		"reason":     "some error occured",
	})
	assert.Equal(t, 1.0, failure)
}

func TestRegistrySnapshotQuantiles(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 100; i++ {
		r.ObserveResponseTime(testRoute, "my-topic", testHost, time.Duration(i)*time.Millisecond)
	}
	snapshot, err := r.Snapshot()
	require.NoError(t, err)

	assert.Contains(t, snapshot, "eventsgateway_client_response_time_ms")
	assert.Contains(t, snapshot, `quantile="0.5"`)
	assert.Contains(t, snapshot, `quantile="0.95"`)
	assert.Contains(t, snapshot, `quantile="0.99"`)
	assert.Contains(t, snapshot, `clientHost="test-host"`)
	assert.Contains(t, snapshot, `topic="my-topic"`)
	count := fmt.Sprintf(
		`eventsgateway_client_response_time_ms_count{clientHost=%q,route=%q,topic=%q} 100`,
		testHost, testRoute, "my-topic",
	)
	assert.Contains(t, snapshot, count)
}

func TestRegistrySnapshotIdempotent(t *testing.T) {
	r := NewRegistry()
	r.IncrSuccess(testRoute, "my-topic", testHost)
	r.ObserveResponseTime(testRoute, "my-topic", testHost, 10*time.Millisecond)

	first, err := r.Snapshot()
	require.NoError(t, err)
	second, err := r.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	r.IncrSuccess(testRoute, "my-topic", testHost)
	r.IncrFailure(testRoute, "my-topic", testHost, "boom")
	r.ObserveResponseTime(testRoute, "my-topic", testHost, time.Millisecond)

	r.Reset()

	snapshot, err := r.Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, snapshot, `topic="my-topic"`)
}

func TestRegistryConcurrentUpdates(t *testing.T) {
	r := NewRegistry()
	workers := 50
	perWorker := 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if n%2 == 0 {
					r.IncrSuccess(testRoute, "my-topic", testHost)
				} else {
					r.IncrFailure(testRoute, "my-topic", testHost, "boom")
				}
				r.ObserveResponseTime(testRoute, "my-topic", testHost, time.Millisecond)
				// exercise concurrent readers as well
				if j == 0 {
					_, _ = r.Snapshot()
				}
			}
		}(i)
	}
	wg.Wait()

	success := counterValue(t, r, "eventsgateway_client_requests_success_counter", map[string]string{
		"route":      testRoute,
		"topic":      "my-topic",
		"clientHost": testHost,
	})
	failure := counterValue(t, r, "eventsgateway_client_requests_failure_counter", map[string]string{
		"route":      testRoute,
		"topic":      "my-topic",
		"clientHost": testHost,
		"reason":     "boom",
	})
	assert.Equal(t, float64(workers*perWorker), success+failure)

	snapshot, err := r.Snapshot()
	require.NoError(t, err)
	count := fmt.Sprintf("_count{clientHost=%q,route=%q,topic=%q} %d", testHost, testRoute, "my-topic", workers*perWorker)
	assert.True(t, strings.Contains(snapshot, count), "expected %d observations in snapshot", workers*perWorker)
}
