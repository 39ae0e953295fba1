package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRenderCountsByResult(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newRenderMetrics(registry, Config{ServiceName: "docpress", Environment: "test"})

	m.ObserveRender("invoice", 1, 10*time.Millisecond, nil)
	m.ObserveRender("invoice", 2, 10*time.Millisecond, nil)
	m.ObserveRender("invoice", 0, time.Millisecond, errors.New("boom"))

	success := testutil.ToFloat64(m.documentsRendered.WithLabelValues("invoice", "success"))
	if success != 2 {
		t.Fatalf("success count: %v", success)
	}
	failed := testutil.ToFloat64(m.documentsRendered.WithLabelValues("invoice", "error"))
	if failed != 1 {
		t.Fatalf("error count: %v", failed)
	}
}

func TestObserveRenderNilReceiver(t *testing.T) {
	var m *RenderMetrics
	// Must not panic when metrics are not wired.
	m.ObserveRender("invoice", 1, time.Millisecond, nil)
}

func TestRenderWithConfigSingleton(t *testing.T) {
	ResetRenderMetricsForTest()
	defer ResetRenderMetricsForTest()

	first := RenderWithConfig(Config{ServiceName: "docpress", Environment: "test"})
	second := Render()
	if first != second {
		t.Fatalf("expected singleton metrics instance")
	}
}
