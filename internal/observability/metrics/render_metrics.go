package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RenderMetrics tracks document rendering throughput and shape.
type RenderMetrics struct {
	documentsRendered *prometheus.CounterVec
	renderDuration    *prometheus.HistogramVec
	pagesPerDocument  *prometheus.HistogramVec
}

var (
	renderMetricsOnce sync.Once
	renderMetrics     *RenderMetrics
)

// Render returns the process-wide render metrics, registering them on first
// use.
func Render() *RenderMetrics {
	return RenderWithConfig(Config{})
}

// RenderWithConfig returns render metrics labelled for the given service.
func RenderWithConfig(cfg Config) *RenderMetrics {
	renderMetricsOnce.Do(func() {
		renderMetrics = newRenderMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return renderMetrics
}

// ResetRenderMetricsForTest clears the singleton between test registries.
func ResetRenderMetricsForTest() {
	renderMetricsOnce = sync.Once{}
	renderMetrics = nil
}

func newRenderMetrics(registerer prometheus.Registerer, cfg Config) *RenderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "docpress"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	documentsRendered := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "docpress_documents_rendered_total",
			Help:        "Documents rendered, by kind and result.",
			ConstLabels: constLabels,
		},
		[]string{"kind", "result"}, // result: success | error
	)

	renderDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "docpress_render_duration_seconds",
			Help:        "Wall time of one render call, template load to PDF bytes.",
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		},
		[]string{"kind"},
	)

	pagesPerDocument := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "docpress_document_pages",
			Help:        "Pages per rendered document; growth signals runaway tables.",
			Buckets:     []float64{1, 2, 3, 5, 8, 13, 21},
			ConstLabels: constLabels,
		},
		[]string{"kind"},
	)

	for _, collector := range []prometheus.Collector{documentsRendered, renderDuration, pagesPerDocument} {
		if err := registerer.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}

	return &RenderMetrics{
		documentsRendered: documentsRendered,
		renderDuration:    renderDuration,
		pagesPerDocument:  pagesPerDocument,
	}
}

// ObserveRender records one completed render call.
func (m *RenderMetrics) ObserveRender(kind string, pages int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.documentsRendered.WithLabelValues(kind, result).Inc()
	if err == nil {
		m.renderDuration.WithLabelValues(kind).Observe(duration.Seconds())
		m.pagesPerDocument.WithLabelValues(kind).Observe(float64(pages))
	}
}
