package metrics

import (
	"fmt"
	"os"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	phaseDuration  *prom.HistogramVec
	exportDuration prom.Histogram
	pagesRendered  prom.Counter
	indexVariants  prom.Counter
	pageFailures   prom.Counter
	assetsCopied   *prom.CounterVec
	assetFailures  *prom.CounterVec
	exportOutcomes *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		phaseDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "doccsite",
			Name:      "phase_duration_seconds",
			Help:      "Duration of individual export phases",
			Buckets:   prom.DefBuckets,
		}, []string{"phase"}),
		exportDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "doccsite",
			Name:      "export_duration_seconds",
			Help:      "Total export duration",
			Buckets:   prom.DefBuckets,
		}),
		pagesRendered: prom.NewCounter(prom.CounterOpts{
			Namespace: "doccsite",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered and written",
		}),
		indexVariants: prom.NewCounter(prom.CounterOpts{
			Namespace: "doccsite",
			Name:      "index_variants_total",
			Help:      "Index page variants generated",
		}),
		pageFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: "doccsite",
			Name:      "page_failures_total",
			Help:      "Pages skipped due to render or write failures",
		}),
		assetsCopied: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccsite",
			Name:      "assets_copied_total",
			Help:      "Static assets copied by kind",
		}, []string{"kind"}),
		assetFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccsite",
			Name:      "asset_failures_total",
			Help:      "Static asset copy failures by kind",
		}, []string{"kind"}),
		exportOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccsite",
			Name:      "export_outcomes_total",
			Help:      "Export outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		pr.phaseDuration,
		pr.exportDuration,
		pr.pagesRendered,
		pr.indexVariants,
		pr.pageFailures,
		pr.assetsCopied,
		pr.assetFailures,
		pr.exportOutcomes,
	)
	return pr
}

// Registry returns the backing registry for gathering.
func (pr *PrometheusRecorder) Registry() *prom.Registry { return pr.registry }

func (pr *PrometheusRecorder) ObservePhaseDuration(phase string, d time.Duration) {
	pr.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveExportDuration(d time.Duration) {
	pr.exportDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncPagesRendered() { pr.pagesRendered.Inc() }
func (pr *PrometheusRecorder) IncIndexVariants() { pr.indexVariants.Inc() }
func (pr *PrometheusRecorder) IncPageFailures()  { pr.pageFailures.Inc() }

func (pr *PrometheusRecorder) AddAssetsCopied(kind string, n int) {
	pr.assetsCopied.WithLabelValues(kind).Add(float64(n))
}

func (pr *PrometheusRecorder) AddAssetFailures(kind string, n int) {
	pr.assetFailures.WithLabelValues(kind).Add(float64(n))
}

func (pr *PrometheusRecorder) IncExportOutcome(outcome string) {
	pr.exportOutcomes.WithLabelValues(outcome).Inc()
}

// WriteTextfile gathers the registry and writes it in text exposition
// format, suitable for the node_exporter textfile collector.
func (pr *PrometheusRecorder) WriteTextfile(path string) error {
	families, err := pr.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- path comes from the CLI flag
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer f.Close()
	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
