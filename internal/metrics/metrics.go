// Package metrics counts batch outcomes in a private Prometheus registry and
// exports them in the node-exporter textfile format at the end of a run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ytget/yt-catalog/internal/model"
)

const namespace = "yt_catalog"

// Recorder collects per-run metrics. A nil *Recorder is a no-op.
type Recorder struct {
	registry    *prometheus.Registry
	items       *prometheus.CounterVec
	resolveFail prometheus.Counter
	runs        *prometheus.CounterVec
	runDuration *prometheus.GaugeVec
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_total",
			Help:      "Processed batch items by workflow and status.",
		}, []string{"workflow", "status"}),
		resolveFail: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_resolution_failures_total",
			Help:      "Metadata lookups that degraded to the unavailable record.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Workflow invocations by workflow and result.",
		}, []string{"workflow", "result"}),
		runDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last workflow invocation.",
		}, []string{"workflow"}),
	}
	r.registry.MustRegister(r.items, r.resolveFail, r.runs, r.runDuration)
	return r
}

// ItemProcessed counts one batch item
func (r *Recorder) ItemProcessed(workflow string, status model.ItemStatus) {
	if r == nil {
		return
	}
	r.items.WithLabelValues(workflow, status.String()).Inc()
}

// ResolutionFailed counts one degraded metadata lookup
func (r *Recorder) ResolutionFailed() {
	if r == nil {
		return
	}
	r.resolveFail.Inc()
}

// RunFinished records the result and duration of one workflow invocation
func (r *Recorder) RunFinished(workflow string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.runs.WithLabelValues(workflow, result).Inc()
	r.runDuration.WithLabelValues(workflow).Set(elapsed.Seconds())
}

// WriteTextfile writes all metrics to path atomically
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
