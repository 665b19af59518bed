package metrics

import (
	"fmt"
	"io"

	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder implements domain.ProcessMetrics with Prometheus counters kept
// on a private registry, so each Recorder starts from zero.
type Recorder struct {
	registry   *prometheus.Registry
	processed  *prometheus.CounterVec
	unresolved *prometheus.CounterVec
}

var _ domain.ProcessMetrics = (*Recorder)(nil)

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		// OrdersProcessed tracks orders taxed, per applied strategy
		processed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taxkraft_orders_processed_total",
				Help: "Total number of orders taxed",
			},
			[]string{"strategy"},
		),
		// OrdersUnresolved tracks orders no strategy applied to
		unresolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taxkraft_orders_unresolved_total",
				Help: "Total number of orders without an applicable tax strategy",
			},
			[]string{"country"},
		),
	}
	r.registry.MustRegister(r.processed, r.unresolved)
	return r
}

func (r *Recorder) ObserveProcessed(strategy string) {
	r.processed.WithLabelValues(strategy).Inc()
}

func (r *Recorder) ObserveUnresolved(country string) {
	r.unresolved.WithLabelValues(country).Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText renders every collected metric in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
