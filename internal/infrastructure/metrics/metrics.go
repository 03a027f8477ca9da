package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fitplan"

// Prometheus — метрики сервиса в собственном реестре.
type Prometheus struct {
	registry    *prometheus.Registry
	predictions *prometheus.CounterVec
	latency     prometheus.Histogram
	planEvents  *prometheus.CounterVec
	published   *prometheus.CounterVec
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_predictions_total",
			Help:      "Cluster predictions by assigned cluster and outcome.",
		}, []string{"cluster", "outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_prediction_seconds",
			Help:      "Latency of standardization plus nearest-centroid search.",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3},
		}),
		planEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_events_total",
			Help:      "Committed plan lifecycle events by type.",
		}, []string{"event_type"}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox events delivered to Kafka by result.",
		}, []string{"result"}),
	}

	p.registry.MustRegister(
		p.predictions,
		p.latency,
		p.planEvents,
		p.published,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return p
}

func (p *Prometheus) ObservePrediction(cluster int, err error, elapsed time.Duration) {
	outcome := "ok"
	label := strconv.Itoa(cluster)
	if err != nil {
		outcome = "error"
		label = "none"
	}

	p.predictions.WithLabelValues(label, outcome).Inc()
	p.latency.Observe(elapsed.Seconds())
}

func (p *Prometheus) IncPlanEvent(eventType usecase.OutboxEventType) {
	p.planEvents.WithLabelValues(string(eventType)).Inc()
}

// IncPublished учитывает результат отправки события из outbox.
func (p *Prometheus) IncPublished(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	p.published.WithLabelValues(result).Inc()
}

// Handler отдает метрики в формате Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry нужен для тестов и дополнительных коллекторов.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
