package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, p *Prometheus, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := p.Registry().Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}

	return 0
}

func TestPrometheus_ObservePrediction(t *testing.T) {
	p := NewPrometheus()

	p.ObservePrediction(1, nil, 20*time.Microsecond)
	p.ObservePrediction(1, nil, 30*time.Microsecond)
	p.ObservePrediction(-1, errors.New("boom"), time.Microsecond)

	assert.Equal(t, 2.0, counterValue(t, p, "fitplan_cluster_predictions_total", map[string]string{"cluster": "1", "outcome": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, p, "fitplan_cluster_predictions_total", map[string]string{"cluster": "none", "outcome": "error"}))
}

func TestPrometheus_Events(t *testing.T) {
	p := NewPrometheus()

	p.IncPlanEvent(usecase.PlanCreated)
	p.IncPublished(true)
	p.IncPublished(false)

	assert.Equal(t, 1.0, counterValue(t, p, "fitplan_plan_events_total", map[string]string{"event_type": "plan_created"}))
	assert.Equal(t, 1.0, counterValue(t, p, "fitplan_outbox_published_total", map[string]string{"result": "error"}))
}

func TestPrometheus_Handler(t *testing.T) {
	p := NewPrometheus()
	p.IncPlanEvent(usecase.PlanDeleted)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fitplan_plan_events_total{event_type="plan_deleted"} 1`)
}
