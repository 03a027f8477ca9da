package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[string]domain.Plan
}

func newFakePlanRepo(plans ...domain.Plan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[string]domain.Plan)}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.Plan) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.ID] = *plan
	return plan, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id string) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, e.ErrPlanNotFound
	}
	return &p, nil
}

func (r *fakePlanRepo) ListByUser(_ context.Context, userID string) ([]domain.Plan, error) {
	return r.filter(func(p domain.Plan) bool { return p.UserID == userID }), nil
}

func (r *fakePlanRepo) ListByStatus(_ context.Context, status domain.PlanStatus) ([]domain.Plan, error) {
	return r.filter(func(p domain.Plan) bool { return p.Status == status }), nil
}

func (r *fakePlanRepo) filter(keep func(domain.Plan) bool) []domain.Plan {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Plan
	for _, p := range r.plans {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakePlanRepo) UpdateStatus(_ context.Context, plan *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return e.ErrPlanNotFound
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []*OutboxEvent
	err    error
}

func (o *fakeOutbox) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return nil, o.err
	}
	event.ID = int64(len(o.events) + 1)
	o.events = append(o.events, event)
	return event, nil
}

func (o *fakeOutbox) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (o *fakeOutbox) MarkAsProcessed(context.Context, int64) error { return nil }

func (o *fakeOutbox) ResetStale(context.Context, time.Duration) (int64, error) { return 0, nil }

func (o *fakeOutbox) types() []OutboxEventType {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]OutboxEventType, 0, len(o.events))
	for _, ev := range o.events {
		out = append(out, ev.EventType)
	}
	return out
}

type fakeCache struct {
	mu      sync.Mutex
	plans   map[string]domain.Plan
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{plans: make(map[string]domain.Plan)}
}

func (c *fakeCache) GetPlan(_ context.Context, id string) (*domain.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *fakeCache) SetPlan(_ context.Context, plan *domain.Plan) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans[plan.ID] = *plan
	return nil
}

func (c *fakeCache) DeletePlan(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.plans, id)
	c.deleted = append(c.deleted, id)
	return nil
}

type fakeProfiles struct {
	mu      sync.Mutex
	points  map[string]domain.ProfilePoint
	lastExc string
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{points: make(map[string]domain.ProfilePoint)}
}

func (f *fakeProfiles) Upsert(_ context.Context, point *domain.ProfilePoint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.points[point.PlanID] = *point
	return nil
}

func (f *fakeProfiles) SearchSimilar(_ context.Context, _ []float32, limit int, exclude string) ([]domain.SimilarProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastExc = exclude
	var out []domain.SimilarProfile
	for id, p := range f.points {
		if id == exclude || len(out) == limit {
			continue
		}
		out = append(out, domain.SimilarProfile{PlanID: id, Cluster: p.Cluster, Score: 0.9})
	}
	return out, nil
}

func (f *fakeProfiles) Delete(_ context.Context, planID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.points, planID)
	return nil
}

type fakeModel struct {
	prediction *domain.ClusterPrediction
	err        error
}

func (m *fakeModel) PredictCluster(domain.UserFeatures) (*domain.ClusterPrediction, error) {
	return m.prediction, m.err
}

func (m *fakeModel) Standardize(f domain.UserFeatures) ([]float64, error) {
	return f.Vector(), nil
}

func (m *fakeModel) Clusters() []domain.Cluster {
	return []domain.Cluster{{ID: 0, Info: m.prediction.ClusterInfo}}
}

func (m *fakeModel) Cluster(id int) (*domain.Cluster, error) {
	if id != 0 {
		return nil, e.ErrClusterNotFound
	}
	return &domain.Cluster{ID: 0, Info: m.prediction.ClusterInfo}, nil
}

func (m *fakeModel) FeatureNames() []string {
	return domain.FeatureNames
}

type fakeWorkouts struct{}

func (fakeWorkouts) Generate(*domain.Profile) domain.WorkoutPlan {
	return domain.WorkoutPlan{
		"1": {Type: domain.WorkoutStrength, Notes: "Focus on form"},
		"2": {Type: domain.WorkoutRest, Notes: "Focus on recovery"},
	}
}

type fakeNutrition struct{}

func (fakeNutrition) Generate(p *domain.Profile) domain.NutritionPlan {
	return domain.NutritionPlan{DailyTargets: domain.NutrientTargets{Calories: p.Calories}}
}

type fakeEncoder struct{}

func (fakeEncoder) EncodePlanEvent(ev *PlanEvent) ([]byte, error) {
	return []byte(string(ev.EventType) + ":" + ev.PlanID), nil
}

type fakeMetrics struct {
	mu          sync.Mutex
	predictions []int
	events      []OutboxEventType
}

func (m *fakeMetrics) ObservePrediction(cluster int, _ error, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictions = append(m.predictions, cluster)
}

func (m *fakeMetrics) IncPlanEvent(t OutboxEventType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, t)
}
