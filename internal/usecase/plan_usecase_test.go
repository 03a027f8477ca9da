package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planFixture struct {
	uc       *PlanUseCase
	plans    *fakePlanRepo
	outbox   *fakeOutbox
	cache    *fakeCache
	profiles *fakeProfiles
	model    *fakeModel
	metrics  *fakeMetrics
}

var (
	alice = domain.NewUser("alice", domain.UserTypeCustomer)
	bob   = domain.NewUser("bob", domain.UserTypeCustomer)
	coach = domain.NewUser("carol", domain.UserTypeCoach)
)

func newPlanFixture(plans ...domain.Plan) *planFixture {
	f := &planFixture{
		plans:    newFakePlanRepo(plans...),
		outbox:   &fakeOutbox{},
		cache:    newFakeCache(),
		profiles: newFakeProfiles(),
		model: &fakeModel{prediction: &domain.ClusterPrediction{
			Cluster:     1,
			ClusterInfo: domain.ClusterInfo{Focus: "Strength and muscle gain", IntensityLevel: "high", RecommendedDays: 5},
		}},
		metrics: &fakeMetrics{},
	}
	f.uc = NewPlanUC(f.plans, f.outbox, f.cache, f.profiles, fakeTx{}, f.model,
		fakeWorkouts{}, fakeNutrition{}, fakeEncoder{}, f.metrics, logger.Nop{})
	return f
}

func storedPlan(id, owner string, status domain.PlanStatus) domain.Plan {
	return domain.Plan{
		ID:        id,
		UserID:    owner,
		Status:    status,
		UserData:  domain.Profile{Weight: 70, Height: 1.75, ExerciseType: 2},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGeneratePlan(t *testing.T) {
	f := newPlanFixture()

	plan, err := f.uc.GeneratePlan(context.Background(), NewGeneratePlanReq(alice, validQuestionnaire()))
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "alice", plan.UserID)
	assert.Equal(t, domain.PlanStatusNew, plan.Status)
	assert.Equal(t, 1, plan.Cluster)
	assert.Equal(t, "high", plan.ClusterInfo.IntensityLevel)
	assert.Equal(t, domain.PlanOverview{TotalDays: 30, WorkoutDays: 1, RestDays: 1}, plan.Overview)
	assert.InDelta(t, 2500, plan.NutritionPlan.DailyTargets.Calories, 1e-9)

	stored, err := f.plans.GetByID(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, stored.ID)

	assert.Equal(t, []OutboxEventType{PlanCreated}, f.outbox.types())
	assert.Equal(t, []byte("plan_created:"+plan.ID), f.outbox.events[0].Payload)
	assert.Equal(t, Pending, f.outbox.events[0].Status)

	assert.Contains(t, f.profiles.points, plan.ID)
	assert.Len(t, f.profiles.points[plan.ID].Vector, domain.FeatureCount)
	assert.Equal(t, []int{1}, f.metrics.predictions)
	assert.Equal(t, []OutboxEventType{PlanCreated}, f.metrics.events)
}

func TestGeneratePlan_Errors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newPlanFixture()
		_, err := f.uc.GeneratePlan(context.Background(), NewGeneratePlanReq(nil, validQuestionnaire()))
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})

	t.Run("invalid questionnaire", func(t *testing.T) {
		f := newPlanFixture()
		q := validQuestionnaire()
		q.CalorieTarget = ""
		_, err := f.uc.GeneratePlan(context.Background(), NewGeneratePlanReq(alice, q))
		assert.ErrorIs(t, err, e.ErrMissingFields)
		assert.Empty(t, f.outbox.types())
	})

	t.Run("model inconsistency", func(t *testing.T) {
		f := newPlanFixture()
		f.model.prediction = nil
		f.model.err = e.ErrConfigurationInconsistency

		_, err := f.uc.GeneratePlan(context.Background(), NewGeneratePlanReq(alice, validQuestionnaire()))
		assert.ErrorIs(t, err, e.ErrConfigurationInconsistency)
		assert.Equal(t, []int{-1}, f.metrics.predictions)
	})

	t.Run("outbox failure", func(t *testing.T) {
		f := newPlanFixture()
		f.outbox.err = errors.New("insert failed")

		_, err := f.uc.GeneratePlan(context.Background(), NewGeneratePlanReq(alice, validQuestionnaire()))
		assert.Error(t, err)
		assert.Empty(t, f.metrics.events)
	})
}

func TestGetPlan(t *testing.T) {
	f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusNew))
	ctx := context.Background()

	plan, err := f.uc.GetPlan(ctx, alice, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", plan.ID)

	_, err = f.uc.GetPlan(ctx, coach, "p1")
	assert.NoError(t, err)

	_, err = f.uc.GetPlan(ctx, bob, "p1")
	assert.ErrorIs(t, err, e.ErrForbidden)

	_, err = f.uc.GetPlan(ctx, alice, "missing")
	assert.ErrorIs(t, err, e.ErrPlanNotFound)

	_, err = f.uc.GetPlan(ctx, nil, "p1")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestGetPlan_FromCache(t *testing.T) {
	f := newPlanFixture()
	cached := storedPlan("p9", "alice", domain.PlanStatusApproved)
	require.NoError(t, f.cache.SetPlan(context.Background(), &cached))

	plan, err := f.uc.GetPlan(context.Background(), alice, "p9")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanStatusApproved, plan.Status)
}

func TestListPlans(t *testing.T) {
	older := storedPlan("p1", "alice", domain.PlanStatusNew)
	newer := storedPlan("p2", "alice", domain.PlanStatusRequested)
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	f := newPlanFixture(older, newer, storedPlan("p3", "bob", domain.PlanStatusRequested))
	ctx := context.Background()

	own, err := f.uc.ListPlans(ctx, alice)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "p2", own[0].Plan.ID)
	assert.Equal(t, "Endurance", own[0].FitnessGoal)

	requested, err := f.uc.ListPlans(ctx, coach)
	require.NoError(t, err)
	assert.Len(t, requested, 2)
	for _, s := range requested {
		assert.Equal(t, domain.PlanStatusRequested, s.Plan.Status)
	}
}

func TestSendToCoach(t *testing.T) {
	f := newPlanFixture(
		storedPlan("p1", "alice", domain.PlanStatusNew),
		storedPlan("p2", "alice", domain.PlanStatusApproved),
	)
	ctx := context.Background()

	plan, err := f.uc.SendToCoach(ctx, alice, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanStatusRequested, plan.Status)
	require.NotNil(t, plan.SentBy)
	assert.Equal(t, "alice", *plan.SentBy)
	assert.NotNil(t, plan.UpdatedAt)
	assert.Equal(t, []OutboxEventType{PlanRequested}, f.outbox.types())
	assert.Contains(t, f.cache.deleted, "p1")

	_, err = f.uc.SendToCoach(ctx, bob, "p1")
	assert.ErrorIs(t, err, e.ErrForbidden)

	_, err = f.uc.SendToCoach(ctx, alice, "p1")
	assert.ErrorIs(t, err, e.ErrInvalidPlanStatus)

	_, err = f.uc.SendToCoach(ctx, alice, "p2")
	assert.ErrorIs(t, err, e.ErrInvalidPlanStatus)
}

func TestReviewPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusRequested))

		plan, err := f.uc.ReviewPlan(ctx, NewReviewPlanReq(coach, "p1", "approve", "Looks good"))
		require.NoError(t, err)
		assert.Equal(t, domain.PlanStatusApproved, plan.Status)
		assert.Equal(t, "Looks good", plan.CoachComment)
		require.NotNil(t, plan.CoachID)
		assert.Equal(t, "carol", *plan.CoachID)
		assert.Equal(t, []OutboxEventType{PlanReviewed}, f.outbox.types())
	})

	t.Run("any other action rejects", func(t *testing.T) {
		f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusRequested))

		plan, err := f.uc.ReviewPlan(ctx, NewReviewPlanReq(coach, "p1", "reject", "Too much cardio"))
		require.NoError(t, err)
		assert.Equal(t, domain.PlanStatusRejected, plan.Status)
	})

	t.Run("customer cannot review", func(t *testing.T) {
		f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusRequested))
		_, err := f.uc.ReviewPlan(ctx, NewReviewPlanReq(alice, "p1", "approve", "ok"))
		assert.ErrorIs(t, err, e.ErrForbidden)
	})

	t.Run("comment required", func(t *testing.T) {
		f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusRequested))
		_, err := f.uc.ReviewPlan(ctx, NewReviewPlanReq(coach, "p1", "approve", ""))
		assert.ErrorIs(t, err, e.ErrMissingFields)
	})

	t.Run("plan not requested", func(t *testing.T) {
		f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusNew))
		_, err := f.uc.ReviewPlan(ctx, NewReviewPlanReq(coach, "p1", "approve", "ok"))
		assert.ErrorIs(t, err, e.ErrInvalidPlanStatus)
		assert.Empty(t, f.outbox.types())
	})
}

func TestDeletePlan(t *testing.T) {
	f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusNew))
	ctx := context.Background()
	require.NoError(t, f.profiles.Upsert(ctx, domain.NewProfilePoint("p1", "alice", 1, []float32{1})))

	assert.ErrorIs(t, f.uc.DeletePlan(ctx, coach, "p1"), e.ErrForbidden)
	assert.ErrorIs(t, f.uc.DeletePlan(ctx, bob, "p1"), e.ErrForbidden)

	require.NoError(t, f.uc.DeletePlan(ctx, alice, "p1"))

	_, err := f.plans.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, e.ErrPlanNotFound)
	assert.Equal(t, []OutboxEventType{PlanDeleted}, f.outbox.types())
	assert.NotContains(t, f.profiles.points, "p1")

	assert.ErrorIs(t, f.uc.DeletePlan(ctx, alice, "p1"), e.ErrPlanNotFound)
}

func TestSimilarProfiles(t *testing.T) {
	f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusNew))
	ctx := context.Background()
	require.NoError(t, f.profiles.Upsert(ctx, domain.NewProfilePoint("p1", "alice", 1, []float32{1})))
	require.NoError(t, f.profiles.Upsert(ctx, domain.NewProfilePoint("p2", "bob", 1, []float32{1})))

	similar, err := f.uc.SimilarProfiles(ctx, NewSimilarProfilesReq(alice, "p1", 0))
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "p2", similar[0].PlanID)
	assert.Equal(t, "p1", f.profiles.lastExc)

	_, err = f.uc.SimilarProfiles(ctx, NewSimilarProfilesReq(bob, "p1", 3))
	assert.ErrorIs(t, err, e.ErrForbidden)
}

func TestSimilarProfiles_Disabled(t *testing.T) {
	f := newPlanFixture(storedPlan("p1", "alice", domain.PlanStatusNew))
	f.uc.profileRepo = nil

	similar, err := f.uc.SimilarProfiles(context.Background(), NewSimilarProfilesReq(alice, "p1", 5))
	require.NoError(t, err)
	assert.Empty(t, similar)
}
