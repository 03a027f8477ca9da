package converter

import (
	"testing"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanConverter_JSONColumns(t *testing.T) {
	coach := "carol"
	plan := &domain.Plan{
		ID:     "0b5c7f5e-2f7e-4a53-9a43-5b0b6a7f2f10",
		UserID: "alice",
		Status: domain.PlanStatusApproved,
		WorkoutPlan: domain.WorkoutPlan{
			"1": {Type: domain.WorkoutRest, Exercises: []domain.Exercise{}, Intensity: "low", Notes: "Focus on recovery"},
		},
		NutritionPlan: domain.NutritionPlan{MealOrder: []string{"Breakfast"}, DietType: "vegan"},
		Overview:      domain.PlanOverview{TotalDays: 30, RestDays: 1},
		UserData:      domain.Profile{Weight: 70, Height: 1.75},
		Cluster:       2,
		ClusterInfo:   domain.ClusterInfo{Focus: "Cardiovascular endurance", RecommendedDays: 4},
		CoachID:       &coach,
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	conv := PlanConverter{}
	model, err := conv.ToModel(plan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_days":30,"workout_days":0,"rest_days":1}`, string(model.Overview))
	assert.Equal(t, "approved", model.Status)

	back, err := conv.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, plan, back)
}

func TestPlanConverter_BrokenJSON(t *testing.T) {
	_, err := PlanConverter{}.ToEntity(&PlanModel{ID: "x", WorkoutPlan: []byte("{")})
	assert.ErrorContains(t, err, "workout_plan")
}

func TestOutboxEventConverter(t *testing.T) {
	conv := OutboxEventConverter{}
	events := conv.ToArrEntity([]*OutboxEventModel{
		{ID: 1, EventType: "plan_created", Status: "pending"},
		{ID: 2, EventType: "plan_deleted", Status: "processed"},
	})

	require.Len(t, events, 2)
	assert.Equal(t, usecase.PlanCreated, events[0].EventType)
	assert.Equal(t, usecase.Processed, events[1].Status)
}
