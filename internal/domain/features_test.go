package domain

import (
	"testing"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturesFromMap(t *testing.T) {
	in := UserFeatures{
		Weight: 70, Height: 1.75, Age: 28, BMI: 22.86, DaysPerWeek: 5, SleepHours: 7.5,
		Calories: 2500, Protein: 0.4, Carbohydrate: 0.4, TotalFat: 0.2, Fiber: 35,
		Intensity: 3, ExerciseType: 1, Rating: 0,
	}

	got, err := FeaturesFromMap(in.Map())
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestFeaturesFromMap_Mismatch(t *testing.T) {
	values := UserFeatures{}.Map()
	delete(values, "rating")

	_, err := FeaturesFromMap(values)
	require.ErrorIs(t, err, e.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "got 13")
	assert.Contains(t, err.Error(), "missing: [rating]")

	values["rating"] = 1
	values["steps"] = 9000
	_, err = FeaturesFromMap(values)
	require.ErrorIs(t, err, e.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "unknown: [steps]")
}

func TestFitnessGoal(t *testing.T) {
	assert.Equal(t, "Muscle Gain", FitnessGoal(1))
	assert.Equal(t, "Not specified", FitnessGoal(9))
}
