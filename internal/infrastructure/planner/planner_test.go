package planner

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string][]byte

func (m mapSource) Fetch(_ context.Context, key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func testCatalog() *Catalog {
	return NewCatalog([]domain.Workout{
		{Title: "Push-Up", Type: "Strength", Equipment: "Body Only", Level: "Intermediate", Rating: 8.9},
		{Title: "Squat", Type: "Strength", Equipment: "Body Only", Level: "Intermediate", Rating: 8.4},
		{Title: "Glute Bridge", Type: "Strength", Equipment: "Body Only", Level: "Intermediate", Rating: 7.6},
		{Title: "Inverted Row", Type: "Strength", Equipment: "Body Only", Level: "Intermediate", Rating: 8.1},
		{Title: "Jumping Jacks", Type: "Cardio", Equipment: "Body Only", Level: "Intermediate", Rating: 7.9},
		{Title: "Burpee", Type: "Plyometrics", Equipment: "Body Only", Level: "Intermediate", Rating: 8.0},
		{Title: "Cat Stretch", Type: "Stretching", Equipment: "Body Only", Level: "Intermediate", Rating: 7.1},
		{Title: "Back Squat", Type: "Strength", Equipment: "Barbell", Level: "Intermediate", Rating: 9.4},
		{Title: "Knee Push-Up", Type: "Strength", Equipment: "Body Only", Level: "Beginner", Rating: 7.8},
	})
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		DaysPerWeek:     5,
		FitnessLevel:    2,
		Intensity:       3,
		Equipment:       "none",
		Calories:        2000,
		MacroPreference: "balanced",
		DietType:        "omnivore",
		MealsPerDay:     3,
	}
}

func TestRestDayCount(t *testing.T) {
	tests := []struct {
		days, level, want int
	}{
		{5, 2, 9},
		{7, 2, 0},
		{7, 3, 2},
		{3, 1, 20},
		{1, 1, 25},
		{4, 3, 11},
		{9, 2, 0},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.days)+"_days_level_"+strconv.Itoa(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, RestDayCount(tt.days, tt.level))
		})
	}
}

func TestWorkoutGenerator_Generate(t *testing.T) {
	gen := NewWorkoutGenerator(testCatalog(), rand.New(rand.NewSource(42)))
	plan := gen.Generate(testProfile())

	require.Len(t, plan, domain.PlanDays)

	rest := 0
	for day := 1; day <= domain.PlanDays; day++ {
		d, ok := plan[strconv.Itoa(day)]
		require.True(t, ok, "day %d missing", day)

		if d.Type == domain.WorkoutRest {
			rest++
			assert.Empty(t, d.Exercises)
			assert.Equal(t, "low", d.Intensity)
			assert.Equal(t, "Focus on recovery", d.Notes)
			continue
		}

		assert.Equal(t, "Focus on form", d.Notes)
		assert.Equal(t, "high", d.Intensity)
		require.NotEmpty(t, d.Exercises)
		assert.LessOrEqual(t, len(d.Exercises), exercisesPerDay)

		for i, ex := range d.Exercises {
			assert.Equal(t, defaultSets, ex.Sets)
			assert.Equal(t, "Body Only", ex.Equipment)
			if d.Type == domain.WorkoutStrength {
				assert.Equal(t, strengthReps, ex.Reps)
			} else {
				assert.Equal(t, enduranceReps, ex.Reps)
			}
			if i > 0 {
				assert.GreaterOrEqual(t, d.Exercises[i-1].Rating, ex.Rating)
			}
		}

		if d.Type == domain.WorkoutStrength {
			assert.Equal(t, []string{"Push-Up", "Squat", "Inverted Row"}, names(d.Exercises))
		}
	}

	assert.Equal(t, RestDayCount(5, 2), rest)
	assert.Equal(t, domain.PlanOverview{TotalDays: 30, WorkoutDays: 30 - rest, RestDays: rest}, domain.NewPlanOverview(plan))
}

func TestWorkoutGenerator_SameSeedSamePlan(t *testing.T) {
	a := NewWorkoutGenerator(testCatalog(), rand.New(rand.NewSource(7))).Generate(testProfile())
	b := NewWorkoutGenerator(testCatalog(), rand.New(rand.NewSource(7))).Generate(testProfile())

	assert.Equal(t, a, b)
}

func TestWorkoutGenerator_Fallback(t *testing.T) {
	gen := NewWorkoutGenerator(NewCatalog(nil), rand.New(rand.NewSource(1)))

	profile := testProfile()
	profile.Equipment = "trampoline"
	profile.FitnessLevel = 9
	plan := gen.Generate(profile)

	for _, d := range plan {
		if d.Type == domain.WorkoutRest {
			continue
		}
		require.Len(t, d.Exercises, 1)
		assert.Equal(t, "Basic "+d.Type, d.Exercises[0].Name)
		assert.Equal(t, "Body Only", d.Exercises[0].Equipment)
		assert.Equal(t, strengthReps, d.Exercises[0].Reps)
	}
}

func TestCatalog_GroupFor(t *testing.T) {
	groups := testCatalog().groupFor(mapEquipment("Barbell"), mapLevel(2))

	require.Len(t, groups[domain.WorkoutStrength], 1)
	assert.Equal(t, "Back Squat", groups[domain.WorkoutStrength][0].Title)
	assert.Empty(t, groups[domain.WorkoutCardio])

	groups = testCatalog().groupFor(mapEquipment("none"), mapLevel(2))
	assert.Equal(t, []string{"Burpee", "Cat Stretch"}, workoutTitles(groups[domain.WorkoutFlexibility]))
}

func TestLoadCatalog(t *testing.T) {
	src := mapSource{
		"ok.json":  []byte(`[{"Title":"Plank","Type":"Strength","Equipment":"Body Only","Level":"Beginner","Rating":7.5}]`),
		"bad.json": []byte(`{"Title":"Plank"}`),
	}

	catalog, err := LoadCatalog(context.Background(), src, "ok.json")
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())

	_, err = LoadCatalog(context.Background(), src, "bad.json")
	assert.ErrorIs(t, err, e.ErrInvalidModelData)

	_, err = LoadCatalog(context.Background(), src, "missing.json")
	assert.Error(t, err)
}

func TestNutritionGenerator_Generate(t *testing.T) {
	plan := NewNutritionGenerator().Generate(testProfile())

	assert.InDelta(t, 2000, plan.DailyTargets.Calories, 1e-9)
	assert.InDelta(t, 150, plan.DailyTargets.Protein, 1e-9)
	assert.InDelta(t, 200, plan.DailyTargets.Carbs, 1e-9)
	assert.InDelta(t, 66.6667, plan.DailyTargets.Fat, 1e-4)
	assert.InDelta(t, 28, plan.DailyTargets.Fiber, 1e-9)
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, plan.MealOrder)
	assert.InDelta(t, 666.6667, plan.Meals["Lunch"].Calories, 1e-4)
	assert.InDelta(t, 50, plan.Meals["Dinner"].Protein, 1e-9)
	assert.Equal(t, domain.MacroRatios["balanced"], plan.MacroSplit)
	assert.Equal(t, "omnivore", plan.DietType)
}

func TestNutritionGenerator_HighCarbFiber(t *testing.T) {
	profile := testProfile()
	profile.DietType = "high_carb"
	profile.MacroPreference = "high_carb"

	plan := NewNutritionGenerator().Generate(profile)

	assert.InDelta(t, 32, plan.DailyTargets.Fiber, 1e-9)
	assert.InDelta(t, 250, plan.DailyTargets.Carbs, 1e-9)
}

func TestMealNames(t *testing.T) {
	assert.Equal(t, []string{"Breakfast"}, mealNames(1))
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, mealNames(3))
	assert.Equal(t, []string{"Breakfast", "Snack 1", "Lunch", "Snack 2"}, mealNames(4))
	assert.Equal(t, []string{"Breakfast", "Snack 1", "Lunch", "Snack 2", "Dinner"}, mealNames(5))
}

func names(exercises []domain.Exercise) []string {
	out := make([]string, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.Name
	}
	return out
}

func workoutTitles(workouts []domain.Workout) []string {
	out := make([]string, len(workouts))
	for i, w := range workouts {
		out[i] = w.Title
	}
	return out
}
