package planner

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
)

const (
	exercisesPerDay = 3
	defaultSets     = 3
	strengthReps    = 12
	enduranceReps   = 30
	minRestDays     = 2
	maxRestDays     = domain.PlanDays - 5
)

// typeWeights — вероятности выбора типа тренировки, накопленные по порядку.
var typeWeights = []struct {
	kind string
	p    float64
}{
	{domain.WorkoutCardio, 0.4},
	{domain.WorkoutStrength, 0.4},
	{domain.WorkoutFlexibility, 0.2},
}

// WorkoutGenerator строит 30-дневный план тренировок по каталогу упражнений.
// Источник случайности защищен мьютексом: генератор используется конкурентно.
type WorkoutGenerator struct {
	catalog *Catalog
	mu      sync.Mutex
	rng     *rand.Rand
}

func NewWorkoutGenerator(catalog *Catalog, rng *rand.Rand) *WorkoutGenerator {
	return &WorkoutGenerator{catalog: catalog, rng: rng}
}

// Generate строит план тренировок для профиля.
func (g *WorkoutGenerator) Generate(profile *domain.Profile) domain.WorkoutPlan {
	equipment := mapEquipment(profile.Equipment)
	groups := g.catalog.groupFor(equipment, mapLevel(profile.FitnessLevel))
	intensity := intensityLabel(profile.Intensity)

	g.mu.Lock()
	defer g.mu.Unlock()

	restDays := g.pickRestDays(RestDayCount(profile.DaysPerWeek, profile.FitnessLevel))

	plan := make(domain.WorkoutPlan, domain.PlanDays)
	for day := 1; day <= domain.PlanDays; day++ {
		key := strconv.Itoa(day)
		if restDays[day] {
			plan[key] = domain.DayWorkout{
				Type:      domain.WorkoutRest,
				Exercises: []domain.Exercise{},
				Intensity: "low",
				Notes:     "Focus on recovery",
			}
			continue
		}

		kind := g.pickType()
		plan[key] = domain.DayWorkout{
			Type:      kind,
			Exercises: exercisesFor(kind, groups[kind], equipment, intensity),
			Intensity: intensity,
			Notes:     "Focus on form",
		}
	}

	return plan
}

// RestDayCount — число дней отдыха за 30 дней с поправкой на уровень подготовки.
func RestDayCount(daysPerWeek, fitnessLevel int) int {
	workoutDays := float64(domain.PlanDays) / 7 * float64(min(daysPerWeek, 7))
	rest := float64(domain.PlanDays) - workoutDays

	switch fitnessLevel {
	case 1:
		rest = math.Min(rest+2, maxRestDays)
	case 3:
		rest = math.Max(rest-2, minRestDays)
	}

	return int(math.Ceil(rest - 1e-9))
}

func (g *WorkoutGenerator) pickRestDays(count int) map[int]bool {
	days := make(map[int]bool, count)
	for _, idx := range g.rng.Perm(domain.PlanDays)[:count] {
		days[idx+1] = true
	}
	return days
}

func (g *WorkoutGenerator) pickType() string {
	r := g.rng.Float64()
	cumulative := 0.0
	for _, w := range typeWeights {
		cumulative += w.p
		if r < cumulative {
			return w.kind
		}
	}
	return domain.WorkoutCardio
}

func exercisesFor(kind string, available []domain.Workout, equipment, intensity string) []domain.Exercise {
	if len(available) == 0 {
		return []domain.Exercise{{
			Name:      "Basic " + kind,
			Desc:      "Bodyweight exercise",
			Equipment: defaultEquipment,
			Sets:      defaultSets,
			Reps:      strengthReps,
			Intensity: intensity,
		}}
	}

	reps := enduranceReps
	if kind == domain.WorkoutStrength {
		reps = strengthReps
	}

	selected := available[:min(exercisesPerDay, len(available))]
	exercises := make([]domain.Exercise, 0, len(selected))
	for _, w := range selected {
		eq := w.Equipment
		if eq == "" {
			eq = equipment
		}
		exercises = append(exercises, domain.Exercise{
			Name:      w.Title,
			Desc:      w.Desc,
			Equipment: eq,
			Sets:      defaultSets,
			Reps:      reps,
			Rating:    w.Rating,
			Intensity: intensity,
		})
	}

	return exercises
}

func intensityLabel(intensity int) string {
	switch intensity {
	case 1:
		return "low"
	case 3:
		return "high"
	default:
		return "moderate"
	}
}
