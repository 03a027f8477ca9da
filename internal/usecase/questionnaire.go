package usecase

import (
	"fmt"
	"strings"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ProcessQuestionnaire проверяет анкету и строит обработанный профиль.
func ProcessQuestionnaire(q Questionnaire) (*domain.Profile, error) {
	const op = "usecase.ProcessQuestionnaire"

	if missing := missingFields(q); len(missing) > 0 {
		return nil, e.Wrap(op, fmt.Errorf("%w: %s", e.ErrMissingFields, strings.Join(missing, ", ")))
	}

	macro, ok := domain.MacroRatios[strings.TrimSpace(q.MacroPreference)]
	if !ok {
		return nil, e.Wrap(op, fmt.Errorf("%w: %q", e.ErrInvalidMacroPreference, q.MacroPreference))
	}

	p := &parser{}
	weight := p.measurement("weight_in_kg", q.WeightInKg, 2)
	heightCm := p.measurement("height_in_cm", q.HeightInCm, 2)
	calories := p.measurement("calorie_target", q.CalorieTarget, 2)
	sleep := p.number("sleep_hours", q.SleepHours)
	age := p.integer("age", q.Age, 1, 130)
	days := p.integer("days_per_week", q.DaysPerWeek, 1, 7)
	intensity := p.integer("intensity", q.Intensity, 1, 3)
	exerciseType := p.integer("exercise_type", q.ExerciseType, 0, 3)
	level := p.integer("fitness_level", q.FitnessLevel, 1, 3)
	meals := p.integer("meals_per_day", q.MealsPerDay, 1, 5)
	if p.err != nil {
		return nil, e.Wrap(op, p.err)
	}

	if sleep.IsNegative() || sleep.GreaterThan(decimal.NewFromInt(24)) {
		return nil, e.Wrap(op, fmt.Errorf("%w: sleep_hours must be within 0..24", e.ErrInvalidMeasurement))
	}

	heightM := heightCm.Div(hundred)
	bmi := weight.Div(heightM.Mul(heightM))
	fiber := calories.Mul(decimal.NewFromFloat(domain.FiberPerCalorie(q.DietType)))

	return &domain.Profile{
		Weight:          weight.InexactFloat64(),
		Height:          heightM.InexactFloat64(),
		Age:             age,
		BMI:             bmi.InexactFloat64(),
		DaysPerWeek:     days,
		SleepHours:      sleep.InexactFloat64(),
		Intensity:       intensity,
		ExerciseType:    exerciseType,
		Calories:        calories.InexactFloat64(),
		Protein:         macro.Protein,
		Carbohydrate:    macro.Carbs,
		TotalFat:        macro.TotalFat,
		Fiber:           fiber.InexactFloat64(),
		Rating:          0,
		Equipment:       strings.TrimSpace(q.Equipment),
		FitnessLevel:    level,
		DietType:        strings.TrimSpace(q.DietType),
		MacroPreference: strings.TrimSpace(q.MacroPreference),
		MealsPerDay:     meals,
	}, nil
}

func missingFields(q Questionnaire) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"weight_in_kg", q.WeightInKg},
		{"height_in_cm", q.HeightInCm},
		{"age", q.Age},
		{"days_per_week", q.DaysPerWeek},
		{"sleep_hours", q.SleepHours},
		{"intensity", q.Intensity},
		{"exercise_type", q.ExerciseType},
		{"calorie_target", q.CalorieTarget},
		{"macro_preference", q.MacroPreference},
		{"diet_type", q.DietType},
		{"equipment", q.Equipment},
		{"fitness_level", q.FitnessLevel},
		{"meals_per_day", q.MealsPerDay},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// parser запоминает первую ошибку разбора, чтобы не проверять err после каждого поля.
type parser struct {
	err error
}

func (p *parser) number(name, raw string) decimal.Decimal {
	if p.err != nil {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		p.err = fmt.Errorf("%w: %s is not a number", e.ErrInvalidMeasurement, name)
		return decimal.Zero
	}

	return d
}

// measurement — положительное число с не более чем places знаками после запятой.
func (p *parser) measurement(name, raw string, places int32) decimal.Decimal {
	d := p.number(name, raw)
	if p.err != nil {
		return d
	}

	if !d.IsPositive() {
		p.err = fmt.Errorf("%w: %s must be positive", e.ErrInvalidMeasurement, name)
		return d
	}
	if !d.Equal(d.Round(places)) {
		p.err = fmt.Errorf("%w: %s allows at most %d decimal places", e.ErrInvalidMeasurement, name, places)
	}

	return d
}

func (p *parser) integer(name, raw string, lo, hi int64) int {
	d := p.number(name, raw)
	if p.err != nil {
		return 0
	}

	if !d.IsInteger() {
		p.err = fmt.Errorf("%w: %s must be an integer", e.ErrInvalidMeasurement, name)
		return 0
	}

	v := d.IntPart()
	if v < lo || v > hi {
		p.err = fmt.Errorf("%w: %s must be within %d..%d", e.ErrInvalidMeasurement, name, lo, hi)
		return 0
	}

	return int(v)
}
