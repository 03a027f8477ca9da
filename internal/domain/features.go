package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

// FeatureNames — порядок признаков, в котором обучалась модель.
// Вектор признаков всегда собирается строго в этом порядке.
var FeatureNames = []string{
	"weight",
	"height",
	"age",
	"bmi",
	"days_per_week",
	"sleep_hours",
	"calories",
	"protein",
	"carbohydrate",
	"total_fat",
	"fiber",
	"intensity",
	"exercise_type",
	"rating",
}

// FeatureCount — размерность вектора признаков.
const FeatureCount = 14

// UserFeatures — типизированный набор признаков пользователя для кластеризации.
type UserFeatures struct {
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	Age          float64 `json:"age"`
	BMI          float64 `json:"bmi"`
	DaysPerWeek  float64 `json:"days_per_week"`
	SleepHours   float64 `json:"sleep_hours"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbohydrate float64 `json:"carbohydrate"`
	TotalFat     float64 `json:"total_fat"`
	Fiber        float64 `json:"fiber"`
	Intensity    float64 `json:"intensity"`
	ExerciseType float64 `json:"exercise_type"`
	Rating       float64 `json:"rating"`
}

// Vector собирает вектор признаков в порядке FeatureNames.
func (f UserFeatures) Vector() []float64 {
	return []float64{
		f.Weight,
		f.Height,
		f.Age,
		f.BMI,
		f.DaysPerWeek,
		f.SleepHours,
		f.Calories,
		f.Protein,
		f.Carbohydrate,
		f.TotalFat,
		f.Fiber,
		f.Intensity,
		f.ExerciseType,
		f.Rating,
	}
}

// FeaturesFromMap собирает признаки из записи "имя → значение".
// Запись должна содержать ровно признаки из FeatureNames, иначе ErrDimensionMismatch.
func FeaturesFromMap(values map[string]float64) (UserFeatures, error) {
	var missing, unknown []string
	for _, name := range FeatureNames {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	known := make(map[string]struct{}, FeatureCount)
	for _, name := range FeatureNames {
		known[name] = struct{}{}
	}
	for name := range values {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	if len(missing) > 0 || len(unknown) > 0 {
		sort.Strings(unknown)
		return UserFeatures{}, fmt.Errorf("%w: expected %d features, got %d (missing: [%s], unknown: [%s])",
			e.ErrDimensionMismatch, FeatureCount, len(values),
			strings.Join(missing, ", "), strings.Join(unknown, ", "))
	}

	return UserFeatures{
		Weight:       values["weight"],
		Height:       values["height"],
		Age:          values["age"],
		BMI:          values["bmi"],
		DaysPerWeek:  values["days_per_week"],
		SleepHours:   values["sleep_hours"],
		Calories:     values["calories"],
		Protein:      values["protein"],
		Carbohydrate: values["carbohydrate"],
		TotalFat:     values["total_fat"],
		Fiber:        values["fiber"],
		Intensity:    values["intensity"],
		ExerciseType: values["exercise_type"],
		Rating:       values["rating"],
	}, nil
}

// Map возвращает признаки в виде записи "имя → значение".
func (f UserFeatures) Map() map[string]float64 {
	vector := f.Vector()
	out := make(map[string]float64, FeatureCount)
	for i, name := range FeatureNames {
		out[name] = vector[i]
	}
	return out
}
