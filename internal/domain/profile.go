package domain

// Profile — обработанные данные анкеты, из которых строятся признаки и планы.
type Profile struct {
	Weight          float64 `json:"weight"`
	Height          float64 `json:"height"` // в метрах
	Age             int     `json:"age"`
	BMI             float64 `json:"bmi"`
	DaysPerWeek     int     `json:"days_per_week"`
	SleepHours      float64 `json:"sleep_hours"`
	Intensity       int     `json:"intensity"`
	ExerciseType    int     `json:"exercise_type"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbohydrate    float64 `json:"carbohydrate"`
	TotalFat        float64 `json:"total_fat"`
	Fiber           float64 `json:"fiber"`
	Rating          float64 `json:"rating"`
	Equipment       string  `json:"equipment"`
	FitnessLevel    int     `json:"fitness_level"`
	DietType        string  `json:"diet_type"`
	MacroPreference string  `json:"macro_preference"`
	MealsPerDay     int     `json:"meals_per_day"`
}

// Features возвращает признаки для модели кластеризации.
func (p *Profile) Features() UserFeatures {
	return UserFeatures{
		Weight:       p.Weight,
		Height:       p.Height,
		Age:          float64(p.Age),
		BMI:          p.BMI,
		DaysPerWeek:  float64(p.DaysPerWeek),
		SleepHours:   p.SleepHours,
		Calories:     p.Calories,
		Protein:      p.Protein,
		Carbohydrate: p.Carbohydrate,
		TotalFat:     p.TotalFat,
		Fiber:        p.Fiber,
		Intensity:    float64(p.Intensity),
		ExerciseType: float64(p.ExerciseType),
		Rating:       p.Rating,
	}
}

// MacroSplit — доли белков, углеводов и жиров в калорийности.
type MacroSplit struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	TotalFat float64 `json:"total_fat"`
}

// MacroRatios — поддерживаемые предпочтения по макронутриентам.
var MacroRatios = map[string]MacroSplit{
	"balanced":     {Protein: 0.3, Carbs: 0.4, TotalFat: 0.3},
	"high_protein": {Protein: 0.4, Carbs: 0.4, TotalFat: 0.2},
	"low_carb":     {Protein: 0.5, Carbs: 0.1, TotalFat: 0.4},
	"high_carb":    {Protein: 0.3, Carbs: 0.5, TotalFat: 0.2},
}

// FiberPerCalorie возвращает норму клетчатки на калорию для типа диеты.
func FiberPerCalorie(dietType string) float64 {
	if dietType == "high_carb" {
		return 0.016
	}
	return 0.014
}

var fitnessGoals = map[int]string{
	0: "Weight Loss",
	1: "Muscle Gain",
	2: "Endurance",
	3: "General Fitness",
}

// FitnessGoal — подпись цели по типу упражнений для списка тренера.
func FitnessGoal(exerciseType int) string {
	if goal, ok := fitnessGoals[exerciseType]; ok {
		return goal
	}
	return "Not specified"
}
