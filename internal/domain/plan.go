package domain

import "time"

// PlanDays — длительность плана в днях.
const PlanDays = 30

// PlanStatus — статус плана в процессе согласования с тренером.
type PlanStatus string

const (
	PlanStatusNew       PlanStatus = "new"
	PlanStatusRequested PlanStatus = "requested"
	PlanStatusApproved  PlanStatus = "approved"
	PlanStatusRejected  PlanStatus = "rejected"
)

// Exercise — упражнение в конкретный день плана.
type Exercise struct {
	Name      string  `json:"name"`
	Desc      string  `json:"desc"`
	Equipment string  `json:"equipment"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Rating    float64 `json:"rating"`
	Intensity string  `json:"intensity"`
}

// DayWorkout — тренировка (или отдых) на один день.
type DayWorkout struct {
	Type      string     `json:"type"`
	Exercises []Exercise `json:"exercises"`
	Intensity string     `json:"intensity"`
	Notes     string     `json:"notes"`
}

// WorkoutPlan — план тренировок, ключ — номер дня ("1".."30").
type WorkoutPlan map[string]DayWorkout

// NutrientTargets — калории и граммы нутриентов.
type NutrientTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// NutritionPlan — дневные цели и их распределение по приемам пищи.
type NutritionPlan struct {
	DailyTargets NutrientTargets            `json:"daily_targets"`
	Meals        map[string]NutrientTargets `json:"meals"`
	MealOrder    []string                   `json:"meal_order"`
	DietType     string                     `json:"diet_type"`
	MacroSplit   MacroSplit                 `json:"macro_split"`
}

// PlanOverview — сводка по плану.
type PlanOverview struct {
	TotalDays   int `json:"total_days"`
	WorkoutDays int `json:"workout_days"`
	RestDays    int `json:"rest_days"`
}

// NewPlanOverview считает дни тренировок и отдыха.
func NewPlanOverview(w WorkoutPlan) PlanOverview {
	overview := PlanOverview{TotalDays: PlanDays}
	for _, day := range w {
		if day.Type == WorkoutRest {
			overview.RestDays++
		} else {
			overview.WorkoutDays++
		}
	}
	return overview
}

// Plan — сгенерированный план пользователя.
type Plan struct {
	ID            string
	UserID        string
	Status        PlanStatus
	WorkoutPlan   WorkoutPlan
	NutritionPlan NutritionPlan
	Overview      PlanOverview
	UserData      Profile
	Cluster       int
	ClusterInfo   ClusterInfo
	CoachComment  string
	CoachID       *string
	SentBy        *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func NewPlan(id, userID string, profile Profile, workout WorkoutPlan, nutrition NutritionPlan, prediction ClusterPrediction) *Plan {
	return &Plan{
		ID:            id,
		UserID:        userID,
		Status:        PlanStatusNew,
		WorkoutPlan:   workout,
		NutritionPlan: nutrition,
		Overview:      NewPlanOverview(workout),
		UserData:      profile,
		Cluster:       prediction.Cluster,
		ClusterInfo:   prediction.ClusterInfo,
	}
}
