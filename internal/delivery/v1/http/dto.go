package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
)

// looseString принимает в JSON и строку, и число: анкета приходит из формы,
// где числовые поля бывают обоих видов. null и отсутствие поля дают "".
type looseString string

func (l *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = looseString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = looseString(n.String())
	return nil
}

type QuestionnaireRequest struct {
	WeightInKg      looseString `json:"weight_in_kg" swaggertype:"string" example:"70"`
	HeightInCm      looseString `json:"height_in_cm" swaggertype:"string" example:"175"`
	Age             looseString `json:"age" swaggertype:"string" example:"28"`
	DaysPerWeek     looseString `json:"days_per_week" swaggertype:"string" example:"4"`
	SleepHours      looseString `json:"sleep_hours" swaggertype:"string" example:"7.5"`
	Intensity       looseString `json:"intensity" swaggertype:"string" example:"2"`
	ExerciseType    looseString `json:"exercise_type" swaggertype:"string" example:"1"`
	CalorieTarget   looseString `json:"calorie_target" swaggertype:"string" example:"2400"`
	MacroPreference looseString `json:"macro_preference" swaggertype:"string" example:"balanced"`
	DietType        looseString `json:"diet_type" swaggertype:"string" example:"omnivore"`
	Equipment       looseString `json:"equipment" swaggertype:"string" example:"dumbbell"`
	FitnessLevel    looseString `json:"fitness_level" swaggertype:"string" example:"2"`
	MealsPerDay     looseString `json:"meals_per_day" swaggertype:"string" example:"3"`
}

func (q QuestionnaireRequest) toUseCase() usecase.Questionnaire {
	return usecase.Questionnaire{
		WeightInKg:      string(q.WeightInKg),
		HeightInCm:      string(q.HeightInCm),
		Age:             string(q.Age),
		DaysPerWeek:     string(q.DaysPerWeek),
		SleepHours:      string(q.SleepHours),
		Intensity:       string(q.Intensity),
		ExerciseType:    string(q.ExerciseType),
		CalorieTarget:   string(q.CalorieTarget),
		MacroPreference: string(q.MacroPreference),
		DietType:        string(q.DietType),
		Equipment:       string(q.Equipment),
		FitnessLevel:    string(q.FitnessLevel),
		MealsPerDay:     string(q.MealsPerDay),
	}
}

type ReviewRequest struct {
	Action  string `json:"action" example:"approve"`
	Comment string `json:"comment" example:"Looks good, add one more rest day if tired"`
}

type PlanResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	Status        string               `json:"status"`
	WorkoutPlan   domain.WorkoutPlan   `json:"workout_plan"`
	NutritionPlan domain.NutritionPlan `json:"nutrition_plan"`
	Overview      domain.PlanOverview  `json:"overview"`
	UserData      domain.Profile       `json:"user_data"`
	Cluster       int                  `json:"cluster"`
	ClusterInfo   domain.ClusterInfo   `json:"cluster_info"`
	CoachComment  string               `json:"coach_comment,omitempty"`
	CoachID       *string              `json:"coach_id,omitempty"`
	SentBy        *string              `json:"sent_by,omitempty"`
	FitnessGoal   string               `json:"fitness_goal,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     *time.Time           `json:"updated_at,omitempty"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

type SimilarProfilesResponse struct {
	Profiles []domain.SimilarProfile `json:"profiles"`
}

type ClusterListResponse struct {
	Clusters []domain.Cluster `json:"clusters"`
}

type FeatureNamesResponse struct {
	Features []string `json:"features"`
}

func newPlanResponse(plan *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:            plan.ID,
		UserID:        plan.UserID,
		Status:        string(plan.Status),
		WorkoutPlan:   plan.WorkoutPlan,
		NutritionPlan: plan.NutritionPlan,
		Overview:      plan.Overview,
		UserData:      plan.UserData,
		Cluster:       plan.Cluster,
		ClusterInfo:   plan.ClusterInfo,
		CoachComment:  plan.CoachComment,
		CoachID:       plan.CoachID,
		SentBy:        plan.SentBy,
		CreatedAt:     plan.CreatedAt,
		UpdatedAt:     plan.UpdatedAt,
	}
}

func newPlanListResponse(summaries []usecase.PlanSummary) PlanListResponse {
	plans := make([]PlanResponse, 0, len(summaries))
	for i := range summaries {
		resp := newPlanResponse(&summaries[i].Plan)
		resp.FitnessGoal = summaries[i].FitnessGoal
		plans = append(plans, resp)
	}
	return PlanListResponse{Plans: plans}
}
