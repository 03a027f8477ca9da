package converter

import "github.com/DRSN-tech/fitplan-backend/internal/domain"

type PlanConverter struct{}

func (PlanConverter) ToRedisModel(plan *domain.Plan) *PlanRedisModel {
	return &PlanRedisModel{
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

func (PlanConverter) ToEntity(model *PlanRedisModel) *domain.Plan {
	return &domain.Plan{
		ID:            model.ID,
		UserID:        model.UserID,
		Status:        domain.PlanStatus(model.Status),
		WorkoutPlan:   model.WorkoutPlan,
		NutritionPlan: model.NutritionPlan,
		Overview:      model.Overview,
		UserData:      model.UserData,
		Cluster:       model.Cluster,
		ClusterInfo:   model.ClusterInfo,
		CoachComment:  model.CoachComment,
		CoachID:       model.CoachID,
		SentBy:        model.SentBy,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
