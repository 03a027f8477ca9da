package converter

import (
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
)

// PlanConverter преобразует Plan между domain и моделью PostgreSQL.
// Вложенные структуры плана хранятся в jsonb.
type PlanConverter struct{}

func (PlanConverter) ToModel(entity *domain.Plan) (*PlanModel, error) {
	model := &PlanModel{
		ID:           entity.ID,
		UserID:       entity.UserID,
		Status:       string(entity.Status),
		Cluster:      entity.Cluster,
		CoachComment: entity.CoachComment,
		CoachID:      entity.CoachID,
		SentBy:       entity.SentBy,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}

	fields := []struct {
		name string
		src  any
		dst  *[]byte
	}{
		{"workout_plan", entity.WorkoutPlan, &model.WorkoutPlan},
		{"nutrition_plan", entity.NutritionPlan, &model.NutritionPlan},
		{"overview", entity.Overview, &model.Overview},
		{"user_data", entity.UserData, &model.UserData},
		{"cluster_info", entity.ClusterInfo, &model.ClusterInfo},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", f.name, err)
		}
		*f.dst = data
	}

	return model, nil
}

func (PlanConverter) ToEntity(model *PlanModel) (*domain.Plan, error) {
	entity := &domain.Plan{
		ID:           model.ID,
		UserID:       model.UserID,
		Status:       domain.PlanStatus(model.Status),
		Cluster:      model.Cluster,
		CoachComment: model.CoachComment,
		CoachID:      model.CoachID,
		SentBy:       model.SentBy,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}

	fields := []struct {
		name string
		src  []byte
		dst  any
	}{
		{"workout_plan", model.WorkoutPlan, &entity.WorkoutPlan},
		{"nutrition_plan", model.NutritionPlan, &entity.NutritionPlan},
		{"overview", model.Overview, &entity.Overview},
		{"user_data", model.UserData, &entity.UserData},
		{"cluster_info", model.ClusterInfo, &entity.ClusterInfo},
	}
	for _, f := range fields {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", f.name, err)
		}
	}

	return entity, nil
}

// OutboxEventConverter преобразует OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		PlanID:      entity.PlanID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		PlanID:      model.PlanID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		result = append(result, c.ToEntity(m))
	}
	return result
}
