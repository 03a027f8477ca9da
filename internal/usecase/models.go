package usecase

import (
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
)

// PLAN USECASE

// Questionnaire — анкета пользователя в сыром виде. Числа передаются строками,
// пустая строка означает отсутствующее поле.
type Questionnaire struct {
	WeightInKg      string
	HeightInCm      string
	Age             string
	DaysPerWeek     string
	SleepHours      string
	Intensity       string
	ExerciseType    string
	CalorieTarget   string
	MacroPreference string
	DietType        string
	Equipment       string
	FitnessLevel    string
	MealsPerDay     string
}

// GeneratePlanReq — запрос на генерацию плана.
type GeneratePlanReq struct {
	User          *domain.User
	Questionnaire Questionnaire
}

// ReviewPlanReq — решение тренера по плану.
type ReviewPlanReq struct {
	User    *domain.User
	PlanID  string
	Action  string
	Comment string
}

// SimilarProfilesReq — поиск пользователей с похожими профилями.
type SimilarProfilesReq struct {
	User   *domain.User
	PlanID string
	Limit  int
}

// PlanSummary — план с подписью цели для списка тренера.
type PlanSummary struct {
	Plan        domain.Plan
	FitnessGoal string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	PlanCreated   OutboxEventType = "plan_created"
	PlanRequested OutboxEventType = "plan_requested"
	PlanReviewed  OutboxEventType = "plan_reviewed"
	PlanDeleted   OutboxEventType = "plan_deleted"
)

// OutboxEvent — событие в таблице outbox_events, публикуется воркером в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	PlanID      string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// PlanEvent — содержимое события жизненного цикла плана.
type PlanEvent struct {
	EventID    string
	EventType  OutboxEventType
	PlanID     string
	UserID     string
	Status     domain.PlanStatus
	Cluster    int
	OccurredAt time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewGeneratePlanReq(user *domain.User, q Questionnaire) *GeneratePlanReq {
	return &GeneratePlanReq{User: user, Questionnaire: q}
}

func NewReviewPlanReq(user *domain.User, planID, action, comment string) *ReviewPlanReq {
	return &ReviewPlanReq{
		User:    user,
		PlanID:  planID,
		Action:  action,
		Comment: comment,
	}
}

func NewSimilarProfilesReq(user *domain.User, planID string, limit int) *SimilarProfilesReq {
	return &SimilarProfilesReq{User: user, PlanID: planID, Limit: limit}
}

func NewPlanEvent(eventID string, eventType OutboxEventType, plan *domain.Plan, occurredAt time.Time) *PlanEvent {
	return &PlanEvent{
		EventID:    eventID,
		EventType:  eventType,
		PlanID:     plan.ID,
		UserID:     plan.UserID,
		Status:     plan.Status,
		Cluster:    plan.Cluster,
		OccurredAt: occurredAt,
	}
}

func NewOutboxEvent(event *PlanEvent, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   event.EventID,
		EventType: event.EventType,
		PlanID:    event.PlanID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: event.OccurredAt,
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{Key: key, Payload: payload}
}
