package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Plan, error)
	ListByStatus(ctx context.Context, status domain.PlanStatus) ([]domain.Plan, error)
	UpdateStatus(ctx context.Context, plan *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	ResetStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// CacheRepository — кэш планов. Промах кэша: (nil, nil).
type CacheRepository interface {
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	SetPlan(ctx context.Context, plan *domain.Plan) error
	DeletePlan(ctx context.Context, id string) error
}

type ProfileRepository interface {
	Upsert(ctx context.Context, point *domain.ProfilePoint) error
	SearchSimilar(ctx context.Context, vector []float32, limit int, excludePlanID string) ([]domain.SimilarProfile, error)
	Delete(ctx context.Context, planID string) error
}

type ArtifactRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
}
