package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
)

// ArtifactSource отдает содержимое артефакта (документы модели, каталог) по ключу.
type ArtifactSource interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

type ClusterModel interface {
	PredictCluster(features domain.UserFeatures) (*domain.ClusterPrediction, error)
	Standardize(features domain.UserFeatures) ([]float64, error)
	Clusters() []domain.Cluster
	Cluster(id int) (*domain.Cluster, error)
	FeatureNames() []string
}

type WorkoutPlanner interface {
	Generate(profile *domain.Profile) domain.WorkoutPlan
}

type NutritionPlanner interface {
	Generate(profile *domain.Profile) domain.NutritionPlan
}

type EventEncoder interface {
	EncodePlanEvent(event *PlanEvent) ([]byte, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type Metrics interface {
	ObservePrediction(cluster int, err error, elapsed time.Duration)
	IncPlanEvent(eventType OutboxEventType)
}

// TxManager выполняет fn в одной транзакции, транзакция передается через ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
