package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
)

// ClusterUseCase отдает описание кластеров и выполняет разовые предсказания.
type ClusterUseCase struct {
	model   ClusterModel
	metrics Metrics
	logger  logger.Logger
}

func NewClusterUC(model ClusterModel, metrics Metrics, logger logger.Logger) *ClusterUseCase {
	return &ClusterUseCase{
		model:   model,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *ClusterUseCase) ListClusters(_ context.Context) []domain.Cluster {
	return c.model.Clusters()
}

func (c *ClusterUseCase) GetCluster(_ context.Context, id int) (*domain.Cluster, error) {
	const op = "ClusterUseCase.GetCluster"

	cluster, err := c.model.Cluster(id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cluster, nil
}

func (c *ClusterUseCase) FeatureNames(_ context.Context) []string {
	return c.model.FeatureNames()
}

// PredictCluster относит готовый набор признаков к кластеру.
func (c *ClusterUseCase) PredictCluster(_ context.Context, features domain.UserFeatures) (*domain.ClusterPrediction, error) {
	const op = "ClusterUseCase.PredictCluster"

	start := time.Now()
	prediction, err := c.model.PredictCluster(features)

	cluster := -1
	if prediction != nil {
		cluster = prediction.Cluster
	}
	c.metrics.ObservePrediction(cluster, err, time.Since(start))

	if err != nil {
		c.logger.Errorf(err, "%s: prediction failed", op)
		return nil, e.Wrap(op, err)
	}

	return prediction, nil
}
