package ml_model

import (
	"context"
	"fmt"
	"sort"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/kmeans"
)

// ClusterModel хранит скейлер, центроиды и метаданные кластеров.
// Создается один раз при старте и дальше только читается.
type ClusterModel struct {
	scaler     *kmeans.StandardScaler
	classifier *kmeans.Classifier
	info       map[int]domain.ClusterInfo
}

// NewClusterModel собирает модель из готовых компонентов без проверки полноты метаданных.
func NewClusterModel(scaler *kmeans.StandardScaler, classifier *kmeans.Classifier, info map[int]domain.ClusterInfo) *ClusterModel {
	return &ClusterModel{
		scaler:     scaler,
		classifier: classifier,
		info:       info,
	}
}

// Parse разбирает и валидирует документы model-data и cluster-info.
func Parse(modelData, clusterInfo []byte) (*ClusterModel, error) {
	const op = "ml_model.Parse"

	doc, err := decodeModelData(modelData)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	scaler, err := kmeans.NewStandardScaler(doc.Scaler.Mean, doc.Scaler.Scale, doc.Scaler.FeatureNames)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	classifier, err := kmeans.NewClassifier(doc.ClusterCenters, doc.NClusters)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if classifier.Dim() != scaler.Dim() {
		return nil, e.Wrap(op, fmt.Errorf("centroids: %w", &kmeans.DimensionMismatchError{
			Expected: scaler.Dim(),
			Actual:   classifier.Dim(),
		}))
	}

	info, err := decodeClusterInfo(clusterInfo, classifier.NClusters())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewClusterModel(scaler, classifier, info), nil
}

// Load читает оба документа из источника артефактов и собирает модель.
func Load(ctx context.Context, src usecase.ArtifactSource, modelDataKey, clusterInfoKey string) (*ClusterModel, error) {
	const op = "ml_model.Load"

	modelData, err := src.Fetch(ctx, modelDataKey)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	clusterInfo, err := src.Fetch(ctx, clusterInfoKey)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	model, err := Parse(modelData, clusterInfo)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return model, nil
}

// PredictCluster стандартизирует признаки, находит ближайший центроид и подставляет метаданные.
func (m *ClusterModel) PredictCluster(features domain.UserFeatures) (*domain.ClusterPrediction, error) {
	const op = "ClusterModel.PredictCluster"

	scaled, err := m.scaler.Transform(features.Vector())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cluster, err := m.classifier.Predict(scaled)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info, ok := m.info[cluster]
	if !ok {
		return nil, e.Wrap(op, fmt.Errorf("%w: no metadata for cluster %d", e.ErrConfigurationInconsistency, cluster))
	}

	return &domain.ClusterPrediction{Cluster: cluster, ClusterInfo: info}, nil
}

// Standardize возвращает стандартизированный вектор признаков.
func (m *ClusterModel) Standardize(features domain.UserFeatures) ([]float64, error) {
	return m.scaler.Transform(features.Vector())
}

// Clusters возвращает все кластеры по возрастанию индекса.
func (m *ClusterModel) Clusters() []domain.Cluster {
	clusters := make([]domain.Cluster, 0, len(m.info))
	for id, info := range m.info {
		clusters = append(clusters, domain.Cluster{ID: id, Info: info})
	}

	sort.Slice(clusters, func(i, j int) bool { return clusters[i].ID < clusters[j].ID })

	return clusters
}

func (m *ClusterModel) Cluster(id int) (*domain.Cluster, error) {
	info, ok := m.info[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", e.ErrClusterNotFound, id)
	}

	return &domain.Cluster{ID: id, Info: info}, nil
}

func (m *ClusterModel) FeatureNames() []string {
	return m.scaler.FeatureNames()
}

func (m *ClusterModel) NClusters() int {
	return m.classifier.NClusters()
}
