package ml_model

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

// ModelData — документ model-data.json с параметрами обученной модели.
type ModelData struct {
	ClusterCenters [][]float64  `json:"cluster_centers"`
	Scaler         ScalerParams `json:"scaler"`
	NClusters      int          `json:"n_clusters"`
}

type ScalerParams struct {
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
	FeatureNames []string  `json:"feature_names"`
}

// ClusterInfoDoc — документ cluster-info.json: индекс кластера строкой -> метаданные.
type ClusterInfoDoc map[string]domain.ClusterInfo

func decodeModelData(data []byte) (*ModelData, error) {
	var doc ModelData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: model data: %v", e.ErrInvalidModelData, err)
	}

	if !slices.Equal(doc.Scaler.FeatureNames, domain.FeatureNames) {
		return nil, fmt.Errorf("%w: feature names %v do not match expected order %v",
			e.ErrInvalidModelData, doc.Scaler.FeatureNames, domain.FeatureNames)
	}

	return &doc, nil
}

// decodeClusterInfo разбирает метаданные и проверяет, что они есть ровно для кластеров 0..nClusters-1.
func decodeClusterInfo(data []byte, nClusters int) (map[int]domain.ClusterInfo, error) {
	var doc ClusterInfoDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: cluster info: %v", e.ErrInvalidModelData, err)
	}

	info := make(map[int]domain.ClusterInfo, len(doc))
	for key, ci := range doc {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: cluster key %q is not an integer", e.ErrInvalidModelData, key)
		}
		if id < 0 || id >= nClusters {
			return nil, fmt.Errorf("%w: metadata for unknown cluster %d (n_clusters=%d)",
				e.ErrConfigurationInconsistency, id, nClusters)
		}
		info[id] = ci
	}

	for id := 0; id < nClusters; id++ {
		if _, ok := info[id]; !ok {
			return nil, fmt.Errorf("%w: no metadata for cluster %d", e.ErrConfigurationInconsistency, id)
		}
	}

	return info, nil
}
