package ml_model

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/kmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestModel(t *testing.T) *ClusterModel {
	t.Helper()

	model, err := Load(context.Background(), NewFileSource("testdata"), "model-data.json", "cluster-info.json")
	require.NoError(t, err)

	return model
}

func readModelDoc(t *testing.T) *ModelData {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "model-data.json"))
	require.NoError(t, err)

	var doc ModelData
	require.NoError(t, json.Unmarshal(data, &doc))

	return &doc
}

func readInfoDoc(t *testing.T) ClusterInfoDoc {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "cluster-info.json"))
	require.NoError(t, err)

	var doc ClusterInfoDoc
	require.NoError(t, json.Unmarshal(data, &doc))

	return doc
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return data
}

// featuresAt восстанавливает исходные признаки, которые стандартизируются ровно в центроид.
func featuresAt(doc *ModelData, cluster int) domain.UserFeatures {
	v := make([]float64, domain.FeatureCount)
	for i := range v {
		v[i] = doc.Scaler.Mean[i] + doc.ClusterCenters[cluster][i]*doc.Scaler.Scale[i]
	}

	return domain.UserFeatures{
		Weight: v[0], Height: v[1], Age: v[2], BMI: v[3], DaysPerWeek: v[4], SleepHours: v[5],
		Calories: v[6], Protein: v[7], Carbohydrate: v[8], TotalFat: v[9], Fiber: v[10],
		Intensity: v[11], ExerciseType: v[12], Rating: v[13],
	}
}

func TestLoad(t *testing.T) {
	model := loadTestModel(t)

	assert.Equal(t, 3, model.NClusters())
	assert.Equal(t, domain.FeatureNames, model.FeatureNames())

	clusters := model.Clusters()
	require.Len(t, clusters, 3)
	for i, c := range clusters {
		assert.Equal(t, i, c.ID)
	}
	assert.Equal(t, "Strength and muscle gain", clusters[1].Info.Focus)
}

func TestPredictCluster_RealisticProfile(t *testing.T) {
	model := loadTestModel(t)

	features := domain.UserFeatures{
		Weight:       70,
		Height:       1.75,
		Age:          28,
		BMI:          22.86,
		DaysPerWeek:  5,
		SleepHours:   7.5,
		Calories:     2600,
		Protein:      0.4,
		Carbohydrate: 0.4,
		TotalFat:     0.2,
		Fiber:        36.4,
		Intensity:    3,
		ExerciseType: 2,
		Rating:       0,
	}

	prediction, err := model.PredictCluster(features)
	require.NoError(t, err)

	assert.Equal(t, 1, prediction.Cluster)
	assert.Equal(t, "high", prediction.ClusterInfo.IntensityLevel)
	assert.Equal(t, 5, prediction.ClusterInfo.RecommendedDays)
}

func TestPredictCluster_CentroidMapsToItsCluster(t *testing.T) {
	model := loadTestModel(t)
	doc := readModelDoc(t)

	for cluster := range doc.ClusterCenters {
		prediction, err := model.PredictCluster(featuresAt(doc, cluster))
		require.NoError(t, err)
		assert.Equal(t, cluster, prediction.Cluster)
		assert.Equal(t, readInfoDoc(t)[strconv.Itoa(cluster)].Focus, prediction.ClusterInfo.Focus)
	}
}

func TestPredictCluster_MissingMetadata(t *testing.T) {
	doc := readModelDoc(t)

	scaler, err := kmeans.NewStandardScaler(doc.Scaler.Mean, doc.Scaler.Scale, doc.Scaler.FeatureNames)
	require.NoError(t, err)
	classifier, err := kmeans.NewClassifier(doc.ClusterCenters, doc.NClusters)
	require.NoError(t, err)

	info := map[int]domain.ClusterInfo{0: {Focus: "only zero"}}
	model := NewClusterModel(scaler, classifier, info)

	_, err = model.PredictCluster(featuresAt(doc, 2))
	assert.ErrorIs(t, err, e.ErrConfigurationInconsistency)
}

func TestStandardize(t *testing.T) {
	model := loadTestModel(t)
	doc := readModelDoc(t)

	z, err := model.Standardize(featuresAt(doc, 0))
	require.NoError(t, err)
	require.Len(t, z, domain.FeatureCount)
	for i := range z {
		assert.InDelta(t, doc.ClusterCenters[0][i], z[i], 1e-9)
	}
}

func TestCluster(t *testing.T) {
	model := loadTestModel(t)

	c, err := model.Cluster(2)
	require.NoError(t, err)
	assert.Equal(t, "Cardiovascular endurance", c.Info.Focus)

	_, err = model.Cluster(7)
	assert.ErrorIs(t, err, e.ErrClusterNotFound)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc *ModelData, info ClusterInfoDoc)
		wantErr error
	}{
		{
			name: "zero scale",
			mutate: func(doc *ModelData, _ ClusterInfoDoc) {
				doc.Scaler.Scale[3] = 0
			},
			wantErr: e.ErrZeroScale,
		},
		{
			name: "wrong feature order",
			mutate: func(doc *ModelData, _ ClusterInfoDoc) {
				doc.Scaler.FeatureNames[0], doc.Scaler.FeatureNames[1] = doc.Scaler.FeatureNames[1], doc.Scaler.FeatureNames[0]
			},
			wantErr: e.ErrInvalidModelData,
		},
		{
			name: "short centroid",
			mutate: func(doc *ModelData, _ ClusterInfoDoc) {
				for i := range doc.ClusterCenters {
					doc.ClusterCenters[i] = doc.ClusterCenters[i][:13]
				}
			},
			wantErr: e.ErrDimensionMismatch,
		},
		{
			name: "n_clusters disagrees",
			mutate: func(doc *ModelData, _ ClusterInfoDoc) {
				doc.NClusters = 4
			},
			wantErr: e.ErrInvalidModelData,
		},
		{
			name: "missing metadata",
			mutate: func(_ *ModelData, info ClusterInfoDoc) {
				delete(info, "1")
			},
			wantErr: e.ErrConfigurationInconsistency,
		},
		{
			name: "metadata for unknown cluster",
			mutate: func(_ *ModelData, info ClusterInfoDoc) {
				info["5"] = domain.ClusterInfo{}
			},
			wantErr: e.ErrConfigurationInconsistency,
		},
		{
			name: "non integer key",
			mutate: func(_ *ModelData, info ClusterInfoDoc) {
				info["first"] = domain.ClusterInfo{}
			},
			wantErr: e.ErrInvalidModelData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := readModelDoc(t)
			info := readInfoDoc(t)
			tt.mutate(doc, info)

			_, err := Parse(mustJSON(t, doc), mustJSON(t, info))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"), []byte("{}"))
	assert.ErrorIs(t, err, e.ErrInvalidModelData)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(t.TempDir()).Fetch(context.Background(), "absent.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
