package kmeans

import (
	"math"
	"testing"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_TwoDimensionalScenarios(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{0, 0}, []float64{1, 1}, []string{"x", "y"})
	require.NoError(t, err)
	clf, err := NewClassifier([][]float64{{0, 0}, {10, 10}}, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{"near origin", []float64{1, 1}, 0},
		{"near far centroid", []float64{9, 9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := scaler.Transform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.in, z)

			got, err := clf.Predict(z)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, math.Sqrt(2), euclidean([]float64{1, 1}, []float64{0, 0}))
	assert.Equal(t, math.Sqrt(162), euclidean([]float64{1, 1}, []float64{10, 10}))
}

func TestClassifier_TieBreakPrefersLowerIndex(t *testing.T) {
	clf, err := NewClassifier([][]float64{{5, 5}, {-1, 0}, {1, 0}}, 3)
	require.NoError(t, err)

	got, err := clf.Predict([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	clf, err = NewClassifier([][]float64{{2, 0}, {2, 0}}, 2)
	require.NoError(t, err)
	got, err = clf.Predict([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestClassifier_Idempotent(t *testing.T) {
	clf, err := NewClassifier([][]float64{{0, 0, 0}, {1, 2, 3}, {-4, 0, 2}}, 3)
	require.NoError(t, err)

	p := []float64{0.7, 1.1, 2.4}
	first, err := clf.Predict(p)
	require.NoError(t, err)
	second, err := clf.Predict(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassifier_ResultInRange(t *testing.T) {
	centroids := [][]float64{{0, 0}, {3, 3}, {-3, 3}, {0, -5}}
	clf, err := NewClassifier(centroids, len(centroids))
	require.NoError(t, err)

	points := [][]float64{
		{0, 0}, {100, 100}, {-100, 0}, {0, -1e9}, {math.MaxFloat64, 0}, {2.9, 3.1},
	}
	for _, p := range points {
		got, err := clf.Predict(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, clf.NClusters())
	}
}

func TestClassifier_DimensionMismatch(t *testing.T) {
	clf, err := NewClassifier([][]float64{{0, 0}, {1, 1}}, 2)
	require.NoError(t, err)

	_, err = clf.Predict([]float64{1, 2, 3})
	assert.ErrorIs(t, err, e.ErrDimensionMismatch)
}

func TestNewClassifier_Validation(t *testing.T) {
	_, err := NewClassifier(nil, 0)
	assert.ErrorIs(t, err, e.ErrEmptyCentroids)

	_, err = NewClassifier([][]float64{{1, 2}, {3}}, 2)
	assert.ErrorIs(t, err, e.ErrDimensionMismatch)

	_, err = NewClassifier([][]float64{{1, 2}, {3, 4}}, 3)
	assert.ErrorIs(t, err, e.ErrInvalidModelData)

	_, err = NewClassifier([][]float64{{}}, 1)
	assert.ErrorIs(t, err, e.ErrInvalidModelData)
}

func TestClassifier_CentroidIsCopy(t *testing.T) {
	src := [][]float64{{1, 2}}
	clf, err := NewClassifier(src, 1)
	require.NoError(t, err)

	src[0][0] = 42
	c := clf.Centroid(0)
	assert.Equal(t, []float64{1, 2}, c)
	c[1] = 7
	assert.Equal(t, []float64{1, 2}, clf.Centroid(0))
	assert.Equal(t, 2, clf.Dim())
}
