package kmeans

import (
	"fmt"
	"math"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

// Classifier относит точку к ближайшему центроиду по евклидову расстоянию.
type Classifier struct {
	centroids [][]float64
	dim       int
}

// NewClassifier проверяет, что все центроиды одной размерности и их ровно nClusters.
func NewClassifier(centroids [][]float64, nClusters int) (*Classifier, error) {
	const op = "kmeans.NewClassifier"

	if len(centroids) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCentroids)
	}
	if nClusters != len(centroids) {
		return nil, e.Wrap(op, fmt.Errorf("%w: n_clusters=%d, centroids=%d", e.ErrInvalidModelData, nClusters, len(centroids)))
	}

	dim := len(centroids[0])
	if dim == 0 {
		return nil, e.Wrap(op, fmt.Errorf("%w: zero-length centroid", e.ErrInvalidModelData))
	}

	copied := make([][]float64, len(centroids))
	for i, c := range centroids {
		if len(c) != dim {
			return nil, e.Wrap(op, fmt.Errorf("centroid %d: %w", i, newDimensionMismatch(dim, len(c))))
		}
		copied[i] = append([]float64(nil), c...)
	}

	return &Classifier{centroids: copied, dim: dim}, nil
}

// Predict возвращает индекс ближайшего центроида в диапазоне [0, NClusters()).
// При равных расстояниях побеждает центроид с меньшим индексом.
func (c *Classifier) Predict(point []float64) (int, error) {
	if len(point) != c.dim {
		return 0, newDimensionMismatch(c.dim, len(point))
	}

	nearest := 0
	minDistance := math.Inf(1)
	for i, centroid := range c.centroids {
		if d := euclidean(point, centroid); d < minDistance {
			minDistance = d
			nearest = i
		}
	}

	return nearest, nil
}

// NClusters — количество кластеров.
func (c *Classifier) NClusters() int {
	return len(c.centroids)
}

// Dim — размерность центроидов.
func (c *Classifier) Dim() int {
	return c.dim
}

// Centroid возвращает копию центроида с индексом i.
func (c *Classifier) Centroid(i int) []float64 {
	return append([]float64(nil), c.centroids[i]...)
}
