package kmeans

import "math"

// euclidean — корень из суммы квадратов разностей. Длины векторов проверяет вызывающий код.
func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}
