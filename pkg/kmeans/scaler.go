// Package kmeans реализует инференс K-Means с фиксированными параметрами:
// стандартизацию признаков и поиск ближайшего центроида.
package kmeans

import (
	"fmt"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"gonum.org/v1/gonum/floats"
)

// StandardScaler стандартизирует признаки: z = (x - mean) / scale.
// После создания не изменяется и может использоваться из любого числа горутин.
type StandardScaler struct {
	mean         []float64
	scale        []float64
	featureNames []string
}

// NewStandardScaler проверяет параметры и создает скейлер.
// Нулевой scale считается ошибкой конфигурации и отклоняется сразу при загрузке.
func NewStandardScaler(mean, scale []float64, featureNames []string) (*StandardScaler, error) {
	const op = "kmeans.NewStandardScaler"

	if len(mean) == 0 {
		return nil, e.Wrap(op, fmt.Errorf("%w: empty mean", e.ErrInvalidModelData))
	}
	if len(scale) != len(mean) {
		return nil, e.Wrap(op, newDimensionMismatch(len(mean), len(scale)))
	}
	if len(featureNames) != len(mean) {
		return nil, e.Wrap(op, newDimensionMismatch(len(mean), len(featureNames)))
	}
	for i, s := range scale {
		if s == 0 {
			return nil, e.Wrap(op, fmt.Errorf("%w: feature %q (index %d)", e.ErrZeroScale, featureNames[i], i))
		}
	}

	return &StandardScaler{
		mean:         append([]float64(nil), mean...),
		scale:        append([]float64(nil), scale...),
		featureNames: append([]string(nil), featureNames...),
	}, nil
}

// Transform возвращает новый стандартизированный вектор, исходный не изменяется.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.mean) {
		return nil, newDimensionMismatch(len(s.mean), len(features))
	}

	out := make([]float64, len(features))
	floats.SubTo(out, features, s.mean)
	floats.DivTo(out, out, s.scale)

	return out, nil
}

// FeatureNames возвращает копию порядка признаков.
func (s *StandardScaler) FeatureNames() []string {
	return append([]string(nil), s.featureNames...)
}

// Dim — количество признаков.
func (s *StandardScaler) Dim() int {
	return len(s.mean)
}
