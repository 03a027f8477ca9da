package kmeans

import (
	"fmt"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

// DimensionMismatchError сообщает ожидаемую и фактическую длину вектора.
// errors.Is(err, e.ErrDimensionMismatch) == true.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (d *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d features, got %d", e.ErrDimensionMismatch, d.Expected, d.Actual)
}

func (d *DimensionMismatchError) Unwrap() error {
	return e.ErrDimensionMismatch
}

func newDimensionMismatch(expected, actual int) error {
	return &DimensionMismatchError{Expected: expected, Actual: actual}
}
