package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки модели кластеризации
	ErrDimensionMismatch          = fmt.Errorf("dimension mismatch")
	ErrConfigurationInconsistency = fmt.Errorf("configuration inconsistency")
	ErrZeroScale                  = fmt.Errorf("scaler contains zero scale")
	ErrEmptyCentroids             = fmt.Errorf("empty centroid set")
	ErrInvalidModelData           = fmt.Errorf("invalid model data")

	// 400 Bad Request
	ErrStatusBadRequest       = fmt.Errorf("bad request")
	ErrMissingFields          = fmt.Errorf("missing required fields")
	ErrInvalidMeasurement     = fmt.Errorf("invalid measurement")
	ErrInvalidMacroPreference = fmt.Errorf("invalid macro preference")
	ErrInvalidClusterID       = fmt.Errorf("invalid cluster id")
	ErrUnsupportedMediaType   = fmt.Errorf("unsupported media type")

	// 401 / 403
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrForbidden    = fmt.Errorf("forbidden")

	// 404 Not Found
	ErrPlanNotFound    = fmt.Errorf("plan not found")
	ErrClusterNotFound = fmt.Errorf("cluster not found")

	// 409 Conflict
	ErrInvalidPlanStatus = fmt.Errorf("invalid plan status transition")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки окружения
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
