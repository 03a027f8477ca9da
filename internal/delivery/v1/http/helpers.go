package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит доменную ошибку в HTTP-статус. Для 4xx клиент получает
// полный текст ошибки, для 5xx только общий.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrInvalidMeasurement),
		errors.Is(err, e.ErrInvalidMacroPreference),
		errors.Is(err, e.ErrInvalidClusterID),
		errors.Is(err, e.ErrDimensionMismatch),
		errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, e.ErrForbidden.Error()
	case errors.Is(err, e.ErrPlanNotFound):
		return http.StatusNotFound, e.ErrPlanNotFound.Error()
	case errors.Is(err, e.ErrClusterNotFound):
		return http.StatusNotFound, e.ErrClusterNotFound.Error()
	case errors.Is(err, e.ErrInvalidPlanStatus):
		return http.StatusConflict, e.ErrInvalidPlanStatus.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает JSON-тело запроса в dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return e.Wrap(whereami.WhereAmI(), e.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStatusBadRequest, err))
	}

	return nil
}
