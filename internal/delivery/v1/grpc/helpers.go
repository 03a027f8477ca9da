package grpc

import (
	"errors"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrDimensionMismatch),
		errors.Is(err, e.ErrInvalidMeasurement):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrClusterNotFound):
		return status.Error(codes.NotFound, e.ErrClusterNotFound.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
