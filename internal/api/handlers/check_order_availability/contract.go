package check_order_availability

import (
	"context"

	checkOrderAvailability "github.com/m04kA/SMC-RestaurantService/internal/usecase/check_order_availability"
)

type CheckOrderAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkOrderAvailability.Request) (*checkOrderAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
