package change_opening_hours

import (
	"context"

	changeOpeningHours "github.com/m04kA/SMC-RestaurantService/internal/usecase/change_opening_hours"
)

type ChangeOpeningHoursUseCase interface {
	Execute(ctx context.Context, req *changeOpeningHours.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
