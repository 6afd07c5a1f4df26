package get_item_schedule

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetItemSchedule(ctx context.Context, itemID int64, userID int64) (*models.ItemScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
