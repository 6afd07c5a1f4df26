package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/itemservice"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter, now time.Time) ([]*domain.Reservation, error)
	LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Reservation, error)
	NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Reservation, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// ItemServiceClient интерфейс клиента для ItemService
type ItemServiceClient interface {
	GetItem(ctx context.Context, itemID int64) (*itemservice.Item, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
