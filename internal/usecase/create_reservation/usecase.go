package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	itemClient "github.com/m04kA/SMC-ReservationService/internal/integrations/itemservice"
	userClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	userClient      UserServiceClient
	itemClient      ItemServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	itemClient ItemServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		userClient:      userClient,
		itemClient:      itemClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции:
// два конкурентных создания не могут оба пройти проверку занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, item=%d, start=%s, end=%s",
		req.UserID, req.ItemID, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация интервала бронирования
	if err := validatePeriod(req.StartDate, req.EndDate, now); err != nil {
		uc.logger.Warn("CreateReservation: period validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем существование пользователя
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 5. Получаем вещь
	item, err := uc.itemClient.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			uc.logger.Warn("CreateReservation: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateReservation: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	// 6. Проверяем доступность вещи и что пользователь не владелец
	if err := validateItem(item, req.UserID); err != nil {
		uc.logger.Warn("CreateReservation: item validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем одобренные бронирования вещи с блокировкой (FOR UPDATE)
		approved, err := uc.reservationRepo.GetApprovedByItem(txCtx, req.ItemID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get approved reservations: %v", err)
			return fmt.Errorf("%w: failed to get approved reservations: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечение с одобренными бронированиями
		if conflict := findOverlapping(approved, req.StartDate, req.EndDate, 0); conflict != nil {
			uc.logger.Warn("CreateReservation: interval overlaps approved reservation id=%d", conflict.ID)
			return fmt.Errorf("%w: conflicts with reservation id=%d", ErrTimeConflict, conflict.ID)
		}

		// 7.3. Создаем бронирование со статусом WAITING
		// owner_id денормализуется из каталога вещей для выборок по владельцу
		reservation := &domain.Reservation{
			ItemID:      req.ItemID,
			RequesterID: req.UserID,
			OwnerID:     item.OwnerID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Status:      domain.StatusWaiting,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:          result.ID,
		ItemID:      result.ItemID,
		RequesterID: result.RequesterID,
		OwnerID:     result.OwnerID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
