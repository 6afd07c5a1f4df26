package decide_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case для решения по бронированию (одобрение/отклонение)
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case решения по бронированию
// Чтение статуса и запись выполняются в одной сериализуемой транзакции
// с блокировкой строки: два конкурентных решения не могут оба увидеть WAITING.
// При одобрении пересечение с одобренными бронированиями проверяется повторно:
// две непересекающиеся на момент создания WAITING брони могут конфликтовать
// к моменту одобрения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideReservation: user=%d, reservation=%d, approved=%t",
		req.UserID, req.ReservationID, req.Approved)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DecideReservation: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("DecideReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("DecideReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Решение доступно только владельцу вещи
		// Не-владельцу бронь отдается как "не найдена"
		if res.OwnerID != req.UserID {
			uc.logger.Warn("DecideReservation: user=%d is not the owner of reservation id=%d",
				req.UserID, req.ReservationID)
			return ErrReservationNotFound
		}

		// 2.3. Повторное решение запрещено
		if res.IsDecided() {
			uc.logger.Warn("DecideReservation: reservation id=%d already decided, status=%s",
				req.ReservationID, res.Status)
			return ErrAlreadyDecided
		}

		// 2.4. При одобрении повторно проверяем пересечения с одобренными бронированиями
		if req.Approved {
			approved, err := uc.reservationRepo.GetApprovedByItem(txCtx, res.ItemID)
			if err != nil {
				uc.logger.Error("DecideReservation: failed to get approved reservations: %v", err)
				return fmt.Errorf("%w: failed to get approved reservations: %v", ErrInternal, err)
			}

			for _, other := range approved {
				if other.ID == res.ID {
					continue
				}
				if other.Overlaps(res.StartDate, res.EndDate) {
					uc.logger.Warn("DecideReservation: approval would overlap reservation id=%d", other.ID)
					return fmt.Errorf("%w: conflicts with reservation id=%d", ErrTimeConflict, other.ID)
				}
			}
		}

		// 2.5. Переводим статус через доменную машину состояний
		if err := res.Decide(req.Approved); err != nil {
			uc.logger.Warn("DecideReservation: illegal transition for reservation id=%d: %v",
				req.ReservationID, err)
			return ErrAlreadyDecided
		}

		// 2.6. Сохраняем новый статус (условное обновление из WAITING)
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, res.Status); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				// Строка ушла из WAITING между чтением и записью - конкурентное решение
				uc.logger.Warn("DecideReservation: reservation id=%d concurrently decided", res.ID)
				return ErrAlreadyDecided
			}
			uc.logger.Error("DecideReservation: failed to update status: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DecideReservation: reservation id=%d decided, status=%s", result.ID, result.Status)

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

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	return nil
}
