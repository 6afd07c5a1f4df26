package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	itemClient "github.com/m04kA/SMC-ReservationService/internal/integrations/itemservice"
	userClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	userClient      UserServiceClient
	itemClient      ItemServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	itemClient ItemServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userClient:      userClient,
		itemClient:      itemClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступно только участникам: автору бронирования и владельцу вещи.
// Остальным бронь отдается как "не найдена"
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.RequesterID != userID && reservation.OwnerID != userID {
		s.logger.Warn("GetByID: user=%d is not a participant of reservation id=%d", userID, id)
		return nil, ErrReservationNotFound
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования пользователя по категории с постраничной выборкой
// Role определяет сторону: автор бронирований или владелец вещей.
// Сортировка по дате начала (новые сначала), смещение в строках
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%d, role=%s, state=%s, from=%d, size=%d",
		req.UserID, req.Role, req.State, req.From, req.Size)

	if req.From < 0 || req.Size <= 0 {
		s.logger.Warn("List: invalid pagination from=%d, size=%d", req.From, req.Size)
		return nil, fmt.Errorf("%w: from must be >= 0 and size > 0", ErrInvalidInput)
	}

	category, err := domain.ParseCategory(req.State)
	if err != nil {
		s.logger.Warn("List: unknown state=%s for user=%d", req.State, req.UserID)
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, req.State)
	}

	// Проверяем существование пользователя в каталоге
	if _, err := s.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("List: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("List: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - failed to get user: %v", ErrInternal, err)
	}

	filter := domain.ReservationsFilter{
		ViewerID: req.UserID,
		Role:     req.Role,
		Category: category,
		Offset:   req.From,
		Limit:    req.Size,
	}

	reservations, err := s.reservationRepo.List(ctx, filter, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetItemSchedule получает последнее и следующее одобренные бронирования вещи
// Доступно только владельцу вещи; остальным вещь отдается как "не найдена".
// Отсутствие бронирований не ошибка - соответствующие поля остаются пустыми
func (s *Service) GetItemSchedule(ctx context.Context, itemID int64, userID int64) (*models.ItemScheduleResponse, error) {
	s.logger.Info("GetItemSchedule: fetching schedule for item=%d, user=%d", itemID, userID)

	item, err := s.itemClient.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			s.logger.Warn("GetItemSchedule: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("GetItemSchedule: failed to get item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetItemSchedule - failed to get item: %v", ErrInternal, err)
	}

	if item.OwnerID != userID {
		s.logger.Warn("GetItemSchedule: user=%d is not the owner of item id=%d", userID, itemID)
		return nil, ErrItemNotFound
	}

	now := s.timeProvider.Now()
	schedule := &models.ItemScheduleResponse{ItemID: itemID}

	last, err := s.reservationRepo.LastApproved(ctx, itemID, now)
	if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Error("GetItemSchedule: failed to get last reservation for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetItemSchedule - repository error: %v", ErrInternal, err)
	}
	if last != nil {
		schedule.LastReservation = models.FromDomainReservation(last)
	}

	next, err := s.reservationRepo.NextApproved(ctx, itemID, now)
	if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Error("GetItemSchedule: failed to get next reservation for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetItemSchedule - repository error: %v", ErrInternal, err)
	}
	if next != nil {
		schedule.NextReservation = models.FromDomainReservation(next)
	}

	s.logger.Info("GetItemSchedule: successfully fetched schedule for item=%d", itemID)
	return schedule, nil
}
