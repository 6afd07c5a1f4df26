package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на постраничную выборку бронирований
type ListReservationsRequest struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"role"`
	State  string      `json:"state"`
	From   int         `json:"from"`
	Size   int         `json:"size"`
}

// Response модели

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"itemId"`
	RequesterID int64  `json:"requesterId"`
	OwnerID     int64  `json:"ownerId"`
	StartDate   string `json:"start"`
	EndDate     string `json:"end"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ReservationListResponse страница бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// ItemScheduleResponse последнее и следующее одобренные бронирования вещи
// Поля nil, если соответствующего бронирования нет
type ItemScheduleResponse struct {
	ItemID          int64                `json:"itemId"`
	LastReservation *ReservationResponse `json:"lastReservation,omitempty"`
	NextReservation *ReservationResponse `json:"nextReservation,omitempty"`
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          r.ID,
		ItemID:      r.ItemID,
		RequesterID: r.RequesterID,
		OwnerID:     r.OwnerID,
		StartDate:   r.StartDate.Format(time.RFC3339),
		EndDate:     r.EndDate.Format(time.RFC3339),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список доменных моделей в ответ сервиса
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: result}
}
