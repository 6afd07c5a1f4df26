package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusWaiting  ReservationStatus = "WAITING"
	StatusApproved ReservationStatus = "APPROVED"
	StatusRejected ReservationStatus = "REJECTED"
)

// Reservation represents a request by one user to use another user's item
// for a time interval [StartDate, EndDate)
type Reservation struct {
	ID          int64
	ItemID      int64
	RequesterID int64
	// OwnerID денормализован из каталога вещей при создании:
	// позволяет строить выборки по владельцу без обращения к внешнему сервису
	OwnerID   int64
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDecided returns true if the reservation reached a terminal status
func (r *Reservation) IsDecided() bool {
	return r.Status != StatusWaiting
}

// IsApproved returns true if the reservation has been approved
func (r *Reservation) IsApproved() bool {
	return r.Status == StatusApproved
}

// Decide переводит бронирование из WAITING в терминальный статус
// Единственный легальный переход статусов; повторное решение запрещено
func (r *Reservation) Decide(approve bool) error {
	if r.Status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		r.Status = StatusApproved
	} else {
		r.Status = StatusRejected
	}
	return nil
}

// Overlaps reports whether the reservation interval intersects [start, end).
// Intervals are half-open: touching endpoints do not overlap
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}
