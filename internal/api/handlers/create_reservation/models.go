package create_reservation

import (
	"fmt"
	"time"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ItemID int64  `json:"itemId"`
	Start  string `json:"start"` // RFC3339, например "2025-10-15T10:00:00Z"
	End    string `json:"end"`   // RFC3339
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"itemId"`
	RequesterID int64  `json:"requesterId"`
	OwnerID     int64  `json:"ownerId"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}

	return &createReservation.Request{
		UserID:    userID,
		ItemID:    r.ItemID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		ItemID:      resp.ItemID,
		RequesterID: resp.RequesterID,
		OwnerID:     resp.OwnerID,
		Start:       resp.StartDate.Format(time.RFC3339),
		End:         resp.EndDate.Format(time.RFC3339),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
