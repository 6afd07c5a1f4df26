package decide_reservation

import (
	"time"

	decideReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/decide_reservation"
)

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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideReservation.Response) *ReservationResponse {
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
