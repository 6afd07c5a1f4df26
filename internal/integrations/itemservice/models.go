package itemservice

// Item модель вещи из ItemService
type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// ErrorResponse модель ошибки от ItemService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
