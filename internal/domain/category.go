package domain

import "fmt"

// Category temporal/status bucket used to filter reservation listings
type Category string

const (
	CategoryAll      Category = "ALL"
	CategoryCurrent  Category = "CURRENT"
	CategoryPast     Category = "PAST"
	CategoryFuture   Category = "FUTURE"
	CategoryWaiting  Category = "WAITING"
	CategoryRejected Category = "REJECTED"
)

// ParseCategory разбирает строковое представление категории
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAll, CategoryCurrent, CategoryPast, CategoryFuture, CategoryWaiting, CategoryRejected:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Role determines which side of a reservation the viewer is on
type Role string

const (
	RoleRequester Role = "REQUESTER"
	RoleOwner     Role = "OWNER"
)
