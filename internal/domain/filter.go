package domain

// ReservationsFilter фильтр для постраничной выборки бронирований
// Offset - смещение в строках, Limit - размер страницы
type ReservationsFilter struct {
	ViewerID int64
	Role     Role
	Category Category
	Offset   int
	Limit    int
}
