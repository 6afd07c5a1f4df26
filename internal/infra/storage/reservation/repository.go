package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// reservationColumns колонки таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"item_id",
	"requester_id",
	"owner_id",
	"start_date",
	"end_date",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование со статусом WAITING
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание с проверкой пересечений должно выполняться внутри транзакции:
// проверка занятости и вставка обязаны быть одной атомарной операцией
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"item_id",
			"requester_id",
			"owner_id",
			"start_date",
			"end_date",
			"status",
		).
		Values(
			reservation.ItemID,
			reservation.RequesterID,
			reservation.OwnerID,
			reservation.StartDate,
			reservation.EndDate,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы два конкурентных
// решения по одной брони не прочитали статус WAITING одновременно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetApprovedByItem получает все APPROVED бронирования вещи
// Внутри транзакции строки блокируются (FOR UPDATE) - это точка сериализации
// проверки пересечений при создании и одобрении бронирования
func (r *Repository) GetApprovedByItem(ctx context.Context, itemID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"item_id": itemID,
			"status":  domain.StatusApproved,
		}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedByItem - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedByItem - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
// Обновление условное (только из WAITING): даже вне транзакции повторное
// решение не перезапишет терминальный статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusWaiting,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// List получает бронирования по фильтру категории с постраничной выборкой
// Offset - смещение в строках (OFFSET offset LIMIT limit), сортировка по
// start_date DESC для всех категорий
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter, now time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter, now)
	if err != nil {
		return nil, err
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// buildListQuery собирает SELECT по фильтру категории
// Временные категории попарно не пересекаются: PAST - end < now,
// CURRENT - start <= now <= end, FUTURE - start > now
func buildListQuery(filter domain.ReservationsFilter, now time.Time) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	switch filter.Role {
	case domain.RoleOwner:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"owner_id": filter.ViewerID})
	default:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"requester_id": filter.ViewerID})
	}

	switch filter.Category {
	case domain.CategoryAll:
		// Без дополнительного фильтра
	case domain.CategoryCurrent:
		selectBuilder = selectBuilder.
			Where(squirrel.LtOrEq{"start_date": now}).
			Where(squirrel.GtOrEq{"end_date": now})
	case domain.CategoryPast:
		selectBuilder = selectBuilder.Where(squirrel.Lt{"end_date": now})
	case domain.CategoryFuture:
		selectBuilder = selectBuilder.Where(squirrel.Gt{"start_date": now})
	case domain.CategoryWaiting:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusWaiting})
	case domain.CategoryRejected:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusRejected})
	default:
		return "", nil, fmt.Errorf("%w: List - unsupported category %q", ErrBuildQuery, filter.Category)
	}

	query, args, err := selectBuilder.
		OrderBy("start_date DESC").
		Offset(uint64(filter.Offset)).
		Limit(uint64(filter.Limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

// LastApproved получает APPROVED бронирование вещи с наибольшим start_date,
// начавшееся до now
func (r *Repository) LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Reservation, error) {
	return r.adjacentApproved(ctx, itemID, squirrel.Lt{"start_date": now}, "start_date DESC")
}

// NextApproved получает APPROVED бронирование вещи с наименьшим start_date,
// начинающееся после now
func (r *Repository) NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Reservation, error) {
	return r.adjacentApproved(ctx, itemID, squirrel.Gt{"start_date": now}, "start_date ASC")
}

func (r *Repository) adjacentApproved(ctx context.Context, itemID int64, cond squirrel.Sqlizer, order string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"item_id": itemID,
			"status":  domain.StatusApproved,
		}).
		Where(cond).
		OrderBy(order).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: adjacentApproved - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: adjacentApproved - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в бронирование
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.ItemID,
		&reservation.RequesterID,
		&reservation.OwnerID,
		&reservation.StartDate,
		&reservation.EndDate,
		&reservation.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
