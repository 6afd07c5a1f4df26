package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

// Колонки в порядке reservationColumns
const listSelect = "SELECT id, item_id, requester_id, owner_id, start_date, end_date, status, created_at, updated_at FROM reservations"

func TestBuildListQuery(t *testing.T) {
	baseFilter := func() domain.ReservationsFilter {
		return domain.ReservationsFilter{
			ViewerID: 10,
			Role:     domain.RoleRequester,
			Category: domain.CategoryAll,
			Offset:   0,
			Limit:    10,
		}
	}

	tests := []struct {
		name     string
		mutate   func(f *domain.ReservationsFilter)
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "ALL - только фильтр по автору",
			mutate:   func(f *domain.ReservationsFilter) {},
			wantSQL:  listSelect + " WHERE requester_id = $1 ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10)},
		},
		{
			name: "ALL - фильтр по владельцу",
			mutate: func(f *domain.ReservationsFilter) {
				f.Role = domain.RoleOwner
			},
			wantSQL:  listSelect + " WHERE owner_id = $1 ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10)},
		},
		{
			name: "CURRENT - now внутри интервала, границы включаются",
			mutate: func(f *domain.ReservationsFilter) {
				f.Category = domain.CategoryCurrent
			},
			wantSQL: listSelect +
				" WHERE requester_id = $1 AND start_date <= $2 AND end_date >= $3" +
				" ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10), testNow, testNow},
		},
		{
			name: "PAST - строго end < now",
			mutate: func(f *domain.ReservationsFilter) {
				f.Category = domain.CategoryPast
			},
			wantSQL: listSelect +
				" WHERE requester_id = $1 AND end_date < $2" +
				" ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10), testNow},
		},
		{
			name: "FUTURE - строго start > now",
			mutate: func(f *domain.ReservationsFilter) {
				f.Category = domain.CategoryFuture
			},
			wantSQL: listSelect +
				" WHERE requester_id = $1 AND start_date > $2" +
				" ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10), testNow},
		},
		{
			name: "WAITING - только предикат статуса, без временного фильтра",
			mutate: func(f *domain.ReservationsFilter) {
				f.Category = domain.CategoryWaiting
			},
			wantSQL: listSelect +
				" WHERE requester_id = $1 AND status = $2" +
				" ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10), domain.StatusWaiting},
		},
		{
			name: "REJECTED - только предикат статуса",
			mutate: func(f *domain.ReservationsFilter) {
				f.Category = domain.CategoryRejected
			},
			wantSQL: listSelect +
				" WHERE requester_id = $1 AND status = $2" +
				" ORDER BY start_date DESC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{int64(10), domain.StatusRejected},
		},
		{
			name: "постраничная выборка - сырое смещение в строках",
			mutate: func(f *domain.ReservationsFilter) {
				f.Offset = 20
				f.Limit = 5
			},
			wantSQL:  listSelect + " WHERE requester_id = $1 ORDER BY start_date DESC LIMIT 5 OFFSET 20",
			wantArgs: []interface{}{int64(10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := baseFilter()
			tt.mutate(&filter)

			query, args, err := buildListQuery(filter, testNow)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	t.Run("неизвестная категория", func(t *testing.T) {
		filter := baseFilter()
		filter.Category = domain.Category("UNSUPPORTED")

		_, _, err := buildListQuery(filter, testNow)

		require.ErrorIs(t, err, ErrBuildQuery)
	})
}
