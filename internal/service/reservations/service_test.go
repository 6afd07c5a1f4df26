package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/itemservice"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

type fakeRepo struct {
	reservation *domain.Reservation
	listed      []*domain.Reservation
	last        *domain.Reservation
	next        *domain.Reservation

	lastFilter domain.ReservationsFilter
	lastNow    time.Time

	listErr error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter, now time.Time) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	f.lastNow = now
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

func (f *fakeRepo) LastApproved(_ context.Context, _ int64, _ time.Time) (*domain.Reservation, error) {
	if f.last == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.last, nil
}

func (f *fakeRepo) NextApproved(_ context.Context, _ int64, _ time.Time) (*domain.Reservation, error) {
	if f.next == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.next, nil
}

type fakeUserClient struct {
	err error
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &userservice.User{ID: userID}, nil
}

type fakeItemClient struct {
	item *itemservice.Item
	err  error
}

func (f *fakeItemClient) GetItem(_ context.Context, _ int64) (*itemservice.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.item, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo, users *fakeUserClient, items *fakeItemClient) *Service {
	svc := NewService(repo, users, items, nopLogger{})
	svc.timeProvider = &fixedClock{now: testNow}
	return svc
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		ItemID:      5,
		RequesterID: 10,
		OwnerID:     20,
		StartDate:   testNow.Add(24 * time.Hour),
		EndDate:     testNow.Add(48 * time.Hour),
		Status:      domain.StatusWaiting,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("доступно автору бронирования", func(t *testing.T) {
		svc := newTestService(&fakeRepo{reservation: testReservation()}, &fakeUserClient{}, &fakeItemClient{})

		resp, err := svc.GetByID(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "WAITING", resp.Status)
	})

	t.Run("доступно владельцу вещи", func(t *testing.T) {
		svc := newTestService(&fakeRepo{reservation: testReservation()}, &fakeUserClient{}, &fakeItemClient{})

		resp, err := svc.GetByID(context.Background(), 1, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("постороннему не найдено", func(t *testing.T) {
		svc := newTestService(&fakeRepo{reservation: testReservation()}, &fakeUserClient{}, &fakeItemClient{})

		_, err := svc.GetByID(context.Background(), 1, 777)

		require.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("несуществующее бронирование", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{})

		_, err := svc.GetByID(context.Background(), 99, 10)

		require.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_List(t *testing.T) {
	listRequest := func() *models.ListReservationsRequest {
		return &models.ListReservationsRequest{
			UserID: 10,
			Role:   domain.RoleRequester,
			State:  "ALL",
			From:   0,
			Size:   10,
		}
	}

	t.Run("фильтр собирается из запроса", func(t *testing.T) {
		repo := &fakeRepo{listed: []*domain.Reservation{testReservation()}}
		svc := newTestService(repo, &fakeUserClient{}, &fakeItemClient{})
		req := listRequest()
		req.Role = domain.RoleOwner
		req.State = "CURRENT"
		req.From = 20
		req.Size = 5

		resp, err := svc.List(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, int64(10), repo.lastFilter.ViewerID)
		assert.Equal(t, domain.RoleOwner, repo.lastFilter.Role)
		assert.Equal(t, domain.CategoryCurrent, repo.lastFilter.Category)
		assert.Equal(t, 20, repo.lastFilter.Offset)
		assert.Equal(t, 5, repo.lastFilter.Limit)
		assert.Equal(t, testNow, repo.lastNow)
	})

	t.Run("пустая выборка не ошибка", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{})

		resp, err := svc.List(context.Background(), listRequest())

		require.NoError(t, err)
		assert.Empty(t, resp.Reservations)
	})

	t.Run("неизвестная категория", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{})
		req := listRequest()
		req.State = "UNSUPPORTED_STATUS"

		_, err := svc.List(context.Background(), req)

		require.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("некорректная пагинация", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{})

		req := listRequest()
		req.From = -1
		_, err := svc.List(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)

		req = listRequest()
		req.Size = 0
		_, err = svc.List(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("несуществующий пользователь", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{err: userservice.ErrUserNotFound}, &fakeItemClient{})

		_, err := svc.List(context.Background(), listRequest())

		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_GetItemSchedule(t *testing.T) {
	item := &itemservice.Item{ID: 5, OwnerID: 20, Name: "Дрель", Available: true}

	t.Run("последнее и следующее бронирования", func(t *testing.T) {
		last := testReservation()
		last.ID = 2
		last.Status = domain.StatusApproved
		last.StartDate = testNow.Add(-48 * time.Hour)
		last.EndDate = testNow.Add(-24 * time.Hour)

		next := testReservation()
		next.ID = 3
		next.Status = domain.StatusApproved

		svc := newTestService(&fakeRepo{last: last, next: next}, &fakeUserClient{}, &fakeItemClient{item: item})

		schedule, err := svc.GetItemSchedule(context.Background(), 5, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(5), schedule.ItemID)
		require.NotNil(t, schedule.LastReservation)
		assert.Equal(t, int64(2), schedule.LastReservation.ID)
		require.NotNil(t, schedule.NextReservation)
		assert.Equal(t, int64(3), schedule.NextReservation.ID)
	})

	t.Run("пустое расписание не ошибка", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{item: item})

		schedule, err := svc.GetItemSchedule(context.Background(), 5, 20)

		require.NoError(t, err)
		assert.Nil(t, schedule.LastReservation)
		assert.Nil(t, schedule.NextReservation)
	})

	t.Run("не владельцу вещь не найдена", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{item: item})

		_, err := svc.GetItemSchedule(context.Background(), 5, 10)

		require.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("несуществующая вещь", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeUserClient{}, &fakeItemClient{err: itemservice.ErrItemNotFound})

		_, err := svc.GetItemSchedule(context.Background(), 5, 20)

		require.ErrorIs(t, err, ErrItemNotFound)
	})
}
