package decide_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

type fakeRepo struct {
	reservation *domain.Reservation
	approved    []*domain.Reservation

	updatedID     int64
	updatedStatus domain.ReservationStatus

	getErr    error
	updateErr error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *f.reservation
	return &copied, nil
}

func (f *fakeRepo) GetApprovedByItem(_ context.Context, _ int64) ([]*domain.Reservation, error) {
	return f.approved, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func waitingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		ItemID:      5,
		RequesterID: 10,
		OwnerID:     20,
		StartDate:   testNow.Add(24 * time.Hour),
		EndDate:     testNow.Add(48 * time.Hour),
		Status:      domain.StatusWaiting,
	}
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	return NewUseCase(repo, &fakeTxManager{}, nopLogger{})
}

func TestUseCase_Execute_Approve(t *testing.T) {
	repo := &fakeRepo{reservation: waitingReservation()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 1, Approved: true})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, int64(1), repo.updatedID)
	assert.Equal(t, domain.StatusApproved, repo.updatedStatus)
}

func TestUseCase_Execute_Reject(t *testing.T) {
	repo := &fakeRepo{reservation: waitingReservation()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 1, Approved: false})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	assert.Equal(t, domain.StatusRejected, repo.updatedStatus)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{reservation: waitingReservation()})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, ReservationID: 1, Approved: true})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: -5, Approved: true})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{reservation: waitingReservation()})

	_, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 99, Approved: true})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_NotOwnerMaskedAsNotFound(t *testing.T) {
	// Автор брони и посторонние получают "не найдено", причина не раскрывается
	repo := &fakeRepo{reservation: waitingReservation()}
	uc := newTestUseCase(repo)

	for _, userID := range []int64{10, 777} {
		_, err := uc.Execute(context.Background(), &Request{UserID: userID, ReservationID: 1, Approved: true})
		require.ErrorIs(t, err, ErrReservationNotFound)
	}
	assert.Zero(t, repo.updatedID)
}

func TestUseCase_Execute_AlreadyDecided(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusApproved, domain.StatusRejected} {
		res := waitingReservation()
		res.Status = status
		repo := &fakeRepo{reservation: res}
		uc := newTestUseCase(repo)

		_, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 1, Approved: false})

		require.ErrorIs(t, err, ErrAlreadyDecided)
		assert.Zero(t, repo.updatedID)
	}
}

func TestUseCase_Execute_ApproveConflict(t *testing.T) {
	// Между созданием и одобрением другая бронь той же вещи успела стать
	// APPROVED на пересекающемся интервале
	res := waitingReservation()
	repo := &fakeRepo{
		reservation: res,
		approved: []*domain.Reservation{
			{
				ID:        2,
				ItemID:    res.ItemID,
				StartDate: res.StartDate.Add(-time.Hour),
				EndDate:   res.StartDate.Add(time.Hour),
				Status:    domain.StatusApproved,
			},
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 1, Approved: true})

	require.ErrorIs(t, err, ErrTimeConflict)
	assert.Zero(t, repo.updatedID)
}

func TestUseCase_Execute_RejectSkipsConflictCheck(t *testing.T) {
	// Отклонение не создает пересечений, проверка занятости не нужна
	res := waitingReservation()
	repo := &fakeRepo{
		reservation: res,
		approved: []*domain.Reservation{
			{
				ID:        2,
				ItemID:    res.ItemID,
				StartDate: res.StartDate,
				EndDate:   res.EndDate,
				Status:    domain.StatusApproved,
			},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 1, Approved: false})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
}

func TestUseCase_Execute_ConcurrentDecision(t *testing.T) {
	// Условный UPDATE не нашел строку в WAITING - конкурентное решение успело раньше
	repo := &fakeRepo{
		reservation: waitingReservation(),
		updateErr:   reservationRepo.ErrReservationNotFound,
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{UserID: 20, ReservationID: 1, Approved: true})

	require.ErrorIs(t, err, ErrAlreadyDecided)
}
