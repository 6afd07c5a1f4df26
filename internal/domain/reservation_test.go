package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation_Decide(t *testing.T) {
	t.Run("одобрение из WAITING", func(t *testing.T) {
		r := &Reservation{Status: StatusWaiting}

		err := r.Decide(true)

		require.NoError(t, err)
		assert.Equal(t, StatusApproved, r.Status)
		assert.True(t, r.IsDecided())
		assert.True(t, r.IsApproved())
	})

	t.Run("отклонение из WAITING", func(t *testing.T) {
		r := &Reservation{Status: StatusWaiting}

		err := r.Decide(false)

		require.NoError(t, err)
		assert.Equal(t, StatusRejected, r.Status)
		assert.True(t, r.IsDecided())
		assert.False(t, r.IsApproved())
	})

	t.Run("APPROVED терминален", func(t *testing.T) {
		r := &Reservation{Status: StatusApproved}

		err := r.Decide(false)

		require.ErrorIs(t, err, ErrAlreadyDecided)
		assert.Equal(t, StatusApproved, r.Status)
	})

	t.Run("REJECTED терминален", func(t *testing.T) {
		r := &Reservation{Status: StatusRejected}

		err := r.Decide(true)

		require.ErrorIs(t, err, ErrAlreadyDecided)
		assert.Equal(t, StatusRejected, r.Status)
	})
}

func TestReservation_Overlaps(t *testing.T) {
	base := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	r := &Reservation{
		StartDate: base,
		EndDate:   base.Add(2 * time.Hour),
	}

	t.Run("вложенный интервал пересекается", func(t *testing.T) {
		assert.True(t, r.Overlaps(base.Add(30*time.Minute), base.Add(time.Hour)))
	})

	t.Run("частичное пересечение слева", func(t *testing.T) {
		assert.True(t, r.Overlaps(base.Add(-time.Hour), base.Add(time.Hour)))
	})

	t.Run("частичное пересечение справа", func(t *testing.T) {
		assert.True(t, r.Overlaps(base.Add(time.Hour), base.Add(3*time.Hour)))
	})

	t.Run("накрывающий интервал пересекается", func(t *testing.T) {
		assert.True(t, r.Overlaps(base.Add(-time.Hour), base.Add(3*time.Hour)))
	})

	t.Run("касание конца не пересечение", func(t *testing.T) {
		assert.False(t, r.Overlaps(base.Add(2*time.Hour), base.Add(3*time.Hour)))
	})

	t.Run("касание начала не пересечение", func(t *testing.T) {
		assert.False(t, r.Overlaps(base.Add(-time.Hour), base))
	})

	t.Run("непересекающиеся интервалы", func(t *testing.T) {
		assert.False(t, r.Overlaps(base.Add(5*time.Hour), base.Add(6*time.Hour)))
	})
}

func TestParseCategory(t *testing.T) {
	t.Run("известные категории", func(t *testing.T) {
		for _, s := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
			category, err := ParseCategory(s)
			require.NoError(t, err)
			assert.Equal(t, Category(s), category)
		}
	})

	t.Run("неизвестная категория", func(t *testing.T) {
		_, err := ParseCategory("UNSUPPORTED_STATUS")
		require.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("нижний регистр не принимается", func(t *testing.T) {
		_, err := ParseCategory("all")
		require.ErrorIs(t, err, ErrUnknownCategory)
	})
}
