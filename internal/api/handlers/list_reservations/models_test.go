package list_reservations

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		query, err := ParseListQuery(url.Values{})

		require.NoError(t, err)
		assert.Equal(t, "ALL", query.State)
		assert.Equal(t, 0, query.From)
		assert.Equal(t, 10, query.Size)
	})

	t.Run("все параметры заданы", func(t *testing.T) {
		values := url.Values{}
		values.Set("state", "WAITING")
		values.Set("from", "20")
		values.Set("size", "5")

		query, err := ParseListQuery(values)

		require.NoError(t, err)
		assert.Equal(t, "WAITING", query.State)
		assert.Equal(t, 20, query.From)
		assert.Equal(t, 5, query.Size)
	})

	t.Run("нечисловой from", func(t *testing.T) {
		values := url.Values{}
		values.Set("from", "abc")

		_, err := ParseListQuery(values)

		require.Error(t, err)
	})

	t.Run("нечисловой size", func(t *testing.T) {
		values := url.Values{}
		values.Set("size", "1.5")

		_, err := ParseListQuery(values)

		require.Error(t, err)
	})
}
