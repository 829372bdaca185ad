//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"
	"time"

	"tableside/internal/domain/reservation"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocal(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	t.Run("converts picker input to UTC", func(t *testing.T) {
		got, err := reservation.ParseLocal("2026-09-12T19:30", tokyo)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, time.Date(2026, 9, 12, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("tolerates seconds in the value", func(t *testing.T) {
		got, err := reservation.ParseLocal("2026-09-12T19:30:45", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 45, got.Second())
	})

	t.Run("empty value is a validation error", func(t *testing.T) {
		_, err := reservation.ParseLocal("", time.UTC)
		assert.ErrorIs(t, err, errs.ErrMissingDatetime)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := reservation.ParseLocal("next friday", time.UTC)
		assert.Error(t, err)
	})
}

func TestInstantJSON(t *testing.T) {
	t.Run("marshals as millisecond UTC", func(t *testing.T) {
		i := reservation.Instant(time.Date(2026, 9, 12, 10, 30, 0, 0, time.UTC))
		data, err := json.Marshal(i)
		require.NoError(t, err)
		assert.Equal(t, `"2026-09-12T10:30:00.000Z"`, string(data))
	})

	t.Run("normalizes zoned values to UTC on marshal", func(t *testing.T) {
		loc := time.FixedZone("plus9", 9*3600)
		i := reservation.Instant(time.Date(2026, 9, 12, 19, 30, 0, 0, loc))
		data, err := json.Marshal(i)
		require.NoError(t, err)
		assert.Equal(t, `"2026-09-12T10:30:00.000Z"`, string(data))
	})

	t.Run("round trips through RFC3339", func(t *testing.T) {
		var i reservation.Instant
		require.NoError(t, json.Unmarshal([]byte(`"2026-09-12T10:30:00.000Z"`), &i))
		assert.True(t, i.Time().Equal(time.Date(2026, 9, 12, 10, 30, 0, 0, time.UTC)))
	})
}
