package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDailySlots(t *testing.T) {
	t.Run("weekday yields eight hourly slots", func(t *testing.T) {
		// 2026-09-02 is a Wednesday.
		day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
		slots := GenerateDailySlots(day)

		require.Len(t, slots, 8)
		assert.Equal(t, 9, slots[0].Start.Hour())
		assert.Equal(t, 16, slots[len(slots)-1].Start.Hour())
	})

	t.Run("slots are contiguous one-hour blocks", func(t *testing.T) {
		day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
		slots := GenerateDailySlots(day)

		for i, slot := range slots {
			assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
			assert.Zero(t, slot.Start.Minute())
			if i > 0 {
				assert.Equal(t, slots[i-1].End, slot.Start)
			}
		}
	})

	t.Run("saturday yields no slots", func(t *testing.T) {
		day := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, GenerateDailySlots(day))
	})

	t.Run("sunday yields no slots", func(t *testing.T) {
		day := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, GenerateDailySlots(day))
	})

	t.Run("slot times keep the day's location", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		day := time.Date(2026, time.September, 3, 0, 0, 0, 0, loc)
		slots := GenerateDailySlots(day)

		require.NotEmpty(t, slots)
		assert.Equal(t, loc, slots[0].Start.Location())
	})
}
