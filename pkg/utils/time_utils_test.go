package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	t.Parallel()

	t.Run("advances by whole calendar months", func(t *testing.T) {
		t.Parallel()
		start := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
		got := time.Unix(AddMonths(start.Unix(), 1), 0).UTC()
		assert.Equal(t, time.Date(2025, time.April, 15, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("month-end overflow rolls forward", func(t *testing.T) {
		t.Parallel()
		// Jan 31 + 1 month lands in early March, per time.AddDate.
		start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
		got := time.Unix(AddMonths(start.Unix(), 1), 0).UTC()
		assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("spans year boundaries", func(t *testing.T) {
		t.Parallel()
		start := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)
		got := time.Unix(AddMonths(start.Unix(), 3), 0).UTC()
		assert.Equal(t, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestFormatRFC3339(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatRFC3339(0))
	assert.Equal(t, "", FormatRFC3339(-5))

	ts := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, "2025-06-01T12:00:00Z", FormatRFC3339(ts))
}
