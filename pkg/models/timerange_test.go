// pkg/models/timerange_test.go

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRangeValid(t *testing.T) {
	start := time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, TimeRange{Start: start, End: start.Add(time.Hour)}.Valid())
	assert.False(t, TimeRange{Start: start, End: start}.Valid())
	assert.False(t, TimeRange{Start: start.Add(time.Hour), End: start}.Valid())
}

func TestTimeRangeHours(t *testing.T) {
	start := time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, TimeRange{Start: start, End: start.Add(time.Hour)}.Hours())
	assert.Equal(t, 3, TimeRange{Start: start, End: start.Add(3 * time.Hour)}.Hours())
}

func TestTimeRangeEqualIsInstantBased(t *testing.T) {
	eet := time.FixedZone("EET", 2*60*60)
	local := TimeRange{
		Start: time.Date(2023, 12, 1, 10, 0, 0, 0, eet),
		End:   time.Date(2023, 12, 1, 11, 0, 0, 0, eet),
	}
	utc := TimeRange{
		Start: time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC),
	}

	assert.True(t, local.Equal(utc))
	assert.False(t, local.Equal(TimeRange{Start: local.Start, End: local.End.Add(time.Hour)}))
}

func TestTimeRangeBefore(t *testing.T) {
	start := time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC)
	earlier := TimeRange{Start: start, End: start.Add(time.Hour)}
	later := TimeRange{Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour)}

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
}

func TestTimeRangeString(t *testing.T) {
	eet := time.FixedZone("EET", 2*60*60)
	slot := TimeRange{
		Start: time.Date(2023, 12, 1, 10, 0, 0, 0, eet),
		End:   time.Date(2023, 12, 1, 13, 0, 0, 0, eet),
	}

	assert.Equal(t, "2023-12-01 10:00 - 13:00 (3h)", slot.String())
}
