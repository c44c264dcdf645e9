// pkg/availability/calculator.go

package availability

import (
	"sort"
	"time"

	"courtwatch/pkg/models"
)

// slotStep is the quantization step for candidate slots.
const slotStep = time.Hour

// Compute returns the maximal free time ranges inside the given opening
// windows at one-hour granularity. Each opening window is stepped through in
// one-hour increments from its start; a final partial hour is dropped. A
// candidate hour is blocked when its start instant falls inside any
// reservation [r.Start, r.End). Free hours are then merged wherever one ends
// exactly where the next begins.
//
// A reservation that starts mid-hour does not block the hour it starts in,
// only the later hours it covers. This mirrors the upstream booking system's
// own slot accounting.
//
// Windows with Start >= End are dropped rather than treated as an error.
func Compute(openings, reservations []models.TimeRange) []models.TimeRange {
	var slots []models.TimeRange

	for _, open := range openings {
		if !open.Valid() {
			continue
		}
		for cur := open.Start; !cur.Add(slotStep).After(open.End); cur = cur.Add(slotStep) {
			if reserved(cur, reservations) {
				continue
			}
			slots = append(slots, models.TimeRange{Start: cur, End: cur.Add(slotStep)})
		}
	}

	// Source windows arrive in ascending order, but merging must not
	// depend on that.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})

	return merge(slots)
}

// reserved reports whether the instant lies inside any reservation.
func reserved(start time.Time, reservations []models.TimeRange) bool {
	for _, r := range reservations {
		if !start.Before(r.Start) && start.Before(r.End) {
			return true
		}
	}
	return false
}

// merge joins runs of slots where one range ends exactly where the next
// starts. Input must be sorted by start.
func merge(slots []models.TimeRange) []models.TimeRange {
	var combined []models.TimeRange
	for _, slot := range slots {
		if n := len(combined); n > 0 && combined[n-1].End.Equal(slot.Start) {
			combined[n-1] = models.TimeRange{Start: combined[n-1].Start, End: slot.End}
			continue
		}
		combined = append(combined, slot)
	}
	return combined
}
