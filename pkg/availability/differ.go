// pkg/availability/differ.go

package availability

import "courtwatch/pkg/models"

// Diff returns the entries of current that have no exact match in previous.
// A match requires both endpoints equal as instants, so a range that grew or
// shrank since the last run counts as entirely new. Result order follows
// current.
func Diff(current, previous []models.TimeRange) []models.TimeRange {
	var fresh []models.TimeRange
	for _, slot := range current {
		if !containsRange(previous, slot) {
			fresh = append(fresh, slot)
		}
	}
	return fresh
}

func containsRange(ranges []models.TimeRange, target models.TimeRange) bool {
	for _, r := range ranges {
		if r.Equal(target) {
			return true
		}
	}
	return false
}
