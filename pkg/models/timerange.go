// pkg/models/timerange.go

package models

import (
	"fmt"
	"time"
)

// TimeRange is a half-open interval [Start, End) in absolute time.
// Values are never mutated; merging builds a fresh extended range instead.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the range has positive width.
func (t TimeRange) Valid() bool {
	return t.Start.Before(t.End)
}

// Hours returns the duration of the range in whole hours.
func (t TimeRange) Hours() int {
	return int(t.End.Sub(t.Start).Hours())
}

// Equal reports whether both endpoints match as instants. Textual or
// location differences between equal instants do not matter.
func (t TimeRange) Equal(other TimeRange) bool {
	return t.Start.Equal(other.Start) && t.End.Equal(other.End)
}

// Before orders ranges by start instant.
func (t TimeRange) Before(other TimeRange) bool {
	return t.Start.Before(other.Start)
}

// String formats the range for notification messages, e.g.
// "2023-12-01 10:00 - 11:00 (1h)".
func (t TimeRange) String() string {
	return fmt.Sprintf("%s - %s (%dh)",
		t.Start.Format("2006-01-02 15:04"),
		t.End.Format("15:04"),
		t.Hours(),
	)
}
