// pkg/pipeline/timewindow.go

package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"courtwatch/pkg/models"
)

// withinActiveHours reports whether t falls inside any of the configured
// wall-clock windows. An empty list means polling is always active. Windows
// whose end precedes their start cross midnight. Malformed windows are
// ignored.
func withinActiveHours(windows []models.ClockWindow, t time.Time) bool {
	if len(windows) == 0 {
		return true
	}

	current := t.Hour()*60 + t.Minute()

	for _, window := range windows {
		start, err := parseClock(window.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(window.End)
		if err != nil {
			continue
		}

		if end < start {
			// Window crosses midnight
			if current >= start || current <= end {
				return true
			}
		} else if current >= start && current <= end {
			return true
		}
	}

	return false
}

// parseClock converts an HH:MM string to minutes since midnight.
func parseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %s", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %s: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %s: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %s", clock)
	}

	return hour*60 + minute, nil
}
