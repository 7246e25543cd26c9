package internal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Today returns the current calendar day as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(dateLayout)
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD day. All date
// comparisons in this package are string-lexicographic and rely on this
// fixed width.
func ValidDate(date string) bool {
	if len(date) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset).Format(dateLayout), nil
}

// WeekEnd returns the Sunday for a given week start.
func WeekEnd(weekStart string) (string, error) {
	t, err := time.Parse(dateLayout, weekStart)
	if err != nil {
		return "", fmt.Errorf("invalid week start %q: %w", weekStart, err)
	}
	return t.AddDate(0, 0, 6).Format(dateLayout), nil
}

// FilterWeek returns the sessions falling inside the week starting at
// weekStart (inclusive Monday..Sunday), sorted chronologically.
func FilterWeek(sessions []*Session, weekStart string) ([]*Session, error) {
	weekEnd, err := WeekEnd(weekStart)
	if err != nil {
		return nil, err
	}
	filtered := make([]*Session, 0)
	for _, s := range sessions {
		if s.Date >= weekStart && s.Date <= weekEnd {
			filtered = append(filtered, s)
		}
	}
	SortByDate(filtered)
	return filtered, nil
}

// FilterMonth returns the sessions in the given "YYYY-MM" month, sorted
// chronologically.
func FilterMonth(sessions []*Session, month string) []*Session {
	prefix := month + "-"
	filtered := make([]*Session, 0)
	for _, s := range sessions {
		if strings.HasPrefix(s.Date, prefix) {
			filtered = append(filtered, s)
		}
	}
	SortByDate(filtered)
	return filtered
}

// SortByDate orders sessions chronologically, breaking date ties by id so
// the order is stable across runs.
func SortByDate(sessions []*Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].ID < sessions[j].ID
	})
}
