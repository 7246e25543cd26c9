package internal

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkoutType is one of the closed set of workout categories.
type WorkoutType string

const (
	WorkoutEasyRun WorkoutType = "Easy Run"
	WorkoutQuality WorkoutType = "Quality"
	WorkoutHills   WorkoutType = "Hills"
	WorkoutLongRun WorkoutType = "Long Run"
	WorkoutGravel  WorkoutType = "Gravel"
	WorkoutGym     WorkoutType = "Gym"
)

// WorkoutTypes returns every valid workout category.
func WorkoutTypes() []WorkoutType {
	return []WorkoutType{
		WorkoutEasyRun,
		WorkoutQuality,
		WorkoutHills,
		WorkoutLongRun,
		WorkoutGravel,
		WorkoutGym,
	}
}

// ValidWorkoutType reports whether s names a known workout category.
func ValidWorkoutType(s string) bool {
	for _, t := range WorkoutTypes() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Zone is a planned heart-rate training zone.
type Zone string

const (
	ZoneZ1 Zone = "Z1"
	ZoneZ2 Zone = "Z2"
	ZoneZ3 Zone = "Z3"
	ZoneZ4 Zone = "Z4"
)

// ValidZone reports whether s is one of Z1..Z4.
func ValidZone(s string) bool {
	switch Zone(s) {
	case ZoneZ1, ZoneZ2, ZoneZ3, ZoneZ4:
		return true
	}
	return false
}

// Session is one recorded or planned workout. Planned fields are always
// present; actual fields are pointers because absence ("not yet recorded")
// is distinct from zero.
type Session struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Type        WorkoutType `json:"type"`
	WorkoutName string      `json:"workoutName"`

	PlannedMinutes int  `json:"plannedMinutes"`
	PlannedZone    Zone `json:"plannedZone"`
	PlannedRPE     *int `json:"plannedRpe,omitempty"`

	ActualMinutes *int     `json:"actualMinutes,omitempty"`
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
	PaceAvg       *string  `json:"paceAvg,omitempty"` // "mm:ss" per km
	HRAvg         *int     `json:"hrAvg,omitempty"`
	HRMax         *int     `json:"hrMax,omitempty"`

	RPE      *int   `json:"rpe,omitempty"`  // 1-10
	Mood     *int   `json:"mood,omitempty"` // 1-5
	Sleep    *int   `json:"sleep,omitempty"`
	KneePain *int   `json:"kneePain,omitempty"` // 0-10
	Notes    string `json:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt"` // epoch milliseconds, immutable
	UpdatedAt int64 `json:"updatedAt"` // refreshed on every write
}

// NewSessionID returns a fresh opaque session id.
func NewSessionID() string {
	return uuid.NewString()
}

// NowMillis returns the current time in epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// PaceToSeconds parses a "mm:ss" pace string into total seconds.
// Returns false for anything that does not parse.
func PaceToSeconds(pace string) (int, bool) {
	minStr, secStr, found := strings.Cut(pace, ":")
	if !found {
		return 0, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil || min < 0 {
		return 0, false
	}
	sec, err := strconv.Atoi(strings.TrimSpace(secStr))
	if err != nil || sec < 0 {
		return 0, false
	}
	return min*60 + sec, true
}
