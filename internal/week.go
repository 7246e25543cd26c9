package internal

import "math"

// Status is the weekly stoplight classification.
type Status string

const (
	StatusGreen  Status = "Green"
	StatusYellow Status = "Yellow"
	StatusRed    Status = "Red"
)

// kneeRiskThreshold is the number of knee-yellow sessions in a week that
// counts as a pattern. It is an absolute count, not a fraction of the week.
const kneeRiskThreshold = 2

// Fixed advisory text per status. Static lookups, never generated.
var adjustments = map[Status]string{
	StatusGreen:  "Increase 5-10% (or +10 min on the long run / +1 quality block)",
	StatusYellow: "Hold volume, back off the intensity a little",
	StatusRed:    "Deload: -20/30% volume and no intensity (Zone 2 only)",
}

var coachMessages = map[Status]string{
	StatusGreen:  "Solid work. If the knee stays quiet we add a little more: put 10 extra minutes on the long run or one more rep in the quality session.",
	StatusYellow: "Decent week, but there are signs of fatigue. Keep the volume and run the quality work more controlled. Prioritize sleep.",
	StatusRed:    "Careful: this week calls for a deload. We cut volume and skip intensity so the next block starts fresh and the knee stays protected.",
}

// WeekSummary is the weekly training-load assessment.
type WeekSummary struct {
	AvgScore     int
	Status       Status
	Adjustment   string
	CoachMessage string
}

// classify picks the stoplight band. Red wins over everything; Green
// requires both a high average and a quiet knee; Yellow is the fallback.
func classify(avgScore int, kneeRed, kneeRisk bool) Status {
	switch {
	case avgScore < 60 || kneeRed || kneeRisk:
		return StatusRed
	case avgScore >= 75:
		return StatusGreen
	default:
		return StatusYellow
	}
}

// SummarizeWeek reduces one week of sessions to a summary. An empty week
// averages 0 and therefore classifies Red, worse than a single
// unscoreable session, which would score 50.
func SummarizeWeek(sessions []*Session) WeekSummary {
	var sum int
	kneeRed := false
	kneeYellowCount := 0

	for _, s := range sessions {
		sc := ScoreSession(s)
		sum += sc.Score
		if sc.KneeRed {
			kneeRed = true
		}
		if sc.KneeYellow {
			kneeYellowCount++
		}
	}

	avg := 0
	if len(sessions) > 0 {
		avg = int(math.Round(float64(sum) / float64(len(sessions))))
	}

	status := classify(avg, kneeRed, kneeYellowCount >= kneeRiskThreshold)

	return WeekSummary{
		AvgScore:     avg,
		Status:       status,
		Adjustment:   adjustments[status],
		CoachMessage: coachMessages[status],
	}
}
