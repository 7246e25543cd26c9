package internal

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		avg      int
		kneeRed  bool
		kneeRisk bool
		want     Status
	}{
		{name: "green boundary", avg: 75, want: StatusGreen},
		{name: "just under green", avg: 74, want: StatusYellow},
		{name: "yellow floor", avg: 60, want: StatusYellow},
		{name: "red boundary", avg: 59, want: StatusRed},
		{name: "zero", avg: 0, want: StatusRed},
		{name: "knee red overrides high average", avg: 90, kneeRed: true, want: StatusRed},
		{name: "knee risk overrides high average", avg: 90, kneeRisk: true, want: StatusRed},
		{name: "perfect week", avg: 100, want: StatusGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.avg, tt.kneeRed, tt.kneeRisk); got != tt.want {
				t.Errorf("classify(%d, %v, %v) = %s, want %s",
					tt.avg, tt.kneeRed, tt.kneeRisk, got, tt.want)
			}
		})
	}
}

func TestSummarizeWeek_Empty(t *testing.T) {
	// An empty week is explicitly worse than an unscoreable session: the
	// average is 0, not the scorer's neutral 50.
	got := SummarizeWeek(nil)

	if got.AvgScore != 0 {
		t.Errorf("AvgScore = %d, want 0", got.AvgScore)
	}
	if got.Status != StatusRed {
		t.Errorf("Status = %s, want Red", got.Status)
	}
	if got.Adjustment != adjustments[StatusRed] {
		t.Errorf("Adjustment = %q, want the fixed Red directive", got.Adjustment)
	}
	if got.CoachMessage != coachMessages[StatusRed] {
		t.Errorf("CoachMessage = %q, want the fixed Red message", got.CoachMessage)
	}
}

func TestSummarizeWeek_Averaging(t *testing.T) {
	// Scores 100 (perfect RPE) and 50 (nothing scoreable) average to 75.
	sessions := []*Session{
		rpeOnlySession("s1", "2026-02-23", 5, 5),
		plannedSession("s2", "2026-02-24"),
	}

	got := SummarizeWeek(sessions)
	if got.AvgScore != 75 {
		t.Errorf("AvgScore = %d, want 75", got.AvgScore)
	}
	if got.Status != StatusGreen {
		t.Errorf("Status = %s, want Green", got.Status)
	}

	// Adding a 68 pulls the mean to round(218/3) = 73 → Yellow.
	sessions = append(sessions, rpeOnlySession("s3", "2026-02-25", 5, 6))
	got = SummarizeWeek(sessions)
	if got.AvgScore != 73 {
		t.Errorf("AvgScore = %d, want 73", got.AvgScore)
	}
	if got.Status != StatusYellow {
		t.Errorf("Status = %s, want Yellow", got.Status)
	}
}

func TestSummarizeWeek_LowAverageIsRed(t *testing.T) {
	// Scores 50 and 68 average to 59, just under the Red cutoff.
	sessions := []*Session{
		plannedSession("s1", "2026-02-23"),
		rpeOnlySession("s2", "2026-02-24", 5, 6),
	}

	got := SummarizeWeek(sessions)
	if got.AvgScore != 59 {
		t.Errorf("AvgScore = %d, want 59", got.AvgScore)
	}
	if got.Status != StatusRed {
		t.Errorf("Status = %s, want Red", got.Status)
	}
}

func TestSummarizeWeek_KneeRedOverridesScore(t *testing.T) {
	// A strong week with one high-pain session must still go Red.
	sessions := make([]*Session, 0, 7)
	for i, date := range []string{
		"2026-02-23", "2026-02-24", "2026-02-25", "2026-02-26",
		"2026-02-27", "2026-02-28", "2026-03-01",
	} {
		s := rpeOnlySession("s"+date, date, 5, 5)
		if i == 3 {
			s.KneePain = intp(5)
		}
		sessions = append(sessions, s)
	}

	got := SummarizeWeek(sessions)
	if got.AvgScore < 75 {
		t.Fatalf("AvgScore = %d, expected a high-scoring week", got.AvgScore)
	}
	if got.Status != StatusRed {
		t.Errorf("Status = %s, want Red despite average %d", got.Status, got.AvgScore)
	}
}

func TestSummarizeWeek_KneeYellowPattern(t *testing.T) {
	week := func(yellowCount int) []*Session {
		dates := []string{"2026-02-23", "2026-02-24", "2026-02-25"}
		sessions := make([]*Session, 0, len(dates))
		for i, date := range dates {
			s := rpeOnlySession("s"+date, date, 5, 5)
			if i < yellowCount {
				s.KneePain = intp(4)
			}
			sessions = append(sessions, s)
		}
		return sessions
	}

	// A single yellow session is tolerated.
	if got := SummarizeWeek(week(1)); got.Status != StatusGreen {
		t.Errorf("one yellow: Status = %s, want Green", got.Status)
	}

	// Two or more is a pattern.
	if got := SummarizeWeek(week(2)); got.Status != StatusRed {
		t.Errorf("two yellows: Status = %s, want Red", got.Status)
	}
}

func TestSummarizeWeek_Deterministic(t *testing.T) {
	sessions := []*Session{
		rpeOnlySession("s1", "2026-02-23", 5, 6),
		plannedSession("s2", "2026-02-24"),
	}

	first := SummarizeWeek(sessions)
	second := SummarizeWeek(sessions)
	if first != second {
		t.Errorf("repeated summaries differ: %+v vs %+v", first, second)
	}
}
