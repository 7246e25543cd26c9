package internal

import "testing"

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-02-23", "2026-02-23"}, // Monday maps to itself
		{"2026-02-25", "2026-02-23"}, // Wednesday
		{"2026-03-01", "2026-02-23"}, // Sunday closes the week
		{"2026-03-02", "2026-03-02"}, // next Monday starts a new one
		{"2026-01-01", "2025-12-29"}, // week spanning a year boundary
	}

	for _, tt := range tests {
		got, err := WeekStart(tt.date)
		if err != nil {
			t.Fatalf("WeekStart(%q) error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("WeekStart(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}

	if _, err := WeekStart("not-a-date"); err == nil {
		t.Error("WeekStart accepted a malformed date")
	}
}

func TestWeekEnd(t *testing.T) {
	got, err := WeekEnd("2026-02-23")
	if err != nil {
		t.Fatalf("WeekEnd error: %v", err)
	}
	if got != "2026-03-01" {
		t.Errorf("WeekEnd = %q, want 2026-03-01", got)
	}
}

func TestFilterWeek(t *testing.T) {
	sessions := []*Session{
		plannedSession("before", "2026-02-22"),
		plannedSession("sunday", "2026-03-01"),
		plannedSession("monday", "2026-02-23"),
		plannedSession("midweek", "2026-02-25"),
		plannedSession("after", "2026-03-02"),
	}

	got, err := FilterWeek(sessions, "2026-02-23")
	if err != nil {
		t.Fatalf("FilterWeek error: %v", err)
	}

	wantIDs := []string{"monday", "midweek", "sunday"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d sessions, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFilterMonth(t *testing.T) {
	sessions := []*Session{
		plannedSession("dec", "2026-12-05"),
		plannedSession("feb2", "2026-02-28"),
		plannedSession("feb1", "2026-02-01"),
		plannedSession("mar", "2026-03-01"),
	}

	got := FilterMonth(sessions, "2026-02")
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[0].ID != "feb1" || got[1].ID != "feb2" {
		t.Errorf("got order [%s, %s], want [feb1, feb2]", got[0].ID, got[1].ID)
	}

	// Prefix matching must not confuse 2026-02 with 2026-12.
	if got := FilterMonth(sessions, "2026-1"); len(got) != 0 {
		t.Errorf("partial month prefix matched %d sessions, want 0", len(got))
	}
}

func TestSortByDate_StableTieBreak(t *testing.T) {
	sessions := []*Session{
		plannedSession("b", "2026-02-23"),
		plannedSession("a", "2026-02-23"),
	}
	SortByDate(sessions)
	if sessions[0].ID != "a" {
		t.Errorf("tie broken by %s first, want a", sessions[0].ID)
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2026-02-23", "2000-01-01"}
	invalid := []string{"", "2026-2-23", "2026-02-30", "23-02-2026", "2026-02-23T00:00:00Z"}

	for _, d := range valid {
		if !ValidDate(d) {
			t.Errorf("ValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if ValidDate(d) {
			t.Errorf("ValidDate(%q) = true, want false", d)
		}
	}
}
