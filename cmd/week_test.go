package cmd

import (
	"testing"

	"github.com/iksnae/trainlog/internal"
	"github.com/iksnae/trainlog/testutil"
)

func TestWeekCommand(t *testing.T) {
	db := testDBPath(t)
	store := openTestStore(t, db)
	testutil.SeedStore(t, store,
		testutil.NewCompletedSession("s1", "2026-02-23"),
		testutil.NewCompletedSession("s2", "2026-02-25"))

	// Any date inside the week picks up both sessions.
	if err := runCommand(t, "week", "--db", db, "--date", "2026-02-27"); err != nil {
		t.Errorf("week failed: %v", err)
	}
}

func TestWeekCommand_EmptyWeek(t *testing.T) {
	if err := runCommand(t, "week", "--db", testDBPath(t), "--date", "2026-02-23"); err != nil {
		t.Errorf("week on empty store failed: %v", err)
	}
}

func TestWeekCommand_BadDate(t *testing.T) {
	if err := runCommand(t, "week", "--db", testDBPath(t), "--date", "soon"); err == nil {
		t.Error("bad date accepted")
	}
}

func TestDisplayWeek(t *testing.T) {
	tests := []struct {
		name     string
		sessions []*internal.Session
	}{
		{name: "empty week"},
		{
			name: "week with knee flags",
			sessions: []*internal.Session{
				testutil.NewCompletedSession("s1", "2026-02-23"),
				func() *internal.Session {
					s := testutil.NewCompletedSession("s2", "2026-02-24")
					s.KneePain = testutil.IntPtr(5)
					return s
				}(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := internal.SummarizeWeek(tt.sessions)
			// Must render without panicking for any summary.
			displayWeek("2026-02-23", "2026-03-01", tt.sessions, summary)
		})
	}
}
