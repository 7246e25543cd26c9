package internal

// Shared helpers for the package tests.

func intp(v int) *int {
	return &v
}

func strp(s string) *string {
	return &s
}

// plannedSession returns a session carrying only the required planned
// fields, with nothing scoreable and no wellness data.
func plannedSession(id, date string) *Session {
	return &Session{
		ID:             id,
		Date:           date,
		Type:           WorkoutEasyRun,
		WorkoutName:    "Easy run 50 min",
		PlannedMinutes: 50,
		PlannedZone:    ZoneZ2,
		CreatedAt:      1700000000000,
		UpdatedAt:      1700000000000,
	}
}

// rpeOnlySession returns a planned session whose RPE factor alone is
// evaluable, so the final score is round((25-8*|diff|)/25*100).
func rpeOnlySession(id, date string, plannedRPE, rpe int) *Session {
	s := plannedSession(id, date)
	s.PlannedRPE = intp(plannedRPE)
	s.RPE = intp(rpe)
	return s
}
