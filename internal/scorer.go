package internal

import "math"

// DefaultZ2PaceSeconds is the reference Z2 pace (6:13 per km) the pace
// factor scores against.
const DefaultZ2PaceSeconds = 6*60 + 13

// SessionScore is the result of scoring a single session.
type SessionScore struct {
	Score      int // 0-100
	KneeRed    bool
	KneeYellow bool
}

// subScore is the outcome of one scoring factor: evaluated with a 0-25
// value, or not applicable because a required input is missing.
type subScore struct {
	points    float64
	evaluated bool
}

func scored(points float64) subScore {
	return subScore{points: points, evaluated: true}
}

func skipped() subScore {
	return subScore{}
}

func clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}

// durationFactor rewards time-on-feet close to plan, with a symmetric
// penalty for over- and under-shooting.
func durationFactor(s *Session) subScore {
	if s.ActualMinutes == nil || s.PlannedMinutes <= 0 {
		return skipped()
	}
	ratio := float64(*s.ActualMinutes) / float64(s.PlannedMinutes)
	return scored(clamp(25-math.Abs(1-ratio)*40, 0, 25))
}

// zoneFactor scores average heart rate against the planned zone's band.
func zoneFactor(s *Session) subScore {
	if s.HRAvg == nil {
		return skipped()
	}
	hr := *s.HRAvg
	switch s.PlannedZone {
	case ZoneZ2:
		switch {
		case hr <= 155:
			return scored(25)
		case hr <= 160:
			return scored(18)
		default:
			return scored(8)
		}
	case ZoneZ3:
		if hr >= 153 && hr <= 165 {
			return scored(25)
		}
		return scored(14)
	case ZoneZ4:
		if hr >= 160 {
			return scored(25)
		}
		return scored(12)
	default:
		if hr <= 145 {
			return scored(25)
		}
		return scored(12)
	}
}

func rpeFactor(s *Session) subScore {
	if s.RPE == nil || s.PlannedRPE == nil {
		return skipped()
	}
	diff := math.Abs(float64(*s.RPE - *s.PlannedRPE))
	return scored(clamp(25-diff*8, 0, 25))
}

// paceFactor compares average pace against the Z2 reference. Only Z2 has a
// real reference pace; other zones flat-score 18. An unparseable pace skips
// the factor rather than failing.
func paceFactor(s *Session) subScore {
	if s.PaceAvg == nil {
		return skipped()
	}
	sec, ok := PaceToSeconds(*s.PaceAvg)
	if !ok {
		return skipped()
	}
	if s.PlannedZone != ZoneZ2 {
		return scored(18)
	}
	diff := sec - DefaultZ2PaceSeconds
	switch {
	case diff <= 0:
		return scored(25)
	case diff <= 20:
		return scored(22)
	case diff <= 45:
		return scored(16)
	default:
		return scored(8)
	}
}

// ScoreSession maps one session to a 0-100 score plus knee risk flags.
// Each factor contributes 0-25 and only counts when its inputs are present;
// the sum is rescaled over the evaluated factors. A session with nothing to
// score lands on a neutral 50, never an error.
func ScoreSession(s *Session) SessionScore {
	factors := []subScore{
		durationFactor(s),
		zoneFactor(s),
		rpeFactor(s),
		paceFactor(s),
	}

	var total, possible float64
	for _, f := range factors {
		if !f.evaluated {
			continue
		}
		total += f.points
		possible += 25
	}

	score := 50
	if possible > 0 {
		score = int(math.Round(total / possible * 100))
	}

	kneePain := 0
	if s.KneePain != nil {
		kneePain = *s.KneePain
	}

	return SessionScore{
		Score:      score,
		KneeRed:    kneePain >= 5,
		KneeYellow: kneePain >= 4,
	}
}
