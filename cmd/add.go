package cmd

import (
	"fmt"

	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

var (
	addID          string
	addDate        string
	addType        string
	addName        string
	addTemplate    string
	addPlannedMins int
	addPlannedZone string
	addPlannedRPE  int
	addActualMins  int
	addDistanceKm  float64
	addPaceAvg     string
	addHRAvg       int
	addHRMax       int
	addRPE         int
	addMood        int
	addSleep       int
	addKneePain    int
	addNotes       string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record or update a workout session",
	Long: `Record a workout session: the planned half (minutes, zone, RPE) plus
whatever actuals and wellness indicators you have. Missing actuals are
fine — they just don't count toward the session score.

Pass --id to rewrite an existing session in full (createdAt is preserved,
updatedAt refreshed). Use --template to prefill the planned fields from
the workout catalog (see 'trainlog templates').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := internal.Session{
			ID:          addID,
			Date:        addDate,
			WorkoutName: addName,
		}
		if s.ID == "" {
			s.ID = internal.NewSessionID()
		}
		if s.Date == "" {
			s.Date = internal.Today()
		}

		if addTemplate != "" {
			cfg := loadConfig()
			templates, err := internal.LoadTemplates(templatesPath(cfg))
			if err != nil {
				return err
			}
			t, ok := internal.FindTemplate(templates, addTemplate)
			if !ok {
				return fmt.Errorf("unknown template: %s (use 'trainlog templates' to list them)", addTemplate)
			}
			t.Apply(&s)
		}

		// Explicit flags win over template values.
		if cmd.Flags().Changed("type") {
			s.Type = internal.WorkoutType(addType)
		}
		if cmd.Flags().Changed("name") {
			s.WorkoutName = addName
		}
		if cmd.Flags().Changed("planned-minutes") {
			s.PlannedMinutes = addPlannedMins
		}
		if cmd.Flags().Changed("planned-zone") {
			s.PlannedZone = internal.Zone(addPlannedZone)
		}
		if cmd.Flags().Changed("planned-rpe") {
			s.PlannedRPE = intPtr(addPlannedRPE)
		}

		if s.Type == "" {
			s.Type = internal.WorkoutEasyRun
		}
		if s.PlannedZone == "" {
			s.PlannedZone = internal.ZoneZ2
		}

		s.ActualMinutes = changedInt(cmd, "actual-minutes", addActualMins)
		if cmd.Flags().Changed("distance") {
			s.DistanceKm = &addDistanceKm
		}
		if cmd.Flags().Changed("pace") {
			s.PaceAvg = &addPaceAvg
		}
		s.HRAvg = changedInt(cmd, "hr-avg", addHRAvg)
		s.HRMax = changedInt(cmd, "hr-max", addHRMax)
		s.RPE = changedInt(cmd, "rpe", addRPE)
		s.Mood = changedInt(cmd, "mood", addMood)
		s.Sleep = changedInt(cmd, "sleep", addSleep)
		s.KneePain = changedInt(cmd, "knee-pain", addKneePain)
		s.Notes = addNotes

		if err := validateSession(&s); err != nil {
			return err
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		now := internal.NowMillis()
		s.CreatedAt = now
		s.UpdatedAt = now

		// Editing rewrites the full record but keeps the original createdAt.
		if addID != "" {
			existing, err := store.ListAll()
			if err != nil {
				return fmt.Errorf("failed to load sessions: %w", err)
			}
			for _, e := range existing {
				if e.ID == s.ID {
					s.CreatedAt = e.CreatedAt
					break
				}
			}
		}

		if err := store.InsertOrReplace(&s); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		score := internal.ScoreSession(&s)
		fmt.Printf("Saved %s (%s %s, score %d)\n", s.ID, s.Date, s.Type, score.Score)
		if score.KneeRed {
			fmt.Println(redStyle.Render("Knee pain is high — treat this week carefully."))
		} else if score.KneeYellow {
			fmt.Println(yellowStyle.Render("Knee pain is elevated — keep an eye on it."))
		}
		return nil
	},
}

func intPtr(v int) *int {
	return &v
}

// changedInt returns a pointer only when the flag was actually set, so an
// unset flag stays "not recorded" rather than zero.
func changedInt(cmd *cobra.Command, name string, val int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return intPtr(val)
}

func validateSession(s *internal.Session) error {
	if !internal.ValidDate(s.Date) {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s.Date)
	}
	if !internal.ValidWorkoutType(string(s.Type)) {
		return fmt.Errorf("invalid workout type %q (valid: %v)", s.Type, internal.WorkoutTypes())
	}
	if !internal.ValidZone(string(s.PlannedZone)) {
		return fmt.Errorf("invalid planned zone %q (valid: Z1-Z4)", s.PlannedZone)
	}
	if s.PlannedMinutes < 0 {
		return fmt.Errorf("planned minutes must be non-negative")
	}
	if err := checkRange(s.PlannedRPE, "planned RPE", 1, 10); err != nil {
		return err
	}
	if err := checkRange(s.RPE, "RPE", 1, 10); err != nil {
		return err
	}
	if err := checkRange(s.Mood, "mood", 1, 5); err != nil {
		return err
	}
	if err := checkRange(s.Sleep, "sleep", 1, 5); err != nil {
		return err
	}
	if err := checkRange(s.KneePain, "knee pain", 0, 10); err != nil {
		return err
	}
	return nil
}

func checkRange(v *int, name string, min, max int) error {
	if v == nil {
		return nil
	}
	if *v < min || *v > max {
		return fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addID, "id", "", "Session id to rewrite (default: create a new session)")
	addCmd.Flags().StringVar(&addDate, "date", "", "Session date YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVar(&addType, "type", "", "Workout type (Easy Run, Quality, Hills, Long Run, Gravel, Gym)")
	addCmd.Flags().StringVar(&addName, "name", "", "Workout name")
	addCmd.Flags().StringVar(&addTemplate, "template", "", "Prefill planned fields from a template key")
	addCmd.Flags().IntVar(&addPlannedMins, "planned-minutes", 0, "Planned duration in minutes")
	addCmd.Flags().StringVar(&addPlannedZone, "planned-zone", "", "Planned HR zone (Z1-Z4)")
	addCmd.Flags().IntVar(&addPlannedRPE, "planned-rpe", 0, "Planned RPE (1-10)")
	addCmd.Flags().IntVar(&addActualMins, "actual-minutes", 0, "Actual duration in minutes")
	addCmd.Flags().Float64Var(&addDistanceKm, "distance", 0, "Distance in km")
	addCmd.Flags().StringVar(&addPaceAvg, "pace", "", "Average pace mm:ss per km")
	addCmd.Flags().IntVar(&addHRAvg, "hr-avg", 0, "Average heart rate")
	addCmd.Flags().IntVar(&addHRMax, "hr-max", 0, "Max heart rate")
	addCmd.Flags().IntVar(&addRPE, "rpe", 0, "Perceived effort (1-10)")
	addCmd.Flags().IntVar(&addMood, "mood", 0, "Mood (1-5)")
	addCmd.Flags().IntVar(&addSleep, "sleep", 0, "Sleep quality (1-5)")
	addCmd.Flags().IntVar(&addKneePain, "knee-pain", 0, "Knee pain (0-10)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form notes")
}
