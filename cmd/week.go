package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

var weekDate string

var (
	greenStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	yellowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	redStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().Bold(true)
)

func statusStyle(status internal.Status) lipgloss.Style {
	switch status {
	case internal.StatusGreen:
		return greenStyle
	case internal.StatusRed:
		return redStyle
	default:
		return yellowStyle
	}
}

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly training-load stoplight",
	Long: `Summarize the week (Monday through Sunday) containing a given date:
average session score, stoplight status, suggested adjustment and a
short coach message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := weekDate
		if date == "" {
			date = internal.Today()
		}

		weekStart, err := internal.WeekStart(date)
		if err != nil {
			return err
		}
		weekEnd, err := internal.WeekEnd(weekStart)
		if err != nil {
			return err
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		sessions, err := store.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		weekSessions, err := internal.FilterWeek(sessions, weekStart)
		if err != nil {
			return err
		}

		summary := internal.SummarizeWeek(weekSessions)
		displayWeek(weekStart, weekEnd, weekSessions, summary)
		return nil
	},
}

func displayWeek(weekStart, weekEnd string, sessions []*internal.Session, summary internal.WeekSummary) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Week %s → %s · %d session(s)", weekStart, weekEnd, len(sessions))))
	fmt.Println()

	for _, s := range sessions {
		sc := internal.ScoreSession(s)
		knee := ""
		if sc.KneeRed {
			knee = " " + redStyle.Render("[knee!]")
		} else if sc.KneeYellow {
			knee = " " + yellowStyle.Render("[knee]")
		}
		name := s.WorkoutName
		if name == "" {
			name = string(s.Type)
		}
		fmt.Printf("  %s  %s  %s%s\n",
			dateStyle.Render(s.Date),
			scoreStyle.Render(strconv.Itoa(sc.Score)),
			name,
			knee)
	}
	if len(sessions) > 0 {
		fmt.Println()
	}

	fmt.Printf("%s %s — %s %d\n",
		labelStyle.Render("Stoplight:"),
		statusStyle(summary.Status).Render(string(summary.Status)),
		labelStyle.Render("Score:"),
		summary.AvgScore)
	fmt.Printf("%s %s\n", labelStyle.Render("Adjustment:"), summary.Adjustment)
	fmt.Printf("%s %s\n", labelStyle.Render("Coach:"), summary.CoachMessage)
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any date inside the week, YYYY-MM-DD (default: today)")
}
