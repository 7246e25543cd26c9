package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

var listMonth string

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions for a month",
	Long: `List the sessions recorded in a month (default: the current month),
with planned vs. actual metrics and the per-session score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		month := listMonth
		if month == "" {
			month = internal.Today()[:7]
		}
		if !validMonth(month) {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", month)
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

		monthSessions := internal.FilterMonth(sessions, month)
		displaySessions(month, monthSessions, len(sessions))
		return nil
	},
}

func validMonth(month string) bool {
	if len(month) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", month)
	return err == nil
}

func displaySessions(month string, sessions []*internal.Session, total int) {
	if len(sessions) == 0 {
		fmt.Println(headerStyle.Render(fmt.Sprintf("No sessions in %s (%d total)", month, total)))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("%d session(s) in %s · %d total", len(sessions), month, total))
	fmt.Println(header)
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Date")+"\t"+titleStyle.Render("Workout")+"\t"+titleStyle.Render("Planned")+"\t"+titleStyle.Render("Actual")+"\t"+titleStyle.Render("Score")+"\t"+titleStyle.Render("Updated")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 110))

	for _, s := range sessions {
		name := s.WorkoutName
		if name == "" {
			name = string(s.Type)
		}
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		planned := fmt.Sprintf("%d' %s", s.PlannedMinutes, s.PlannedZone)

		actual := "—"
		if s.ActualMinutes != nil {
			actual = strconv.Itoa(*s.ActualMinutes) + "'"
			if s.HRAvg != nil {
				actual += fmt.Sprintf(" @%d bpm", *s.HRAvg)
			}
		}

		score := scoreStyle.Render(strconv.Itoa(internal.ScoreSession(s).Score))

		updated := "—"
		if s.UpdatedAt > 0 {
			updated = humanize.Time(time.UnixMilli(s.UpdatedAt))
		}

		shortID := s.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(shortID),
			dateStyle.Render(s.Date),
			name,
			planned,
			actual,
			score,
			dateStyle.Render(updated))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("Tip: use the full id with `trainlog add --id <id>` to edit or `trainlog delete <id>` to remove"))
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listMonth, "month", "", "Month to list, YYYY-MM (default: current month)")
}
