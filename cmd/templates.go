package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the workout template catalog",
	Long: `List the workout templates usable with 'trainlog add --template'.
The builtin catalog can be extended (or overridden by key) with a YAML
file at ~/.config/trainlog/templates.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		templates, err := internal.LoadTemplates(templatesPath(cfg))
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("%d template(s)", len(templates))))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Key")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Type")+"\t"+titleStyle.Render("Planned")+"\t"+titleStyle.Render("RPE")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, t := range templates {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d' %s\t%d\t\n",
				idStyle.Render(t.Key), t.Name, t.Type, t.PlannedMinutes, t.PlannedZone, t.PlannedRPE)
		}
		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
