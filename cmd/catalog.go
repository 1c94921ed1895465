package cmd

import (
	"fmt"
	"strings"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions and their answer values",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if bank.Version != "" {
			fmt.Fprintf(w, "Question bank %s\n\n", bank.Version)
		}
		for _, q := range bank.Questions {
			fmt.Fprintf(w, "%s  %s  (weight %g)\n", q.ID, q.Text, q.EffectiveWeight())
			for _, o := range q.Options {
				fmt.Fprintf(w, "    %-22s %2d  %s\n", o.Value, o.Score, o.Label)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d questions\n", len(bank.Questions))
		return nil
	},
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the learning modules (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		modules := catalog.All()
		if category != "" {
			modules = catalog.ByCategory(catalog.Category(category))
			if len(modules) == 0 {
				return fmt.Errorf("no modules found for category %q", category)
			}
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-10s  %-40s  %-22s  %7s  %5s  %s\n",
			"ID", "Title", "Category", "Lessons", "Hours", "Required")
		fmt.Fprintln(w, strings.Repeat("─", 100))

		for _, m := range modules {
			title := m.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			required := ""
			if m.Required {
				required = "yes"
			}
			fmt.Fprintf(w, "%-10s  %-40s  %-22s  %7d  %5.1f  %s\n",
				m.ID, title, catalog.CategoryDisplayName(m.Category),
				m.Lessons, m.EstimatedHours, required)
		}

		fmt.Fprintf(w, "\n%d modules, %.1f hours\n", len(modules), catalog.TotalHours(modules))
		return nil
	},
}

func init() {
	modulesCmd.Flags().StringP("category", "c", "", "Filter by category ID")
}
