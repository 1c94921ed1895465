package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse saved assessment results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if !all {
			opts.RespondentID = employeeID(cmd, "")
		}
		results, err := s.ResultRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(w, "No results found.")
			return nil
		}

		t := newTable("ID", "Time", "Employee", "Score", "Modules")
		for _, r := range results {
			t.Row(r.ID, r.Timestamp.Local().Format(timeLayout), r.RespondentID,
				strconv.Itoa(r.Score), strings.Join(r.Modules, ","))
		}
		printTable(w, t)
		return nil
	},
}

var resultsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a result in full (defaults to the latest for the acting employee)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var r *store.Result
		if len(args) == 1 {
			r, err = s.ResultRepo().Get(cmd.Context(), args[0])
		} else {
			r, err = s.ResultRepo().Latest(cmd.Context(), employeeID(cmd, ""))
		}
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if r == nil {
			return fmt.Errorf("result not found")
		}

		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "ID:        %s\n", r.ID)
		fmt.Fprintf(w, "Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Employee:  %s\n", r.RespondentID)
		fmt.Fprintf(w, "Score:     %d/100 (%s)\n", r.Score, assessment.Band(r.Score))
		if r.BankVersion != "" {
			fmt.Fprintf(w, "Bank:      %s\n", r.BankVersion)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Modules:")
		for i, id := range r.Modules {
			fmt.Fprintf(w, "  %d. %s\n", i+1, catalog.Title(id))
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Answers:")
		ids := make([]string, 0, len(r.Answers))
		for id := range r.Answers {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			label := r.Answers[id]
			if q := bank.Question(id); q != nil {
				if o, ok := q.Option(label); ok {
					label = o.Label
				}
			}
			fmt.Fprintf(w, "  %-5s %s\n", id, label)
		}
		return nil
	},
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	resultsListCmd.Flags().Bool("all", false, "Show results for every employee")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)
}
