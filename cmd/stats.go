package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics across all saved results",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ResultRepo().List(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(w, "No assessments recorded yet.")
			return nil
		}

		st := summarizeResults(results)

		fmt.Fprintf(w, "Assessments:   %d (%d employees)\n", st.total, st.respondents)
		fmt.Fprintf(w, "Average score: %.1f (latest per employee)\n", st.average)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Score bands (latest per employee)")
		fmt.Fprintln(w, strings.Repeat("─", 40))
		for _, band := range []string{"Getting started", "Making progress", "Well prepared"} {
			fmt.Fprintf(w, "%-20s  %4d\n", band, st.bands[band])
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Most assigned modules")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, mc := range st.modules {
			fmt.Fprintf(w, "%-10s  %-40s  %4d\n", mc.id, catalog.Title(mc.id), mc.count)
		}
		return nil
	},
}

type moduleCount struct {
	id    string
	count int
}

type resultStats struct {
	total       int
	respondents int
	average     float64
	bands       map[string]int
	modules     []moduleCount
}

// summarizeResults aggregates newest-first results, counting only each
// respondent's latest result for the score figures.
func summarizeResults(results []store.Result) resultStats {
	st := resultStats{total: len(results), bands: map[string]int{}}

	seen := map[string]bool{}
	counts := map[string]int{}
	var sum int
	for _, r := range results {
		if seen[r.RespondentID] {
			continue
		}
		seen[r.RespondentID] = true
		sum += r.Score
		st.bands[assessment.Band(r.Score)]++
		for _, id := range r.Modules {
			counts[id]++
		}
	}
	st.respondents = len(seen)
	if st.respondents > 0 {
		st.average = float64(sum) / float64(st.respondents)
	}

	for id, n := range counts {
		st.modules = append(st.modules, moduleCount{id: id, count: n})
	}
	sort.Slice(st.modules, func(i, j int) bool {
		if st.modules[i].count != st.modules[j].count {
			return st.modules[i].count > st.modules[j].count
		}
		return st.modules[i].id < st.modules[j].id
	})
	return st
}
