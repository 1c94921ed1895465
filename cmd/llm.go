package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2/table"
	"github.com/endevo/legacyready/internal/llm"
	"github.com/endevo/legacyready/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the coach's recorded model requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		t := newTable("ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
		rows := 0
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "yes"
			if !e.Success {
				ok = "no"
			}
			t.Row(strconv.Itoa(e.ID), e.Timestamp.Local().Format(timeLayout), e.Purpose,
				truncate(e.Model, 28), strconv.Itoa(e.InputTokens), strconv.Itoa(e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10), ok)
			rows++
		}

		w := cmd.OutOrStdout()
		if rows == 0 {
			fmt.Fprintln(w, "No LLM events found.")
			return nil
		}
		printTable(w, t)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and reply of one model request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		writeLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

func writeLLMEvent(w io.Writer, e *store.LLMEvent) {
	fmt.Fprintf(w, "Event %d, %s\n", e.ID, e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(w, "  %s/%s for %s\n", e.Provider, e.Model, e.Purpose)
	fmt.Fprintf(w, "  %d tokens in, %d out, %dms\n", e.InputTokens, e.OutputTokens, e.LatencyMs)
	if !e.Success {
		fmt.Fprintf(w, "  failed: %s\n", e.ErrorMessage)
	}

	for _, part := range []struct{ title, body string }{
		{"Request", e.RequestBody},
		{"Reply", e.ResponseBody},
	} {
		body := part.body
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintf(w, "\n== %s ==\n%s\n", part.title, strings.TrimRight(body, "\n"))
	}
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(w, "No LLM usage recorded yet.")
			return nil
		}

		usage := newTable("Purpose", "Calls", "Input", "Output", "Avg ms")
		for _, u := range byPurpose {
			usage.Row(u.Purpose, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens),
				strconv.Itoa(u.OutputTokens), strconv.FormatInt(u.AvgLatencyMs, 10))
		}
		fmt.Fprintln(w, "Usage by purpose")
		printTable(w, usage)

		costs, total, unpriced := modelCosts(byModel)
		fmt.Fprintln(w, "\nEstimated cost (USD)")
		printTable(w, costs)
		label := "Total"
		if len(unpriced) > 0 {
			label = "Total (partial)"
		}
		fmt.Fprintf(w, "%s: %s\n", label, formatCost(total))
		if len(unpriced) > 0 {
			fmt.Fprintf(w, "No pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func modelCosts(usage []store.ModelUsage) (t *table.Table, total float64, unpriced []string) {
	t = newTable("Model", "Calls", "Input", "Output", "Cost")
	for _, u := range usage {
		cost := "?"
		if price := llm.LookupCost(u.Model); price != nil {
			c := price.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		t.Row(truncate(u.Model, 32), strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens),
			strconv.Itoa(u.OutputTokens), cost)
	}
	return t, total, unpriced
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show requests with this purpose (e.g. coach)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
