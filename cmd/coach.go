package cmd

import (
	"fmt"
	"strings"

	"github.com/endevo/legacyready/internal/coach"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Ask the help coach",
}

var coachAskCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the coach a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		var learner *coach.Learner
		if sum, err := e.progress.Summary(ctx, employeeID(cmd, "")); err == nil {
			learner = coach.LearnerFor(sum)
		}

		reply, err := e.newCoach(ctx).Ask(ctx, strings.Join(args, " "), learner)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, reply.Text)
		if len(reply.Suggestions) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "You could also ask:")
			for _, s := range reply.Suggestions {
				fmt.Fprintf(w, "  • %s\n", s)
			}
		}
		return nil
	},
}

var coachTopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the built-in help topics",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, t := range coach.Topics {
			fmt.Fprintf(w, "%-12s %s\n", t.Key, strings.Join(t.Keywords, ", "))
		}
	},
}

func init() {
	coachCmd.AddCommand(coachAskCmd)
	coachCmd.AddCommand(coachTopicsCmd)
}
