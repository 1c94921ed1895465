package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/endevo/legacyready/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record and show module progress for the acting employee",
}

var progressStartCmd = &cobra.Command{
	Use:   "start <module-id>",
	Short: "Mark a module as started",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		empID := employeeID(cmd, "")
		if err := e.progress.Start(cmd.Context(), empID, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Started %s\n", args[0])
		return nil
	},
}

var progressLessonCmd = &cobra.Command{
	Use:   "lesson <module-id>",
	Short: "Record one completed lesson in a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		mp, err := e.progress.CompleteLesson(cmd.Context(), employeeID(cmd, ""), args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if mp.Status == progress.Completed {
			fmt.Fprintf(w, "Completed %s. Certificate available.\n", mp.Module.Title)
			return nil
		}
		fmt.Fprintf(w, "%s: lesson %d of %d done (%d%%)\n",
			mp.Module.Title, mp.LessonsCompleted, mp.Module.Lessons, mp.Percent())
		return nil
	},
}

var progressCompleteCmd = &cobra.Command{
	Use:   "complete <module-id>",
	Short: "Mark a module as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.progress.Complete(cmd.Context(), employeeID(cmd, ""), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", args[0])
		return nil
	},
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the learning summary (optionally exported to a file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sum, err := e.progress.Summary(cmd.Context(), employeeID(cmd, ""))
		if err != nil {
			return err
		}
		return writeTo(cmd.OutOrStdout(), out, func(w io.Writer) error {
			return sum.WriteText(w, time.Now())
		})
	},
}

// writeTo renders into path, or into w when path is empty.
func writeTo(w io.Writer, path string, render func(io.Writer) error) error {
	if path == "" {
		return render(w)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func init() {
	progressShowCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")

	progressCmd.AddCommand(progressStartCmd)
	progressCmd.AddCommand(progressLessonCmd)
	progressCmd.AddCommand(progressCompleteCmd)
	progressCmd.AddCommand(progressShowCmd)
}
