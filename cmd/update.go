package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/endevo/legacyready/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "legacyready", version)
	},
}

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest (or a chosen) release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("to")
		w := cmd.OutOrStdout()

		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
		err := checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version, TargetVersion: target},
			func(p selfupdate.UpdateProgress) { fmt.Fprintln(w, p.Message) })

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(w, "This is a development build; install a release build to enable updates.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintf(w, "Already on the latest version (%s).\n", version)
			return nil
		case errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\n\nThe binary's directory is not writable; try: sudo legacyready update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().String("to", "", "Install this release tag instead of the latest (e.g. v1.4.0)")
}
