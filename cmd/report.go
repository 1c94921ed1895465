package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/endevo/legacyready/internal/directory"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Organization progress report (HR admins only)",
	Long: "Print the organization report for the acting HR admin's organization.\n" +
		"Act as an HR admin with --as, e.g. --as hr-1.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		admin, err := lookupEmployee(cmd, e.dir, "")
		if err != nil {
			return err
		}
		if admin.Role != directory.RoleHRAdmin {
			return fmt.Errorf("%s is not an HR admin", admin.ID)
		}

		rep, err := e.progress.OrgReport(cmd.Context(), admin.OrganizationID)
		if err != nil {
			return err
		}
		return writeTo(cmd.OutOrStdout(), out, rep.WriteText)
	},
}

var certificatesCmd = &cobra.Command{
	Use:   "certificates",
	Short: "List or export certificates for completed modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("out")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		certs, err := e.progress.Certificates(cmd.Context(), employeeID(cmd, ""))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(certs) == 0 {
			fmt.Fprintln(w, "No completed modules yet.")
			return nil
		}

		if dir == "" {
			for _, c := range certs {
				fmt.Fprintf(w, "%-10s  %-40s  %s\n",
					c.Module.ID, c.Module.Title, c.CompletedAt.Local().Format("2006-01-02"))
			}
			return nil
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		for _, c := range certs {
			path := filepath.Join(dir, c.Filename())
			if err := writeTo(w, path, c.WriteText); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	certificatesCmd.Flags().StringP("out", "o", "", "Directory to export certificate files into")
}
