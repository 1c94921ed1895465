package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// defaultEmployee is the seed employee used when --as is not given.
const defaultEmployee = "emp-1"

var rootCmd = &cobra.Command{
	Use:   "legacyready",
	Short: "Legacy readiness training for employees",
	Long: "Legacy Ready: a terminal app that scores an employee's legacy readiness,\n" +
		"recommends learning modules and tracks progress through them.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEGACYREADY_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a YAML question bank (overrides LEGACYREADY_BANK env var)")
	rootCmd.PersistentFlags().String("as", "", "Employee ID to act as (overrides LEGACYREADY_EMPLOYEE env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(certificatesCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadDotEnv reads LEGACYREADY_ENV_FILE (default ".env") into the
// environment. Variables that are already set win.
func loadDotEnv() {
	path := os.Getenv("LEGACYREADY_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Ignoring env file:", err)
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEGACYREADY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadBank returns the question bank from --bank, then LEGACYREADY_BANK,
// then the built-in bank.
func loadBank(cmd *cobra.Command) (*assessment.Bank, error) {
	path := stringFlag(cmd, "bank")
	if path == "" {
		path = os.Getenv("LEGACYREADY_BANK")
	}
	if path == "" {
		return assessment.Default(), nil
	}
	b, err := assessment.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank %s: %w", path, err)
	}
	return b, nil
}

// employeeID returns the acting employee from explicit (a command-local
// flag value), --as, LEGACYREADY_EMPLOYEE, or the default seed employee.
func employeeID(cmd *cobra.Command, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if id := stringFlag(cmd, "as"); id != "" {
		return id
	}
	if id := os.Getenv("LEGACYREADY_EMPLOYEE"); id != "" {
		return id
	}
	return defaultEmployee
}

// lookupEmployee resolves the acting employee in dir.
func lookupEmployee(cmd *cobra.Command, dir directory.Directory, explicit string) (directory.Employee, error) {
	id := employeeID(cmd, explicit)
	emp, err := dir.Employee(id)
	if err != nil {
		return directory.Employee{}, fmt.Errorf("employee %s: %w", id, err)
	}
	return emp, nil
}

// stringFlag looks name up among the command's own and inherited flags.
func stringFlag(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}
