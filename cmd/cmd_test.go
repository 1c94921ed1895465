package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every env-driven setting at test-local values.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("LEGACYREADY_LOG_FILE", "off")
	t.Setenv("LEGACYREADY_NO_UPDATE_CHECK", "1")
	t.Setenv("LEGACYREADY_LLM_PROVIDER", "none")
	t.Setenv("LEGACYREADY_BANK", "")
	t.Setenv("LEGACYREADY_EMPLOYEE", "")
	t.Setenv("LEGACYREADY_DB", "")
	dir := t.TempDir()
	t.Setenv("LEGACYREADY_ENV_FILE", filepath.Join(dir, "missing.env"))
	return filepath.Join(dir, "test.db")
}

// resetFlags restores every flag in the tree to its default so tests can
// share the package-level command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

var bestAnswers = []string{
	"--answer", "q1=yes_recent", "--answer", "q2=complete", "--answer", "q3=yes_detailed",
	"--answer", "q4=complete", "--answer", "q5=documented", "--answer", "q6=detailed",
	"--answer", "q7=adequate", "--answer", "q8=all_updated", "--answer", "q9=documented",
	"--answer", "q10=very",
}

func TestReadAnswers(t *testing.T) {
	file := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(file, []byte("q1: no_unsure\nq2: partial\n"), 0o644))

	got, err := readAnswers(file, []string{"q1=yes_old", " q3 = some_know "})
	require.NoError(t, err)
	assert.Equal(t, assessment.Answers{"q1": "yes_old", "q2": "partial", "q3": "some_know"}, got)

	for _, bad := range []string{"q1", "=x", "q1="} {
		_, err := readAnswers("", []string{bad})
		assert.Error(t, err, bad)
	}

	_, err = readAnswers(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	const probe = "LEGACYREADY_DOTENV_PROBE"
	t.Setenv(probe, "")
	require.NoError(t, os.Unsetenv(probe))
	t.Setenv("LEGACYREADY_LOG_LEVEL", "warn")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte(probe+"=from-file\nLEGACYREADY_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("LEGACYREADY_ENV_FILE", file)

	loadDotEnv()
	assert.Equal(t, "from-file", os.Getenv(probe))
	assert.Equal(t, "warn", os.Getenv("LEGACYREADY_LOG_LEVEL"), "existing variables win")
}

func TestEmployeeID(t *testing.T) {
	isolate(t)
	resetFlags(rootCmd)

	assert.Equal(t, defaultEmployee, employeeID(rootCmd, ""))

	t.Setenv("LEGACYREADY_EMPLOYEE", "emp-2")
	assert.Equal(t, "emp-2", employeeID(rootCmd, ""))

	require.NoError(t, rootCmd.PersistentFlags().Set("as", "emp-3"))
	assert.Equal(t, "emp-3", employeeID(rootCmd, ""))
	assert.Equal(t, "emp-4", employeeID(rootCmd, "emp-4"))
	resetFlags(rootCmd)
}

func TestAssessCommand(t *testing.T) {
	db := isolate(t)

	t.Run("best answers", func(t *testing.T) {
		out, err := execute(t, append([]string{"assess", "--db", db}, bestAnswers...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "Readiness score: 100/100 (Well prepared)")
		assert.Contains(t, out, "Answered 10 of 10 questions")
		assert.Contains(t, out, "module-1")
		assert.NotContains(t, out, "module-2")
		assert.NotContains(t, out, "Saved result")
	})

	t.Run("partial answers", func(t *testing.T) {
		out, err := execute(t, "assess", "--db", db, "--answer", "q1=no_unsure")
		require.NoError(t, err)
		assert.Contains(t, out, "Readiness score: 0/100")
		assert.Contains(t, out, "Not scored: q2")
		for _, id := range []string{"module-1", "module-6"} {
			assert.Contains(t, out, id)
		}
	})

	t.Run("unknown question", func(t *testing.T) {
		_, err := execute(t, "assess", "--db", db, "--answer", "q99=yes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "q99")
	})
}

func TestAssessSaveAndBrowse(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, append([]string{"assess", "--db", db, "--save", "--json"}, bestAnswers...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 100`)
	assert.Contains(t, out, `"result_id"`)

	out, err = execute(t, "results", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "emp-1")
	assert.Contains(t, out, "100")

	out, err = execute(t, "results", "show", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Score:     100/100")
	assert.Contains(t, out, "Yes, reviewed in last 12 months")

	out, err = execute(t, "results", "list", "--db", db, "--as", "emp-2")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")

	out, err = execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Assessments:   1 (1 employees)")
}

func TestProgressCommands(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, append([]string{"assess", "--db", db, "--save"}, bestAnswers...)...)
	require.NoError(t, err)

	out, err := execute(t, "progress", "start", "module-1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Started module-1")

	out, err = execute(t, "progress", "lesson", "module-1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "lesson 1 of")

	out, err = execute(t, "certificates", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No completed modules yet.")

	out, err = execute(t, "progress", "complete", "module-1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed module-1")

	_, err = execute(t, "progress", "complete", "module-1", "--db", db)
	require.Error(t, err)

	certDir := filepath.Join(t.TempDir(), "certs")
	out, err = execute(t, "certificates", "--db", db, "--out", certDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	entries, err := os.ReadDir(certDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	report := filepath.Join(t.TempDir(), "progress.txt")
	_, err = execute(t, "progress", "show", "--db", db, "--out", report)
	require.NoError(t, err)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Doe")
}

func TestReportRequiresHRAdmin(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, "report", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an HR admin")

	out, err := execute(t, "report", "--db", db, "--as", "hr-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Organization: TechCorp Solutions")
}

func TestResetCommand(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, append([]string{"assess", "--db", db, "--save"}, bestAnswers...)...)
	require.NoError(t, err)

	out, err := execute(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 records for emp-1")
}

func TestCoachAsk(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, "coach", "ask", "--db", db, "how", "do", "I", "export?")
	require.NoError(t, err)
	assert.Contains(t, out, "legacyready certificates --out DIR")
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "legacyready (devel)\n", out)
}

func TestSummarizeResults(t *testing.T) {
	// Newest first, as ResultRepo.List returns them.
	results := []store.Result{
		{RespondentID: "emp-1", Score: 90, Modules: []string{"module-1"}},
		{RespondentID: "emp-2", Score: 20, Modules: []string{"module-1", "module-2"}},
		{RespondentID: "emp-1", Score: 10, Modules: []string{"module-1", "module-6"}},
	}
	st := summarizeResults(results)

	assert.Equal(t, 3, st.total)
	assert.Equal(t, 2, st.respondents)
	assert.InDelta(t, 55.0, st.average, 0.001)
	assert.Equal(t, 1, st.bands["Well prepared"])
	assert.Equal(t, 1, st.bands["Getting started"])
	require.Len(t, st.modules, 2)
	assert.Equal(t, moduleCount{id: "module-1", count: 2}, st.modules[0])
	assert.Equal(t, moduleCount{id: "module-2", count: 1}, st.modules[1])
}

func TestLLMCommands(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, "llm", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")

	s, err := store.Open(db)
	require.NoError(t, err)
	for _, ev := range []store.LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "coach", InputTokens: 1200, OutputTokens: 300,
			Success: true, RequestBody: "[user]\nhow do I export?", ResponseBody: `{"reply":"use --out"}`},
		{Provider: "openrouter", Model: "acme/unknown-1", Purpose: "coach", Success: false, ErrorMessage: "rate limited"},
	} {
		require.NoError(t, s.EventRepo().AppendLLMRequest(t.Context(), ev))
	}
	require.NoError(t, s.Close())

	out, err = execute(t, "llm", "list", "--db", db, "--purpose", "coach")
	require.NoError(t, err)
	assert.Contains(t, out, "claude-haiku-4-5-20251001")
	assert.Contains(t, out, "acme/unknown-1")

	out, err = execute(t, "llm", "view", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "how do I export?")
	assert.Contains(t, out, `{"reply":"use --out"}`)

	out, err = execute(t, "llm", "view", "2", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "failed: rate limited")
	assert.Contains(t, out, "(not captured)")

	out, err = execute(t, "llm", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Total (partial): $0.0027")
	assert.Contains(t, out, "No pricing for: acme/unknown-1")

	_, err = execute(t, "llm", "view", "x", "--db", db)
	assert.Error(t, err)
}

func TestUpdateDevBuild(t *testing.T) {
	isolate(t)
	out, err := execute(t, "update")
	require.NoError(t, err)
	assert.Contains(t, out, "development build")
}
