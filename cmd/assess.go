package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score an answer set without the interactive UI",
	Long: "Score an answer set and print the readiness score and recommended modules.\n\n" +
		"Answers come from --answers (a YAML map of question ID to option value)\n" +
		"and/or repeated --answer q1=value flags, which take precedence.",
	Example: "  legacyready assess --answer q1=yes_recent --answer q2=complete\n" +
		"  legacyready assess --answers answers.yaml --save",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("answers")
		pairs, _ := cmd.Flags().GetStringArray("answer")
		save, _ := cmd.Flags().GetBool("save")
		asJSON, _ := cmd.Flags().GetBool("json")

		answers, err := readAnswers(file, pairs)
		if err != nil {
			return err
		}

		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}
		if unknown := unknownQuestions(bank, answers); len(unknown) > 0 {
			return fmt.Errorf("unknown question IDs: %s", strings.Join(unknown, ", "))
		}

		res, err := bank.Evaluate(answers)
		if err != nil {
			return err
		}

		var saved *store.Result
		if save {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			emp, err := lookupEmployee(cmd, e.dir, "")
			if err != nil {
				return err
			}
			saved = &store.Result{
				RespondentID: emp.ID,
				Score:        res.Score,
				Modules:      res.Modules,
				Answers:      answers,
				BankVersion:  bank.Version,
			}
			if err := e.store.ResultRepo().Save(cmd.Context(), saved); err != nil {
				return fmt.Errorf("save result: %w", err)
			}
			e.logger.Info("assessment saved from CLI",
				zap.String("respondent", emp.ID),
				zap.String("result", saved.ID),
				zap.Int("score", res.Score))
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeAssessJSON(out, res, saved)
		}
		writeAssessText(out, bank, answers, res, saved)
		return nil
	},
}

// readAnswers merges a YAML answer file with key=value pairs.
func readAnswers(file string, pairs []string) (assessment.Answers, error) {
	answers := assessment.Answers{}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read answers: %w", err)
		}
		if err := yaml.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("decode answers %s: %w", file, err)
		}
	}
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		id, value = strings.TrimSpace(id), strings.TrimSpace(value)
		if !ok || id == "" || value == "" {
			return nil, fmt.Errorf("invalid --answer %q: want QUESTION=VALUE", p)
		}
		answers[id] = value
	}
	return answers, nil
}

func unknownQuestions(bank *assessment.Bank, answers assessment.Answers) []string {
	var unknown []string
	for id := range answers {
		if bank.Question(id) == nil {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func writeAssessText(w io.Writer, bank *assessment.Bank, answers assessment.Answers, res *assessment.Result, saved *store.Result) {
	fmt.Fprintf(w, "Readiness score: %d/100 (%s)\n", res.Score, assessment.Band(res.Score))
	fmt.Fprintf(w, "Answered %d of %d questions\n", res.Answered, len(bank.Questions))
	if missing := bank.Unanswered(answers); len(missing) > 0 {
		fmt.Fprintf(w, "Not scored: %s\n", strings.Join(missing, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommended modules:")
	for i, m := range catalog.Lookup(res.Modules) {
		fmt.Fprintf(w, "  %d. %-10s %-40s %s\n", i+1, m.ID, m.Title, m.EstimatedTime())
	}
	for _, id := range catalog.Missing(res.Modules) {
		fmt.Fprintf(w, "     %-10s (not in catalog)\n", id)
	}
	fmt.Fprintf(w, "Total time: %.1f hours\n", catalog.TotalHours(catalog.Lookup(res.Modules)))

	if saved != nil {
		fmt.Fprintf(w, "\nSaved result %s for %s\n", saved.ID, saved.RespondentID)
	}
}

type assessOutput struct {
	Score    int      `json:"score"`
	Band     string   `json:"band"`
	Answered int      `json:"answered"`
	Modules  []string `json:"modules"`
	ResultID string   `json:"result_id,omitempty"`
}

func writeAssessJSON(w io.Writer, res *assessment.Result, saved *store.Result) error {
	out := assessOutput{
		Score:    res.Score,
		Band:     assessment.Band(res.Score),
		Answered: res.Answered,
		Modules:  res.Modules,
	}
	if saved != nil {
		out.ResultID = saved.ID
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	assessCmd.Flags().StringArrayP("answer", "a", nil, "Answer as QUESTION=VALUE (repeatable)")
	assessCmd.Flags().String("answers", "", "YAML file mapping question IDs to option values")
	assessCmd.Flags().Bool("save", false, "Save the result for the acting employee (see --as)")
	assessCmd.Flags().Bool("json", false, "Print the result as JSON")
}
