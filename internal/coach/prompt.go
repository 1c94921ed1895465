package coach

import (
	"fmt"
	"strings"

	"github.com/endevo/legacyready/internal/progress"
)

const systemPrompt = `You are a warm, concise coach inside an employee legacy readiness training app. Employees take a short readiness assessment, receive a score from 0 to 100 and a set of learning modules about wills, important documents, digital assets, financial accounts, healthcare wishes and talking with family.

Answer questions about using the app and about the learning content. Do not give legal or financial advice; suggest speaking with a qualified professional when asked for it. Keep replies under four sentences.`

// Learner is optional context about the person asking.
type Learner struct {
	Name    string
	Score   *int
	Modules []string // titles of assigned modules
	Percent int
}

// LearnerFor builds learner context from a progress summary. A nil summary
// yields nil.
func LearnerFor(sum *progress.Summary) *Learner {
	if sum == nil {
		return nil
	}
	l := &Learner{
		Name:    sum.Employee.Name(),
		Percent: sum.Percent(),
	}
	if sum.Result != nil {
		score := sum.Result.Score
		l.Score = &score
	}
	for _, mp := range sum.Assigned() {
		l.Modules = append(l.Modules, mp.Module.Title)
	}
	return l
}

func buildSystemPrompt(l *Learner) string {
	if l == nil {
		return systemPrompt
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nAbout the learner:\n")
	if l.Name != "" {
		b.WriteString(fmt.Sprintf("Name: %s\n", l.Name))
	}
	if l.Score != nil {
		b.WriteString(fmt.Sprintf("Readiness score: %d/100\n", *l.Score))
	} else {
		b.WriteString("Readiness score: assessment not taken yet\n")
	}
	if len(l.Modules) > 0 {
		b.WriteString(fmt.Sprintf("Assigned modules: %s\n", strings.Join(l.Modules, "; ")))
	}
	b.WriteString(fmt.Sprintf("Plan completion: %d%%\n", l.Percent))
	return b.String()
}
