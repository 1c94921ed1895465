package coach

import "strings"

// Topic is a canned help answer selected by keyword.
type Topic struct {
	Key      string
	Keywords []string
	Answer   string
}

// Greeting opens every conversation.
const Greeting = "Hi! I'm your legacy readiness coach. I can help you find your way around, " +
	"explain terms, and guide you through your learning plan. What would you like to know?"

// MenuReply is returned when no topic matches.
const MenuReply = "I'm here to help! You can ask me about:\n\n" +
	"• Navigation and using the app\n" +
	"• The readiness assessment and your score\n" +
	"• Understanding your progress\n" +
	"• Module structure and lessons\n" +
	"• Exporting reports and certificates\n" +
	"• Common terms and concepts\n\n" +
	"What specific topic would you like to know more about?"

// Topics are checked in order; the first keyword hit wins.
var Topics = []Topic{
	{
		Key:      "navigation",
		Keywords: []string{"navigat", "menu", "keys", "screen", "go back"},
		Answer: "Use the arrow keys or j/k to move through menus and press Enter to select. " +
			"Esc goes back to the previous screen. From the home screen you can take the " +
			"assessment, review your modules, or ask me a question.",
	},
	{
		Key:      "assessment",
		Keywords: []string{"assessment", "score", "quiz"},
		Answer: "The readiness assessment asks ten short questions about your current plans. " +
			"Each answer is weighted and combined into a score from 0 to 100, and your answers " +
			"decide which modules are recommended. A very low score assigns the full learning path.",
	},
	{
		Key:      "progress",
		Keywords: []string{"progress", "status", "track"},
		Answer: "Your progress is tracked automatically as you finish lessons and modules. " +
			"Open My Modules to see each module's status, or run `legacyready progress show` " +
			"for a full summary.",
	},
	{
		Key:      "modules",
		Keywords: []string{"module", "lesson", "course"},
		Answer: "Modules are structured learning units. Each module has several short lessons; " +
			"finish every lesson to complete the module and earn a certificate.",
	},
	{
		Key:      "export",
		Keywords: []string{"export", "download", "save", "pdf", "certificate"},
		Answer: "You can export your progress summary with `legacyready progress show --out FILE` " +
			"and your certificates with `legacyready certificates --out DIR`. HR admins can " +
			"export the organization report with `legacyready report --out FILE`.",
	},
	{
		Key:      "terms",
		Keywords: []string{"term", "glossary", "mean", "definition"},
		Answer: "Common terms: Module = learning unit, Lesson = individual topic, " +
			"Competency = skill area, Readiness score = your assessment result from 0 to 100, " +
			"Progress = completion percentage.",
	},
}

// Match returns the first topic whose keyword occurs in question.
func Match(question string) (Topic, bool) {
	q := strings.ToLower(question)
	for _, t := range Topics {
		if strings.Contains(q, t.Key) {
			return t, true
		}
		for _, kw := range t.Keywords {
			if strings.Contains(q, kw) {
				return t, true
			}
		}
	}
	return Topic{}, false
}

// TopicKeys lists the topic keys in table order.
func TopicKeys() []string {
	keys := make([]string, 0, len(Topics))
	for _, t := range Topics {
		keys = append(keys, t.Key)
	}
	return keys
}
