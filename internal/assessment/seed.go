package assessment

// seedVersion identifies the built-in bank in persisted results.
const seedVersion = "legacy-readiness-v1"

var seedQuestions = []Question{
	{
		ID:    "q1",
		Order: 1,
		Text:  "Do you have a will or trust in place?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q1-a", Value: "yes_recent", Label: "Yes, reviewed in last 12 months", Score: 10},
			{ID: "q1-b", Value: "yes_old", Label: "Yes, but not reviewed recently", Score: 7},
			{ID: "q1-c", Value: "no_planned", Label: "No, but I know I need one", Score: 3},
			{ID: "q1-d", Value: "no_unsure", Label: "No, and I'm not sure where to start", Score: 0},
		},
		Weight: 2,
	},
	{
		ID:    "q2",
		Order: 2,
		Text:  "Have you documented your important financial accounts and assets?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q2-a", Value: "complete", Label: "Yes, everything is documented", Score: 10},
			{ID: "q2-b", Value: "partial", Label: "Partially documented", Score: 6},
			{ID: "q2-c", Value: "started", Label: "Just getting started", Score: 3},
			{ID: "q2-d", Value: "not_started", Label: "Not yet", Score: 0},
		},
		Weight: 2,
	},
	{
		ID:    "q3",
		Order: 3,
		Text:  "Do your loved ones know where to find important documents?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q3-a", Value: "yes_detailed", Label: "Yes, they have detailed information", Score: 10},
			{ID: "q3-b", Value: "yes_general", Label: "Yes, they have general knowledge", Score: 7},
			{ID: "q3-c", Value: "some_know", Label: "Some people know", Score: 4},
			{ID: "q3-d", Value: "no_one", Label: "No one knows", Score: 0},
		},
		Weight: 2,
	},
	{
		ID:    "q4",
		Order: 4,
		Text:  "Have you set up healthcare directives or advance care planning?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q4-a", Value: "complete", Label: "Yes, all set up", Score: 10},
			{ID: "q4-b", Value: "partial", Label: "Some documents in place", Score: 6},
			{ID: "q4-c", Value: "discussed", Label: "Discussed with family only", Score: 3},
			{ID: "q4-d", Value: "not_done", Label: "Not yet addressed", Score: 0},
		},
		Weight: 1.5,
	},
	{
		ID:    "q5",
		Order: 5,
		Text:  "Do you have a plan for your digital assets (online accounts, social media)?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q5-a", Value: "documented", Label: "Yes, fully documented", Score: 10},
			{ID: "q5-b", Value: "partial", Label: "Partially documented", Score: 6},
			{ID: "q5-c", Value: "thought_about", Label: "Thought about it but not documented", Score: 3},
			{ID: "q5-d", Value: "not_considered", Label: "Haven't considered it", Score: 0},
		},
		Weight: 1,
	},
	{
		ID:    "q6",
		Order: 6,
		Text:  "Have you had conversations with your family about your legacy wishes?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q6-a", Value: "detailed", Label: "Yes, detailed conversations", Score: 10},
			{ID: "q6-b", Value: "general", Label: "General discussions", Score: 7},
			{ID: "q6-c", Value: "brief", Label: "Brief mentions only", Score: 4},
			{ID: "q6-d", Value: "not_yet", Label: "Not yet", Score: 0},
		},
		Weight: 1.5,
	},
	{
		ID:    "q7",
		Order: 7,
		Text:  "Do you have life insurance or other protection in place?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q7-a", Value: "adequate", Label: "Yes, adequate coverage", Score: 10},
			{ID: "q7-b", Value: "some", Label: "Some coverage", Score: 6},
			{ID: "q7-c", Value: "evaluating", Label: "Currently evaluating options", Score: 4},
			{ID: "q7-d", Value: "none", Label: "No coverage yet", Score: 0},
		},
		Weight: 1,
	},
	{
		ID:    "q8",
		Order: 8,
		Text:  "Have you designated beneficiaries on your accounts?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q8-a", Value: "all_updated", Label: "Yes, all accounts updated", Score: 10},
			{ID: "q8-b", Value: "most", Label: "Most accounts", Score: 7},
			{ID: "q8-c", Value: "some", Label: "Some accounts", Score: 4},
			{ID: "q8-d", Value: "not_sure", Label: "Not sure/none", Score: 0},
		},
		Weight: 2,
	},
	{
		ID:    "q9",
		Order: 9,
		Text:  "Do you have a plan for your personal belongings and sentimental items?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q9-a", Value: "documented", Label: "Yes, documented", Score: 10},
			{ID: "q9-b", Value: "verbal", Label: "Verbal wishes shared", Score: 7},
			{ID: "q9-c", Value: "thinking", Label: "Thinking about it", Score: 4},
			{ID: "q9-d", Value: "no_plan", Label: "No plan yet", Score: 0},
		},
		Weight: 0.5,
	},
	{
		ID:    "q10",
		Order: 10,
		Text:  "How confident do you feel about your legacy readiness?",
		Kind:  KindSingleChoice,
		Options: []Option{
			{ID: "q10-a", Value: "very", Label: "Very confident", Score: 10},
			{ID: "q10-b", Value: "somewhat", Label: "Somewhat confident", Score: 7},
			{ID: "q10-c", Value: "not_very", Label: "Not very confident", Score: 3},
			{ID: "q10-d", Value: "not_at_all", Label: "Not confident at all", Score: 0},
		},
		Weight: 1,
	},
}

// seedRules mirrors the readiness policy: a weak answer on wills, finances,
// digital assets, healthcare or family communication pulls in the module
// that covers it.
var seedRules = RuleTable{
	Foundation: "module-1",
	Rules: []Rule{
		{Question: "q1", Weak: []string{"no_planned", "no_unsure"}, Module: "module-2"},
		{Question: "q2", Weak: []string{"started", "not_started"}, Module: "module-4"},
		{Question: "q5", Weak: []string{"thought_about", "not_considered"}, Module: "module-3"},
		{Question: "q4", Weak: []string{"discussed", "not_done"}, Module: "module-5"},
		{Question: "q6", Weak: []string{"brief", "not_yet"}, Module: "module-6"},
	},
	RemedialThreshold: 30,
	Remedial:          []string{"module-1", "module-2", "module-3", "module-4", "module-5", "module-6"},
}

func init() {
	b := &Bank{
		Version:   seedVersion,
		Questions: seedQuestions,
		Rules:     seedRules,
	}
	sortQuestions(b.Questions)
	if err := Validate(b); err != nil {
		panic(err)
	}
	defaultBank = b
}
