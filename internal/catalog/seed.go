package catalog

var seedModules = []Module{
	{
		ID:             "module-1",
		Title:          "Understanding Your Legacy",
		Description:    "Learn why legacy planning matters and how to start your journey",
		Slug:           "understanding-legacy",
		Order:          1,
		EstimatedHours: 0.5,
		Required:       true,
		Category:       CategoryFoundation,
		Lessons:        5,
		Competency:     "Legacy Planning Basics",
	},
	{
		ID:             "module-2",
		Title:          "Important Documents & Information",
		Description:    "Identify and organize the documents your loved ones will need",
		Slug:           "important-documents",
		Order:          2,
		EstimatedHours: 1.0,
		Required:       true,
		Category:       CategoryDocumentation,
		Lessons:        8,
		Competency:     "Document Organization",
	},
	{
		ID:             "module-3",
		Title:          "Digital Assets & Online Accounts",
		Description:    "Learn how to manage and pass on your digital legacy",
		Slug:           "digital-assets",
		Order:          3,
		EstimatedHours: 0.75,
		Required:       true,
		Category:       CategoryDigital,
		Lessons:        6,
		Competency:     "Digital Asset Management",
	},
	{
		ID:             "module-4",
		Title:          "Financial Accounts & Assets",
		Description:    "Organize information about your financial accounts",
		Slug:           "financial-accounts",
		Order:          4,
		EstimatedHours: 1.0,
		Required:       true,
		Category:       CategoryFinancial,
		Lessons:        7,
		Competency:     "Financial Planning",
	},
	{
		ID:             "module-5",
		Title:          "Healthcare Directives",
		Description:    "Understand advance directives and healthcare wishes",
		Slug:           "healthcare-directives",
		Order:          5,
		EstimatedHours: 0.75,
		Required:       false,
		Category:       CategoryHealthcare,
		Lessons:        5,
		Competency:     "Healthcare Planning",
	},
	{
		ID:             "module-6",
		Title:          "Communicating Your Wishes",
		Description:    "Have the conversations that matter with your loved ones",
		Slug:           "communicating-wishes",
		Order:          6,
		EstimatedHours: 0.5,
		Required:       false,
		Category:       CategoryCommunication,
		Lessons:        4,
		Competency:     "Family Communication",
	},
}

func init() {
	if err := validateModules(seedModules); err != nil {
		panic(err)
	}
	c = buildCatalog(seedModules)
}
