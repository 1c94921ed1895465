package progress

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/directory"
)

// ScoreBand is an assessment score range in the report distribution.
type ScoreBand struct {
	Label string
	Min   int
	Max   int
	Count int
}

// DepartmentProgress is the average completion of a department.
type DepartmentProgress struct {
	Department string
	Employees  int
	AvgPercent int
}

// ModuleRate is the share of employees that completed a module.
type ModuleRate struct {
	Module    catalog.Module
	Completed int
	Total     int
	Rate      int
}

// OrgReport aggregates progress across an organization.
type OrgReport struct {
	Organization directory.Organization
	GeneratedAt  time.Time
	Employees    []*Summary

	Completed  int
	InProgress int
	NotStarted int
	AvgPercent int

	TotalCompletions int
	TotalHours       float64

	Departments []DepartmentProgress
	Modules     []ModuleRate
	Scores      []ScoreBand
	NotTaken    int
}

// BuildOrgReport aggregates employee summaries.
func BuildOrgReport(org directory.Organization, summaries []*Summary, now time.Time) *OrgReport {
	r := &OrgReport{
		Organization: org,
		GeneratedAt:  now,
		Employees:    summaries,
		Scores: []ScoreBand{
			{Label: "0-39", Min: 0, Max: 39},
			{Label: "40-69", Min: 40, Max: 69},
			{Label: "70-100", Min: 70, Max: 100},
		},
	}

	deptTotals := make(map[string]int)
	deptCounts := make(map[string]int)
	completedBy := make(map[string]int)
	percentSum := 0

	for _, s := range summaries {
		switch s.State() {
		case Completed:
			r.Completed++
		case InProgress:
			r.InProgress++
		default:
			r.NotStarted++
		}

		p := s.Percent()
		percentSum += p
		deptTotals[s.Employee.Department] += p
		deptCounts[s.Employee.Department]++

		r.TotalCompletions += s.Completed
		r.TotalHours += s.HoursInvested
		for _, m := range s.Modules {
			if m.Status == Completed {
				completedBy[m.Module.ID]++
			}
		}

		if s.Result == nil {
			r.NotTaken++
			continue
		}
		for i := range r.Scores {
			if s.Result.Score >= r.Scores[i].Min && s.Result.Score <= r.Scores[i].Max {
				r.Scores[i].Count++
				break
			}
		}
	}

	if len(summaries) > 0 {
		r.AvgPercent = percent(percentSum, len(summaries)*100)
	}

	for dept, n := range deptCounts {
		r.Departments = append(r.Departments, DepartmentProgress{
			Department: dept,
			Employees:  n,
			AvgPercent: percent(deptTotals[dept], n*100),
		})
	}
	sort.Slice(r.Departments, func(i, j int) bool {
		return r.Departments[i].Department < r.Departments[j].Department
	})

	for _, m := range catalog.All() {
		r.Modules = append(r.Modules, ModuleRate{
			Module:    m,
			Completed: completedBy[m.ID],
			Total:     len(summaries),
			Rate:      percent(completedBy[m.ID], len(summaries)),
		})
	}
	return r
}

// WriteText renders the report as plain text.
func (r *OrgReport) WriteText(w io.Writer) error {
	rule := strings.Repeat("═", 51)
	line := strings.Repeat("─", 51)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s\n", centered("ORGANIZATION PROGRESS REPORT", 51))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Organization: %s\n", r.Organization.Name)
	fmt.Fprintf(&b, "Generated:    %s\n", r.GeneratedAt.Format("January 2, 2006"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "OVERVIEW")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Total Employees:         %d\n", len(r.Employees))
	fmt.Fprintf(&b, "Average Completion:      %d%%\n", r.AvgPercent)
	fmt.Fprintf(&b, "Total Module Completions: %d\n", r.TotalCompletions)
	fmt.Fprintf(&b, "Total Learning Hours:    %.1f\n", r.TotalHours)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "COMPLETION")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Completed:   %d employees\n", r.Completed)
	fmt.Fprintf(&b, "In Progress: %d employees\n", r.InProgress)
	fmt.Fprintf(&b, "Not Started: %d employees\n", r.NotStarted)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DEPARTMENTS")
	fmt.Fprintln(&b, line)
	for _, d := range r.Departments {
		fmt.Fprintf(&b, "%s: %d%% avg progress (%d employees)\n", d.Department, d.AvgPercent, d.Employees)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "MODULE COMPLETION RATES")
	fmt.Fprintln(&b, line)
	for _, m := range r.Modules {
		fmt.Fprintf(&b, "%s: %d%% (%d/%d)\n", m.Module.Title, m.Rate, m.Completed, m.Total)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "ASSESSMENT SCORES")
	fmt.Fprintln(&b, line)
	for _, s := range r.Scores {
		fmt.Fprintf(&b, "%-9s %d\n", s.Label+":", s.Count)
	}
	fmt.Fprintf(&b, "%-9s %d\n", "Not taken:", r.NotTaken)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "EMPLOYEES")
	fmt.Fprintln(&b, line)
	for _, s := range r.Employees {
		assigned := len(s.Assigned())
		done := 0
		for _, m := range s.Assigned() {
			if m.Status == Completed {
				done++
			}
		}
		fmt.Fprintf(&b, "%s (%s)\n", s.Employee.Name(), s.Employee.Department)
		fmt.Fprintf(&b, "  - Email: %s\n", s.Employee.Email)
		fmt.Fprintf(&b, "  - Completed: %d/%d modules (%d%%)\n", done, assigned, s.Percent())
		fmt.Fprintf(&b, "  - Status: %s\n", s.State().Label())
	}
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func centered(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
