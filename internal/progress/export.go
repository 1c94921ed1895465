package progress

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteText renders the employee's progress report as plain text.
func (s *Summary) WriteText(w io.Writer, now time.Time) error {
	rule := strings.Repeat("═", 59)
	line := strings.Repeat("─", 57)

	var b strings.Builder
	section := func(title string) {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, rule)
		fmt.Fprintln(&b, centered(title, 59))
		fmt.Fprintln(&b, rule)
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, centered("Legacy Readiness Progress Report", 59))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04"))

	fmt.Fprintln(&b, "EMPLOYEE INFORMATION")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Name:           %s\n", s.Employee.Name())
	fmt.Fprintf(&b, "Email:          %s\n", s.Employee.Email)
	if s.Result != nil {
		fmt.Fprintf(&b, "Assessment:     %d/100\n", s.Result.Score)
	} else {
		fmt.Fprintln(&b, "Assessment:     Not completed")
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "OVERALL PROGRESS")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Completion:     %d%%\n", s.Percent())
	fmt.Fprintf(&b, "Completed:      %d modules\n", s.Completed)
	fmt.Fprintf(&b, "In Progress:    %d modules\n", s.InProgress)
	fmt.Fprintf(&b, "Not Started:    %d modules\n", s.NotStarted)
	fmt.Fprintf(&b, "Time Invested:  %.1f hours\n", s.HoursInvested)

	section("COMPLETED MODULES")
	n := 0
	for _, m := range s.Modules {
		if m.Status != Completed {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s\n", n, m.Module.Title)
		fmt.Fprintf(&b, "   Completed: %s\n", m.CompletedAt.Format(time.DateOnly))
		fmt.Fprintf(&b, "   Duration: %s\n", m.Module.EstimatedTime())
	}
	if n == 0 {
		fmt.Fprintln(&b, "No modules completed yet.")
	}

	section("MODULES IN PROGRESS")
	n = 0
	for _, m := range s.Modules {
		if m.Status != InProgress {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s\n", n, m.Module.Title)
		fmt.Fprintf(&b, "   Progress: %d%% (%d/%d lessons)\n", m.Percent(), m.LessonsCompleted, m.Module.Lessons)
		fmt.Fprintf(&b, "   Last Accessed: %s\n", m.UpdatedAt.Format(time.DateOnly))
	}
	if n == 0 {
		fmt.Fprintln(&b, "No modules in progress.")
	}

	section("UPCOMING MODULES")
	n = 0
	for _, m := range s.Modules {
		if m.Status != NotStarted {
			continue
		}
		n++
		req := "Optional"
		if m.Module.Required {
			req = "REQUIRED"
		}
		fmt.Fprintf(&b, "%d. %s\n", n, m.Module.Title)
		fmt.Fprintf(&b, "   %s\n", m.Module.Description)
		fmt.Fprintf(&b, "   Duration: %s, %s\n", m.Module.EstimatedTime(), req)
	}
	if n == 0 {
		fmt.Fprintln(&b, "All modules have been started!")
	}

	section("NEXT STEPS")
	next := s.Current()
	if next == nil {
		next = s.Next()
	}
	if next != nil {
		fmt.Fprintf(&b, "1. Continue with: %s\n", next.Module.Title)
		fmt.Fprintln(&b, "2. Review completed modules for reinforcement")
		fmt.Fprintln(&b, "3. Share progress with loved ones when ready")
	} else {
		fmt.Fprintln(&b, "1. Review all completed modules")
		fmt.Fprintln(&b, "2. Apply learnings to your personal situation")
		fmt.Fprintln(&b, "3. Export your final summary")
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}
