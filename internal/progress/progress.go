// Package progress folds module progress events into per-employee summaries,
// organization reports and completion certificates.
package progress

import (
	"math"
	"slices"
	"time"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/store"
)

// Status is the learner's state in a single module.
type Status string

const (
	NotStarted Status = "not_started"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// Label returns a human readable status.
func (s Status) Label() string {
	switch s {
	case InProgress:
		return "In progress"
	case Completed:
		return "Completed"
	default:
		return "Not started"
	}
}

// ModuleProgress is the learner's state in one module.
type ModuleProgress struct {
	Module           catalog.Module
	Assigned         bool
	Status           Status
	LessonsCompleted int
	StartedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      time.Time

	lastSeq int64
}

// Percent returns lesson progress through the module.
func (mp ModuleProgress) Percent() int {
	if mp.Status == Completed {
		return 100
	}
	if mp.Module.Lessons == 0 {
		return 0
	}
	return percent(mp.LessonsCompleted, mp.Module.Lessons)
}

// Summary is an employee's learning state.
type Summary struct {
	Employee directory.Employee
	Result   *store.Result // latest assessment, nil if not taken

	// Modules lists the assigned plan first, then any other modules the
	// employee has touched.
	Modules []ModuleProgress

	Completed     int
	InProgress    int
	NotStarted    int
	HoursInvested float64
}

// Assigned returns the modules in the employee's plan.
func (s *Summary) Assigned() []ModuleProgress {
	var out []ModuleProgress
	for _, m := range s.Modules {
		if m.Assigned {
			out = append(out, m)
		}
	}
	return out
}

// Percent is the share of assigned modules completed.
func (s *Summary) Percent() int {
	assigned := s.Assigned()
	if len(assigned) == 0 {
		return 0
	}
	done := 0
	for _, m := range assigned {
		if m.Status == Completed {
			done++
		}
	}
	return percent(done, len(assigned))
}

// State classifies the employee for completion buckets.
func (s *Summary) State() Status {
	if s.Percent() == 100 {
		return Completed
	}
	for _, m := range s.Modules {
		if m.Status != NotStarted {
			return InProgress
		}
	}
	return NotStarted
}

// Next returns the first assigned module not yet started, or nil.
func (s *Summary) Next() *ModuleProgress {
	for i := range s.Modules {
		if s.Modules[i].Assigned && s.Modules[i].Status == NotStarted {
			return &s.Modules[i]
		}
	}
	return nil
}

// Current returns the most recently touched in-progress module, or nil.
func (s *Summary) Current() *ModuleProgress {
	var cur *ModuleProgress
	for i := range s.Modules {
		m := &s.Modules[i]
		if m.Status != InProgress {
			continue
		}
		if cur == nil || m.lastSeq > cur.lastSeq {
			cur = m
		}
	}
	return cur
}

// Module returns the progress entry for id, or nil.
func (s *Summary) Module(id string) *ModuleProgress {
	for i := range s.Modules {
		if s.Modules[i].Module.ID == id {
			return &s.Modules[i]
		}
	}
	return nil
}

// Summarize replays events into a Summary. The plan comes from the latest
// result; without one every catalog module is assigned. Events for modules
// outside the catalog are ignored.
func Summarize(emp directory.Employee, result *store.Result, events []store.ProgressRecord) *Summary {
	var plan []catalog.Module
	if result != nil {
		plan = catalog.Lookup(result.Modules)
	} else {
		plan = catalog.All()
	}

	states := make(map[string]*ModuleProgress)
	var order []string
	for _, m := range plan {
		states[m.ID] = &ModuleProgress{Module: m, Assigned: true, Status: NotStarted}
		order = append(order, m.ID)
	}

	sorted := slices.Clone(events)
	slices.SortFunc(sorted, func(a, b store.ProgressRecord) int {
		switch {
		case a.Sequence < b.Sequence:
			return -1
		case a.Sequence > b.Sequence:
			return 1
		}
		return 0
	})

	for _, ev := range sorted {
		mp, ok := states[ev.ModuleID]
		if !ok {
			m, err := catalog.Get(ev.ModuleID)
			if err != nil {
				continue
			}
			mp = &ModuleProgress{Module: m, Status: NotStarted}
			states[m.ID] = mp
		}
		apply(mp, ev)
	}

	// Unassigned modules follow the plan in catalog order.
	for _, m := range catalog.All() {
		if mp, ok := states[m.ID]; ok && !mp.Assigned {
			order = append(order, m.ID)
		}
	}

	s := &Summary{Employee: emp, Result: result}
	for _, id := range order {
		mp := states[id]
		s.Modules = append(s.Modules, *mp)
		switch mp.Status {
		case Completed:
			s.Completed++
			s.HoursInvested += mp.Module.EstimatedHours
		case InProgress:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}
	return s
}

func apply(mp *ModuleProgress, ev store.ProgressRecord) {
	if mp.Status == Completed {
		return
	}
	if mp.StartedAt.IsZero() {
		mp.StartedAt = ev.Timestamp
	}
	mp.UpdatedAt = ev.Timestamp
	mp.lastSeq = ev.Sequence

	switch ev.Action {
	case store.ActionStart:
		mp.Status = InProgress
	case store.ActionLesson:
		mp.Status = InProgress
		mp.LessonsCompleted = max(mp.LessonsCompleted, min(ev.LessonsCompleted, mp.Module.Lessons))
	case store.ActionComplete:
		mp.Status = Completed
		mp.LessonsCompleted = mp.Module.Lessons
		mp.CompletedAt = ev.Timestamp
	}
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(total)))
}
