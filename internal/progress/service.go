package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyCompleted is returned when recording progress on a finished module.
var ErrAlreadyCompleted = errors.New("module already completed")

// Service records module progress and builds summaries and reports.
type Service struct {
	dir      directory.Directory
	results  store.ResultRepo
	progress store.ProgressRepo
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a progress Service. A nil logger disables logging.
func NewService(dir directory.Directory, results store.ResultRepo, progress store.ProgressRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		dir:      dir,
		results:  results,
		progress: progress,
		logger:   logger,
		now:      time.Now,
	}
}

// Summary returns the learning summary for an employee.
func (s *Service) Summary(ctx context.Context, employeeID string) (*Summary, error) {
	emp, err := s.dir.Employee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("employee %s: %w", employeeID, err)
	}
	return s.summarize(ctx, emp)
}

func (s *Service) summarize(ctx context.Context, emp directory.Employee) (*Summary, error) {
	result, err := s.results.Latest(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	events, err := s.progress.ByRespondent(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	return Summarize(emp, result, events), nil
}

// Start marks a module as started. Starting a module already in progress is
// a no-op.
func (s *Service) Start(ctx context.Context, employeeID, moduleID string) error {
	sum, mp, err := s.lookup(ctx, employeeID, moduleID)
	if err != nil {
		return err
	}
	switch mp.Status {
	case Completed:
		return fmt.Errorf("start %s: %w", moduleID, ErrAlreadyCompleted)
	case InProgress:
		return nil
	}
	return s.append(ctx, sum.Employee.ID, moduleID, store.ActionStart, 0)
}

// CompleteLesson records one more finished lesson, starting the module if
// needed. Finishing the last lesson completes the module.
func (s *Service) CompleteLesson(ctx context.Context, employeeID, moduleID string) (*ModuleProgress, error) {
	sum, mp, err := s.lookup(ctx, employeeID, moduleID)
	if err != nil {
		return nil, err
	}
	if mp.Status == Completed {
		return nil, fmt.Errorf("lesson in %s: %w", moduleID, ErrAlreadyCompleted)
	}

	empID := sum.Employee.ID
	if mp.Status == NotStarted {
		if err := s.append(ctx, empID, moduleID, store.ActionStart, 0); err != nil {
			return nil, err
		}
	}

	lessons := mp.LessonsCompleted + 1
	action := store.ActionLesson
	if lessons >= mp.Module.Lessons {
		action = store.ActionComplete
		lessons = mp.Module.Lessons
	}
	if err := s.append(ctx, empID, moduleID, action, lessons); err != nil {
		return nil, err
	}

	sum, err = s.summarize(ctx, sum.Employee)
	if err != nil {
		return nil, err
	}
	return sum.Module(moduleID), nil
}

// Complete marks a module as completed.
func (s *Service) Complete(ctx context.Context, employeeID, moduleID string) error {
	sum, mp, err := s.lookup(ctx, employeeID, moduleID)
	if err != nil {
		return err
	}
	if mp.Status == Completed {
		return fmt.Errorf("complete %s: %w", moduleID, ErrAlreadyCompleted)
	}
	return s.append(ctx, sum.Employee.ID, moduleID, store.ActionComplete, mp.Module.Lessons)
}

func (s *Service) lookup(ctx context.Context, employeeID, moduleID string) (*Summary, *ModuleProgress, error) {
	m, err := catalog.Get(moduleID)
	if err != nil {
		return nil, nil, err
	}
	sum, err := s.Summary(ctx, employeeID)
	if err != nil {
		return nil, nil, err
	}
	mp := sum.Module(moduleID)
	if mp == nil {
		mp = &ModuleProgress{Module: m, Status: NotStarted}
	}
	return sum, mp, nil
}

func (s *Service) append(ctx context.Context, employeeID, moduleID string, action store.ProgressAction, lessons int) error {
	err := s.progress.Append(ctx, store.ProgressEventData{
		RespondentID:     employeeID,
		ModuleID:         moduleID,
		Action:           action,
		LessonsCompleted: lessons,
	})
	if err != nil {
		return fmt.Errorf("record %s for %s: %w", action, moduleID, err)
	}
	s.logger.Info("progress recorded",
		zap.String("employee", employeeID),
		zap.String("module", moduleID),
		zap.String("action", string(action)),
		zap.Int("lessons", lessons))
	return nil
}

// Certificates returns a certificate for every module the employee has
// completed.
func (s *Service) Certificates(ctx context.Context, employeeID string) ([]Certificate, error) {
	sum, err := s.Summary(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return Certificates(sum), nil
}

// reportWorkers bounds concurrent summary builds for OrgReport.
const reportWorkers = 4

// OrgReport builds the report for an organization's employees. HR admins
// are not part of the learner population and are left out.
func (s *Service) OrgReport(ctx context.Context, orgID string) (*OrgReport, error) {
	org, err := s.dir.Organization(orgID)
	if err != nil {
		return nil, fmt.Errorf("organization %s: %w", orgID, err)
	}

	var learners []directory.Employee
	for _, emp := range s.dir.Employees(org.ID) {
		if emp.Role == directory.RoleEmployee {
			learners = append(learners, emp)
		}
	}

	summaries := make([]*Summary, len(learners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportWorkers)
	for i, emp := range learners {
		g.Go(func() error {
			sum, err := s.summarize(gctx, emp)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", emp.ID, err)
			}
			summaries[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("organization report built",
		zap.String("org", org.ID),
		zap.Int("employees", len(summaries)))
	return BuildOrgReport(org, summaries, s.now()), nil
}
