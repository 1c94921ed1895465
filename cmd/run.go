package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/endevo/legacyready/internal/app"
	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/coach"
	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/llm"
	"github.com/endevo/legacyready/internal/logging"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/screens/home"
	"github.com/endevo/legacyready/internal/selfupdate"
	"github.com/endevo/legacyready/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env bundles the dependencies shared by the TUI and the subcommands.
type env struct {
	store    *store.Store
	dir      *directory.Memory
	bank     *assessment.Bank
	progress *progress.Service
	logger   *zap.Logger
}

// newEnv opens the store and builds the shared services.
func newEnv(cmd *cobra.Command) (*env, error) {
	logger, err := logging.New(logging.ConfigFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger = zap.NewNop()
	}

	bank, err := loadBank(cmd)
	if err != nil {
		return nil, err
	}

	s, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	dir := directory.Seed()
	return &env{
		store:    s,
		dir:      dir,
		bank:     bank,
		progress: progress.NewService(dir, s.ResultRepo(), s.ProgressRepo(), logger),
		logger:   logger,
	}, nil
}

func (e *env) Close() {
	_ = e.logger.Sync()
	_ = e.store.Close()
}

// newCoach returns a coach backed by the configured LLM provider, or a
// keyword-only coach when none is configured.
func (e *env) newCoach(ctx context.Context) *coach.Coach {
	cfg, ok := llm.ResolveConfig()
	if !ok {
		return coach.New(nil, coach.DefaultConfig(), e.logger)
	}
	provider, err := llm.NewProvider(ctx, cfg, e.store.EventRepo(), e.logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The coach will use built-in help topics.")
		return coach.New(nil, coach.DefaultConfig(), e.logger)
	}
	e.logger.Info("coach using LLM provider",
		zap.String("provider", llm.ProviderName(provider)),
		zap.String("model", provider.ModelID()))
	return coach.New(provider, coach.DefaultConfig(), e.logger)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	emp, err := lookupEmployee(cmd, e.dir, "")
	if err != nil {
		return err
	}

	return app.Run(ctx, app.Options{
		Deps: home.Deps{
			Employee:      emp,
			Bank:          e.bank,
			Results:       e.store.ResultRepo(),
			Progress:      e.progress,
			Coach:         e.newCoach(ctx),
			Logger:        e.logger,
			LatestVersion: latestVersion(ctx, e.logger),
		},
	})
}

// latestVersion returns the newest release tag when it is newer than the
// running build. Failures are logged and yield "".
func latestVersion(ctx context.Context, logger *zap.Logger) string {
	if os.Getenv("LEGACYREADY_NO_UPDATE_CHECK") != "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Second))
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		logger.Debug("update check failed", zap.Error(err))
		return ""
	}
	if !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}
