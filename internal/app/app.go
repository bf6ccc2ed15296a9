package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/fittrack/internal/config"
	"github.com/five82/fittrack/internal/logging"
	"github.com/five82/fittrack/internal/prefs"
	"github.com/five82/fittrack/internal/state"
	"github.com/five82/fittrack/internal/ui"
	"github.com/five82/fittrack/internal/workout"
)

// Options configure the fittrack application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/fittrack/prefs.toml
	PlanPath   string // overrides plan_file from the config
	Debug      bool
	LogStderr  bool
}

// Run boots the tracker TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.Debug {
		level = "debug"
	}
	logCloser := logging.Setup(logging.Params{File: cfg.LogFile, Level: level, ToStderr: opts.LogStderr})
	defer logCloser.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logrus.WithError(err).Warn("using default preferences")
	}

	planPath := cfg.PlanFile
	if strings.TrimSpace(opts.PlanPath) != "" {
		if planPath, err = config.ExpandPath(opts.PlanPath); err != nil {
			return fmt.Errorf("plan path: %w", err)
		}
	}
	plan, err := workout.LoadPlan(planPath)
	if err != nil {
		return fmt.Errorf("load workout plan: %w", err)
	}

	store := state.NewStore(plan, cfg.ExportDir)

	ticks := NewScheduler(ctx, cfg.TickEvery)
	defer ticks.Stop()

	logrus.WithFields(logrus.Fields{
		"plan":       planOrBuiltin(planPath),
		"export_dir": cfg.ExportDir,
		"tick":       cfg.TickEvery,
	}).Info("fittrack starting")

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Ticker:    ticks,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogFile,
	}
	return ui.Run(uiOpts)
}

func planOrBuiltin(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
