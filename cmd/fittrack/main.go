package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/fittrack/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	planPath := flag.String("plan", "", "weekly workout plan YAML (optional, overrides plan_file)")
	debug := flag.Bool("debug", false, "log at debug level")
	logStderr := flag.Bool("log-stderr", false, "also write logs to stderr")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		PlanPath:   *planPath,
		Debug:      *debug,
		LogStderr:  *logStderr,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fittrack: %v\n", err)
		return 1
	}
	return 0
}
