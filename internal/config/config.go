package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds fittrack's settings.
type Config struct {
	ExportDir string // empty means the working directory
	PlanFile  string // empty means the built-in plan
	LogFile   string
	LogLevel  string
	TickEvery time.Duration
}

const (
	defaultConfigPath = "~/.config/fittrack/config.toml"
	defaultLogFile    = "~/.local/state/fittrack/fittrack.log"
	defaultLogLevel   = "info"
	defaultTick       = time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  defaultLogLevel,
		TickEvery: defaultTick,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ExportDir   string `toml:"export_dir"`
		PlanFile    string `toml:"plan_file"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		TickSeconds int    `toml:"tick_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		if cfg.ExportDir, err = expandPath(dir); err != nil {
			return Config{}, fmt.Errorf("export_dir: %w", err)
		}
	}
	if plan := strings.TrimSpace(raw.PlanFile); plan != "" {
		if cfg.PlanFile, err = expandPath(plan); err != nil {
			return Config{}, fmt.Errorf("plan_file: %w", err)
		}
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if raw.TickSeconds > 0 {
		cfg.TickEvery = time.Duration(raw.TickSeconds) * time.Second
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
