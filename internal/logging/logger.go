// Package logging routes logrus output away from the terminal the TUI draws on.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configure Setup.
type Params struct {
	File     string // rotating log file; empty discards output unless ToStderr
	Level    string
	ToStderr bool
}

// Setup configures the standard logrus logger and returns the closer for the
// log file, if one was opened.
func Setup(p Params) io.Closer {
	logrus.SetLevel(GetLevel(p.Level))
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if strings.TrimSpace(p.File) == "" {
		if p.ToStderr {
			logrus.SetOutput(os.Stderr)
		} else {
			logrus.SetOutput(io.Discard)
		}
		return nopCloser{}
	}

	if err := os.MkdirAll(filepath.Dir(p.File), 0o755); err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Errorf("create log dir: %s", err)
		return nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   p.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}

	if p.ToStderr {
		logrus.SetOutput(NewCombinedWriter(os.Stderr, file))
	} else {
		logrus.SetOutput(file)
	}
	return file
}

// GetLevel maps a level name onto logrus, defaulting to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// CombinedWriter fans writes out to several writers. A failing writer does
// not stop the others; all errors are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

// NewCombinedWriter returns a writer over ws.
func NewCombinedWriter(ws ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: append([]io.Writer(nil), ws...)}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
