// Package logging provides the leveled, optionally colored console logger
// with an optional file sink.
//
// Console lines carry a timestamp and a colored level tag; the file sink is
// a gitlab.com/NebulousLabs/log file logger, which applies its own header
// and timestamps.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gitlab.com/NebulousLabs/errors"
	"gitlab.com/NebulousLabs/log"

	"github.com/backmassage/capfirst/internal/config"
	"github.com/backmassage/capfirst/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional
// file sink.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	file    *log.Logger
}

// NewLogger configures terminal colors from cfg and, when cfg.LogFile is
// set, opens the file sink. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{verbose: cfg.Verbose}
	if cfg.LogFile != "" {
		fl, err := newFileLogger(cfg.LogFile, cfg.Verbose)
		if err != nil {
			return nil, errors.AddContext(err, "can't open log file")
		}
		l.file = fl
	}
	return l, nil
}

// newFileLogger opens cfg.LogFile in append mode, creating parent
// directories as needed.
func newFileLogger(path string, verbose bool) (*log.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.AddContext(err, "can't create log directory")
	}
	return log.NewFileLogger(path, log.Options{
		BinaryName: "capfirst",
		Debug:      verbose,
		Release:    log.Release,
	})
}

// Close closes the file sink if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, ts+" ["+level+"] "+text+"\n")
	}

	if l.file == nil {
		return
	}
	switch level {
	case "ERROR":
		l.file.Errorf("%s", text)
	case "DEBUG":
		l.file.Debugf("%s", text)
	default:
		l.file.Printf("[%s] %s", level, text)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
