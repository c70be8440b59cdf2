// Package logging provides session-scoped debug logging for the cogmem CLI
// and SDK. Logs are written to a per-session file in ~/.cogmem/logs/ so a
// support request can be answered with a single file.
//
// All log methods (Debugf, Infof, Warnf, Errorf) write unconditionally.
// There is currently no log level filtering.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// Session ID shared by every logger in this process
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the process-wide session ID, creating it on first use.
func SessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// Logger writes component-tagged log lines to the session log file.
// It is safe for concurrent use.
type Logger struct {
	component string
	file      *os.File
	logger    *log.Logger
	logPath   string
	mu        sync.Mutex
	closeOnce sync.Once
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	dir string
}

// WithDirectory overrides the log directory, mainly for tests.
func WithDirectory(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// defaultDirectory returns ~/.cogmem/logs.
func defaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cogmem", "logs"), nil
}

// NewLogger creates a logger for a component. It appends to
// <dir>/<session-id>-cogmem.log; multiple components share the same file.
//
// If the directory cannot be created or the file cannot be opened, a fallback
// logger writing to stderr is returned along with the error, so callers can
// keep logging while surfacing the problem.
func NewLogger(component string, opts ...Option) (*Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dir := o.dir
	if dir == "" {
		defaultDir, err := defaultDirectory()
		if err != nil {
			return newFallbackLogger(component, err), err
		}
		dir = defaultDir
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		err = fmt.Errorf("logging: failed to create log directory: %w", err)
		return newFallbackLogger(component, err), err
	}

	logPath := filepath.Join(dir, SessionID()+"-cogmem.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("logging: failed to open log file: %w", err)
		return newFallbackLogger(component, err), err
	}

	return &Logger{
		component: component,
		file:      file,
		logger:    log.New(file, "", 0), // timestamps are formatted below
		logPath:   logPath,
	}, nil
}

// newFallbackLogger builds a stderr logger used when file logging fails.
func newFallbackLogger(component string, cause error) *Logger {
	logger := log.New(os.Stderr, fmt.Sprintf("[%s] ", component), log.LstdFlags)
	logger.Printf("WARNING: file logging unavailable, using stderr: %v", cause)

	return &Logger{
		component: component,
		logger:    logger,
	}
}

func (l *Logger) write(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, v...)
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, message)
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.write("DEBUG", format, v...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.write("INFO", format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.write("WARN", format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.write("ERROR", format, v...) }

// LogPath returns the path of the log file, empty in stderr fallback mode.
func (l *Logger) LogPath() string {
	return l.logPath
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
