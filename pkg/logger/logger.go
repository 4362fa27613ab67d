// Package logger provides the process-wide file logger. Nothing is written
// until Init is called.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *logrus.Logger
	logFile      *os.File
	mu           sync.Mutex
)

// Init initializes the global logger with the specified log file path.
func Init(logPath string) error {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //#nosec G304 -- user-provided log path
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	// Close previous log file if exists
	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	globalLogger = newLogger(f)

	return nil
}

// InitWriter logs to w instead of a file. Close does not close w.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	globalLogger = newLogger(w)
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
	return l
}

// SetVerbose toggles debug output. Info and above are always logged.
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		return
	}
	if verbose {
		globalLogger.SetLevel(logrus.DebugLevel)
	} else {
		globalLogger.SetLevel(logrus.InfoLevel)
	}
}

// Close closes the log file and stops logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	globalLogger = nil
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	logf(logrus.InfoLevel, format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	logf(logrus.DebugLevel, format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	logf(logrus.ErrorLevel, format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	logf(logrus.WarnLevel, format, v...)
}

func logf(level logrus.Level, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Logf(level, format, v...)
	}
}

// GetWriter returns the underlying writer for use by drivers.
func GetWriter() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		return globalLogger.Out
	}
	return io.Discard
}
