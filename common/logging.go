/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common contains common properties used by the subpackages, logging in particular.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Logger is the interface used for logging in the cidmetrics packages.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// DummyLogger does nothing.
type DummyLogger struct{}

func (DummyLogger) Error(format string, args ...interface{})   {}
func (DummyLogger) Warning(format string, args ...interface{}) {}
func (DummyLogger) Notice(format string, args ...interface{})  {}
func (DummyLogger) Info(format string, args ...interface{})    {}
func (DummyLogger) Debug(format string, args ...interface{})   {}
func (DummyLogger) Trace(format string, args ...interface{})   {}

// IsLogLevel returns true from dummy logger.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return true
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Defines log level enum where the most important logs have the lowest values.
// I.e. level error = 0 and level trace = 5
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// ConsoleLogger is a logger that writes logs to the console (stderr unless Output is set).
type ConsoleLogger struct {
	LogLevel LogLevel
	Output   io.Writer
}

// NewConsoleLogger creates new console logger.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: logLevel, Output: os.Stderr}
}

// IsLogLevel returns true if log level is greater or equal than `level`.
// Can be used to avoid resource intensive calls to loggers.
func (l ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs error message.
func (l ConsoleLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.output("[ERROR] ", format, args...)
	}
}

// Warning logs warning message.
func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.output("[WARNING] ", format, args...)
	}
}

// Notice logs notice message.
func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.output("[NOTICE] ", format, args...)
	}
}

// Info logs info message.
func (l ConsoleLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.output("[INFO] ", format, args...)
	}
}

// Debug logs debug message.
func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.output("[DEBUG] ", format, args...)
	}
}

// Trace logs trace message.
func (l ConsoleLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.output("[TRACE] ", format, args...)
	}
}

// output writes `format`, `args` log message prefixed by the source file name, line and `prefix`.
func (l ConsoleLogger) output(prefix string, format string, args ...interface{}) {
	w := l.Output
	if w == nil {
		w = os.Stderr
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	src := fmt.Sprintf("%s %s:%d ", prefix, file, line) + format + "\n"
	fmt.Fprintf(w, src, args...)
}

// Log is the package-wide logger. Silent until SetLogger is called.
var Log Logger = DummyLogger{}

// SetLogger sets `logger` to be used by the cidmetrics packages.
func SetLogger(logger Logger) {
	Log = logger
}
