// Package common provides the ambient logging facility shared by the
// rest of this module. It intentionally mirrors the small logger
// interface used throughout the surrounding PDF toolkit so the lexical
// core can be dropped into that toolkit (or tested standalone) without
// dragging in a particular logging framework.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Logger is the interface used for logging in the pdflex package.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// DummyLogger discards everything. It is the package default so that
// importing pdflex has no side effect on a host application's output.
type DummyLogger struct{}

// Error does nothing for dummy logger.
func (DummyLogger) Error(format string, args ...interface{}) {}

// Warning does nothing for dummy logger.
func (DummyLogger) Warning(format string, args ...interface{}) {}

// Notice does nothing for dummy logger.
func (DummyLogger) Notice(format string, args ...interface{}) {}

// Info does nothing for dummy logger.
func (DummyLogger) Info(format string, args ...interface{}) {}

// Debug does nothing for dummy logger.
func (DummyLogger) Debug(format string, args ...interface{}) {}

// Trace does nothing for dummy logger.
func (DummyLogger) Trace(format string, args ...interface{}) {}

// IsLogLevel returns true from dummy logger: nothing is ever filtered
// because nothing is ever written.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return true
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Log levels; the most important has the lowest value: level error = 0,
// level trace = 5.
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// ConsoleLogger writes logs to os.Stdout, filtered by LogLevel.
type ConsoleLogger struct {
	LogLevel LogLevel
}

// NewConsoleLogger creates a new console logger at the given level.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: logLevel}
}

// IsLogLevel returns true if log level is greater or equal than level.
func (l ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs an error message.
func (l ConsoleLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.output(os.Stdout, "[ERROR] ", format, args...)
	}
}

// Warning logs a warning message.
func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.output(os.Stdout, "[WARNING] ", format, args...)
	}
}

// Notice logs a notice message.
func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.output(os.Stdout, "[NOTICE] ", format, args...)
	}
}

// Info logs an info message.
func (l ConsoleLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.output(os.Stdout, "[INFO] ", format, args...)
	}
}

// Debug logs a debug message.
func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.output(os.Stdout, "[DEBUG] ", format, args...)
	}
}

// Trace logs a trace message.
func (l ConsoleLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.output(os.Stdout, "[TRACE] ", format, args...)
	}
}

func (l ConsoleLogger) output(f io.Writer, prefix, format string, args ...interface{}) {
	logToWriter(f, prefix, format, args...)
}

// WriterLogger writes to an arbitrary io.Writer, filtered by LogLevel.
// Useful for tests that want to assert on emitted log lines.
type WriterLogger struct {
	LogLevel LogLevel
	Output   io.Writer
}

// NewWriterLogger creates a new writer logger.
func NewWriterLogger(logLevel LogLevel, writer io.Writer) *WriterLogger {
	return &WriterLogger{Output: writer, LogLevel: logLevel}
}

// IsLogLevel returns true if log level is greater or equal than level.
func (l WriterLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs an error message.
func (l WriterLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.output("[ERROR] ", format, args...)
	}
}

// Warning logs a warning message.
func (l WriterLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.output("[WARNING] ", format, args...)
	}
}

// Notice logs a notice message.
func (l WriterLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.output("[NOTICE] ", format, args...)
	}
}

// Info logs an info message.
func (l WriterLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.output("[INFO] ", format, args...)
	}
}

// Debug logs a debug message.
func (l WriterLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.output("[DEBUG] ", format, args...)
	}
}

// Trace logs a trace message.
func (l WriterLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.output("[TRACE] ", format, args...)
	}
}

func (l WriterLogger) output(prefix, format string, args ...interface{}) {
	logToWriter(l.Output, prefix, format, args...)
}

// logToWriter writes format/args prefixed by the calling source file
// and line number, the same shape every logger above produces.
func logToWriter(f io.Writer, prefix, format string, args ...interface{}) {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "???"
		line = 0
	} else {
		file = filepath.Base(file)
	}
	src := fmt.Sprintf("%s %s:%d ", prefix, file, line) + format + "\n"
	fmt.Fprintf(f, src, args...)
}

// Log is the package-wide logger used by pdflex. Replace it with
// SetLogger to install a different implementation.
var Log Logger = DummyLogger{}

// SetLogger installs logger as the package-wide logger used by pdflex.
func SetLogger(logger Logger) {
	Log = logger
}
