package common

import "github.com/sirupsen/logrus"

// LogrusLogger adapts a *logrus.Logger to the Logger interface, for
// host applications that already standardized on logrus and want
// pdflex's trace/debug output folded into their existing pipeline
// instead of going to a bare console writer.
type LogrusLogger struct {
	Entry *logrus.Logger
}

// NewLogrusLogger wraps entry as a Logger.
func NewLogrusLogger(entry *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{Entry: entry}
}

// IsLogLevel reports whether entry's configured level would emit level.
func (l *LogrusLogger) IsLogLevel(level LogLevel) bool {
	return l.Entry.IsLevelEnabled(toLogrusLevel(level))
}

// Error logs at logrus.ErrorLevel.
func (l *LogrusLogger) Error(format string, args ...interface{}) {
	l.Entry.Errorf(format, args...)
}

// Warning logs at logrus.WarnLevel.
func (l *LogrusLogger) Warning(format string, args ...interface{}) {
	l.Entry.Warnf(format, args...)
}

// Notice logs at logrus.InfoLevel: logrus has no Notice level.
func (l *LogrusLogger) Notice(format string, args ...interface{}) {
	l.Entry.Infof(format, args...)
}

// Info logs at logrus.InfoLevel.
func (l *LogrusLogger) Info(format string, args ...interface{}) {
	l.Entry.Infof(format, args...)
}

// Debug logs at logrus.DebugLevel.
func (l *LogrusLogger) Debug(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}

// Trace logs at logrus.TraceLevel.
func (l *LogrusLogger) Trace(format string, args ...interface{}) {
	l.Entry.Tracef(format, args...)
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelWarning:
		return logrus.WarnLevel
	case LogLevelNotice, LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
