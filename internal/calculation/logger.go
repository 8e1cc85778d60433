package calculation

import "github.com/sirupsen/logrus"

// Logger is a minimal logging interface for the cancellation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// LogrusLogger routes engine logs through a logrus entry tagged with the component name.
type LogrusLogger struct {
	Entry *logrus.Entry
}

// NewLogrusLogger wraps l; a nil l uses the logrus standard logger.
func NewLogrusLogger(l *logrus.Logger) LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return LogrusLogger{Entry: l.WithField("component", "cancellation-engine")}
}

func (l LogrusLogger) Debugf(format string, args ...any) { l.Entry.Debugf(format, args...) }
func (l LogrusLogger) Infof(format string, args ...any)  { l.Entry.Infof(format, args...) }
func (l LogrusLogger) Warnf(format string, args ...any)  { l.Entry.Warnf(format, args...) }
func (l LogrusLogger) Errorf(format string, args ...any) { l.Entry.Errorf(format, args...) }
