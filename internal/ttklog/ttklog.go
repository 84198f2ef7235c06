// Package ttklog is the TTK core's injected-logger handle: a thin wrapper
// over a per-subsystem *logrus.Logger whose entries carry a "subsystem"
// field, following the FieldLogger idiom seen in
// tcell-based applications in the example pack (gcla/gowid's App type
// takes a log.StdLogger or log.FieldLogger and calls
// flog.WithField(...).Infof(...) when the richer interface is available).
// TTK has no module-global logger — every component that needs one takes
// a *Logger explicitly, per spec §9's "module-global mutable logger →
// injected logger handle" redesign note.
package ttklog

import "github.com/sirupsen/logrus"

// Subsystem names the four typed loggers the core hands out.
type Subsystem string

const (
	Render  Subsystem = "render"
	EventSys Subsystem = "event"
	TaskSys Subsystem = "task"
	Backend Subsystem = "backend"
)

// Logger wraps one subsystem's own *logrus.Logger (not shared with other
// subsystems) so that Config's per-logger level overrides (spec §6) can
// set one subsystem's threshold without affecting the others, while all
// subsystems still fan out through the same set of Hooks.
type Logger struct {
	log *logrus.Logger
	sys Subsystem
}

// newSubsystemLogger builds one subsystem's logger at the given default
// level, sharing hooks with every other subsystem in the Registry.
func newSubsystemLogger(sys Subsystem, level logrus.Level, hooks []logrus.Hook) *Logger {
	l := logrus.New()
	l.SetLevel(level)
	for _, h := range hooks {
		l.AddHook(h)
	}
	return &Logger{log: l, sys: sys}
}

// WithField starts a field chain tagged with this Logger's subsystem,
// matching call sites like `logger.WithField("op", "refresh")` from the
// grounding source (gcla/gowid's injected FieldLogger pattern).
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.log.WithField("subsystem", string(l.sys)).WithField(key, value)
}

func (l *Logger) entry() *logrus.Entry { return l.log.WithField("subsystem", string(l.sys)) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.entry().Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry().Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry().Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }

// SetLevel overrides this subsystem's effective level without touching
// any other subsystem's logger.
func (l *Logger) SetLevel(level logrus.Level) {
	l.log.SetLevel(level)
}
