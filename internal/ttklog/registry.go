package ttklog

import "github.com/sirupsen/logrus"

// Config is the logging slice of ttk.Config (spec §6): whether to keep a
// log pane ring buffer, whether to capture stdout/stderr into it,
// whether to run the remote TCP broadcast, the default level, and
// per-subsystem overrides.
type Config struct {
	LogPaneEnabled          bool
	StreamOutputEnabled     *bool // nil = auto from mode, decided by the caller
	RemoteMonitoringEnabled bool
	RemoteAddr              string
	DefaultLevel            logrus.Level
	LevelOverrides          map[Subsystem]logrus.Level
	MaxLogMessages          int
}

// Registry owns every subsystem's Logger plus the shared sinks
// (Ring/TCPBroadcast/StreamCapture) that back them.
type Registry struct {
	Render        *Logger
	Event         *Logger
	Task          *Logger
	Backend       *Logger
	Ring          *Ring
	TCP           *TCPBroadcast
	StreamCapture *StreamCapture
}

// NewRegistry builds every subsystem logger per cfg. If
// RemoteMonitoringEnabled is set but the listener fails to bind, the
// returned error is non-nil and the registry is otherwise still usable
// (ring + subsystem loggers are unaffected) — a remote-monitoring
// failure never prevents local logging (spec §7: sink failures isolate).
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.MaxLogMessages <= 0 {
		cfg.MaxLogMessages = 500
	}
	ring := NewRing(cfg.MaxLogMessages)

	hooks := []logrus.Hook{}
	if cfg.LogPaneEnabled {
		hooks = append(hooks, ring)
	}

	reg := &Registry{Ring: ring}

	var tcpErr error
	if cfg.RemoteMonitoringEnabled {
		tcp, err := NewTCPBroadcast(cfg.RemoteAddr)
		if err != nil {
			tcpErr = err
		} else {
			reg.TCP = tcp
			hooks = append(hooks, tcp)
		}
	}

	level := func(sys Subsystem) logrus.Level {
		if l, ok := cfg.LevelOverrides[sys]; ok {
			return l
		}
		if cfg.DefaultLevel == 0 {
			return logrus.InfoLevel
		}
		return cfg.DefaultLevel
	}

	reg.Render = newSubsystemLogger(Render, level(Render), hooks)
	reg.Event = newSubsystemLogger(EventSys, level(EventSys), hooks)
	reg.Task = newSubsystemLogger(TaskSys, level(TaskSys), hooks)
	reg.Backend = newSubsystemLogger(Backend, level(Backend), hooks)

	if cfg.StreamOutputEnabled != nil && *cfg.StreamOutputEnabled {
		sc, err := NewStreamCapture(ring)
		if err == nil {
			reg.StreamCapture = sc
		}
	}

	return reg, tcpErr
}

// Close releases the TCP listener and restores stdout/stderr, if either
// was started.
func (r *Registry) Close() {
	if r.TCP != nil {
		r.TCP.Close()
	}
	if r.StreamCapture != nil {
		r.StreamCapture.Close()
	}
}
