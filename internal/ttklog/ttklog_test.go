package ttklog

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRingCapacityWrapsAndSnapshotIsChronological(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.Capture("stdout", string(rune('a'+i)))
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot() len = %d, want 3", len(snap))
	}
	want := []string{"c", "d", "e"}
	for i, rec := range snap {
		if rec.Message != want[i] {
			t.Fatalf("snap[%d].Message = %q, want %q", i, rec.Message, want[i])
		}
		if !rec.SourceStream {
			t.Fatalf("snap[%d].SourceStream = false, want true", i)
		}
	}
}

func TestRingFireViaLogrusHook(t *testing.T) {
	r := NewRing(10)
	logger := logrus.New()
	logger.AddHook(r)
	logger.WithField("subsystem", "render").Info("refresh complete")

	snap := r.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot() len = %d, want 1", len(snap))
	}
	if snap[0].Source != "render" || snap[0].Message != "refresh complete" {
		t.Fatalf("record = %+v", snap[0])
	}
	if snap[0].SourceStream {
		t.Fatalf("a normal log call must not be marked SourceStream")
	}
}

func TestRegistryPerSubsystemLevelOverride(t *testing.T) {
	reg, err := NewRegistry(Config{
		LogPaneEnabled: true,
		DefaultLevel:   logrus.InfoLevel,
		LevelOverrides: map[Subsystem]logrus.Level{
			TaskSys: logrus.WarnLevel,
		},
		MaxLogMessages: 10,
	})
	if err != nil {
		t.Fatalf("NewRegistry() = %v", err)
	}

	reg.Task.Infof("should be suppressed at Warn threshold")
	reg.Render.Infof("should pass at Info threshold")

	snap := reg.Ring.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot() len = %d, want 1 (task Info suppressed)", len(snap))
	}
	if snap[0].Source != "render" {
		t.Fatalf("surviving record source = %q, want render", snap[0].Source)
	}
}

// fakeFailingHook always errors, modeling a sink that should be isolated
// without affecting the ring buffer (spec §7: "Logging sink failure ...
// isolate").
type fakeFailingHook struct{ fired int }

func (f *fakeFailingHook) Levels() []logrus.Level { return logrus.AllLevels }
func (f *fakeFailingHook) Fire(e *logrus.Entry) error {
	f.fired++
	return errAlwaysFails
}

var errAlwaysFails = &failError{}

type failError struct{}

func (*failError) Error() string { return "sink always fails" }

func TestOneFailingSinkDoesNotPreventOthers(t *testing.T) {
	ring := NewRing(5)
	failing := &fakeFailingHook{}
	logger := logrus.New()
	logger.AddHook(ring)
	logger.AddHook(failing)

	logger.WithField("subsystem", "backend").Warn("draw failure")

	if failing.fired != 1 {
		t.Fatalf("failing hook fired %d times, want 1", failing.fired)
	}
	if len(ring.Snapshot()) != 1 {
		t.Fatalf("ring should still have received the record despite the other hook failing")
	}
}
