package host

import (
	"testing"
	"time"

	"github.com/san-kum/bgcircles/internal/scene"
)

func TestManualFrameOrdering(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewManual(scene.Viewport{Width: 10, Height: 10}, start)

	calls := 0
	var reschedule func()
	reschedule = func() {
		calls++
		m.RequestFrame(reschedule)
	}
	m.RequestFrame(reschedule)

	if n := m.Frame(); n != 1 {
		t.Fatalf("expected 1 callback, got %d", n)
	}
	if calls != 1 {
		t.Errorf("callback requested during a frame ran in the same frame")
	}
	if m.PendingFrames() != 1 {
		t.Errorf("expected 1 pending frame, got %d", m.PendingFrames())
	}
	if got := m.Now().Sub(start); got != DefaultFrameInterval {
		t.Errorf("expected clock to advance %v, got %v", DefaultFrameInterval, got)
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual(scene.Viewport{}, time.Unix(0, 0))

	fired := false
	tok := m.RequestFrame(func() { fired = true })
	m.CancelFrame(tok)
	m.Frame()
	if fired {
		t.Error("cancelled frame fired")
	}

	m.IgnoreCancel = true
	tok = m.RequestFrame(func() { fired = true })
	m.CancelFrame(tok)
	m.Frame()
	if !fired {
		t.Error("expected frame to fire when cancellation is ignored")
	}
}

func TestManualResize(t *testing.T) {
	m := NewManual(scene.Viewport{}, time.Unix(0, 0))

	var seen []scene.Viewport
	tok := m.OnResize(func() { seen = append(seen, m.Viewport()) })
	m.Resize(640, 480)
	m.RemoveResize(tok)
	m.Resize(10, 10)

	if len(seen) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(seen))
	}
	if seen[0] != (scene.Viewport{Width: 640, Height: 480}) {
		t.Errorf("unexpected viewport %v", seen[0])
	}
	if m.ResizeSubscribers() != 0 {
		t.Errorf("expected no subscribers, got %d", m.ResizeSubscribers())
	}
}

func TestManualFrameAt(t *testing.T) {
	m := NewManual(scene.Viewport{}, time.Unix(0, 0))
	at := time.Unix(100, 0)
	var seen time.Time
	m.RequestFrame(func() { seen = m.Now() })
	m.FrameAt(at)
	if !seen.Equal(at) {
		t.Errorf("expected callback to observe %v, got %v", at, seen)
	}
}
