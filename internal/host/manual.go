// Package host contains scene.Host implementations that do not own a display.
package host

import (
	"time"

	"github.com/san-kum/bgcircles/internal/scene"
)

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = time.Second / 60

type entry struct {
	token scene.Token
	fn    func()
}

// Manual is a deterministic host: the caller decides when resizes happen
// and when a display refresh fires. The clock only moves on Frame and
// Advance.
type Manual struct {
	viewport scene.Viewport
	now      time.Time
	interval time.Duration
	next     scene.Token

	resize []entry
	frames []entry

	// IgnoreCancel keeps cancelled frame callbacks queued so they are still
	// delivered, like a host that races a cancellation.
	IgnoreCancel bool
}

func NewManual(vp scene.Viewport, start time.Time) *Manual {
	return &Manual{
		viewport: vp,
		now:      start,
		interval: DefaultFrameInterval,
	}
}

func (m *Manual) SetFrameInterval(d time.Duration) {
	if d > 0 {
		m.interval = d
	}
}

func (m *Manual) Viewport() scene.Viewport { return m.viewport }

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) OnResize(fn func()) scene.Token {
	m.next++
	m.resize = append(m.resize, entry{token: m.next, fn: fn})
	return m.next
}

func (m *Manual) RemoveResize(t scene.Token) {
	m.resize = remove(m.resize, t)
}

func (m *Manual) RequestFrame(fn func()) scene.Token {
	m.next++
	m.frames = append(m.frames, entry{token: m.next, fn: fn})
	return m.next
}

func (m *Manual) CancelFrame(t scene.Token) {
	if m.IgnoreCancel {
		return
	}
	m.frames = remove(m.frames, t)
}

// Resize changes the viewport and notifies every resize subscriber.
func (m *Manual) Resize(width, height float64) {
	m.viewport = scene.Viewport{Width: width, Height: height}
	subs := append([]entry(nil), m.resize...)
	for _, e := range subs {
		e.fn()
	}
}

// Advance moves the clock without firing frames.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Frame advances the clock by one interval and runs the callbacks that were
// pending before the call. Callbacks requested during the frame wait for the
// next one. It returns how many callbacks ran.
func (m *Manual) Frame() int {
	return m.FrameAt(m.now.Add(m.interval))
}

// FrameAt is Frame with an explicit refresh time, for hosts driven by a
// real display clock.
func (m *Manual) FrameAt(t time.Time) int {
	m.now = t
	pending := m.frames
	m.frames = nil
	for _, e := range pending {
		e.fn()
	}
	return len(pending)
}

// Run fires n frames and returns the total number of callbacks delivered.
func (m *Manual) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += m.Frame()
	}
	return total
}

func (m *Manual) PendingFrames() int { return len(m.frames) }

func (m *Manual) ResizeSubscribers() int { return len(m.resize) }

func remove(entries []entry, t scene.Token) []entry {
	for i, e := range entries {
		if e.token == t {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}
