package scene

// Holder owns the current viewport and circle sequence. Writers submit
// whole values; readers get copies, so no partial update is ever visible.
type Holder struct {
	viewport Viewport
	circles  []Circle
	onChange func(Snapshot)
}

func NewHolder(onChange func(Snapshot)) *Holder {
	return &Holder{onChange: onChange}
}

func (h *Holder) Viewport() Viewport { return h.viewport }

func (h *Holder) Circles() []Circle { return cloneCircles(h.circles) }

func (h *Holder) Len() int { return len(h.circles) }

func (h *Holder) Snapshot() Snapshot {
	return Snapshot{Viewport: h.viewport, Circles: cloneCircles(h.circles)}
}

func (h *Holder) SetViewport(vp Viewport) {
	h.viewport = vp
	h.notify()
}

func (h *Holder) SetCircles(cs []Circle) {
	h.circles = cloneCircles(cs)
	h.notify()
}

func (h *Holder) notify() {
	if h.onChange != nil {
		h.onChange(h.Snapshot())
	}
}
