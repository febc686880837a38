package wm

// GestureKind is the kind of gesture holding the pointer.
type GestureKind int

const (
	// GestureNone means the pointer is free.
	GestureNone GestureKind = iota
	// GestureDrag moves a window by its title bar.
	GestureDrag
	// GestureResize resizes a window from its handle.
	GestureResize
)

type gesture struct {
	kind      GestureKind
	window    string
	cb        Callbacks
	grab      Position
	start     Position
	startSize Size
	min       Size
}

// Pointer is the single pointer input stream. A drag or resize captures it
// exclusively until release; move events with no capture are ignored, so no
// geometry update is produced once a gesture ends.
//
// There is no cancel: Release always commits the gesture.
type Pointer struct {
	g *gesture
}

func (p *Pointer) capture(g *gesture) {
	p.g = g
}

// Active reports whether a gesture holds the pointer.
func (p *Pointer) Active() bool {
	return p.g != nil
}

// Captured returns the ID of the window holding the pointer, or "".
func (p *Pointer) Captured() string {
	if p.g == nil {
		return ""
	}
	return p.g.window
}

// Kind returns the active gesture kind.
func (p *Pointer) Kind() GestureKind {
	if p.g == nil {
		return GestureNone
	}
	return p.g.kind
}

// Move applies the active gesture at pointer position at.
func (p *Pointer) Move(at Position) error {
	if p.g == nil {
		return nil
	}
	return p.g.cb.OnUpdate(p.g.patch(at))
}

// Release commits the gesture at pointer position at and frees the pointer.
func (p *Pointer) Release(at Position) error {
	g := p.g
	if g == nil {
		return nil
	}
	p.g = nil
	return g.cb.OnUpdate(g.patch(at))
}

// ReleaseWindow frees the pointer without emitting updates if window id
// holds it. Used when a window closes mid-gesture.
func (p *Pointer) ReleaseWindow(id string) {
	if p.g != nil && p.g.window == id {
		p.g = nil
	}
}

// Reset frees the pointer unconditionally.
func (p *Pointer) Reset() {
	p.g = nil
}

func (g *gesture) patch(at Position) Patch {
	if g.kind == GestureResize {
		return ResizeTo(ResizeSize(g.startSize, at.Sub(g.start), g.min))
	}
	return MoveTo(DragPosition(at, g.grab))
}

// DragPosition returns the window position for a pointer at `at` grabbing
// the window at offset grab from its top-left corner. Y is clamped to 0 so
// the title bar stays reachable; X and the lower and right edges are not
// clamped.
func DragPosition(at, grab Position) Position {
	p := at.Sub(grab)
	p.Y = max(p.Y, 0)
	return p
}

// ResizeSize returns start grown by delta, floored at floor and never below
// one unit.
func ResizeSize(start Size, delta Position, floor Size) Size {
	return Size{
		Width:  max(start.Width+delta.X, floor.Width, 1),
		Height: max(start.Height+delta.Y, floor.Height, 1),
	}
}
