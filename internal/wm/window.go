package wm

import "errors"

// ErrWindowNotFound is returned when no open window has the requested ID.
var ErrWindowNotFound = errors.New("window not found")

// ErrInvalidGeometry is returned when a window would get a non-positive size.
var ErrInvalidGeometry = errors.New("invalid window geometry")

// Position is a top-left coordinate relative to the container.
type Position struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// Add returns p offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from d to p.
func (p Position) Sub(d Position) Position {
	return Position{X: p.X - d.X, Y: p.Y - d.Y}
}

// Size is a width and height.
type Size struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// AtLeast returns s with each dimension raised to min where smaller.
func (s Size) AtLeast(min Size) Size {
	return Size{Width: max(s.Width, min.Width), Height: max(s.Height, min.Height)}
}

// Rect is a positioned size.
type Rect struct {
	Position
	Size
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Window is the host-owned record describing one floating panel.
type Window struct {
	ID          string
	Title       string
	Component   Component
	Body        string
	Position    Position
	Size        Size
	ZIndex      int
	IsMaximized bool
	IsMinimized bool
	// Pre-maximize geometry, set while IsMaximized is true.
	OldPosition *Position
	OldSize     *Size
}

// Bounds returns the window's current rectangle.
func (w Window) Bounds() Rect {
	return Rect{Position: w.Position, Size: w.Size}
}

// Visible reports whether the window draws its full frame.
func (w Window) Visible() bool {
	return !w.IsMinimized
}

// clone returns a copy that shares no pointers with w.
func (w Window) clone() Window {
	if w.OldPosition != nil {
		p := *w.OldPosition
		w.OldPosition = &p
	}
	if w.OldSize != nil {
		s := *w.OldSize
		w.OldSize = &s
	}
	return w
}

// Patch holds partial changes to a window. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Position    *Position
	Size        *Size
	ZIndex      *int
	IsMaximized *bool
	IsMinimized *bool
	OldPosition *Position
	OldSize     *Size
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Position == nil && p.Size == nil && p.ZIndex == nil &&
		p.IsMaximized == nil && p.IsMinimized == nil && p.OldPosition == nil && p.OldSize == nil
}

// apply shallow-merges p into w.
func (p Patch) apply(w *Window) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Position != nil {
		w.Position = *p.Position
	}
	if p.Size != nil {
		w.Size = *p.Size
	}
	if p.ZIndex != nil {
		w.ZIndex = *p.ZIndex
	}
	if p.IsMaximized != nil {
		w.IsMaximized = *p.IsMaximized
	}
	if p.IsMinimized != nil {
		w.IsMinimized = *p.IsMinimized
	}
	if p.OldPosition != nil {
		old := *p.OldPosition
		w.OldPosition = &old
	}
	if p.OldSize != nil {
		old := *p.OldSize
		w.OldSize = &old
	}
}

// MoveTo returns a patch setting the position.
func MoveTo(p Position) Patch {
	return Patch{Position: &p}
}

// ResizeTo returns a patch setting the size.
func ResizeTo(s Size) Patch {
	return Patch{Size: &s}
}

// SetMinimized returns a patch setting the minimized flag.
func SetMinimized(minimized bool) Patch {
	return Patch{IsMinimized: &minimized}
}
