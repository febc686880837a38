package wm

// State is the interaction state of one window.
type State int

const (
	// StateNormal is a visible, unmaximized window at rest.
	StateNormal State = iota
	// StateDragging means the window's title bar holds the pointer.
	StateDragging
	// StateResizing means the window's resize handle holds the pointer.
	StateResizing
	// StateMaximized fills the container.
	StateMaximized
	// StateMinimized shows only the compact title affordance.
	StateMinimized
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	case StateMaximized:
		return "maximized"
	case StateMinimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Frame is the interaction logic of one floating window. It holds a snapshot
// of the window and never mutates the store directly.
type Frame struct {
	win      Window
	min      Size
	fallback Rect
	cb       Callbacks
}

// Window returns the frame's window snapshot.
func (f *Frame) Window() Window {
	return f.win
}

// MinSize returns the resize floor for this window.
func (f *Frame) MinSize() Size {
	return f.min
}

// State reports the window's state, taking the pointer capture into account.
// Minimized presentation wins over maximized.
func (f *Frame) State(ptr *Pointer) State {
	switch {
	case f.win.IsMinimized:
		return StateMinimized
	case ptr != nil && ptr.Captured() == f.win.ID && ptr.Kind() == GestureDrag:
		return StateDragging
	case ptr != nil && ptr.Captured() == f.win.ID && ptr.Kind() == GestureResize:
		return StateResizing
	case f.win.IsMaximized:
		return StateMaximized
	default:
		return StateNormal
	}
}

// PressTitleBar raises the window and, unless it is maximized, starts a drag
// that keeps the pointer's offset from the window's top-left corner.
func (f *Frame) PressTitleBar(ptr *Pointer, at Position) error {
	if err := f.cb.OnBringToFront(); err != nil {
		return err
	}
	if f.win.IsMaximized || f.win.IsMinimized {
		return nil
	}
	ptr.capture(&gesture{
		kind:   GestureDrag,
		window: f.win.ID,
		cb:     f.cb,
		grab:   at.Sub(f.win.Position),
	})
	return nil
}

// PressResizeHandle starts a resize from the window's current size. The
// handle is absent while maximized, so this is a no-op then.
func (f *Frame) PressResizeHandle(ptr *Pointer, at Position) error {
	if f.win.IsMaximized || f.win.IsMinimized {
		return nil
	}
	ptr.capture(&gesture{
		kind:      GestureResize,
		window:    f.win.ID,
		cb:        f.cb,
		start:     at,
		startSize: f.win.Size,
		min:       f.min,
	})
	return nil
}

// ToggleMaximize maximizes the window into container, or restores it. Any
// gesture the window holds ends without a further update.
func (f *Frame) ToggleMaximize(ptr *Pointer, container Rect) error {
	if ptr != nil {
		ptr.ReleaseWindow(f.win.ID)
	}
	if f.win.IsMaximized {
		return f.cb.OnUpdate(RestorePatch(f.win, f.fallback))
	}
	return f.cb.OnUpdate(MaximizePatch(f.win, container))
}

// Minimize collapses the window to its compact affordance.
func (f *Frame) Minimize() error {
	return f.cb.OnUpdate(SetMinimized(true))
}

// Unminimize returns the window to its previous state. A window minimized
// while maximized comes back maximized.
func (f *Frame) Unminimize() error {
	return f.cb.OnUpdate(SetMinimized(false))
}

// Close asks the host to remove the window and drops any gesture it holds.
func (f *Frame) Close(ptr *Pointer) error {
	if ptr != nil {
		ptr.ReleaseWindow(f.win.ID)
	}
	return f.cb.OnClose()
}

// Press dispatches a pointer press on region r. The minimize and maximize
// buttons sit in the title bar, so pressing them raises the window too.
func (f *Frame) Press(ptr *Pointer, r Region, at Position, container Rect) error {
	switch r {
	case RegionTitleBar:
		return f.PressTitleBar(ptr, at)
	case RegionResizeHandle:
		return f.PressResizeHandle(ptr, at)
	case RegionMinimize:
		if err := f.cb.OnBringToFront(); err != nil {
			return err
		}
		return f.Minimize()
	case RegionMaximize:
		if err := f.cb.OnBringToFront(); err != nil {
			return err
		}
		return f.ToggleMaximize(ptr, container)
	case RegionClose:
		return f.Close(ptr)
	case RegionCompact:
		return f.Unminimize()
	default:
		return nil
	}
}

// MaximizePatch records w's geometry as the pre-maximize geometry and fills
// container.
func MaximizePatch(w Window, container Rect) Patch {
	maximized := true
	oldPos, oldSize := w.Position, w.Size
	pos, size := container.Position, container.Size
	return Patch{
		IsMaximized: &maximized,
		OldPosition: &oldPos,
		OldSize:     &oldSize,
		Position:    &pos,
		Size:        &size,
	}
}

// RestorePatch returns w to its pre-maximize geometry, or to fallback when
// none was recorded.
func RestorePatch(w Window, fallback Rect) Patch {
	maximized := false
	pos, size := fallback.Position, fallback.Size
	if w.OldPosition != nil {
		pos = *w.OldPosition
	}
	if w.OldSize != nil {
		size = *w.OldSize
	}
	return Patch{
		IsMaximized: &maximized,
		Position:    &pos,
		Size:        &size,
	}
}
