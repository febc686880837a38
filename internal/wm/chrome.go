package wm

// Region identifies the part of a window frame under the pointer.
type Region int

const (
	// RegionNone is outside the window.
	RegionNone Region = iota
	// RegionTitleBar raises the window and starts a drag.
	RegionTitleBar
	// RegionMinimize is the minimize button.
	RegionMinimize
	// RegionMaximize is the maximize/restore button.
	RegionMaximize
	// RegionClose is the close button.
	RegionClose
	// RegionResizeHandle is the bottom-right resize grip.
	RegionResizeHandle
	// RegionBody is the content area.
	RegionBody
	// RegionCompact is the minimized title affordance.
	RegionCompact
)

func (r Region) String() string {
	switch r {
	case RegionTitleBar:
		return "title"
	case RegionMinimize:
		return "minimize"
	case RegionMaximize:
		return "maximize"
	case RegionClose:
		return "close"
	case RegionResizeHandle:
		return "resize"
	case RegionBody:
		return "body"
	case RegionCompact:
		return "compact"
	default:
		return "none"
	}
}

// Chrome describes where a frame draws its title bar, buttons and resize
// handle. Buttons sit right-aligned in the title bar as minimize, maximize,
// close, with RightInset units between the close button and the edge.
type Chrome struct {
	TitleHeight  int
	ButtonWidth  int
	RightInset   int
	HandleWidth  int
	HandleHeight int
}

// DefaultChrome is the terminal frame: a one-row title bar drawn in the top
// border, three-cell buttons and a two-cell grip in the bottom-right corner.
func DefaultChrome() Chrome {
	return Chrome{
		TitleHeight:  1,
		ButtonWidth:  3,
		RightInset:   1,
		HandleWidth:  2,
		HandleHeight: 1,
	}
}

// ButtonX returns the left edge of button b (RegionMinimize, RegionMaximize
// or RegionClose) for a window at x with the given width.
func (c Chrome) ButtonX(x, width int, b Region) int {
	closeX := x + width - c.RightInset - c.ButtonWidth
	switch b {
	case RegionClose:
		return closeX
	case RegionMaximize:
		return closeX - c.ButtonWidth
	case RegionMinimize:
		return closeX - 2*c.ButtonWidth
	default:
		return -1
	}
}

// RegionAt classifies p against w's frame. A button that would cover the
// left edge is dropped. Minimized windows have no frame and always report
// RegionNone here.
func (c Chrome) RegionAt(w Window, p Position) Region {
	if w.IsMinimized || !w.Bounds().Contains(p) {
		return RegionNone
	}
	if p.Y < w.Position.Y+c.TitleHeight {
		for _, b := range []Region{RegionMinimize, RegionMaximize, RegionClose} {
			bx := c.ButtonX(w.Position.X, w.Size.Width, b)
			if bx > w.Position.X && p.X >= bx && p.X < bx+c.ButtonWidth {
				return b
			}
		}
		return RegionTitleBar
	}
	if !w.IsMaximized &&
		p.X >= w.Position.X+w.Size.Width-c.HandleWidth &&
		p.Y >= w.Position.Y+w.Size.Height-c.HandleHeight {
		return RegionResizeHandle
	}
	return RegionBody
}
