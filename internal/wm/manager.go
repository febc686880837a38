package wm

// Host is the owner of the window collection. Frames request every change
// through it. Store implements Host.
type Host interface {
	CloseWindow(id string) error
	UpdateWindow(id string, p Patch) error
	BringToFront(id string) (int, error)
}

// Callbacks are the change requests a Frame may emit for its window.
type Callbacks struct {
	OnClose        func() error
	OnUpdate       func(Patch) error
	OnBringToFront func() error
}

// Manager turns the host's window collection into frames, binding each
// frame's callbacks to its window ID.
type Manager struct {
	host Host
	cfg  Config
}

// NewManager returns a manager forwarding frame requests to host.
func NewManager(host Host, cfg Config) *Manager {
	return &Manager{host: host, cfg: cfg}
}

// SetConfig replaces the geometry used for resize floors and restore
// fallbacks.
func (m *Manager) SetConfig(cfg Config) {
	m.cfg = cfg
}

// Frames returns one frame per window, in the order given.
func (m *Manager) Frames(windows []Window) []*Frame {
	frames := make([]*Frame, 0, len(windows))
	for _, w := range windows {
		frames = append(frames, m.Frame(w))
	}
	return frames
}

// Frame returns the frame for w.
func (m *Manager) Frame(w Window) *Frame {
	id := w.ID
	return &Frame{
		win:      w,
		min:      m.cfg.MinSizeFor(w.Component),
		fallback: Rect{Position: m.cfg.FallbackPosition, Size: m.cfg.FallbackSize},
		cb: Callbacks{
			OnClose:  func() error { return m.host.CloseWindow(id) },
			OnUpdate: func(p Patch) error { return m.host.UpdateWindow(id, p) },
			OnBringToFront: func() error {
				_, err := m.host.BringToFront(id)
				return err
			},
		},
	}
}
