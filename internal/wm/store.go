package wm

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// OpenConfig describes a window to open. Zero values take the store defaults.
type OpenConfig struct {
	Title     string
	Component Component
	Body      string
	Position  *Position
	Size      *Size
}

// Store is the host-owned, ordered window collection and z-order counter.
// It is the single writer of window records; frames only request changes
// through the Host methods.
type Store struct {
	mu      sync.RWMutex
	windows []*Window
	zTop    int
	cfg     Config
	logger  *log.Logger
	newID   func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger routes store events to l.
func WithLogger(l *log.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc replaces the window ID generator.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore creates an empty store using cfg's geometry defaults.
func NewStore(cfg Config, opts ...StoreOption) *Store {
	s := &Store{
		cfg:    cfg,
		zTop:   cfg.ZBase,
		logger: log.New(io.Discard),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the geometry defaults in use.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig replaces the geometry defaults for windows opened afterwards.
// The z counter never moves backwards.
func (s *Store) SetConfig(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.zTop = max(s.zTop, cfg.ZBase)
}

// nextZ advances the z counter. Callers hold mu.
func (s *Store) nextZ() int {
	s.zTop++
	return s.zTop
}

// find returns the index of id. Callers hold mu.
func (s *Store) find(id string) int {
	return slices.IndexFunc(s.windows, func(w *Window) bool { return w.ID == id })
}

// OpenWindow creates a window, pushes it and raises it above every open
// window. Missing geometry is filled from the defaults, staggered by the
// number of open windows.
func (s *Store) OpenWindow(oc OpenConfig) (Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp := ParseComponent(string(oc.Component))
	size := s.cfg.DefaultSize
	if oc.Size != nil {
		size = *oc.Size
	}
	if !size.Valid() {
		return Window{}, fmt.Errorf("open %q: size %dx%d: %w", oc.Title, size.Width, size.Height, ErrInvalidGeometry)
	}
	size = size.AtLeast(s.cfg.MinSizeFor(comp))

	pos := s.cfg.stagger(len(s.windows))
	if oc.Position != nil {
		pos = *oc.Position
	}

	id := s.newID()
	for s.find(id) >= 0 {
		id = s.newID()
	}

	w := &Window{
		ID:        id,
		Title:     oc.Title,
		Component: comp,
		Body:      oc.Body,
		Position:  pos,
		Size:      size,
		ZIndex:    s.nextZ(),
	}
	s.windows = append(s.windows, w)

	s.logger.Debug("window opened", "id", w.ID, "title", w.Title, "component", w.Component, "z", w.ZIndex)
	return w.clone(), nil
}

// CloseWindow removes the window. Other windows keep their geometry and z.
func (s *Store) CloseWindow(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(id)
	if i < 0 {
		return fmt.Errorf("close window %s: %w", id, ErrWindowNotFound)
	}
	s.windows = slices.Delete(s.windows, i, i+1)
	s.logger.Debug("window closed", "id", id, "remaining", len(s.windows))
	return nil
}

// UpdateWindow shallow-merges p into the window. A z value set through a
// patch advances the counter so it is never issued again. A z already held by
// another open window is replaced with a fresh one from the counter.
func (s *Store) UpdateWindow(id string, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(id)
	if i < 0 {
		return fmt.Errorf("update window %s: %w", id, ErrWindowNotFound)
	}
	if p.Size != nil && !p.Size.Valid() {
		return fmt.Errorf("update window %s: size %dx%d: %w", id, p.Size.Width, p.Size.Height, ErrInvalidGeometry)
	}
	if p.ZIndex != nil {
		z := *p.ZIndex
		if s.zTaken(z, i) {
			z = s.nextZ()
			s.logger.Debug("z patch collides, reissued", "id", id, "requested", *p.ZIndex, "z", z)
		}
		s.zTop = max(s.zTop, z)
		p.ZIndex = &z
	}
	p.apply(s.windows[i])
	return nil
}

// zTaken reports whether an open window other than the one at index skip
// holds z.
func (s *Store) zTaken(z, skip int) bool {
	for i, w := range s.windows {
		if i != skip && w.ZIndex == z {
			return true
		}
	}
	return false
}

// BringToFront gives the window a z strictly above every open window and
// returns it. Every call draws a fresh value from the counter.
func (s *Store) BringToFront(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(id)
	if i < 0 {
		return 0, fmt.Errorf("bring window %s to front: %w", id, ErrWindowNotFound)
	}
	z := s.nextZ()
	s.windows[i].ZIndex = z
	return z, nil
}

// Window returns a copy of the window with the given ID.
func (s *Store) Window(id string) (Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.find(id)
	if i < 0 {
		return Window{}, false
	}
	return s.windows[i].clone(), true
}

// Windows returns copies of all open windows in open order.
func (s *Store) Windows() []Window {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Window, len(s.windows))
	for i, w := range s.windows {
		out[i] = w.clone()
	}
	return out
}

// Stacked returns copies of all open windows from bottom to top.
func (s *Store) Stacked() []Window {
	out := s.Windows()
	slices.SortStableFunc(out, func(a, b Window) int { return a.ZIndex - b.ZIndex })
	return out
}

// Topmost returns the open window with the highest z, minimized or not.
func (s *Store) Topmost() (Window, bool) {
	stacked := s.Stacked()
	if len(stacked) == 0 {
		return Window{}, false
	}
	return stacked[len(stacked)-1], true
}

// WindowAt returns the topmost non-minimized window containing p.
func (s *Store) WindowAt(p Position) (Window, bool) {
	stacked := s.Stacked()
	for i := len(stacked) - 1; i >= 0; i-- {
		w := stacked[i]
		if w.Visible() && w.Bounds().Contains(p) {
			return w, true
		}
	}
	return Window{}, false
}

// Len returns the number of open windows.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.windows)
}

// ZCounter returns the last z value issued.
func (s *Store) ZCounter() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zTop
}
