package app

import (
	"slices"

	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

// PanelData is what the window panels draw from.
func (m *Model) PanelData(windowID string) content.Data {
	acct := m.Config.Account
	return content.Data{
		Account: content.Account{
			DisplayName: acct.DisplayName,
			Email:       acct.Email,
			Language:    acct.Language,
			TimeZone:    acct.TimeZone,
		},
		Contacts:  m.Contacts,
		Query:     m.Queries[windowID],
		Searching: windowID != "" && m.SearchWindow == windowID,
		Theme:     m.Palette.Name,
	}
}

// OpenComponent opens a window for comp at its configured preset geometry.
func (m *Model) OpenComponent(comp wm.Component) (wm.Window, error) {
	preset := m.Config.Geometry.Preset(comp)
	w, err := m.Store.OpenWindow(wm.OpenConfig{
		Title:     content.DefaultTitle(comp, m.PanelData("")),
		Component: comp,
		Position:  preset.Position,
		Size:      preset.Size,
	})
	if err != nil {
		m.report("open "+comp.String(), err)
		return wm.Window{}, err
	}
	m.LogInfo("opened %s (%s)", w.Title, w.Component)
	return w, nil
}

// Focused returns the topmost visible window. Focus follows z order.
func (m *Model) Focused() (wm.Window, bool) {
	stacked := m.Store.Stacked()
	for i := len(stacked) - 1; i >= 0; i-- {
		if stacked[i].Visible() {
			return stacked[i], true
		}
	}
	return wm.Window{}, false
}

// frameFor returns the frame of window id.
func (m *Model) frameFor(id string) (*wm.Frame, bool) {
	w, ok := m.Store.Window(id)
	if !ok {
		return nil, false
	}
	return m.Manager.Frame(w), true
}

// CloseWindow closes window id and forgets its per-window state.
func (m *Model) CloseWindow(id string) {
	f, ok := m.frameFor(id)
	if !ok {
		return
	}
	title := f.Window().Title
	if m.report("close window", f.Close(&m.Pointer)) {
		return
	}
	delete(m.Queries, id)
	if m.SearchWindow == id {
		m.SearchWindow = ""
	}
	m.LogInfo("closed %s", title)
}

// CloseFocused closes the focused window.
func (m *Model) CloseFocused() {
	if w, ok := m.Focused(); ok {
		m.CloseWindow(w.ID)
	}
}

// MinimizeFocused minimizes the focused window.
func (m *Model) MinimizeFocused() {
	w, ok := m.Focused()
	if !ok {
		return
	}
	f := m.Manager.Frame(w)
	if !m.report("minimize", f.Minimize()) {
		m.Pointer.ReleaseWindow(w.ID)
		if m.SearchWindow == w.ID {
			m.SearchWindow = ""
		}
	}
}

// ToggleMaximizeFocused maximizes or restores the focused window.
func (m *Model) ToggleMaximizeFocused() {
	if w, ok := m.Focused(); ok {
		m.report("maximize", m.Manager.Frame(w).ToggleMaximize(&m.Pointer, m.Container()))
	}
}

// Restore brings a minimized window back and raises it.
func (m *Model) Restore(id string) {
	f, ok := m.frameFor(id)
	if !ok {
		return
	}
	if m.report("restore", f.Unminimize()) {
		return
	}
	_, err := m.Store.BringToFront(id)
	m.report("restore", err)
}

// RestoreAll restores every minimized window in open order.
func (m *Model) RestoreAll() {
	for _, w := range m.Store.Windows() {
		if w.IsMinimized {
			m.Restore(w.ID)
		}
	}
}

// FocusNext raises the visible window after the focused one in open order.
func (m *Model) FocusNext() {
	m.cycleFocus(1)
}

// FocusPrev raises the visible window before the focused one in open order.
func (m *Model) FocusPrev() {
	m.cycleFocus(-1)
}

func (m *Model) cycleFocus(step int) {
	visible := slices.DeleteFunc(m.Store.Windows(), func(w wm.Window) bool { return !w.Visible() })
	if len(visible) < 2 {
		return
	}
	cur := 0
	if f, ok := m.Focused(); ok {
		cur = slices.IndexFunc(visible, func(w wm.Window) bool { return w.ID == f.ID })
	}
	next := visible[(cur+step+len(visible))%len(visible)]
	_, err := m.Store.BringToFront(next.ID)
	m.report("focus", err)
}

// RefitMaximized resizes maximized windows to the current container.
func (m *Model) RefitMaximized() {
	c := m.Container()
	if !c.Size.Valid() {
		return
	}
	for _, w := range m.Store.Windows() {
		if !w.IsMaximized {
			continue
		}
		pos, size := c.Position, c.Size
		m.report("refit", m.Store.UpdateWindow(w.ID, wm.Patch{Position: &pos, Size: &size}))
	}
}
