package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

// Pills lays out the minimized windows on the tray row.
func (m *Model) Pills() []ui.Pill {
	return ui.TrayPills(m.Store.Windows(), m.Layout().Tray())
}

// Layers renders every layer of the screen: background, windows at their
// z, then overlays.
func (m *Model) Layers() []*lipgloss.Layer {
	l := m.Layout()
	layers := []*lipgloss.Layer{
		ui.BackgroundLayer(ui.RenderBackground(l, m.Palette, m.MailView(), m.StatusView(), m.Pills())),
	}

	focused, _ := m.Focused()
	for _, w := range m.Store.Stacked() {
		if !w.Visible() {
			continue
		}
		f := m.Manager.Frame(w)
		inner := ui.BodySize(w.Size)
		body := content.Render(w, m.PanelData(w.ID), inner.Width, inner.Height, m.Palette)
		fs := ui.FrameStyle{
			Chrome:  m.Chrome,
			Border:  m.Border,
			Palette: m.Palette,
			Focused: w.ID == focused.ID,
			State:   f.State(&m.Pointer),
		}
		if layer := ui.WindowLayer(w, body, fs, m.Width, m.Height); layer != nil {
			layers = append(layers, layer)
		}
	}

	if m.ShowHelp {
		help := ui.RenderHelp(config.GetKeybindings(m.Registry), m.Height, m.Palette, m.Border)
		layers = append(layers, ui.CenteredLayer(help, m.Width, m.Height, config.ZIndexHelp))
	}
	if m.ShowLogs {
		logs := ui.RenderLogs(m.LogMessages, m.LogScrollOffset, m.Height, m.Palette, m.Border)
		layers = append(layers, ui.CenteredLayer(logs, m.Width, m.Height, config.ZIndexLogs))
	}
	return append(layers, ui.NotificationLayers(m.Notifications, m.Now(), m.Width, m.Palette, m.Border)...)
}

// Render composes the full screen.
func (m *Model) Render() string {
	return ui.Compose(m.Width, m.Height, m.Layers()...)
}

// View renders the screen with mouse motion reporting on, so drags and
// resizes see every move.
func (m *Model) View() tea.View {
	view := tea.NewView(m.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// FrameAt returns the frame of the topmost visible window under p and the
// region of it p falls in.
func (m *Model) FrameAt(p wm.Position) (*wm.Frame, wm.Region, bool) {
	w, ok := m.Store.WindowAt(p)
	if !ok {
		return nil, wm.RegionNone, false
	}
	return m.Manager.Frame(w), m.Chrome.RegionAt(w, p), true
}
