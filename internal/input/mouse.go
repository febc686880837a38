package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/app"
	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

func position(m tea.Mouse) wm.Position {
	return wm.Position{X: m.X, Y: m.Y}
}

// handleMouseClick handles mouse click events. Windows sit above the mail
// client, so they are hit tested first.
func handleMouseClick(msg tea.MouseClickMsg, m *app.Model) (*app.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	p := position(mouse)

	// A click anywhere dismisses the overlays and is consumed
	if m.ShowHelp || m.ShowLogs {
		m.ShowHelp = false
		m.ShowLogs = false
		return m, nil
	}
	m.SearchingMail = false

	if f, region, ok := m.FrameAt(p); ok {
		w := f.Window()
		if region == wm.RegionBody && w.Component == wm.ComponentAddressBook {
			m.SearchWindow = w.ID
		} else {
			m.SearchWindow = ""
		}
		if region == wm.RegionClose {
			m.CloseWindow(w.ID)
			return m, nil
		}
		if err := f.Press(&m.Pointer, region, p, m.Container()); err != nil {
			m.LogError("%s press on %s: %v", region, w.Title, err)
		}
		return m, nil
	}
	m.SearchWindow = ""

	l := m.Layout()
	if pill, ok := ui.PillAt(m.Pills(), p); ok {
		m.Restore(pill.ID)
		return m, nil
	}

	if l.Ribbon().Contains(p) {
		if sb, ok := ui.SearchBox(m.Width); ok && sb.Contains(p) {
			m.SearchMail()
			return m, nil
		}
		if action := ui.RibbonActionAt(m.Width, p); action != "" {
			return m, ExecuteAction(action, m)
		}
		return m, nil
	}

	if m.ViewMode == ui.ViewCalendar {
		handleCalendarClick(m, l, p)
		return m, nil
	}

	if i, ok := ui.FolderAt(l, len(content.Folders), p); ok {
		m.SelectFolder(i)
		return m, nil
	}

	if mail, ok := ui.MessageAt(l, m.MailView().Groups, p); ok {
		m.OpenMessageID(mail.ID)
	}
	return m, nil
}

// handleCalendarClick pages the month, selects a day or opens an agenda
// message.
func handleCalendarClick(m *app.Model, l ui.Layout, p wm.Position) {
	if nav, ok := ui.CalendarNavAt(l, p); ok {
		if nav == ui.NavToday {
			m.CalendarToday()
		} else {
			m.ShiftMonth(nav)
		}
		return
	}
	if day, ok := ui.CalendarDayAt(l, m.CalendarMonth, p); ok {
		m.SelectDay(day)
		return
	}
	if mail, ok := ui.AgendaMessageAt(l, m.CalendarView().Agenda, p); ok {
		m.OpenFromCalendar(mail.ID)
	}
}

// handleMouseMotion feeds the active drag or resize. Motion with no gesture
// is ignored.
func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Model) (*app.Model, tea.Cmd) {
	if !m.Pointer.Active() {
		return m, nil
	}
	if err := m.Pointer.Move(position(msg.Mouse())); err != nil {
		m.LogError("pointer move: %v", err)
		m.Pointer.Reset()
	}
	return m, nil
}

// handleMouseRelease commits the active gesture.
func handleMouseRelease(msg tea.MouseReleaseMsg, m *app.Model) (*app.Model, tea.Cmd) {
	if !m.Pointer.Active() {
		return m, nil
	}
	id := m.Pointer.Captured()
	if err := m.Pointer.Release(position(msg.Mouse())); err != nil {
		m.LogError("pointer release: %v", err)
		return m, nil
	}
	if w, ok := m.Store.Window(id); ok {
		m.LogDebug("%s at %d,%d size %dx%d", w.Title, w.Position.X, w.Position.Y, w.Size.Width, w.Size.Height)
	}
	return m, nil
}

// handleMouseWheel scrolls the log viewer.
func handleMouseWheel(msg tea.MouseWheelMsg, m *app.Model) (*app.Model, tea.Cmd) {
	if !m.ShowLogs {
		return m, nil
	}
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		m.ScrollLogs(-1)
	case tea.MouseWheelDown:
		m.ScrollLogs(1)
	}
	return m, nil
}
