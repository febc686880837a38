// Package input turns key and mouse messages into window manager and mail
// client operations.
package input

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/app"
)

// HandleInput is the app's input handler. Register it with
// app.SetInputHandler.
func HandleInput(msg tea.Msg, m *app.Model) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKey(msg, m)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, m)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, m)
	}
	return m, nil
}

// HandleKey routes a key press. A focused search box takes typed text first,
// then the log viewer its scroll keys, then the keybindings.
func HandleKey(msg tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	key := msg.String()

	if m.SearchingMail && handleMailSearchKey(msg, m) {
		return m, nil
	}

	if m.SearchWindow != "" {
		if w, ok := m.Store.Window(m.SearchWindow); ok && w.Visible() {
			if handleSearchKey(msg, m) {
				return m, nil
			}
		} else {
			m.SearchWindow = ""
		}
	}

	if m.ShowLogs {
		switch key {
		case "j", "down":
			m.ScrollLogs(1)
			return m, nil
		case "k", "up":
			m.ScrollLogs(-1)
			return m, nil
		case "pgdown":
			m.ScrollLogs(10)
			return m, nil
		case "pgup":
			m.ScrollLogs(-10)
			return m, nil
		case "esc":
			m.ShowLogs = false
			return m, nil
		}
	}

	if m.ShowHelp && key == "esc" {
		m.ShowHelp = false
		return m, nil
	}

	if action := m.Registry.GetAction(key); action != "" {
		return m, ExecuteAction(action, m)
	}
	return m, nil
}

type editResult int

const (
	editIgnored editResult = iota
	editChanged
	editDone
	editCancel
)

// editText applies a key to a one-line text field.
func editText(msg tea.KeyPressMsg, text string) (string, editResult) {
	switch msg.String() {
	case "enter":
		return text, editDone
	case "esc":
		return text, editCancel
	case "backspace":
		if text != "" {
			_, size := utf8.DecodeLastRuneInString(text)
			text = text[:len(text)-size]
		}
		return text, editChanged
	case "ctrl+u":
		return "", editChanged
	case "space":
		return text + " ", editChanged
	}
	// Printable text only; chords like ctrl+w fall through to keybindings.
	if msg.Text != "" && msg.String() == msg.Text {
		return text + msg.Text, editChanged
	}
	return text, editIgnored
}

// handleSearchKey edits the focused address book search box. It reports
// whether the key was consumed.
func handleSearchKey(msg tea.KeyPressMsg, m *app.Model) bool {
	id := m.SearchWindow
	q, res := editText(msg, m.Queries[id])
	switch res {
	case editIgnored:
		return false
	case editDone, editCancel:
		m.SearchWindow = ""
	default:
		if q == "" {
			delete(m.Queries, id)
		} else {
			m.Queries[id] = q
		}
	}
	return true
}

// handleMailSearchKey edits the ribbon search box. Enter keeps the results;
// Esc clears them.
func handleMailSearchKey(msg tea.KeyPressMsg, m *app.Model) bool {
	q, res := editText(msg, m.MessageQuery)
	switch res {
	case editIgnored:
		return false
	case editDone:
		m.SearchingMail = false
	case editCancel:
		m.ClearSearch()
	default:
		m.MessageQuery = q
	}
	return true
}
