package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/app"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(m *app.Model) tea.Cmd

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// openActions maps the mail actions to the component each one opens.
var openActions = map[string]wm.Component{
	"new_message":      wm.ComponentCompose,
	"address_book":     wm.ComponentAddressBook,
	"contact_details":  wm.ComponentContactDetails,
	"account_info":     wm.ComponentAccountInfo,
	"account_settings": wm.ComponentAccountSettings,
	"options":          wm.ComponentOptions,
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Mail actions open windows
	for action, comp := range openActions {
		d.Register(action, makeOpenHandler(comp))
	}
	d.Register("search_mail", handleSearchMail)

	// Calendar actions
	d.Register("toggle_calendar", handleToggleCalendar)
	d.Register("prev_month", handlePrevMonth)
	d.Register("next_month", handleNextMonth)
	d.Register("calendar_today", handleCalendarToday)

	// Window actions
	d.Register("close_window", handleCloseWindow)
	d.Register("minimize_window", handleMinimizeWindow)
	d.Register("toggle_maximize", handleToggleMaximize)
	d.Register("restore_all", handleRestoreAll)
	d.Register("next_window", handleNextWindow)
	d.Register("prev_window", handlePrevWindow)

	// System actions
	d.Register("toggle_help", handleToggleHelp)
	d.Register("toggle_logs", handleToggleLogs)
	d.Register("cycle_theme", handleCycleTheme)
	d.Register("quit", handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, m *app.Model) tea.Cmd {
	if handler, ok := d.handlers[action]; ok {
		return handler(m)
	}
	return nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ExecuteAction runs action against m. Keys and ribbon clicks both end up
// here.
func ExecuteAction(action string, m *app.Model) tea.Cmd {
	if !globalDispatcher.HasAction(action) {
		m.LogDebug("unknown action %q", action)
		return nil
	}
	return globalDispatcher.Dispatch(action, m)
}

// ============================================================================
// Mail Action Handlers
// ============================================================================

func makeOpenHandler(comp wm.Component) ActionHandler {
	return func(m *app.Model) tea.Cmd {
		if w, err := m.OpenComponent(comp); err == nil && comp == wm.ComponentAddressBook {
			m.SearchWindow = w.ID
			m.SearchingMail = false
		}
		return nil
	}
}

func handleSearchMail(m *app.Model) tea.Cmd {
	m.SearchMail()
	return nil
}

// ============================================================================
// Calendar Action Handlers
// ============================================================================

func handleToggleCalendar(m *app.Model) tea.Cmd {
	m.ToggleCalendar()
	return nil
}

func handlePrevMonth(m *app.Model) tea.Cmd {
	m.ShiftMonth(-1)
	return nil
}

func handleNextMonth(m *app.Model) tea.Cmd {
	m.ShiftMonth(1)
	return nil
}

func handleCalendarToday(m *app.Model) tea.Cmd {
	m.CalendarToday()
	return nil
}

// ============================================================================
// Window Action Handlers
// ============================================================================

func handleCloseWindow(m *app.Model) tea.Cmd {
	m.CloseFocused()
	return nil
}

func handleMinimizeWindow(m *app.Model) tea.Cmd {
	m.MinimizeFocused()
	return nil
}

func handleToggleMaximize(m *app.Model) tea.Cmd {
	m.ToggleMaximizeFocused()
	return nil
}

func handleRestoreAll(m *app.Model) tea.Cmd {
	m.RestoreAll()
	return nil
}

func handleNextWindow(m *app.Model) tea.Cmd {
	m.FocusNext()
	return nil
}

func handlePrevWindow(m *app.Model) tea.Cmd {
	m.FocusPrev()
	return nil
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleHelp(m *app.Model) tea.Cmd {
	m.ToggleHelp()
	return nil
}

func handleToggleLogs(m *app.Model) tea.Cmd {
	m.ToggleLogs()
	return nil
}

func handleCycleTheme(m *app.Model) tea.Cmd {
	m.CycleTheme()
	return nil
}

func handleQuit(m *app.Model) tea.Cmd {
	// Close an overlay first
	if m.ShowHelp || m.ShowLogs {
		m.ShowHelp = false
		m.ShowLogs = false
		return nil
	}
	m.LogInfo("quitting")
	return tea.Quit
}
