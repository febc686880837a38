package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
	"github.com/charmbracelet/log"
)

// TickerMsg drives the clock, toast expiry and mail delivery.
type TickerMsg time.Time

// ConfigReloadedMsg carries a config file reload. Err is set when the new
// file failed to load; the running config is kept then.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
	Err    error
}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, m *Model) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the clock.
func (m *Model) Init() tea.Cmd {
	m.LogInfo("tuimail started (theme %s)", m.Palette.Name)
	return TickCmd()
}

// TickCmd schedules the next clock tick.
func TickCmd() tea.Cmd {
	return tea.Tick(config.ClockTick, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles all incoming messages and updates the application state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		m.CleanupNotifications()
		m.deliverMail(time.Time(msg))
		return m, TickCmd()

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.ShowNotification("Config reload failed: "+msg.Err.Error(), "error", config.NotificationDuration)
			return m, nil
		}
		m.ApplyConfig(msg.Config)
		m.ShowNotification("Configuration reloaded", "success", config.NotificationDuration)
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.RefitMaximized()
		m.LogDebug("resized to %dx%d", msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// ApplyConfig swaps in a new configuration. Open windows keep their
// geometry; new geometry defaults apply to windows opened afterwards.
func (m *Model) ApplyConfig(cfg *config.UserConfig) {
	if cfg == nil {
		return
	}
	m.Config = cfg
	m.Registry = config.NewKeybindRegistry(cfg)
	m.Palette = theme.Lookup(cfg.Appearance.Theme)
	m.Border = ui.BorderFor(cfg.Appearance.BorderStyle)
	m.Store.SetConfig(cfg.Geometry.WM())
	m.Manager.SetConfig(cfg.Geometry.WM())
	if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		m.Logger.SetLevel(level)
	}
	for _, c := range m.Registry.Conflicts() {
		m.LogWarn("keybinding conflict: %s", c)
	}
}

// CycleTheme switches to the next office theme for this session.
func (m *Model) CycleTheme() {
	m.Palette = theme.Lookup(theme.Next(m.Palette.Name))
	m.ShowNotification("Office theme: "+m.Palette.Name, "info", config.NotificationDuration)
}

// ToggleHelp shows or hides the keybinding help.
func (m *Model) ToggleHelp() {
	m.ShowHelp = !m.ShowHelp
	if m.ShowHelp {
		m.ShowLogs = false
	}
}

// ToggleLogs shows or hides the log viewer, scrolled to the newest entry.
func (m *Model) ToggleLogs() {
	m.ShowLogs = !m.ShowLogs
	if m.ShowLogs {
		m.ShowHelp = false
		m.LogScrollOffset = ui.MaxLogScroll(m.Height, len(m.LogMessages))
	}
}

// ScrollLogs moves the log viewer by delta lines.
func (m *Model) ScrollLogs(delta int) {
	m.LogScrollOffset = min(max(m.LogScrollOffset+delta, 0), ui.MaxLogScroll(m.Height, len(m.LogMessages)))
}
