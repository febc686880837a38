// Package app provides the core tuimail application state: the window store,
// the mail client behind it and the overlays drawn on top.
package app

import (
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Model is the application state of one tuimail session. Bubble Tea drives
// it from a single goroutine, so it is the only writer of its window store.
type Model struct {
	Width  int
	Height int

	Config   *config.UserConfig
	Registry *config.KeybindRegistry
	Palette  theme.Palette
	Border   lipgloss.Border
	Chrome   wm.Chrome

	Store   *wm.Store
	Manager *wm.Manager
	Pointer wm.Pointer

	Contacts       []content.Contact
	Mailbox        *content.Mailbox
	SelectedFolder int
	OpenMessage    string
	// SearchWindow is the address book window whose search box has focus.
	SearchWindow string
	// Queries holds the address book search text per window.
	Queries map[string]string
	// MessageQuery filters the message list; SearchingMail means the ribbon
	// search box has focus.
	MessageQuery  string
	SearchingMail bool

	ViewMode      ui.ViewMode
	CalendarMonth time.Time
	SelectedDay   time.Time

	ShowHelp        bool
	ShowLogs        bool
	LogScrollOffset int
	LogMessages     []ui.LogMessage
	Notifications   []ui.Notification

	Logger *log.Logger
	// Now is the clock; tests replace it.
	Now      func() time.Time
	nextMail time.Time
}

// Options configures a new Model.
type Options struct {
	Config *config.UserConfig
	Logger *log.Logger
	// Seed drives the generated contacts and mailbox.
	Seed uint64
	Now  func() time.Time
	// IDFunc replaces the window ID generator.
	IDFunc func() string
}

// New creates a session model with an empty window store.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := wm.NewStore(cfg.Geometry.WM(), wm.WithLogger(logger), wm.WithIDFunc(opts.IDFunc))
	contacts := content.GenerateContacts(opts.Seed)
	m := &Model{
		Config:   cfg,
		Registry: config.NewKeybindRegistry(cfg),
		Palette:  theme.Lookup(cfg.Appearance.Theme),
		Border:   ui.BorderFor(cfg.Appearance.BorderStyle),
		Chrome:   wm.DefaultChrome(),
		Store:    store,
		Manager:  wm.NewManager(store, cfg.Geometry.WM()),
		Contacts: contacts,
		Mailbox:  content.NewMailbox(opts.Seed, contacts, now()),
		Queries:  make(map[string]string),
		Logger:   logger,
		Now:      now,
	}
	m.nextMail = now().Add(newMailInterval)
	m.SelectedDay = content.Day(now())
	m.CalendarMonth = content.MonthStart(m.SelectedDay)
	for _, c := range m.Registry.Conflicts() {
		m.LogWarn("keybinding conflict: %s", c)
	}
	return m
}

// Layout returns the screen layout for the current terminal size.
func (m *Model) Layout() ui.Layout {
	return ui.Layout{Width: m.Width, Height: m.Height}
}

// Container is the rectangle windows maximize into.
func (m *Model) Container() wm.Rect {
	return m.Layout().Container()
}

func createID() string {
	return uuid.New().String()
}

// Log adds a message to the log ring and the session logger.
func (m *Model) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	switch level {
	case "ERROR":
		m.Logger.Error(message)
	case "WARN":
		m.Logger.Warn(message)
	case "DEBUG":
		m.Logger.Debug(message)
		if m.Logger.GetLevel() > log.DebugLevel {
			return
		}
	default:
		m.Logger.Info(message)
	}

	wasAtBottom := m.LogScrollOffset >= ui.MaxLogScroll(m.Height, len(m.LogMessages))-2

	m.LogMessages = append(m.LogMessages, ui.LogMessage{
		Time:    m.Now(),
		Level:   level,
		Message: message,
	})
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	// Sticky scroll.
	if wasAtBottom && m.ShowLogs {
		m.LogScrollOffset = ui.MaxLogScroll(m.Height, len(m.LogMessages))
	}
}

// LogInfo logs an informational message.
func (m *Model) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *Model) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *Model) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

// LogDebug logs a debug message. It only reaches the log ring at debug level.
func (m *Model) LogDebug(format string, args ...any) {
	m.Log("DEBUG", format, args...)
}

// ShowNotification displays a temporary toast and logs it.
func (m *Model) ShowNotification(message, notifType string, duration time.Duration) {
	m.Notifications = append(m.Notifications, ui.Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: m.Now(),
		Duration:  duration,
	})
	if len(m.Notifications) > config.MaxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-config.MaxNotifications:]
	}

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (m *Model) CleanupNotifications() {
	now := m.Now()
	var active []ui.Notification
	for _, n := range m.Notifications {
		if !n.Expired(now) {
			active = append(active, n)
		}
	}
	m.Notifications = active
}

// report logs err and shows it as a toast. It returns true when err is
// non-nil.
func (m *Model) report(action string, err error) bool {
	if err == nil {
		return false
	}
	m.ShowNotification(fmt.Sprintf("%s: %v", action, err), "error", config.NotificationDuration)
	return true
}
