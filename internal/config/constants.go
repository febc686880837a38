package config

import "time"

// Rendering
const (
	NormalFPS = 60
	// ClockTick is how often the status bar clock and toast expiry refresh.
	ClockTick = time.Second
)

// Layout of the background chrome, in rows.
const (
	RibbonHeight    = 3
	StatusBarHeight = 1
	TrayHeight      = 1
	FolderPaneWidth = 22
)

// Layer stacking for overlays. Windows use the store's z values, which start
// above ZBase; overlays sit above any realistic window z.
const (
	ZIndexBackground    = 0
	ZIndexTray          = 1
	ZIndexHelp          = 1 << 20
	ZIndexLogs          = ZIndexHelp + 1
	ZIndexNotifications = ZIndexHelp + 2
)

// Logs and notifications
const (
	MaxLogMessages       = 200
	NotificationDuration = 3 * time.Second
	MaxNotifications     = 4
)
