package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
)

// Notification is a temporary toast in the top-right corner.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// Expired reports whether n should no longer be shown at now.
func (n Notification) Expired(now time.Time) bool {
	return now.Sub(n.StartTime) >= n.Duration
}

// LogMessage is one entry of the in-app log viewer.
type LogMessage struct {
	Time    time.Time
	Level   string // DEBUG, INFO, WARN, ERROR
	Message string
}

// LogsPerPage is how many log lines the viewer shows for a screen height and
// log count. Fixed overhead is the title, a blank line, a blank line before
// the hint and the hint; a scroll indicator adds two more.
func LogsPerPage(height, total int) int {
	maxDisplayHeight := max(height-8, 8)
	fixedLines := 4
	if total > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	return max(maxDisplayHeight-fixedLines, 1)
}

// MaxLogScroll is the largest valid log viewer offset.
func MaxLogScroll(height, total int) int {
	return max(total-LogsPerPage(height, total), 0)
}

// RenderLogs draws the log viewer box starting at offset.
func RenderLogs(msgs []LogMessage, offset, height int, p theme.Palette, border lipgloss.Border) string {
	perPage := LogsPerPage(height, len(msgs))
	maxScroll := MaxLogScroll(height, len(msgs))
	offset = min(max(offset, 0), maxScroll)

	muted := lipgloss.NewStyle().Foreground(p.Muted)
	lines := []string{
		lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render("System Logs"),
		"",
	}
	shown := 0
	for i := offset; i < len(msgs) && shown < perPage; i++ {
		msg := msgs[i]
		levelColor := p.Success
		switch msg.Level {
		case "ERROR":
			levelColor = p.Error
		case "WARN":
			levelColor = p.Warning
		case "DEBUG":
			levelColor = p.Muted
		}
		level := lipgloss.NewStyle().Foreground(levelColor).Render(fmt.Sprintf("[%s]", msg.Level))
		lines = append(lines, fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), level, msg.Message))
		shown++
	}
	if len(msgs) == 0 {
		lines = append(lines, muted.Render("No log messages yet"))
	}
	if maxScroll > 0 {
		lines = append(lines, "", muted.Render(fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			offset+1, offset+shown, len(msgs))))
	}
	lines = append(lines, "", muted.Render("Press esc to close, j/k or ↑/↓ to scroll"))

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(p.BorderFocused).
		Foreground(p.Fg).
		Background(p.Pane).
		Padding(1, 2).
		Width(80).
		MaxHeight(max(height, 3)).
		Render(strings.Join(lines, "\n"))
}

// RenderHelp draws the keybinding help box.
func RenderHelp(sections []config.KeybindingSection, height int, p theme.Palette, border lipgloss.Border) string {
	title := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	key := lipgloss.NewStyle().Foreground(p.Fg).Bold(true).Width(18)
	desc := lipgloss.NewStyle().Foreground(p.Muted)

	var lines []string
	lines = append(lines, title.Render("tuimail keybindings"), "")
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, title.Render(s.Title))
		for _, b := range s.Bindings {
			lines = append(lines, key.Render(b.Key)+desc.Render(b.Description))
		}
	}
	lines = append(lines, "", desc.Render("Press esc or ? to close"))

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(p.BorderFocused).
		Background(p.Pane).
		Padding(1, 2).
		MaxHeight(max(height, 3)).
		Render(strings.Join(lines, "\n"))
}

// RenderNotification draws one toast no wider than maxWidth.
func RenderNotification(n Notification, maxWidth int, p theme.Palette, border lipgloss.Border) string {
	var fg color.Color
	var icon string
	switch n.Type {
	case "error":
		fg, icon = p.Error, "✕"
	case "warning":
		fg, icon = p.Warning, "⚠"
	case "success":
		fg, icon = p.Success, "✓"
	default:
		fg, icon = p.Info, "✉"
	}

	msg := n.Message
	if limit := maxWidth - 8; limit > 3 && lipgloss.Width(msg) > limit {
		msg = string([]rune(msg)[:limit-3]) + "..."
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(fg).
		Background(p.Pane).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		MaxWidth(maxWidth).
		Render(fmt.Sprintf(" %s  %s ", icon, msg))
}

// NotificationLayers stacks the live toasts in the top-right corner, below
// the ribbon.
func NotificationLayers(notifs []Notification, now time.Time, width int, p theme.Palette, border lipgloss.Border) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	maxWidth := min(max(width-8, 20), 60)
	y := config.RibbonHeight
	shown := 0
	for _, n := range notifs {
		if n.Expired(now) {
			continue
		}
		if shown == config.MaxNotifications {
			break
		}
		box := RenderNotification(n, maxWidth, p, border)
		x := max(width-lipgloss.Width(box)-2, 0)
		layers = append(layers, lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexNotifications+shown))
		y += lipgloss.Height(box)
		shown++
	}
	return layers
}
