package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

const maxPillWidth = 24

// Pill is the compact affordance of one minimized window.
type Pill struct {
	ID    string
	Title string
	Rect  wm.Rect
}

// TrayPills lays out the minimized windows, in the order given, along the
// tray row. Pills that do not fit are dropped.
func TrayPills(windows []wm.Window, tray wm.Rect) []Pill {
	var pills []Pill
	x := tray.X + 1
	for _, w := range windows {
		if !w.IsMinimized {
			continue
		}
		width := min(ansi.StringWidth(w.Title)+4, maxPillWidth)
		if x+width > tray.X+tray.Width {
			break
		}
		pills = append(pills, Pill{ID: w.ID, Title: w.Title, Rect: rect(x, tray.Y, width, 1)})
		x += width + 1
	}
	return pills
}

// PillAt returns the pill under p.
func PillAt(pills []Pill, p wm.Position) (Pill, bool) {
	for _, pl := range pills {
		if pl.Rect.Contains(p) {
			return pl, true
		}
	}
	return Pill{}, false
}

// RenderTray draws the tray row.
func RenderTray(width int, pills []Pill, p theme.Palette) string {
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Muted)
	pill := lipgloss.NewStyle().Background(p.TitleBar).Foreground(p.TitleBarFg)

	var b strings.Builder
	x := 0
	for _, pl := range pills {
		if pl.Rect.X > x {
			b.WriteString(base.Render(strings.Repeat(" ", pl.Rect.X-x)))
		}
		label := ansi.Truncate(" ▴ "+pl.Title, pl.Rect.Width-1, "…")
		b.WriteString(pill.Render(padRight(label, pl.Rect.Width)))
		x = pl.Rect.X + pl.Rect.Width
	}
	return fit(b.String(), width, base)
}
