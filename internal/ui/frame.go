package ui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

// Frame button glyphs, each ButtonWidth cells wide.
const (
	minimizeGlyph = " ─ "
	maximizeGlyph = " □ "
	restoreGlyph  = " ❐ "
	closeGlyph    = " ✕ "
	gripGlyph     = "◢"
)

// BorderFor returns the lipgloss border for a configured border style name.
func BorderFor(name string) lipgloss.Border {
	switch strings.ToLower(name) {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// FrameStyle is everything a frame needs besides its window.
type FrameStyle struct {
	Chrome  wm.Chrome
	Border  lipgloss.Border
	Palette theme.Palette
	Focused bool
	State   wm.State
}

// BodySize is the content area inside a frame of size s.
func BodySize(s wm.Size) wm.Size {
	return wm.Size{Width: max(s.Width-2, 0), Height: max(s.Height-2, 0)}
}

// RenderFrame draws w as exactly w.Size.Width x w.Size.Height cells. The
// title bar is the top border row, holding the title and the buttons at the
// columns Chrome reports, so the drawing and hit-testing agree. body must
// already fit BodySize.
func RenderFrame(w wm.Window, body string, fs FrameStyle) string {
	width, height := w.Size.Width, w.Size.Height
	if width < 2 || height < 2 {
		return ""
	}
	p := fs.Palette

	var borderColor, titleColor color.Color = p.Border, p.TitleBarFg
	if fs.Focused {
		borderColor, titleColor = p.BorderFocused, p.TitleFocused
	}
	if fs.State == wm.StateDragging || fs.State == wm.StateResizing {
		borderColor = p.Accent
	}
	edge := lipgloss.NewStyle().Foreground(borderColor).Background(p.Bg)
	bar := lipgloss.NewStyle().Foreground(titleColor).Background(p.TitleBar)
	button := bar.Bold(true)

	rows := make([]string, 0, height)
	rows = append(rows, titleRow(w, fs, edge, bar, button))

	inner := BodySize(w.Size)
	bodyLines := strings.Split(body, "\n")
	for i := range inner.Height {
		line := ""
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		line = padRight(ansi.Truncate(line, inner.Width, ""), inner.Width)
		rows = append(rows, edge.Render(fs.Border.Left)+line+edge.Render(fs.Border.Right))
	}

	bottom := strings.Repeat(fs.Border.Bottom, width-2)
	if fs.State != wm.StateMaximized && fs.Chrome.HandleWidth > 1 && width > fs.Chrome.HandleWidth+1 {
		grip := lipgloss.NewStyle().Foreground(p.Accent).Background(p.Bg).Render(gripGlyph)
		bottom = strings.Repeat(fs.Border.Bottom, width-1-fs.Chrome.HandleWidth)
		rows = append(rows, edge.Render(fs.Border.BottomLeft+bottom+strings.Repeat(fs.Border.Bottom, fs.Chrome.HandleWidth-1))+grip)
	} else {
		rows = append(rows, edge.Render(fs.Border.BottomLeft+bottom+fs.Border.BottomRight))
	}
	return strings.Join(rows, "\n")
}

// titleRow draws the top border: corner, title, then the three buttons at
// their Chrome columns, padded with the title bar color.
func titleRow(w wm.Window, fs FrameStyle, edge, bar, button lipgloss.Style) string {
	width := w.Size.Width
	c := fs.Chrome

	type cell struct {
		x    int
		text string
		s    lipgloss.Style
	}
	var buttons []cell
	for _, r := range []wm.Region{wm.RegionMinimize, wm.RegionMaximize, wm.RegionClose} {
		bx := c.ButtonX(0, width, r)
		if bx < 1 {
			continue
		}
		glyph := minimizeGlyph
		s := button
		switch r {
		case wm.RegionMaximize:
			glyph = maximizeGlyph
			if w.IsMaximized {
				glyph = restoreGlyph
			}
		case wm.RegionClose:
			glyph = closeGlyph
			s = button.Foreground(fs.Palette.CloseButton)
		}
		buttons = append(buttons, cell{x: bx, text: padRight(ansi.Truncate(glyph, c.ButtonWidth, ""), c.ButtonWidth), s: s})
	}

	titleEnd := width - 1
	if len(buttons) > 0 {
		titleEnd = buttons[0].x
	}

	var b strings.Builder
	b.WriteString(edge.Render(fs.Border.TopLeft))
	title := " " + w.Title + " "
	b.WriteString(bar.Render(padRight(ansi.Truncate(title, max(titleEnd-1, 0), "…"), max(titleEnd-1, 0))))

	x := titleEnd
	for _, bt := range buttons {
		if bt.x > x {
			b.WriteString(bar.Render(strings.Repeat(" ", bt.x-x)))
		}
		b.WriteString(bt.s.Render(bt.text))
		x = bt.x + c.ButtonWidth
	}
	if x < width-1 {
		b.WriteString(bar.Render(strings.Repeat(" ", width-1-x)))
	}
	b.WriteString(edge.Render(fs.Border.TopRight))
	return b.String()
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// ClipToScreen cuts a rendered block at (x, y) to the screen, returning the
// visible part and its new origin. ok is false when nothing is visible.
func ClipToScreen(block string, x, y, width, height int) (string, int, int, bool) {
	lines := strings.Split(block, "\n")
	blockW := 0
	for _, l := range lines {
		blockW = max(blockW, ansi.StringWidth(l))
	}
	if x >= width || y >= height || x+blockW <= 0 || y+len(lines) <= 0 {
		return "", 0, 0, false
	}

	if y < 0 {
		lines = lines[-y:]
		y = 0
	}
	if y+len(lines) > height {
		lines = lines[:height-y]
	}

	left := max(-x, 0)
	right := min(blockW, width-x)
	if left > 0 || right < blockW {
		for i, l := range lines {
			lines[i] = ansi.Cut(l, left, right)
		}
	}
	return strings.Join(lines, "\n"), max(x, 0), y, true
}
