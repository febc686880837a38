package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

// BackgroundLayer places the background block under everything else.
func BackgroundLayer(bg string) *lipgloss.Layer {
	return lipgloss.NewLayer(bg).X(0).Y(0).Z(config.ZIndexBackground)
}

// WindowLayer renders w's frame, clipped to the screen, as a layer at the
// window's z. It returns nil for minimized or off-screen windows.
func WindowLayer(w wm.Window, body string, fs FrameStyle, screenW, screenH int) *lipgloss.Layer {
	if !w.Visible() {
		return nil
	}
	frame := RenderFrame(w, body, fs)
	if frame == "" {
		return nil
	}
	clipped, x, y, ok := ClipToScreen(frame, w.Position.X, w.Position.Y, screenW, screenH)
	if !ok {
		return nil
	}
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(w.ZIndex).ID(w.ID)
}

// CenteredLayer places block in the middle of the screen at z.
func CenteredLayer(block string, screenW, screenH, z int) *lipgloss.Layer {
	x := max((screenW-lipgloss.Width(block))/2, 0)
	y := max((screenH-lipgloss.Height(block))/2, 0)
	return lipgloss.NewLayer(block).X(x).Y(y).Z(z)
}

// Compose draws layers in z order onto a width x height canvas.
func Compose(width, height int, layers ...*lipgloss.Layer) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	live := layers[:0:0]
	for _, l := range layers {
		if l != nil {
			live = append(live, l)
		}
	}
	return lipgloss.NewCanvas(width, height).Compose(lipgloss.NewCompositor(live...)).Render()
}
