// Package ui draws the tuimail screen: the mail client background, window
// frames, the minimized-window tray and the overlays. Everything here is a
// pure function of the state passed in; hit-testing helpers share the same
// geometry as the renderers.
package ui

import (
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

// Layout splits the terminal into the background regions.
type Layout struct {
	Width  int
	Height int
}

// Ribbon is the command bar across the top.
func (l Layout) Ribbon() wm.Rect {
	return rect(0, 0, l.Width, min(config.RibbonHeight, l.Height))
}

// StatusBar is the bottom row.
func (l Layout) StatusBar() wm.Rect {
	return rect(0, max(l.Height-config.StatusBarHeight, 0), l.Width, min(config.StatusBarHeight, l.Height))
}

// Tray is the row of minimized-window pills above the status bar.
func (l Layout) Tray() wm.Rect {
	return rect(0, max(l.Height-config.StatusBarHeight-config.TrayHeight, 0), l.Width, config.TrayHeight)
}

// Container is the area windows maximize into: everything between the
// ribbon and the tray.
func (l Layout) Container() wm.Rect {
	top := config.RibbonHeight
	h := l.Height - config.RibbonHeight - config.TrayHeight - config.StatusBarHeight
	return rect(0, top, l.Width, max(h, 1))
}

// FolderPane is the folder list on the left of the container.
func (l Layout) FolderPane() wm.Rect {
	c := l.Container()
	return rect(0, c.Y, min(config.FolderPaneWidth, l.Width), c.Height)
}

// MessageList sits between the folder pane and the reading pane.
func (l Layout) MessageList() wm.Rect {
	c := l.Container()
	x := config.FolderPaneWidth
	w := max((l.Width-x)*2/5, 0)
	return rect(x, c.Y, w, c.Height)
}

// ReadingPane takes the remaining width.
func (l Layout) ReadingPane() wm.Rect {
	c := l.Container()
	ml := l.MessageList()
	x := ml.X + ml.Width
	return rect(x, c.Y, max(l.Width-x, 0), c.Height)
}

func rect(x, y, w, h int) wm.Rect {
	return wm.Rect{Position: wm.Position{X: x, Y: y}, Size: wm.Size{Width: max(w, 0), Height: max(h, 0)}}
}
