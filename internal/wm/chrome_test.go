package wm_test

import (
	"testing"

	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

func TestChromeRegionAt(t *testing.T) {
	c := wm.DefaultChrome()
	win := wm.Window{
		Position: wm.Position{X: 10, Y: 5},
		Size:     wm.Size{Width: 40, Height: 12},
	}

	tests := []struct {
		name string
		p    wm.Position
		want wm.Region
	}{
		{"title left", wm.Position{X: 12, Y: 5}, wm.RegionTitleBar},
		{"left of buttons", wm.Position{X: 39, Y: 5}, wm.RegionTitleBar},
		{"minimize", wm.Position{X: 40, Y: 5}, wm.RegionMinimize},
		{"maximize", wm.Position{X: 44, Y: 5}, wm.RegionMaximize},
		{"close first cell", wm.Position{X: 46, Y: 5}, wm.RegionClose},
		{"close last cell", wm.Position{X: 48, Y: 5}, wm.RegionClose},
		{"right inset", wm.Position{X: 49, Y: 5}, wm.RegionTitleBar},
		{"body", wm.Position{X: 20, Y: 10}, wm.RegionBody},
		{"resize grip", wm.Position{X: 48, Y: 16}, wm.RegionResizeHandle},
		{"resize corner", wm.Position{X: 49, Y: 16}, wm.RegionResizeHandle},
		{"left of grip", wm.Position{X: 47, Y: 16}, wm.RegionBody},
		{"outside right", wm.Position{X: 50, Y: 5}, wm.RegionNone},
		{"outside above", wm.Position{X: 20, Y: 4}, wm.RegionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.RegionAt(win, tt.p); got != tt.want {
				t.Errorf("RegionAt(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestChromeRegionAt_StateSpecific(t *testing.T) {
	c := wm.DefaultChrome()
	win := wm.Window{
		Position:    wm.Position{X: 0, Y: 0},
		Size:        wm.Size{Width: 80, Height: 24},
		IsMaximized: true,
	}
	if got := c.RegionAt(win, wm.Position{X: 79, Y: 23}); got != wm.RegionBody {
		t.Errorf("maximized corner = %v, want body (no grip)", got)
	}

	win.IsMinimized = true
	if got := c.RegionAt(win, wm.Position{X: 5, Y: 0}); got != wm.RegionNone {
		t.Errorf("minimized window = %v, want none", got)
	}
}

func TestChromeRegionAt_NarrowWindowDropsButtons(t *testing.T) {
	c := wm.DefaultChrome()
	win := wm.Window{Size: wm.Size{Width: 8, Height: 4}}
	// Minimize would start left of the window; it is not hit-testable.
	if got := c.RegionAt(win, wm.Position{X: 0, Y: 0}); got != wm.RegionTitleBar {
		t.Errorf("got %v, want title", got)
	}
	if got := c.RegionAt(win, wm.Position{X: 4, Y: 0}); got != wm.RegionClose {
		t.Errorf("got %v, want close", got)
	}
}

func TestParseComponent(t *testing.T) {
	tests := map[string]wm.Component{
		"compose":        wm.ComponentCompose,
		" Address-Book ": wm.ComponentAddressBook,
		"options":        wm.ComponentOptions,
		"":               wm.ComponentGeneric,
		"ComposeWindow":  wm.ComponentGeneric,
	}
	for in, want := range tests {
		if got := wm.ParseComponent(in); got != want {
			t.Errorf("ParseComponent(%q) = %q, want %q", in, got, want)
		}
	}
}
