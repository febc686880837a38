// Package theme provides the office color themes for tuimail.
package theme

import (
	"fmt"
	"image/color"
	"strings"
	"sync/atomic"

	"charm.land/lipgloss/v2"
)

// Office theme names, in the order the options panel lists them.
const (
	Black    = "Black"
	DarkGray = "Dark Gray"
	Colorful = "Colorful"
	White    = "White"
)

// Names lists the office themes.
var Names = []string{Black, DarkGray, Colorful, White}

// Palette is the full set of colors one office theme uses.
type Palette struct {
	Name string
	Dark bool

	Bg    color.Color
	Fg    color.Color
	Muted color.Color

	Accent   color.Color
	AccentFg color.Color

	Ribbon    color.Color
	RibbonFg  color.Color
	RibbonTab color.Color

	Pane       color.Color
	PaneFg     color.Color
	Selected   color.Color
	SelectedFg color.Color

	Border        color.Color
	BorderFocused color.Color
	TitleBar      color.Color
	TitleBarFg    color.Color
	TitleFocused  color.Color
	CloseButton   color.Color

	StatusBar   color.Color
	StatusBarFg color.Color

	Error   color.Color
	Warning color.Color
	Success color.Color
	Info    color.Color
}

var dark = Palette{
	Dark:          true,
	Bg:            lipgloss.Color("#1f1f1f"),
	Fg:            lipgloss.Color("#e6e6e6"),
	Muted:         lipgloss.Color("#8a8a8a"),
	Accent:        lipgloss.Color("#2b88d8"),
	AccentFg:      lipgloss.Color("#ffffff"),
	Ribbon:        lipgloss.Color("#262626"),
	RibbonFg:      lipgloss.Color("#e6e6e6"),
	RibbonTab:     lipgloss.Color("#479ef5"),
	Pane:          lipgloss.Color("#292929"),
	PaneFg:        lipgloss.Color("#d6d6d6"),
	Selected:      lipgloss.Color("#0f548c"),
	SelectedFg:    lipgloss.Color("#ffffff"),
	Border:        lipgloss.Color("#4a4a4a"),
	BorderFocused: lipgloss.Color("#479ef5"),
	TitleBar:      lipgloss.Color("#2d2d2d"),
	TitleBarFg:    lipgloss.Color("#bdbdbd"),
	TitleFocused:  lipgloss.Color("#ffffff"),
	CloseButton:   lipgloss.Color("#e81123"),
	StatusBar:     lipgloss.Color("#0f548c"),
	StatusBarFg:   lipgloss.Color("#ffffff"),
	Error:         lipgloss.Color("#f1707b"),
	Warning:       lipgloss.Color("#fce100"),
	Success:       lipgloss.Color("#6ccb5f"),
	Info:          lipgloss.Color("#479ef5"),
}

var light = Palette{
	Bg:            lipgloss.Color("#ffffff"),
	Fg:            lipgloss.Color("#242424"),
	Muted:         lipgloss.Color("#707070"),
	Accent:        lipgloss.Color("#0078d4"),
	AccentFg:      lipgloss.Color("#ffffff"),
	Ribbon:        lipgloss.Color("#f3f2f1"),
	RibbonFg:      lipgloss.Color("#242424"),
	RibbonTab:     lipgloss.Color("#0f6cbd"),
	Pane:          lipgloss.Color("#faf9f8"),
	PaneFg:        lipgloss.Color("#323130"),
	Selected:      lipgloss.Color("#cfe4fa"),
	SelectedFg:    lipgloss.Color("#242424"),
	Border:        lipgloss.Color("#c8c6c4"),
	BorderFocused: lipgloss.Color("#0078d4"),
	TitleBar:      lipgloss.Color("#f3f2f1"),
	TitleBarFg:    lipgloss.Color("#605e5c"),
	TitleFocused:  lipgloss.Color("#242424"),
	CloseButton:   lipgloss.Color("#c42b1c"),
	StatusBar:     lipgloss.Color("#0078d4"),
	StatusBarFg:   lipgloss.Color("#ffffff"),
	Error:         lipgloss.Color("#c50f1f"),
	Warning:       lipgloss.Color("#bc4b09"),
	Success:       lipgloss.Color("#107c10"),
	Info:          lipgloss.Color("#0078d4"),
}

// Lookup returns the palette for an office theme name, ignoring case and
// surrounding space. Black and Dark Gray are dark; Colorful and White are
// light. Unknown names get Black.
func Lookup(name string) Palette {
	var p Palette
	switch Canonical(name) {
	case DarkGray:
		p = dark
		p.Bg = lipgloss.Color("#2b2b2b")
		p.Pane = lipgloss.Color("#333333")
		p.Ribbon = lipgloss.Color("#3b3b3b")
		p.TitleBar = lipgloss.Color("#383838")
		p.Name = DarkGray
	case Colorful:
		p = light
		p.Ribbon = lipgloss.Color("#0f6cbd")
		p.RibbonFg = lipgloss.Color("#ffffff")
		p.RibbonTab = lipgloss.Color("#ffffff")
		p.TitleBar = lipgloss.Color("#0f6cbd")
		p.TitleBarFg = lipgloss.Color("#cfe4fa")
		p.TitleFocused = lipgloss.Color("#ffffff")
		p.Name = Colorful
	case White:
		p = light
		p.Name = White
	default:
		p = dark
		p.Bg = lipgloss.Color("#000000")
		p.Name = Black
	}
	return p
}

// Canonical returns the office theme name matching name, or Black.
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	for _, n := range Names {
		if strings.EqualFold(n, name) {
			return n
		}
	}
	return Black
}

// Mode returns "dark" or "light" for an office theme name.
func Mode(name string) string {
	if Lookup(name).Dark {
		return "dark"
	}
	return "light"
}

// Next returns the theme after name in Names, wrapping around.
func Next(name string) string {
	cur := Canonical(name)
	for i, n := range Names {
		if n == cur {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

var current atomic.Pointer[Palette]

// Initialize sets the process-wide palette used by the CLI output.
// Sessions keep their own palette so each can switch themes independently.
func Initialize(name string) {
	p := Lookup(name)
	current.Store(&p)
}

// Current returns the process-wide palette.
func Current() Palette {
	if p := current.Load(); p != nil {
		return *p
	}
	return Lookup(Black)
}

// CLI table colors
func CLITableHeader() color.Color {
	return Current().Accent
}

func CLITableBorder() color.Color {
	return Current().Border
}

func CLITableTitle() color.Color {
	return Current().RibbonTab
}

func CLITableDim() color.Color {
	return Current().Muted
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
