package theme_test

import (
	"testing"

	"github.com/Gaurav-Gosain/tuimail/internal/theme"
)

func TestMode(t *testing.T) {
	tests := map[string]string{
		"Black":     "dark",
		"Dark Gray": "dark",
		"dark gray": "dark",
		"Colorful":  "light",
		"White":     "light",
		"Purple":    "dark",
		"":          "dark",
	}
	for name, want := range tests {
		if got := theme.Mode(name); got != want {
			t.Errorf("Mode(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestNext_Cycles(t *testing.T) {
	name := theme.Black
	seen := map[string]bool{}
	for range theme.Names {
		seen[name] = true
		name = theme.Next(name)
	}
	if name != theme.Black {
		t.Errorf("cycle ended at %q, want Black", name)
	}
	if len(seen) != len(theme.Names) {
		t.Errorf("visited %d themes, want %d", len(seen), len(theme.Names))
	}
}

func TestLookup_FillsEveryColor(t *testing.T) {
	for _, name := range theme.Names {
		p := theme.Lookup(name)
		if p.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, p.Name)
		}
		for label, c := range map[string]any{
			"Bg": p.Bg, "Fg": p.Fg, "Accent": p.Accent, "Border": p.Border,
			"TitleBar": p.TitleBar, "StatusBar": p.StatusBar, "Selected": p.Selected,
		} {
			if c == nil {
				t.Errorf("%s: %s is nil", name, label)
			}
		}
	}
}

func TestColorToString(t *testing.T) {
	if got := theme.ColorToString(theme.Lookup(theme.White).Bg); got != "#ffffff" {
		t.Errorf("White bg = %q", got)
	}
	if got := theme.ColorToString(nil); got != "#000000" {
		t.Errorf("nil = %q", got)
	}
}
