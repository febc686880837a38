// Package config provides configuration management for tuimail.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// configRelPath is the config file location relative to the XDG config home.
const configRelPath = "tuimail/config.toml"

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Account     AccountConfig     `toml:"account"`
	Geometry    GeometryConfig    `toml:"geometry"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Logging     LoggingConfig     `toml:"logging"`
}

// AppearanceConfig holds visual settings.
type AppearanceConfig struct {
	// Theme is one of the office themes: Black, Dark Gray, Colorful, White.
	Theme string `toml:"theme"`
	// BorderStyle is the frame border: rounded, normal, thick, double, ascii.
	BorderStyle string `toml:"border_style"`
	ShowClock   bool   `toml:"show_clock"`
}

// AccountConfig is the signed-in user shown in account panels.
type AccountConfig struct {
	DisplayName string `toml:"display_name"`
	Email       string `toml:"email"`
	Language    string `toml:"language"`
	TimeZone    string `toml:"time_zone"`
}

// WindowPreset is the opening geometry for one component.
type WindowPreset struct {
	Position *wm.Position `toml:"position,omitempty"`
	Size     *wm.Size     `toml:"size,omitempty"`
}

// GeometryConfig holds window geometry in terminal cells.
type GeometryConfig struct {
	DefaultPosition  wm.Position             `toml:"default_position"`
	DefaultSize      wm.Size                 `toml:"default_size"`
	Stagger          wm.Position             `toml:"stagger"`
	FallbackPosition wm.Position             `toml:"fallback_position"`
	FallbackSize     wm.Size                 `toml:"fallback_size"`
	ZBase            int                     `toml:"z_base"`
	MinSize          wm.Size                 `toml:"min_size"`
	ComponentMinSize map[string]wm.Size      `toml:"component_min_size"`
	Presets          map[string]WindowPreset `toml:"presets"`
}

// KeybindingsConfig maps actions to keys, grouped by section.
type KeybindingsConfig struct {
	Mail    map[string][]string `toml:"mail"`
	Windows map[string][]string `toml:"windows"`
	System  map[string][]string `toml:"system"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:       "Black",
			BorderStyle: "rounded",
			ShowClock:   true,
		},
		Account: AccountConfig{
			DisplayName: "Alex Johnson",
			Email:       "alex.johnson@contoso.com",
			Language:    "English (United States)",
			TimeZone:    "(UTC-08:00) Pacific Time (US & Canada)",
		},
		Geometry: DefaultGeometry(),
		Keybindings: KeybindingsConfig{
			Mail: map[string][]string{
				"new_message":      {"n", "ctrl+n"},
				"address_book":     {"b"},
				"contact_details":  {"c"},
				"account_info":     {"a"},
				"account_settings": {"s"},
				"options":          {"o"},
				"toggle_calendar":  {"v"},
				"search_mail":      {"/"},
				"prev_month":       {"["},
				"next_month":       {"]"},
				"calendar_today":   {"T"},
			},
			Windows: map[string][]string{
				"close_window":    {"x", "ctrl+w"},
				"next_window":     {"tab"},
				"prev_window":     {"shift+tab"},
				"minimize_window": {"m"},
				"toggle_maximize": {"z", "f"},
				"restore_all":     {"M"},
			},
			System: map[string][]string{
				"toggle_help": {"?"},
				"toggle_logs": {"ctrl+l", "L"},
				"cycle_theme": {"t"},
				"quit":        {"q", "ctrl+c"},
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultGeometry returns the cell geometry used by the terminal host.
func DefaultGeometry() GeometryConfig {
	return GeometryConfig{
		DefaultPosition:  wm.Position{X: 24, Y: 4},
		DefaultSize:      wm.Size{Width: 64, Height: 18},
		Stagger:          wm.Position{X: 3, Y: 2},
		FallbackPosition: wm.Position{X: 10, Y: 5},
		FallbackSize:     wm.Size{Width: 64, Height: 18},
		ZBase:            1000,
		MinSize:          wm.Size{Width: 40, Height: 10},
		ComponentMinSize: map[string]wm.Size{
			string(wm.ComponentAddressBook):    {Width: 60, Height: 14},
			string(wm.ComponentContactDetails): {Width: 40, Height: 12},
		},
		Presets: map[string]WindowPreset{
			string(wm.ComponentAccountInfo): {
				Position: &wm.Position{X: 10, Y: 5},
				Size:     &wm.Size{Width: 72, Height: 22},
			},
			string(wm.ComponentAddressBook): {
				Size: &wm.Size{Width: 76, Height: 22},
			},
			string(wm.ComponentContactDetails): {
				Size: &wm.Size{Width: 52, Height: 16},
			},
		},
	}
}

// WM converts the cell geometry to the window manager's config.
func (g GeometryConfig) WM() wm.Config {
	mins := make(map[wm.Component]wm.Size, len(g.ComponentMinSize))
	for name, size := range g.ComponentMinSize {
		mins[wm.ParseComponent(name)] = size
	}
	return wm.Config{
		DefaultPosition:  g.DefaultPosition,
		DefaultSize:      g.DefaultSize,
		Stagger:          g.Stagger,
		FallbackPosition: g.FallbackPosition,
		FallbackSize:     g.FallbackSize,
		ZBase:            g.ZBase,
		MinSize:          g.MinSize,
		ComponentMinSize: mins,
	}
}

// Preset returns the opening geometry for comp. Missing fields are nil.
func (g GeometryConfig) Preset(comp wm.Component) WindowPreset {
	for name, p := range g.Presets {
		if wm.ParseComponent(name) == comp {
			return p
		}
	}
	return WindowPreset{}
}

// Validate checks that every size in the config is positive.
func (c *UserConfig) Validate() error {
	g := c.Geometry
	sizes := map[string]wm.Size{
		"default_size":  g.DefaultSize,
		"fallback_size": g.FallbackSize,
		"min_size":      g.MinSize,
	}
	for name, s := range g.ComponentMinSize {
		sizes["component_min_size."+name] = s
	}
	for name, p := range g.Presets {
		if p.Size != nil {
			sizes["presets."+name+".size"] = *p.Size
		}
	}
	for name, s := range sizes {
		if !s.Valid() {
			return fmt.Errorf("%w: geometry.%s must be positive, got %dx%d", ErrInvalidConfig, name, s.Width, s.Height)
		}
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GetConfigPath returns the config file path under the XDG config home,
// creating the parent directory if needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile(configRelPath)
}

// LoadUserConfig loads the config from the default path, writing the
// defaults there first if the file does not exist.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads the config at path. Keys missing from the file keep their
// default values.
func LoadFrom(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	fillMissingKeybinds(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillMissingKeybinds restores default bindings for actions the file does
// not mention.
func fillMissingKeybinds(cfg *UserConfig) {
	def := DefaultConfig().Keybindings
	merge := func(dst *map[string][]string, src map[string][]string) {
		if *dst == nil {
			*dst = map[string][]string{}
		}
		for action, keys := range src {
			if _, ok := (*dst)[action]; !ok {
				(*dst)[action] = keys
			}
		}
	}
	merge(&cfg.Keybindings.Mail, def.Mail)
	merge(&cfg.Keybindings.Windows, def.Windows)
	merge(&cfg.Keybindings.System, def.System)
}

// Save writes cfg to path with a comment header.
func Save(path string, cfg *UserConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tuimail configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Geometry is in terminal cells. Keybindings map an action to a list of keys.\n")
	sb.WriteString("# Changes are picked up while tuimail is running.\n\n")
	sb.Write(data)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Overrides are command-line settings applied on top of the loaded config.
type Overrides struct {
	ThemeName   string
	BorderStyle string
	HideClock   bool
	Debug       bool
}

// ApplyOverrides applies non-zero overrides to cfg.
func ApplyOverrides(o Overrides, cfg *UserConfig) {
	if cfg == nil {
		return
	}
	if o.ThemeName != "" {
		cfg.Appearance.Theme = o.ThemeName
	}
	if o.BorderStyle != "" {
		cfg.Appearance.BorderStyle = o.BorderStyle
	}
	if o.HideClock {
		cfg.Appearance.ShowClock = false
	}
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
}
