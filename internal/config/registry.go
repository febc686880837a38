package config

import (
	"fmt"
	"slices"
	"strings"
)

// ActionDescriptions maps action names to human-readable descriptions.
var ActionDescriptions = map[string]string{
	"new_message":      "New message",
	"address_book":     "Open address book",
	"contact_details":  "Open contact details",
	"account_info":     "Open account information",
	"account_settings": "Open account settings",
	"options":          "Open options",
	"toggle_calendar":  "Switch between mail and calendar",
	"search_mail":      "Search the message list",
	"prev_month":       "Previous month",
	"next_month":       "Next month",
	"calendar_today":   "Jump to today",

	"close_window":    "Close window",
	"next_window":     "Focus next window",
	"prev_window":     "Focus previous window",
	"minimize_window": "Minimize window",
	"toggle_maximize": "Maximize or restore window",
	"restore_all":     "Restore all minimized windows",

	"toggle_help": "Toggle help",
	"toggle_logs": "Toggle log viewer",
	"cycle_theme": "Next office theme",
	"quit":        "Quit",
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
	conflicts    []string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry builds a registry from cfg's keybindings. When two
// actions claim the same key, the first in section order (mail, windows,
// system) keeps it and the clash is recorded.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string),
		keyToAction:  make(map[string]string),
		normalizer:   NewKeyNormalizer(),
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for _, section := range []map[string][]string{
		cfg.Keybindings.Mail,
		cfg.Keybindings.Windows,
		cfg.Keybindings.System,
	} {
		r.addSection(section)
	}
	return r
}

func (r *KeybindRegistry) addSection(section map[string][]string) {
	actions := make([]string, 0, len(section))
	for action := range section {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		for _, key := range section[action] {
			if ok, _ := r.normalizer.ValidateKey(key); !ok {
				continue
			}
			r.actionToKeys[action] = append(r.actionToKeys[action], key)
			for _, k := range r.normalizer.NormalizeKey(key) {
				if prev, taken := r.keyToAction[k]; taken && prev != action {
					r.conflicts = append(r.conflicts, fmt.Sprintf("%q is bound to both %s and %s", key, prev, action))
					continue
				}
				r.keyToAction[k] = action
			}
		}
	}
}

// GetKeys returns the keys bound to action, in config order.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	if action, ok := r.keyToAction[key]; ok {
		return action
	}
	for _, k := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.keyToAction[k]; ok {
			return action
		}
	}
	return ""
}

// GetKeysForDisplay returns action's keys formatted for the help overlay.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.GetKeys(action)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = displayKey(k)
	}
	return strings.Join(out, ", ")
}

// Conflicts returns the key clashes found while building the registry.
func (r *KeybindRegistry) Conflicts() []string {
	return r.conflicts
}

func displayKey(k string) string {
	parts := strings.Split(k, "+")
	for i, p := range parts {
		switch p {
		case "ctrl", "alt", "shift":
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		case "tab":
			parts[i] = "Tab"
		case "enter":
			parts[i] = "Enter"
		case "esc":
			parts[i] = "Esc"
		}
	}
	return strings.Join(parts, "+")
}

// KeyNormalizer canonicalizes user-written key strings to the form the
// terminal reports.
type KeyNormalizer struct {
	aliases map[string][]string
}

// NewKeyNormalizer returns a normalizer with the common key aliases.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string][]string{
			"return": {"enter"},
			"enter":  {"return"},
			"escape": {"esc"},
			"esc":    {"escape"},
			"space":  {" "},
			"del":    {"delete"},
			"delete": {"del"},
		},
	}
}

var modifiers = []string{"ctrl", "alt", "shift", "meta", "super", "hyper"}

// NormalizeKey returns the canonical form of key followed by any aliases.
// Modifiers are lowercased and a single letter after a modifier is
// lowercased too ("Ctrl+A" is "ctrl+a"); a bare letter keeps its case, so
// "M" stays shift+m.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	if key == "+" {
		return []string{key}
	}

	parts := strings.Split(key, "+")
	base := parts[len(parts)-1]
	mods := parts[:len(parts)-1]
	for i, m := range mods {
		mods[i] = strings.ToLower(m)
	}
	if len(mods) > 0 || len([]rune(base)) > 1 {
		base = strings.ToLower(base)
	}

	join := func(b string) string {
		if len(mods) == 0 {
			return b
		}
		return strings.Join(mods, "+") + "+" + b
	}
	out := []string{join(base)}
	for _, alias := range n.aliases[base] {
		out = append(out, join(alias))
	}
	return out
}

// ValidateKey reports whether key is usable, with a reason when it is not.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, "empty key"
	}
	if key == "+" {
		return true, ""
	}
	parts := strings.Split(key, "+")
	if parts[len(parts)-1] == "" {
		return false, "missing key after modifier"
	}
	for _, m := range parts[:len(parts)-1] {
		if !slices.Contains(modifiers, strings.ToLower(m)) {
			return false, fmt.Sprintf("unknown modifier %q", m)
		}
	}
	return true, ""
}
