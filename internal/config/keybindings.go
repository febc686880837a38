package config

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// HelpSections lists the configurable actions per section, in display order.
// The keybinds command and the help overlay both read it.
var HelpSections = []struct {
	Title   string
	Actions []string
}{
	{
		Title: "MAIL",
		Actions: []string{
			"new_message", "address_book", "contact_details",
			"account_info", "account_settings", "options",
			"search_mail", "toggle_calendar",
		},
	},
	{
		Title:   "CALENDAR",
		Actions: []string{"prev_month", "next_month", "calendar_today"},
	},
	{
		Title: "WINDOWS",
		Actions: []string{
			"close_window", "minimize_window", "toggle_maximize",
			"restore_all", "next_window", "prev_window",
		},
	},
	{
		Title:   "SYSTEM",
		Actions: []string{"toggle_help", "toggle_logs", "cycle_theme", "quit"},
	},
}

// GetKeybindings returns all keybinding sections for the help overlay.
// If registry is nil, bindings come from the default config.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}
	for _, hs := range HelpSections {
		section := KeybindingSection{Title: hs.Title}
		for _, action := range hs.Actions {
			addBinding(&section, registry, action, ActionDescriptions[action])
		}
		if len(section.Bindings) > 0 {
			sections = append(sections, section)
		}
	}
	return append(sections, getStaticHelpSections()...)
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

// getStaticHelpSections returns the mouse help, which is not configurable.
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Drag title bar", "Move window"},
				{"Drag ◢ corner", "Resize window"},
				{"─ □ ✕", "Minimize, maximize, close"},
				{"Click tray pill", "Restore minimized window"},
				{"Click ribbon", "Open a window"},
				{"Click a calendar day", "Show that day's mail"},
			},
		},
	}
}
