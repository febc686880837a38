package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
)

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Loading writes the default file when there is none
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadFrom(configPath); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return errors.New("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults(assumeYes bool) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !assumeYes {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.Save(configPath, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: tuimail config edit")
	return nil
}

func tableStyles() (header, cell, border lipgloss.Style) {
	header = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)
	cell = lipgloss.NewStyle().Padding(0, 1)
	border = lipgloss.NewStyle().Foreground(theme.CLITableBorder())
	return header, cell, border
}

func newTable(headers ...string) *table.Table {
	headerStyle, cellStyle, borderStyle := tableStyles()
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableTitle()).Render(s)
}

func dim(s string) string {
	return lipgloss.NewStyle().Foreground(theme.CLITableDim()).Render(s)
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	userConfig := loadConfig()
	registry := config.NewKeybindRegistry(userConfig)

	fmt.Println()
	fmt.Println(title("tuimail Keybindings"))
	fmt.Println()

	for _, section := range config.HelpSections {
		rows := [][]string{}
		for _, action := range section.Actions {
			keys := registry.GetKeys(action)
			if len(keys) == 0 {
				continue // Skip unbound actions
			}
			desc := config.ActionDescriptions[action]
			if desc == "" {
				desc = action
			}
			rows = append(rows, []string{strings.Join(keys, ", "), desc})
		}
		if len(rows) == 0 {
			continue
		}

		fmt.Println(title(section.Title))
		fmt.Println(newTable("Keys", "Action").Rows(rows...).Render())
		fmt.Println()
	}

	for _, c := range registry.Conflicts() {
		fmt.Println(dim("Conflict: " + c))
	}
	fmt.Println(dim("Mouse: drag title bars to move, drag the corner grip to resize, click tray pills to restore."))
	fmt.Println()
	return nil
}

// listCustomKeybindings shows only the keybindings that differ from defaults
func listCustomKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	customizations := findCustomizations(userConfig, config.DefaultConfig())
	if len(customizations) == 0 {
		fmt.Println(dim("No custom keybindings configured. All keybindings are using defaults."))
		fmt.Println()
		fmt.Println("Run 'tuimail keybinds list' to see all keybindings.")
		return nil
	}

	rows := [][]string{}
	for _, custom := range customizations {
		rows = append(rows, []string{custom.Action, custom.DefaultKeys, custom.CustomKeys})
	}

	fmt.Println()
	fmt.Println(title("Custom Keybindings"))
	fmt.Println()
	fmt.Println(newTable("Action", "Default", "Custom").Rows(rows...).Render())
	fmt.Println()
	fmt.Println(title(fmt.Sprintf("Found %d customized keybinding(s)", len(customizations))))
	fmt.Println()
	return nil
}

// Customization represents a customized keybinding
type Customization struct {
	Action      string
	DefaultKeys string
	CustomKeys  string
}

// findCustomizations finds all keybindings that differ from defaults, in
// help order.
func findCustomizations(userCfg, defaultCfg *config.UserConfig) []Customization {
	var customizations []Customization

	compareSections := func(userSection, defaultSection map[string][]string) {
		for _, section := range config.HelpSections {
			for _, action := range section.Actions {
				defaultKeys, ok := defaultSection[action]
				if !ok {
					continue
				}
				userKeys, exists := userSection[action]
				if !exists || slices.Equal(userKeys, defaultKeys) {
					continue
				}
				customizations = append(customizations, Customization{
					Action:      formatActionName(action),
					DefaultKeys: strings.Join(defaultKeys, ", "),
					CustomKeys:  strings.Join(userKeys, ", "),
				})
			}
		}
	}

	compareSections(userCfg.Keybindings.Mail, defaultCfg.Keybindings.Mail)
	compareSections(userCfg.Keybindings.Windows, defaultCfg.Keybindings.Windows)
	compareSections(userCfg.Keybindings.System, defaultCfg.Keybindings.System)

	return customizations
}

// formatActionName turns new_message into "New Message".
func formatActionName(action string) string {
	words := strings.Split(action, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// listThemes prints the office themes with their mode and accent color.
func listThemes() error {
	current := loadConfig().Appearance.Theme

	rows := [][]string{}
	for _, name := range theme.Names {
		marker := ""
		if name == theme.Canonical(current) {
			marker = "*"
		}
		p := theme.Lookup(name)
		rows = append(rows, []string{marker, name, theme.Mode(name), theme.ColorToString(p.Accent)})
	}

	fmt.Println()
	fmt.Println(newTable("", "Theme", "Mode", "Accent").Rows(rows...).Render())
	fmt.Println()
	return nil
}
