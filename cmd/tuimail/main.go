// Package main implements tuimail, a mail client skin with floating windows
// for the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode   bool
	themeName   string
	borderStyle string
	hideClock   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuimail",
		Short: "A mail client with floating windows",
		Long: `tuimail - a mail client skin with floating windows

Open compose, address book, contact and settings windows over the mail
view, then drag them by the title bar, resize them from the corner grip,
and minimize them to the tray.`,
		Example: `  # Run tuimail
  tuimail

  # Run with a different office theme
  tuimail --theme "Dark Gray"

  # Run as SSH server
  tuimail ssh --port 2222

  # Edit configuration
  tuimail config edit

  # List all keybindings
  tuimail keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Office theme: Black, Dark Gray, Colorful or White")
	rootCmd.Flags().StringVar(&borderStyle, "border-style", "", "Window border: rounded, normal, thick, double, ascii or hidden")
	rootCmd.Flags().BoolVar(&hideClock, "hide-clock", false, "Hide the status bar clock")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run tuimail as SSH server",
		Long: `Run tuimail as an SSH server

Every connection gets its own windows, mailbox and theme. The server
generates an ed25519 host key on first start if none is given.`,
		Example: `  # Start SSH server on default port
  tuimail ssh

  # Start on custom port
  tuimail ssh --port 2222

  # Specify custom host key
  tuimail ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuimail configuration",
		Long:  `Manage the tuimail configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tuimail configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order. A running tuimail picks up
the saved file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	var assumeYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tuimail configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults(assumeYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long: `Display only keybindings that differ from defaults

Shows a comparison of default and custom keybindings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List office themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listThemes()
		},
	}

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd, themesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
