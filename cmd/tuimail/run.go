package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/app"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/input"
	"github.com/Gaurav-Gosain/tuimail/internal/server"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// loadConfig loads the user config and applies the command-line overrides.
// A broken file falls back to the defaults with a warning on stderr.
func loadConfig() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(config.Overrides{
		ThemeName:   themeName,
		BorderStyle: borderStyle,
		HideClock:   hideClock,
		Debug:       debugMode,
	}, userConfig)
	theme.Initialize(userConfig.Appearance.Theme)
	return userConfig
}

// openLogger opens the log file under the XDG state directory. The TUI owns
// the terminal, so nothing is logged to stderr while it runs.
func openLogger(cfg *config.UserConfig) (*log.Logger, io.Closer, error) {
	path, err := xdg.StateFile(filepath.Join("tuimail", "tuimail.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tuimail",
		Level:           level,
	})
	return logger, f, nil
}

func runLocal(ctx context.Context) error {
	userConfig := loadConfig()

	logger, closer, err := openLogger(userConfig)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("configuration", "path", configPath)
	}

	app.SetInputHandler(input.HandleInput)

	model := app.New(app.Options{
		Config: userConfig,
		Logger: logger,
		Seed:   uint64(os.Getpid()),
	})

	p := tea.NewProgram(
		model,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(app.FilterMouseMotion),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reload on save
	if configPath, err := config.GetConfigPath(); err == nil {
		err := config.Watch(ctx, configPath, func(cfg *config.UserConfig, err error) {
			if cfg != nil {
				config.ApplyOverrides(config.Overrides{
					ThemeName:   themeName,
					BorderStyle: borderStyle,
					HideClock:   hideClock,
					Debug:       debugMode,
				}, cfg)
			}
			p.Send(app.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			logger.Warn("config watcher disabled", "err", err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(ctx context.Context, host, port, keyPath string) error {
	userConfig := loadConfig()

	level, err := log.ParseLevel(userConfig.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tuimail",
		Level:           level,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.StartSSHServer(ctx, &server.SSHServerConfig{
		Host:    host,
		Port:    port,
		KeyPath: keyPath,
		Config:  userConfig,
		Logger:  logger,
	})
}
