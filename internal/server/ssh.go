// Package server serves tuimail sessions over SSH.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/app"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/input"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // Generated on first start when missing
	// Config is shared by every session. Each session gets its own window
	// store and theme.
	Config *config.UserConfig
	Logger *log.Logger
}

// DefaultHostKeyPath is where the host key lives when none is configured.
func DefaultHostKeyPath() (string, error) {
	return xdg.DataFile(filepath.Join("tuimail", "ssh_host_ed25519"))
}

// StartSSHServer runs the SSH server until ctx is cancelled.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	userConfig := cfg.Config
	if userConfig == nil {
		userConfig = config.DefaultConfig()
	}

	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		var err error
		if hostKeyPath, err = DefaultHostKeyPath(); err != nil {
			return fmt.Errorf("failed to resolve host key path: %w", err)
		}
	}
	if err := ensureHostKey(hostKeyPath); err != nil {
		return err
	}

	app.SetInputHandler(input.HandleInput)

	server := &ssh.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: sessionHandler(ctx, userConfig, logger),
	}
	if err := server.SetOption(ssh.HostKeyFile(hostKeyPath)); err != nil {
		return fmt.Errorf("failed to load host key: %w", err)
	}
	if err := server.SetOption(ssh.EmulatePty()); err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "addr", server.Addr, "host_key", hostKeyPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down SSH server")
	return server.Shutdown(context.Background())
}

// sessionHandler runs one tuimail program per SSH session.
func sessionHandler(ctx context.Context, cfg *config.UserConfig, logger *log.Logger) ssh.Handler {
	return func(s ssh.Session) {
		pty, winCh, active := s.Pty()
		if !active {
			_, _ = fmt.Fprintln(s.Stderr(), "tuimail needs an interactive terminal: connect with ssh -t")
			_ = s.Exit(1)
			return
		}

		sessionLogger := logger.With("user", s.User(), "remote", s.RemoteAddr().String())
		model := app.New(app.Options{
			Config: cfg,
			Logger: sessionLogger,
			Seed:   seedFor(s.User()),
		})
		model.Width = pty.Window.Width
		model.Height = pty.Window.Height

		sessCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			<-s.Context().Done()
			cancel()
		}()

		p := tea.NewProgram(model,
			tea.WithInput(s),
			tea.WithOutput(s),
			tea.WithEnvironment(append(s.Environ(), "TERM="+pty.Term)),
			tea.WithWindowSize(pty.Window.Width, pty.Window.Height),
			tea.WithoutSignalHandler(),
			tea.WithContext(sessCtx),
			tea.WithFilter(app.FilterMouseMotion),
		)

		go func() {
			for {
				select {
				case <-sessCtx.Done():
					return
				case w, ok := <-winCh:
					if !ok {
						return
					}
					p.Send(tea.WindowSizeMsg{Width: w.Width, Height: w.Height})
				}
			}
		}()

		sessionLogger.Info("session started", "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			sessionLogger.Error("session ended with error", "err", err)
			_ = s.Exit(1)
			return
		}
		sessionLogger.Info("session ended")
		_ = s.Exit(0)
	}
}

// seedFor gives each user a stable generated mailbox.
func seedFor(user string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(user))
	return h.Sum64()
}

// ensureHostKey writes a new ed25519 host key to path unless one exists.
func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat host key: %w", err)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("failed to generate host key: %w", err)
	}
	block, err := gossh.MarshalPrivateKey(priv, "tuimail")
	if err != nil {
		return fmt.Errorf("failed to encode host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create host key directory: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return fmt.Errorf("failed to write host key: %w", err)
	}
	return nil
}
