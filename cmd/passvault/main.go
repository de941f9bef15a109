package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dmitrijs2005/passvault/internal/client/client"
	"github.com/dmitrijs2005/passvault/internal/client/clipboard"
	"github.com/dmitrijs2005/passvault/internal/client/config"
	"github.com/dmitrijs2005/passvault/internal/client/passgen"
	"github.com/dmitrijs2005/passvault/internal/client/services"
	"github.com/dmitrijs2005/passvault/internal/client/session"
	"github.com/dmitrijs2005/passvault/internal/client/tui"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/filex"
	"github.com/dmitrijs2005/passvault/internal/logging"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("passvault needs an interactive terminal")
	}

	cfg := config.LoadConfig()

	var logOut io.Writer = io.Discard
	if f, err := filex.OpenAppend(cfg.LogFile); err != nil {
		log.Printf("logging disabled: %v", err)
	} else {
		defer f.Close()
		logOut = f
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogBackend, level, logOut)
	if err != nil {
		return err
	}

	suite, err := cryptox.ParseSuite(cfg.Cipher)
	if err != nil {
		return err
	}

	repos, err := client.InitDatabase(ctx, cfg.DBDriver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repos.Close()

	logger.Info(ctx, "store ready", "driver", cfg.DBDriver)

	auth := services.NewAuthService(repos.DB, repos.Dialect, suite, logger)
	store := services.NewEntryService(repos.Entries)

	machine := session.NewMachine(store, auth, clipboard.Detect(), passgen.New(), logger,
		session.WithNoticeTTL(cfg.NoticeTTL),
		session.WithErrorTTL(cfg.ErrorTTL),
	)
	s := session.NewSession(cfg.ViewportHeight)
	defer s.Close()

	final, err := tea.NewProgram(tui.New(ctx, machine, s, cfg.TickInterval), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		logger.Error(ctx, "session aborted", "error", m.Err())
		return m.Err()
	}
	logger.Info(ctx, "bye")
	return nil
}
