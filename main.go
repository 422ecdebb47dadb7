package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/auth"
	"github.com/fragmede/linkedinify/internal/config"
	"github.com/fragmede/linkedinify/internal/logging"
	"github.com/fragmede/linkedinify/internal/storage"
	"github.com/fragmede/linkedinify/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code. Deferred cleanup has finished by the
// time it returns.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: loading config: %v\n", err)
		return 1
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		fmt.Fprintf(stderr, "Error: creating data dir: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: opening log: %v\n", err)
		return 1
	}
	defer logger.Sync()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Errorw("opening session store", "error", err)
		fmt.Fprintf(stderr, "Error: opening session store: %v\n", err)
		return 1
	}
	defer db.Close()

	client := api.NewClient(cfg.ServerURL, cfg.RequestTimeout, logger)
	session := auth.NewSession(db, client, logger)
	logger.Infow("starting", "server", cfg.ServerURL, "data", cfg.DataDir)

	if cfg.BatchFile != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runBatch(ctx, cfg, client, session, stdout, stderr); err != nil {
			logger.Errorw("batch failed", "error", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	app := ui.NewApp(cfg, client, session, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Errorw("program exited", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
