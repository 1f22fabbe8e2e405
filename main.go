package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/app"
	"github.com/llehouerou/topplays/internal/config"
	"github.com/llehouerou/topplays/internal/icons"
	"github.com/llehouerou/topplays/internal/lastfm"
	"github.com/llehouerou/topplays/internal/plays"
	"github.com/llehouerou/topplays/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasLastfmConfig() {
		return errors.New("set [lastfm] api_key and username in ~/.config/topplays/config.toml")
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	icons.Init(cfg.Icons)

	lfm := cfg.GetLastfmConfig()
	client, err := lastfm.New(lastfm.Options{
		APIKey:     lfm.APIKey,
		APISecret:  lfm.APISecret,
		Username:   lfm.Username,
		BaseURL:    lfm.BaseURL,
		Timeout:    lfm.Timeout(),
		MaxRetries: lfm.Retries(),
	})
	if err != nil {
		return err
	}

	stateMgr, err := state.Open(cfg.GetFavoritesConfig().Max)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	ranking := cfg.GetRankingConfig()
	svc := plays.New(client, client, plays.Options{
		TopLimit:     ranking.TopLimit,
		ArtworkCount: ranking.ArtworkCount,
		Logger:       logger,
	})

	logger.Info("starting", slog.String("user", client.Username()))

	p := tea.NewProgram(app.New(svc, stateMgr, app.Options{Logger: logger}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// openLog writes logs to the configured file, or to the XDG state dir, so
// the terminal stays clean.
func openLog(cfg *config.Config) (*slog.Logger, func(), error) {
	path := cfg.Log.File
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("topplays", "topplays.log"))
		if err != nil {
			return nil, nil, err
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.GetLogLevel()}))
	return logger, func() { _ = f.Close() }, nil
}
