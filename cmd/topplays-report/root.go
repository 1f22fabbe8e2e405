package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/topplays/internal/config"
	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/lastfm"
	"github.com/llehouerou/topplays/internal/plays"
)

// reportService is the part of the pipeline the commands use.
type reportService interface {
	TopTracks(ctx context.Context, r history.Range) (*plays.TopTracks, error)
	DailyHistogram(ctx context.Context, id history.TrackIdentity, r history.Range) (*plays.Histogram, error)
}

// serviceFactory builds the pipeline from the loaded configuration.
type serviceFactory func(cfg *config.Config, limit int, logger *slog.Logger) (reportService, error)

type rootOptions struct {
	configFile string
	verbose    bool
	logger     *slog.Logger
	cfg        *config.Config
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "topplays-report",
		Short: "Print Last.fm listening reports",
		Long: `topplays-report reads a Last.fm user's scrobbles over a date range and
prints the most played tracks, or the daily plays of one track.

Example usage:
  topplays-report top --from 2024-01-01 --to 2024-01-31
  topplays-report top --from 2024-01-01 --to 2024-12-31 --limit 10
  topplays-report history --track "Song" --artist "Band" --from 2024-01-01 --to 2024-01-31`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ~/.config/topplays/config.toml then ./config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(newTopCmd(opts, factory), newHistoryCmd(opts, factory))
	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var err error
	if o.configFile != "" {
		if _, statErr := os.Stat(o.configFile); statErr != nil {
			return fmt.Errorf("read config: %w", statErr)
		}
		o.cfg, err = config.LoadFrom(o.configFile)
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	o.logger.Debug("configuration loaded",
		slog.String("user", o.cfg.Lastfm.Username),
		slog.Bool("has_key", o.cfg.Lastfm.APIKey != ""))
	return nil
}

func defaultServiceFactory(cfg *config.Config, limit int, logger *slog.Logger) (reportService, error) {
	if !cfg.HasLastfmConfig() {
		return nil, errors.New("set [lastfm] api_key and username in the config file")
	}

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
		return nil, err
	}

	ranking := cfg.GetRankingConfig()
	if limit <= 0 {
		limit = ranking.TopLimit
	}
	return plays.New(client, client, plays.Options{
		TopLimit:     limit,
		ArtworkCount: min(ranking.ArtworkCount, limit),
		Logger:       logger,
	}), nil
}

// rangeFlags are the --from and --to flags shared by the commands.
type rangeFlags struct {
	from, to string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first day, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (f *rangeFlags) parse() (history.Range, error) {
	return history.ParseRange(f.from, f.to)
}
