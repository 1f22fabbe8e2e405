package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/topplays/internal/errmsg"
	"github.com/llehouerou/topplays/internal/history"
)

func newHistoryCmd(root *rootOptions, factory serviceFactory) *cobra.Command {
	var rng rangeFlags
	var id history.TrackIdentity

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the daily plays of one track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if id.Track == "" {
				return errors.New("--track must not be empty")
			}
			r, err := rng.parse()
			if err != nil {
				return err
			}

			svc, err := factory(root.cfg, 0, root.logger)
			if err != nil {
				return err
			}

			h, err := svc.DailyHistogram(cmd.Context(), id, r)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpHistoryLoad, err))
			}

			if !h.Matched {
				fmt.Fprintf(cmd.OutOrStdout(), "%s - %s was not played between %s\n",
					id.Track, id.DisplayArtist(), r)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), historyTable(h))
			return nil
		},
	}

	rng.register(cmd)
	cmd.Flags().StringVar(&id.Track, "track", "", "track title (required)")
	cmd.Flags().StringVar(&id.Artist, "artist", "", "artist name")
	_ = cmd.MarkFlagRequired("track")
	return cmd
}
