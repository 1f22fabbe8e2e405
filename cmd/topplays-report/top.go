package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/topplays/internal/errmsg"
)

func newTopCmd(root *rootOptions, factory serviceFactory) *cobra.Command {
	var rng rangeFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the most played tracks of a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := rng.parse()
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			svc, err := factory(root.cfg, limit, root.logger)
			if err != nil {
				return err
			}

			res, err := svc.TopTracks(cmd.Context(), r)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpTopTracksLoad, err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), topTable(res))
			fmt.Fprintln(cmd.OutOrStdout(), topSummary(res))
			return nil
		},
	}

	rng.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "number of tracks (default from config, 50)")
	return cmd
}
