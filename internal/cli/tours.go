package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newToursCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tours",
		Short: "List tours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tours := o.cat.Tours()
			if o.jsonOut {
				return writeJSON(cmd.OutOrStdout(), tours)
			}
			t := NewTable(cmd.OutOrStdout(), "SLUG", "TOUR", "YEARS", "SHOWS")
			for _, tour := range tours {
				t.Row(tour.Slug, tour.Name, tour.YearRange, humanize.Comma(int64(tour.ShowCount)))
			}
			return t.Flush()
		},
	}
}

func newTourCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tour <slug>",
		Short: "List the shows of one tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := o.cat.TourBySlug(args[0])
			if !ok {
				return fmt.Errorf("no tour matches %q", args[0])
			}
			if !o.jsonOut {
				fmt.Fprintln(cmd.OutOrStdout(), g.Name)
			}
			return writeShows(cmd.OutOrStdout(), g.Shows, o.jsonOut)
		},
	}
}
