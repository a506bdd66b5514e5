package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/setbreak/internal/catalog"
)

const dateLayout = "2006-01-02"

func newTodayCmd(o *options) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show a show played on this day in an earlier year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := time.Now()
			if date != "" {
				var err error
				if day, err = time.Parse(dateLayout, date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}
			s := o.cat.OnThisDay(day)
			if s == nil {
				return fmt.Errorf("catalog is empty")
			}
			if !o.jsonOut {
				if played, err := catalog.ShowDate(s); err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Played "+humanize.RelTime(played, day, "ago", "from now"))
				}
			}
			return writeShow(cmd.OutOrStdout(), s, o.jsonOut)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to match instead of today (YYYY-MM-DD)")
	return cmd
}

func newRandomCmd(o *options) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // not security sensitive
			}
			s := o.cat.Random(r)
			if s == nil {
				return fmt.Errorf("catalog is empty")
			}
			return writeShow(cmd.OutOrStdout(), s, o.jsonOut)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a repeatable pick")
	return cmd
}
