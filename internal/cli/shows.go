package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setbreak/internal/catalog"
)

func newShowsCmd(o *options) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "shows",
		Short: "List every show in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shows := o.cat.All()
			if tag != "" {
				shows = filterTag(shows, tag)
			}
			return writeShows(cmd.OutOrStdout(), shows, o.jsonOut)
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only shows carrying this tag")
	return cmd
}

func filterTag(shows []*catalog.Show, tag string) []*catalog.Show {
	var out []*catalog.Show
	for _, s := range shows {
		for _, t := range s.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a show and its set list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.show(args[0])
			if err != nil {
				return err
			}
			return writeShow(cmd.OutOrStdout(), s, o.jsonOut)
		},
	}
}

func (o *options) show(id string) (*catalog.Show, error) {
	s, ok := o.cat.ByID(id)
	if !ok {
		return nil, fmt.Errorf("no show with id %q", id)
	}
	return s, nil
}
