// Package cli implements setbreak-catalog, a headless command line over the
// show catalog and a simulated playback session.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/config"
	"github.com/llehouerou/setbreak/internal/logging"
)

// options are the persistent flags and what they load.
type options struct {
	cfgFile     string
	catalogFile string
	jsonOut     bool
	verbose     bool

	cfg *config.Config
	cat *catalog.Catalog
	log zerolog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "setbreak-catalog",
		Short: "Browse the setbreak show catalog from the command line",
		Long: `setbreak-catalog lists the shows and tours setbreak knows about and can
drive a simulated playback session without the terminal UI.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.init(cmd)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&o.cfgFile, "config", "c", "", "config file (default: XDG config dir)")
	root.PersistentFlags().StringVar(&o.catalogFile, "catalog", "", "TOML catalog replacing the built-in shows")
	root.PersistentFlags().BoolVarP(&o.jsonOut, "json", "j", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newShowsCmd(o),
		newShowCmd(o),
		newToursCmd(o),
		newTourCmd(o),
		newTodayCmd(o),
		newRandomCmd(o),
		newSimulateCmd(o),
	)
	return root
}

func (o *options) init(cmd *cobra.Command) error {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	o.log = logging.Console(cmd.ErrOrStderr(), level)

	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadFrom(o.cfgFile)
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := o.catalogFile
	if path == "" && o.cfg.HasCatalog() {
		path = o.cfg.Catalog
	}
	if path == "" {
		o.cat, err = catalog.Default()
	} else {
		o.cat, err = catalog.LoadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	o.log.Debug().Int("shows", o.cat.Len()).Str("path", path).Msg("catalog loaded")
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
