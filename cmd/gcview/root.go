package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leftmike/printstate"
	"github.com/leftmike/printstate/internal/config"
	"github.com/leftmike/printstate/internal/logging"
)

type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globals are the persistent flags and the configuration they select.
type globals struct {
	configPath string
	debug      bool
	quiet      bool

	cfg *config.Config
}

func newRootCommand(info buildInfo) *cobra.Command {
	g := &globals{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "gcview",
		Short: "Reconstruct printer state from G-code",
		Long: `gcview replays a G-code program line by line and records the printer state
after every line: position, extrusion, feed rate, layer, toolchange phase, active tool
and slicer variables.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "",
		"path to a .yaml or .toml config file")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&g.quiet, "quiet", false, "do not log warnings")

	rootCmd.AddCommand(newSummaryCommand(g))
	rootCmd.AddCommand(newDumpCommand(g))
	rootCmd.AddCommand(newViewCommand(g))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

func (g *globals) load(cmd *cobra.Command) error {
	if g.configPath != "" {
		cfg, err := config.Load(g.configPath)
		if err != nil {
			return err
		}
		g.cfg = cfg
	}

	logging.SetLevel(g.cfg.LogLevel)
	if g.debug {
		logging.SetLevel("debug")
	}
	if cmd.Flags().Changed("quiet") {
		g.cfg.QuietWarnings = g.quiet
	}

	logging.Default().Debug("config loaded", logging.FieldConfig, g.configPath)
	return nil
}

// readDocument builds the document for the program at path.
func (g *globals) readDocument(path string) (*printstate.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logging.Default().Debug("reading", logging.FieldPath, path)
	doc, err := printstate.Read(f, printstate.Options{
		Logger:        logging.ForFile(path),
		QuietWarnings: g.cfg.QuietWarnings,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
