package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leftmike/printstate"
	"github.com/leftmike/printstate/internal/config"
)

type record struct {
	Line  int                     `json:"line" yaml:"line"`
	Text  string                  `json:"text" yaml:"text"`
	State printstate.MachineState `json:"state" yaml:"state"`
}

func newDumpCommand(g *globals) *cobra.Command {
	var format string
	var from, to int

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the state after every line",
		Long: `Print the state after every line of a program as YAML or JSON. --from and --to
select an inclusive range of 1-based line numbers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = g.cfg.Format
			}

			doc, err := g.readDocument(args[0])
			if err != nil {
				return err
			}
			return writeDump(cmd.OutOrStdout(), format, selectLines(doc, from, to))
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatYAML, "output format: yaml or json")
	cmd.Flags().IntVar(&from, "from", 1, "first line to print")
	cmd.Flags().IntVar(&to, "to", 0, "last line to print; 0 for the end of the program")
	return cmd
}

func selectLines(doc *printstate.Document, from, to int) []record {
	if from < 1 {
		from = 1
	}
	if to <= 0 || to > doc.LineCount {
		to = doc.LineCount
	}

	var recs []record
	for num := from; num <= to; num += 1 {
		line := doc.Lines[num-1]
		recs = append(recs, record{Line: num, Text: line.Text, State: line.State})
	}
	return recs
}

func writeDump(w io.Writer, format string, recs []record) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}
	return fmt.Errorf("dump: expected %s or %s format, got %q", config.FormatYAML,
		config.FormatJSON, format)
}
