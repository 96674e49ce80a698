package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/leftmike/printstate"
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, label: plain, value: plain, warn: plain}
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newSummaryCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE...",
		Short: "Print the final state of each program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			st := newStyles(colorEnabled(w))
			for n, path := range args {
				doc, err := g.readDocument(path)
				if err != nil {
					return err
				}
				if n > 0 {
					fmt.Fprintln(w)
				}
				writeSummary(w, st, path, doc)
			}
			return nil
		},
	}
}

func writeSummary(w io.Writer, st styles, path string, doc *printstate.Document) {
	final := doc.Final()
	row := func(label, val string) {
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(fmt.Sprintf("%-14s", label)),
			st.value.Render(val))
	}

	fmt.Fprintln(w, st.title.Render(path))
	row("lines", strconv.Itoa(doc.LineCount))
	row("layers", strconv.Itoa(doc.Layers()))
	row("layer height", strconv.FormatFloat(final.LayerHeight, 'f', -1, 64))
	row("position", final.Position.String())
	row("extruded", fmt.Sprintf("%.3f mm", final.TotalExtruded()))
	if tool, ok := final.SelectedTool(); ok {
		row("tool", fmt.Sprintf("T%d", tool))
	} else {
		row("tool", "none")
	}
	row("variables", strconv.Itoa(len(final.Variables)))
	if len(doc.Warnings) > 0 {
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(fmt.Sprintf("%-14s", "warnings")),
			st.warn.Render(strconv.Itoa(len(doc.Warnings))))
	}
}
