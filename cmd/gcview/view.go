package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leftmike/printstate"
	"github.com/leftmike/printstate/internal/config"
	"github.com/leftmike/printstate/internal/logging"
	"github.com/leftmike/printstate/toolpath"
)

func newViewCommand(g *globals) *cobra.Command {
	var output string
	var layer int

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Write an HTML page drawing the tool paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := g.readDocument(args[0])
			if err != nil {
				return err
			}

			layers := toolpath.Extract(doc)
			if layer >= 0 {
				l, ok := toolpath.Find(layers, layer)
				if !ok {
					return fmt.Errorf("%s: no layer %d; the last layer is %d", args[0], layer,
						doc.Layers())
				}
				layers = []toolpath.Layer{l}
			}

			html := renderHTML(filepath.Base(args[0]), g.cfg.Viewer, layers)
			if err := os.WriteFile(output, []byte(html), 0644); err != nil {
				return err
			}
			logging.Default().Info("wrote viewer", logging.FieldOutput, output,
				logging.FieldLayers, len(layers))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "HTML file to write")
	cmd.Flags().IntVar(&layer, "layer", -1, "draw only this layer")
	cmd.MarkFlagRequired("output")
	return cmd
}

func renderHTML(title string, v config.Viewer, layers []toolpath.Layer) string {
	center, _ := toolpath.Midpoint(layers)

	var cfg strings.Builder
	fmt.Fprintf(&cfg, "  zoom: %s,\n", formatNumber(v.Zoom))
	fmt.Fprintf(&cfg, "  stroke: %s,\n", formatNumber(v.Stroke))
	fmt.Fprintf(&cfg, "  extrudeColor: %s,\n", strconv.Quote(v.ExtrudeColor))
	fmt.Fprintf(&cfg, "  travelColor: %s,\n", strconv.Quote(v.TravelColor))
	fmt.Fprintf(&cfg, "  showTravel: %t,\n", v.ShowTravel)
	fmt.Fprintf(&cfg, "  center: %s,", point(center))

	var buf strings.Builder
	for _, l := range layers {
		fmt.Fprintf(&buf, "  {number: %d, paths: %s, travel: %s},\n", l.Number,
			paths(l.Paths), paths(l.Travel))
	}

	return fmt.Sprintf(indexHTML, strconv.Quote(title), cfg.String(), buf.String())
}

func paths(ps []toolpath.Path) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for pdx, p := range ps {
		if pdx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for idx, pos := range p {
			if idx > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(point(pos))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

func point(pos printstate.Position) string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s}", formatNumber(pos[printstate.X]),
		formatNumber(pos[printstate.Y]), formatNumber(pos[printstate.Z]))
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
