package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const program = `; generated by PrusaSlicer
; layer_height = 0.2
G90
G28
;LAYER_CHANGE
;Z:0.2
G1 Z.2 F720
;TYPE:Skirt/Brim
G1 X10 Y10 E1 F1500
G1 X20 Y10 E2
G1 X20 Y20
;LAYER_CHANGE
;Z:0.4
G1 Z.4
G1 X10 Y20 E1
T1
`

func writeProgram(t *testing.T, s string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "part.gcode")
	require.NoError(t, os.WriteFile(path, []byte(s), 0644))
	return path
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := newRootCommand(buildInfo{Version: "test"})
	for _, name := range []string{"summary", "dump", "view", "version"} {
		sub, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, sub.Name())
		}
	}
}

func TestSummary(t *testing.T) {
	path := writeProgram(t, program)

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"summary", "--quiet", path}, &out))

	s := out.String()
	assert.Contains(t, s, path)
	assert.Regexp(t, `lines\s+16\n`, s)
	assert.Regexp(t, `layers\s+2\n`, s)
	assert.Regexp(t, `layer height\s+0.4\n`, s)
	assert.Regexp(t, `extruded\s+4.000 mm\n`, s)
	assert.Regexp(t, `tool\s+T1\n`, s)
	assert.Regexp(t, `variables\s+1\n`, s)
	assert.NotContains(t, s, "warnings")
}

func TestSummaryErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{"summary", filepath.Join(t.TempDir(), "missing")}, &out))
	assert.Equal(t, 1, run([]string{"summary", writeProgram(t, "G1 X1\nG999\n")}, &out))
	assert.Equal(t, 1, run([]string{"summary"}, &out))
}

func TestDumpYAML(t *testing.T) {
	path := writeProgram(t, program)

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"dump", path, "--from", "9", "--to", "10"}, &out))

	var recs []struct {
		Line  int    `yaml:"line"`
		Text  string `yaml:"text"`
		State struct {
			Position  []float64 `yaml:"position"`
			Extruding bool      `yaml:"extruding"`
			Layer     int       `yaml:"layer"`
			MoveType  string    `yaml:"move_type"`
			Phase     string    `yaml:"toolchange_phase"`
		} `yaml:"state"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &recs))
	require.Len(t, recs, 2)

	assert.Equal(t, 9, recs[0].Line)
	assert.Equal(t, "G1 X10 Y10 E1 F1500", recs[0].Text)
	assert.Equal(t, []float64{10, 10, 0.2}, recs[0].State.Position)
	assert.True(t, recs[0].State.Extruding)
	assert.Equal(t, 1, recs[0].State.Layer)
	assert.Equal(t, "Skirt/Brim", recs[0].State.MoveType)
	assert.Equal(t, "none", recs[0].State.Phase)
	assert.Equal(t, []float64{20, 10, 0.2}, recs[1].State.Position)
}

func TestDumpJSON(t *testing.T) {
	path := writeProgram(t, program)

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"dump", "--format", "json", path}, &out))

	var recs []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &recs))
	require.Len(t, recs, 16)
	state := recs[1]["state"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"layer_height": "0.2"}, state["variables"])

	assert.Equal(t, 1, run([]string{"dump", "--format", "xml", path}, &out))
}

func TestDumpConfigFormat(t *testing.T) {
	path := writeProgram(t, program)
	cfg := filepath.Join(t.TempDir(), "gcview.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("format = \"json\"\n"), 0644))

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"--config", cfg, "dump", path, "--to", "1"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "["))
}

func TestView(t *testing.T) {
	path := writeProgram(t, program)
	html := filepath.Join(t.TempDir(), "part.html")

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"view", path, "-o", html}, &out))

	data, err := os.ReadFile(html)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `document.title = "part.gcode"`)
	assert.Contains(t, s, "zdog")
	assert.Contains(t, s, "{number: 1, paths: [[{x: 0, y: 0, z: 0.2}, {x: 10, y: 10, z: 0.2}, "+
		"{x: 20, y: 10, z: 0.2}]]")
	assert.Contains(t, s, `extrudeColor: "green"`)

	require.Equal(t, 0, run([]string{"view", path, "-o", html, "--layer", "2"}, &out))
	data, err = os.ReadFile(html)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "{number: 1,")
	assert.Contains(t, string(data), "{number: 2,")

	assert.Equal(t, 1, run([]string{"view", path, "-o", html, "--layer", "7"}, &out))
	assert.Equal(t, 1, run([]string{"view", path}, &out))
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"version"}, &out))
	assert.Contains(t, out.String(), "gcview")
	assert.Contains(t, out.String(), "version=dev")
}
