package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/slicecube"
)

func TestDemoMatchesPetals(t *testing.T) {
	s := Demo()

	assert.Equal(t, "petals", s.Name)
	assert.True(t, slicecube.Equal(s.Grid, slicecube.Petals()))
	assert.Equal(t, []string{"x-then-z3", "z-reverse", "x-first-layer"}, s.Names())

	seq, err := s.Sequence("x-first-layer")
	require.NoError(t, err)
	require.Len(t, seq.Rotations, 1)
	assert.Equal(t, slicecube.AxisX, seq.Rotations[0].Axis)
	assert.Equal(t, []bool{true, false, false}, seq.Rotations[0].Mask)

	seq, err = s.Sequence("x-then-z3")
	require.NoError(t, err)
	require.Len(t, seq.Rotations, 2)
	assert.Equal(t, 3, seq.Rotations[1].Turns)
	assert.Equal(t, slicecube.FullMask(3), seq.Rotations[1].Mask)
}

func TestUnknownSequence(t *testing.T) {
	_, err := Demo().Sequence("nope")
	assert.ErrorIs(t, err, ErrUnknownSequence)
}

func TestParseLayers(t *testing.T) {
	s, err := Parse([]byte(`
extent: 4
fill: "."
sequences:
  - name: inner
    rotations:
      - {axis: Y, turns: -2, layers: [1, 2]}
`))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Grid.Extent())
	assert.Equal(t, ".", s.Grid.Get(slicecube.Coord{3, 3, 3}))

	seq, err := s.Sequence("inner")
	require.NoError(t, err)
	assert.Equal(t, slicecube.AxisY, seq.Rotations[0].Axis)
	assert.Equal(t, []bool{false, true, true, false}, seq.Rotations[0].Mask)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "extent: [\n"},
		{"zero extent", "extent: 0\n"},
		{"cell outside", "extent: 2\ncells:\n  - {at: [2, 0, 0], value: a}\n"},
		{"bad axis", "extent: 3\nsequences:\n  - name: s\n    rotations:\n      - {axis: w, turns: 1}\n"},
		{"missing axis", "extent: 3\nsequences:\n  - name: s\n    rotations:\n      - {turns: 1}\n"},
		{"short mask", "extent: 3\nsequences:\n  - name: s\n    rotations:\n      - {axis: x, turns: 1, mask: [true]}\n"},
		{"layer outside", "extent: 3\nsequences:\n  - name: s\n    rotations:\n      - {axis: x, turns: 1, layers: [3]}\n"},
		{"layers and mask", "extent: 2\nsequences:\n  - name: s\n    rotations:\n      - {axis: x, turns: 1, layers: [0], mask: [true, false]}\n"},
		{"unnamed", "extent: 3\nsequences:\n  - rotations: []\n"},
		{"duplicate", "extent: 3\nsequences:\n  - name: s\n  - name: s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestMalformedMaskKeepsCause(t *testing.T) {
	_, err := Parse([]byte("extent: 3\nsequences:\n  - name: s\n    rotations:\n      - {axis: z, turns: 1, mask: [true, true]}\n"))
	assert.ErrorIs(t, err, slicecube.ErrMalformedSliceMask)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: tiny\nextent: 1\nfill: o\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", s.Name)
	assert.Equal(t, "o", s.Grid.Get(slicecube.Coord{0, 0, 0}))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
