// Package scenario loads starting grids and named rotation sequences from YAML.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/slicecube"
)

//go:embed demo.yaml
var demoYAML []byte

// Sentinel errors for scenario loading.
var (
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
	ErrUnknownSequence = errors.New("scenario: unknown sequence")
)

// File is the YAML layout of a scenario.
type File struct {
	Name      string         `yaml:"name"`
	Extent    int            `yaml:"extent"`
	Fill      string         `yaml:"fill"`
	Cells     []CellFile     `yaml:"cells"`
	Sequences []SequenceFile `yaml:"sequences"`
}

// CellFile places one value in the starting grid.
type CellFile struct {
	At    [3]int `yaml:"at"`
	Value string `yaml:"value"`
}

// SequenceFile is a named list of rotation steps.
type SequenceFile struct {
	Name      string     `yaml:"name"`
	Rotations []StepFile `yaml:"rotations"`
}

// StepFile describes one rotation. Layers and Mask are alternatives;
// with neither, every layer turns.
type StepFile struct {
	Axis   *slicecube.Axis `yaml:"axis"`
	Turns  int             `yaml:"turns"`
	Layers []int           `yaml:"layers,omitempty"`
	Mask   []bool          `yaml:"mask,omitempty"`
}

// Sequence is a validated, named rotation sequence.
type Sequence struct {
	Name      string
	Rotations []slicecube.Rotation
}

// Scenario is a starting grid plus the sequences to run on it.
type Scenario struct {
	Name      string
	Grid      *slicecube.Grid[string]
	Sequences []Sequence
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return f.Build()
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Demo returns the built-in petal scenario.
func Demo() *Scenario {
	s, err := Parse(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded demo scenario: %v", err))
	}
	return s
}

// Build converts the decoded file into a Scenario.
func (f File) Build() (*Scenario, error) {
	g, err := slicecube.NewGrid(f.Extent, f.Fill)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	for n, c := range f.Cells {
		at := slicecube.Coord(c.At)
		if !g.Contains(at) {
			return nil, fmt.Errorf("%w: cell %d at %v outside extent %d", ErrInvalidScenario, n, at, f.Extent)
		}
		g.Set(at, c.Value)
	}

	s := &Scenario{Name: f.Name, Grid: g}
	seen := make(map[string]bool)
	for _, sf := range f.Sequences {
		if sf.Name == "" {
			return nil, fmt.Errorf("%w: sequence without a name", ErrInvalidScenario)
		}
		if seen[sf.Name] {
			return nil, fmt.Errorf("%w: duplicate sequence %q", ErrInvalidScenario, sf.Name)
		}
		seen[sf.Name] = true

		seq := Sequence{Name: sf.Name}
		for n, step := range sf.Rotations {
			r, err := step.rotation(f.Extent)
			if err != nil {
				return nil, fmt.Errorf("%w: sequence %q step %d: %w", ErrInvalidScenario, sf.Name, n, err)
			}
			seq.Rotations = append(seq.Rotations, r)
		}
		s.Sequences = append(s.Sequences, seq)
	}

	return s, nil
}

func (st StepFile) rotation(extent int) (slicecube.Rotation, error) {
	if st.Axis == nil {
		return slicecube.Rotation{}, errors.New("missing axis")
	}
	r := slicecube.Rotation{Axis: *st.Axis, Turns: st.Turns}
	switch {
	case st.Layers != nil && st.Mask != nil:
		return r, errors.New("layers and mask are mutually exclusive")
	case st.Mask != nil:
		r.Mask = st.Mask
	case st.Layers != nil:
		mask, err := slicecube.LayerMask(extent, st.Layers...)
		if err != nil {
			return r, err
		}
		r.Mask = mask
	default:
		r.Mask = slicecube.FullMask(extent)
	}
	if err := r.Validate(extent); err != nil {
		return r, err
	}
	return r, nil
}

// Sequence returns the sequence with the given name.
func (s *Scenario) Sequence(name string) (Sequence, error) {
	for _, seq := range s.Sequences {
		if seq.Name == name {
			return seq, nil
		}
	}
	return Sequence{}, fmt.Errorf("%w: %q", ErrUnknownSequence, name)
}

// Names lists the sequence names in file order.
func (s *Scenario) Names() []string {
	names := make([]string, len(s.Sequences))
	for i, seq := range s.Sequences {
		names[i] = seq.Name
	}
	return names
}
