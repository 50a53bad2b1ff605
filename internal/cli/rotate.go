package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/scenario"
)

type rotateOptions struct {
	sequence string
	axis     string
	turns    int
	layers   []int
	reduce   bool
}

func newRotateCmd(a *app) *cobra.Command {
	o := &rotateOptions{}

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Apply a rotation or a named sequence to the scenario grid",
		Long: `Apply either a named sequence from the scenario, or a single rotation
described by flags, and print the grid before and after.

Usage:
  slicecube rotate --sequence x-then-z3
  slicecube rotate --axis x --turns 1 --layers 0
  slicecube rotate --axis z --turns -1          # every layer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRotate(cmd, o)
		},
	}

	cmd.Flags().StringVarP(&o.sequence, "sequence", "s", "", "Name of a sequence in the scenario")
	cmd.Flags().StringVarP(&o.axis, "axis", "a", "", "Rotation axis: x, y or z")
	cmd.Flags().IntVarP(&o.turns, "turns", "n", 1, "Signed number of quarter-turns")
	cmd.Flags().IntSliceVarP(&o.layers, "layers", "l", nil, "Layers to turn (default: all)")
	cmd.Flags().BoolVar(&o.reduce, "reduce", false, "Reduce turn counts modulo 4")

	return cmd
}

func (a *app) runRotate(cmd *cobra.Command, o *rotateOptions) error {
	s, err := a.loadScenario()
	if err != nil {
		return err
	}

	seq, err := o.resolve(s)
	if err != nil {
		return err
	}

	result, err := a.engine(slicecube.WithTurnReduction(o.reduce)).Rotate(s.Grid, seq.Rotations)
	if err != nil {
		return err
	}
	a.logger.Info("rotated",
		slog.String("sequence", seq.Name),
		slog.String("rotations", slicecube.FormatRotations(seq.Rotations)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.renderer.Title("Before"))
	fmt.Fprint(out, a.renderer.Grid(s.Grid))
	fmt.Fprintln(out, a.renderer.Title("After")+" "+a.renderer.Status(slicecube.FormatRotations(seq.Rotations)))
	fmt.Fprint(out, a.renderer.Grid(result))
	return nil
}

// resolve picks the named sequence or builds one from the rotation flags.
func (o *rotateOptions) resolve(s *scenario.Scenario) (scenario.Sequence, error) {
	switch {
	case o.sequence != "" && o.axis != "":
		return scenario.Sequence{}, errors.New("--sequence and --axis are mutually exclusive")
	case o.sequence != "":
		return s.Sequence(o.sequence)
	case o.axis != "":
		axis, err := slicecube.ParseAxis(o.axis)
		if err != nil {
			return scenario.Sequence{}, err
		}
		extent := s.Grid.Extent()
		r := slicecube.WholeCube(axis, o.turns, extent)
		if len(o.layers) > 0 {
			if r, err = slicecube.NewRotation(axis, o.turns, extent, o.layers...); err != nil {
				return scenario.Sequence{}, err
			}
		}
		return scenario.Sequence{Name: "flags", Rotations: []slicecube.Rotation{r}}, nil
	default:
		return scenario.Sequence{}, errors.New("specify --sequence or --axis")
	}
}
