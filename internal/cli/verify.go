package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check rotation invariants on the scenario grid",
		Long: `For every axis, for the full mask and for each single layer, check that:

  - zero turns leave the grid unchanged
  - four quarter-turns return to the start
  - a rotation followed by its inverse returns to the start
  - rotating never creates, drops or duplicates a cell value
  - layers whose mask flag is off do not change`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd)
		},
	}
}

// check is one named invariant over a single rotation.
type check struct {
	name string
	fn   func(eng *slicecube.Engine[string], g *slicecube.Grid[string], r slicecube.Rotation) (bool, error)
}

var checks = []check{
	{"identity", func(eng *slicecube.Engine[string], g *slicecube.Grid[string], r slicecube.Rotation) (bool, error) {
		r.Turns = 0
		out, err := eng.Rotate(g, []slicecube.Rotation{r})
		if err != nil {
			return false, err
		}
		return slicecube.Equal(out, g), nil
	}},
	{"order-4", func(eng *slicecube.Engine[string], g *slicecube.Grid[string], r slicecube.Rotation) (bool, error) {
		r.Turns = 1
		out, err := eng.Rotate(g, []slicecube.Rotation{r, r, r, r})
		if err != nil {
			return false, err
		}
		return slicecube.Equal(out, g), nil
	}},
	{"inverse", func(eng *slicecube.Engine[string], g *slicecube.Grid[string], r slicecube.Rotation) (bool, error) {
		out, err := eng.Rotate(g, []slicecube.Rotation{r, r.Inverse()})
		if err != nil {
			return false, err
		}
		return slicecube.Equal(out, g), nil
	}},
	{"population", func(eng *slicecube.Engine[string], g *slicecube.Grid[string], r slicecube.Rotation) (bool, error) {
		out, err := eng.Rotate(g, []slicecube.Rotation{r})
		if err != nil {
			return false, err
		}
		counts := make(map[string]int)
		for _, v := range g.Cells() {
			counts[v]++
		}
		for _, v := range out.Cells() {
			counts[v]--
		}
		for _, n := range counts {
			if n != 0 {
				return false, nil
			}
		}
		return true, nil
	}},
	{"locality", func(eng *slicecube.Engine[string], g *slicecube.Grid[string], r slicecube.Rotation) (bool, error) {
		out, err := eng.Rotate(g, []slicecube.Rotation{r})
		if err != nil {
			return false, err
		}
		ok := true
		g.Each(func(c slicecube.Coord, v string) {
			if !r.Mask[c.Layer(r.Axis)] && out.Get(c) != v {
				ok = false
			}
		})
		return ok, nil
	}},
}

// verifyRotations lists the rotations checked for a grid: per axis, the full
// mask and each single layer, at one and two quarter-turns.
func verifyRotations(extent int) []slicecube.Rotation {
	var rs []slicecube.Rotation
	for _, axis := range slicecube.Axes {
		for _, turns := range []int{1, 2} {
			rs = append(rs, slicecube.WholeCube(axis, turns, extent))
			for l := 0; l < extent; l++ {
				r, _ := slicecube.NewRotation(axis, turns, extent, l)
				rs = append(rs, r)
			}
		}
	}
	return rs
}

func (a *app) runVerify(cmd *cobra.Command) error {
	s, err := a.loadScenario()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	eng := a.engine()

	failed := 0
	total := 0
	for _, r := range verifyRotations(s.Grid.Extent()) {
		for _, c := range checks {
			total++
			ok, err := c.fn(eng, s.Grid, r)
			if err != nil {
				return fmt.Errorf("%s %s: %w", c.name, r, err)
			}
			if !ok {
				failed++
				fmt.Fprintln(out, a.renderer.Error(fmt.Sprintf("FAIL %-10s %s", c.name, r)))
				a.logger.Warn("check failed", slog.String("check", c.name), slog.String("rotation", r.String()))
			}
		}
	}

	fmt.Fprintf(out, "%s %d/%d checks passed\n", a.renderer.Title(s.Name), total-failed, total)
	if failed > 0 {
		return fmt.Errorf("verification failed: %d of %d checks", failed, total)
	}
	return nil
}
