package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the scenario grid and the result of each of its sequences",
		Long: `Print the starting grid, then apply every sequence of the scenario to it
and print each result. Each sequence starts from the original grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd)
		},
	}
}

func (a *app) runDemo(cmd *cobra.Command) error {
	s, err := a.loadScenario()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	eng := a.engine()

	fmt.Fprintln(out, a.renderer.Title(fmt.Sprintf("Scenario %s (extent %d)", s.Name, s.Grid.Extent())))
	fmt.Fprint(out, a.renderer.Grid(s.Grid))

	for _, seq := range s.Sequences {
		result, err := eng.Rotate(s.Grid, seq.Rotations)
		if err != nil {
			return fmt.Errorf("sequence %s: %w", seq.Name, err)
		}
		a.logger.Info("applied sequence",
			slog.String("sequence", seq.Name),
			slog.Int("rotations", len(seq.Rotations)),
		)

		fmt.Fprintln(out, a.renderer.Title(seq.Name)+" "+a.renderer.Status(slicecube.FormatRotations(seq.Rotations)))
		fmt.Fprint(out, a.renderer.Grid(result))
	}
	return nil
}
