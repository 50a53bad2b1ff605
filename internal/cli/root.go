// Package cli implements the command-line interface for slicecube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/config"
	"github.com/SeamusWaldron/slicecube/internal/render"
	"github.com/SeamusWaldron/slicecube/internal/scenario"
)

const version = "0.1.0"

// app holds state shared by every command of one invocation.
type app struct {
	// Global flags
	scenarioPath string
	verbose      bool
	noColor      bool

	cfg      config.Config
	logger   *slog.Logger
	renderer *render.Renderer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "slicecube",
		Short: "Slice rotations on N×N×N cubes",
		Long: `slicecube rotates layers of an N×N×N cube of cells about the X, Y and Z axes.

A scenario file gives the starting grid and named rotation sequences.
Without one, the built-in petal scenario is used.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.scenarioPath, "scenario", "", "Scenario YAML file (default: built-in demo, or $SLICECUBE_SCENARIO)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newDemoCmd(a),
		newRotateCmd(a),
		newPlayCmd(a),
		newVerifyCmd(a),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads environment defaults, then applies flag overrides.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).With(
		slog.String("run_id", uuid.New().String()),
		slog.String("command", cmd.Name()),
	)
	a.renderer = render.New(cfg.Color && !a.noColor)

	if a.scenarioPath == "" {
		a.scenarioPath = cfg.Scenario
	}
	return nil
}

// loadScenario returns the scenario named by --scenario, or the demo.
func (a *app) loadScenario() (*scenario.Scenario, error) {
	if a.scenarioPath == "" {
		return scenario.Demo(), nil
	}
	s, err := scenario.Load(a.scenarioPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded scenario",
		slog.String("path", a.scenarioPath),
		slog.String("name", s.Name),
		slog.Int("extent", s.Grid.Extent()),
		slog.Int("sequences", len(s.Sequences)),
	)
	return s, nil
}

// engine returns a rotation engine that logs through the command logger.
func (a *app) engine(opts ...slicecube.Option) *slicecube.Engine[string] {
	return slicecube.NewEngine[string](append([]slicecube.Option{slicecube.WithLogger(a.logger)}, opts...)...)
}
