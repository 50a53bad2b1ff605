package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/render"
	"github.com/SeamusWaldron/slicecube/internal/scenario"
)

type playOptions struct {
	sequence string
	interval time.Duration
}

func newPlayCmd(a *app) *cobra.Command {
	o := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate a sequence one rotation at a time",
		Long: `Play a sequence from the scenario, redrawing the grid after each rotation.
Playback advances on a timer and exits after the last rotation.

Usage:
  slicecube play                           # first sequence of the scenario
  slicecube play --sequence z-reverse
  slicecube play --interval 250ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd, o)
		},
	}

	cmd.Flags().StringVarP(&o.sequence, "sequence", "s", "", "Name of a sequence in the scenario (default: first)")
	cmd.Flags().DurationVarP(&o.interval, "interval", "i", 0, "Delay between rotations (default: $SLICECUBE_PLAY_INTERVAL)")

	return cmd
}

func (a *app) runPlay(cmd *cobra.Command, o *playOptions) error {
	s, err := a.loadScenario()
	if err != nil {
		return err
	}
	if len(s.Sequences) == 0 {
		return fmt.Errorf("scenario %s has no sequences", s.Name)
	}

	seq := s.Sequences[0]
	if o.sequence != "" {
		if seq, err = s.Sequence(o.sequence); err != nil {
			return err
		}
	}

	interval := o.interval
	if interval <= 0 {
		interval = a.cfg.PlayInterval
	}

	a.logger.Info("playing sequence",
		slog.String("sequence", seq.Name),
		slog.Int("rotations", len(seq.Rotations)),
		slog.Duration("interval", interval),
	)

	model := newPlayModel(a.engine(), s.Grid, seq, interval, a.renderer)
	p := tea.NewProgram(model, tea.WithInput(nil), tea.WithOutput(cmd.OutOrStdout()))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("playback error: %w", err)
	}
	if m, ok := final.(*playModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Play model
type playModel struct {
	engine   *slicecube.Engine[string]
	grid     *slicecube.Grid[string]
	seq      scenario.Sequence
	step     int
	interval time.Duration
	renderer *render.Renderer
	err      error
	done     bool
}

type playStepMsg time.Time

func newPlayModel(eng *slicecube.Engine[string], g *slicecube.Grid[string], seq scenario.Sequence, interval time.Duration, r *render.Renderer) *playModel {
	return &playModel{
		engine:   eng,
		grid:     g,
		seq:      seq,
		interval: interval,
		renderer: r,
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.tick()
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return playStepMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case playStepMsg:
		if m.step >= len(m.seq.Rotations) {
			m.done = true
			return m, tea.Quit
		}

		next, err := m.engine.Rotate(m.grid, m.seq.Rotations[m.step:m.step+1])
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.grid = next
		m.step++
		return m, m.tick()
	}

	return m, nil
}

func (m *playModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderer.Title("Sequence " + m.seq.Name))
	b.WriteString("\n")

	status := fmt.Sprintf("Step %d/%d", m.step, len(m.seq.Rotations))
	if m.step > 0 {
		status += "  " + m.seq.Rotations[m.step-1].String()
	}
	if m.done {
		status += "  [DONE]"
	}
	b.WriteString(m.renderer.Status(status))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Grid(m.grid))

	if m.err != nil {
		b.WriteString(m.renderer.Error(m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}
