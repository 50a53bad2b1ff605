package slicecube

import (
	"context"
	"fmt"
	"log/slog"
)

// RotateVector returns the image of c after turns quarter-turns about axis,
// inside a grid of the given extent.
//
// The coordinate is re-centered in doubled space, v = 2c - (extent-1), so the
// cube's center sits at the origin for odd and even extents alike. Each step
// applies the single quarter-turn matrix in the plane (j, k) following the
// axis; |turns| steps are applied literally, in the direction of its sign.
func RotateVector(c Coord, axis Axis, turns, extent int) Coord {
	if turns == 0 {
		return c
	}
	return stepVector(c, axis, abs(turns), sign(turns), extent)
}

func stepVector(c Coord, axis Axis, steps, dir, extent int) Coord {
	i := int(axis)
	j, k := axis.plane()
	off := extent - 1

	var v [3]int
	for n := range c {
		v[n] = 2*c[n] - off
	}

	for s := 0; s < steps; s++ {
		var next [3]int
		next[i] = v[i]
		next[k] = v[j] * dir
		next[j] = -v[k] * dir
		v = next
	}

	var out Coord
	for n := range v {
		out[n] = (v[n] + off) / 2
	}
	return out
}

// Engine applies rotation sequences to grids of T.
// An Engine holds only configuration and is safe for concurrent use.
type Engine[T any] struct {
	cfg *config
}

// NewEngine creates an engine with the given options.
func NewEngine[T any](opts ...Option) *Engine[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine[T]{cfg: cfg}
}

// Rotate applies seq to g in order and returns the resulting grid.
// g is never modified. Every rotation is validated before any cell moves;
// on error the returned grid is nil.
func (e *Engine[T]) Rotate(g *Grid[T], seq []Rotation) (*Grid[T], error) {
	for n, r := range seq {
		if err := r.Validate(g.extent); err != nil {
			return nil, fmt.Errorf("rotation %d: %w", n, err)
		}
	}

	result := g.Clone()
	for _, r := range seq {
		e.apply(result, r)
	}
	return result, nil
}

// apply scatters every cell of result to its destination under r.
// Reads come from a snapshot so no cell is read after being overwritten.
func (e *Engine[T]) apply(result *Grid[T], r Rotation) {
	steps := abs(r.Turns)
	if e.cfg.turnReduction {
		steps %= 4
	}
	dir := sign(r.Turns)

	if e.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.cfg.logger.Debug("applying rotation",
			slog.String("axis", r.Axis.String()),
			slog.Int("turns", r.Turns),
			slog.Int("steps", steps),
			slog.Any("layers", r.Layers()),
		)
	}

	if steps == 0 {
		return
	}

	temp := result.Clone()
	temp.Each(func(c Coord, v T) {
		d := c
		if r.Mask[c.Layer(r.Axis)] {
			d = stepVector(c, r.Axis, steps, dir, result.extent)
		}
		result.cells[result.index(d)] = v
	})
}

// Rotate applies seq to g with a default engine.
func Rotate[T any](g *Grid[T], seq []Rotation) (*Grid[T], error) {
	return NewEngine[T]().Rotate(g, seq)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
