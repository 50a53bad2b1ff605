package slicecube

import "fmt"

// Coord addresses one cell as (x, y, z).
// Every component lies in [0, extent) for the grid it indexes.
type Coord [3]int

// X returns the x component.
func (c Coord) X() int { return c[0] }

// Y returns the y component.
func (c Coord) Y() int { return c[1] }

// Z returns the z component.
func (c Coord) Z() int { return c[2] }

// Layer returns the index of the layer containing c along axis a.
func (c Coord) Layer(a Axis) int { return c[a] }

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c[0], c[1], c[2])
}

// Grid is an extent×extent×extent cube of cells.
// Cells are stored in a flat buffer indexed as
//
//	(x*extent + y)*extent + z
//
// The extent is fixed at construction and every coordinate is always populated.
type Grid[T any] struct {
	extent int
	cells  []T
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid[T any](extent int, fill T) (*Grid[T], error) {
	if extent <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExtent, extent)
	}
	g := &Grid[T]{
		extent: extent,
		cells:  make([]T, extent*extent*extent),
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g, nil
}

// NewGridFunc creates a grid whose cells are produced by init, called once
// per coordinate in linear order.
func NewGridFunc[T any](extent int, init func(Coord) T) (*Grid[T], error) {
	if extent <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExtent, extent)
	}
	g := &Grid[T]{
		extent: extent,
		cells:  make([]T, extent*extent*extent),
	}
	g.Each(func(c Coord, _ T) {
		g.cells[g.index(c)] = init(c)
	})
	return g, nil
}

// Extent returns the number of cells along each axis.
func (g *Grid[T]) Extent() int {
	return g.extent
}

// Len returns the total number of cells (extent cubed).
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Contains reports whether c lies inside the grid.
func (g *Grid[T]) Contains(c Coord) bool {
	for _, v := range c {
		if v < 0 || v >= g.extent {
			return false
		}
	}
	return true
}

// index maps a coordinate to its position in the flat buffer.
// Out-of-range coordinates are a programming error and panic.
func (g *Grid[T]) index(c Coord) int {
	if !g.Contains(c) {
		panic(fmt.Errorf("%w: %v in extent %d", ErrOutOfRange, c, g.extent))
	}
	return (c[0]*g.extent+c[1])*g.extent + c[2]
}

// Get returns the cell at c. It panics if c is out of range.
func (g *Grid[T]) Get(c Coord) T {
	return g.cells[g.index(c)]
}

// Set stores v at c. It panics if c is out of range.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.index(c)] = v
}

// Clone creates a deep copy of the grid.
// Cell values are copied by assignment.
func (g *Grid[T]) Clone() *Grid[T] {
	clone := &Grid[T]{
		extent: g.extent,
		cells:  make([]T, len(g.cells)),
	}
	copy(clone.cells, g.cells)
	return clone
}

// Each calls fn for every cell in linear order: x outermost, z innermost.
func (g *Grid[T]) Each(fn func(c Coord, v T)) {
	n := g.extent
	i := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				fn(Coord{x, y, z}, g.cells[i])
				i++
			}
		}
	}
}

// Cells returns a copy of every cell value in linear order.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Equal reports whether a and b have the same extent and identical cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.extent != b.extent {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
