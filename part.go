package slicecube

// PartKind classifies a cell by its position on the cube.
type PartKind int

const (
	Core   PartKind = 0 // No face on the surface
	Center PartKind = 1 // On one face
	Edge   PartKind = 2 // On two faces
	Corner PartKind = 3 // On three faces
)

func (p PartKind) String() string {
	switch p {
	case Core:
		return "core"
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Classify returns the kind of piece at c in a cube of the given extent,
// counting how many of its components lie on the outer boundary.
// For extent 1 the single cell counts as a corner.
func Classify(c Coord, extent int) PartKind {
	n := 0
	for _, v := range c {
		if v == 0 || v == extent-1 {
			n++
		}
	}
	return PartKind(n)
}

// Petals returns the extent-3 demonstration grid: the letters a..l sit on the
// four cells around the middle of each X layer, in the order
// (y,z) = (0,1), (1,2), (2,1), (1,0). Every other cell is a space.
func Petals() *Grid[string] {
	g, _ := NewGrid(3, " ")
	letters := "abcdefghijkl"
	ring := []Coord{{0, 0, 1}, {0, 1, 2}, {0, 2, 1}, {0, 1, 0}}
	for x := 0; x < 3; x++ {
		for n, p := range ring {
			p[0] = x
			g.Set(p, string(letters[x*4+n]))
		}
	}
	return g
}
