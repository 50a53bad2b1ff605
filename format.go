package slicecube

import "strings"

// Format renders g as text, one line per y. Each line holds, for every x,
// the run of cells along z followed by a '|':
//
//	| a | e | i |
//	|d b|h f|l j|
//	| c | g | k |
//
// The output ends with a blank line. cell converts a value to its text.
func Format[T any](g *Grid[T], cell func(T) string) string {
	var b strings.Builder
	n := g.extent
	for y := 0; y < n; y++ {
		b.WriteString("|")
		for x := 0; x < n; x++ {
			for z := 0; z < n; z++ {
				b.WriteString(cell(g.Get(Coord{x, y, z})))
			}
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatStrings renders a grid of strings with Format.
func FormatStrings(g *Grid[string]) string {
	return Format(g, func(s string) string { return s })
}
