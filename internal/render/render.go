// Package render draws slicecube grids for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/slicecube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// Cell colors by piece kind
	partStyles = map[slicecube.PartKind]lipgloss.Style{
		slicecube.Core:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		slicecube.Center: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		slicecube.Edge:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		slicecube.Corner: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)

// Renderer formats grids and labels, with or without terminal styling.
type Renderer struct {
	color bool
}

// New creates a renderer. With color off the output is plain text.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// Grid renders g in the slicecube.Format layout, coloring each cell by the
// kind of piece at its position.
func (r *Renderer) Grid(g *slicecube.Grid[string]) string {
	if !r.color {
		return slicecube.FormatStrings(g)
	}

	var b strings.Builder
	n := g.Extent()
	bar := borderStyle.Render("|")
	for y := 0; y < n; y++ {
		b.WriteString(bar)
		for x := 0; x < n; x++ {
			for z := 0; z < n; z++ {
				c := slicecube.Coord{x, y, z}
				b.WriteString(partStyles[slicecube.Classify(c, n)].Render(g.Get(c)))
			}
			b.WriteString(bar)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Title renders a heading.
func (r *Renderer) Title(s string) string {
	return r.style(titleStyle, s)
}

// Status renders secondary text.
func (r *Renderer) Status(s string) string {
	return r.style(statusStyle, s)
}

// Error renders a failure message.
func (r *Renderer) Error(s string) string {
	return r.style(errorStyle, s)
}

func (r *Renderer) style(st lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return st.Render(s)
}
