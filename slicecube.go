// Package slicecube models an N×N×N Rubik's-cube-like puzzle as a grid of
// cells and rotates selected slices of it in quarter-turns.
//
// # Features
//
//   - Generic grid over any cell type, with runtime extent
//   - Quarter-turn rotations about X, Y or Z restricted to a slice mask
//   - Works for odd and even extents
//   - Pure transforms: rotating returns a new grid
//
// # Quick Start
//
//	g, err := slicecube.NewGridFunc(3, func(c slicecube.Coord) string {
//	    return slicecube.Classify(c, 3).String()[:1]
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Turn the first X layer once, then the whole cube about Z backwards.
//	r1, _ := slicecube.NewRotation(slicecube.AxisX, 1, 3, 0)
//	out, err := slicecube.Rotate(g, []slicecube.Rotation{r1, slicecube.ZPrime})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(slicecube.FormatStrings(out))
//
// # Rotation Direction
//
// A positive turn about axis i maps the plane components (j, k), with
// j = (i+1)%3 and k = (i+2)%3, as (j, k) -> (-k, j) around the cube center.
// Negative turns go the other way. Four turns in one direction are the
// identity.
//
// # Engines
//
// Rotate uses a default Engine. Build your own to attach a logger or to
// reduce large turn counts:
//
//	eng := slicecube.NewEngine[string](
//	    slicecube.WithLogger(logger),
//	    slicecube.WithTurnReduction(true),
//	)
//	out, err := eng.Rotate(g, seq)
package slicecube
