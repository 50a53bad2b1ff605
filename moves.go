package slicecube

// Whole-cube rotations for the standard extent-3 cube.
// Every layer takes part, so these reorient the cube without scrambling it.
//
// Example:
//
//	g2, err := slicecube.Rotate(g, []slicecube.Rotation{slicecube.X, slicecube.ZPrime})
var (
	// Rotations about X
	X      = Rotation{Axis: AxisX, Turns: 1, Mask: FullMask(3)}  // X quarter-turn
	XPrime = Rotation{Axis: AxisX, Turns: -1, Mask: FullMask(3)} // X reverse quarter-turn
	X2     = Rotation{Axis: AxisX, Turns: 2, Mask: FullMask(3)}  // X half-turn

	// Rotations about Y
	Y      = Rotation{Axis: AxisY, Turns: 1, Mask: FullMask(3)}
	YPrime = Rotation{Axis: AxisY, Turns: -1, Mask: FullMask(3)}
	Y2     = Rotation{Axis: AxisY, Turns: 2, Mask: FullMask(3)}

	// Rotations about Z
	Z      = Rotation{Axis: AxisZ, Turns: 1, Mask: FullMask(3)}
	ZPrime = Rotation{Axis: AxisZ, Turns: -1, Mask: FullMask(3)}
	Z2     = Rotation{Axis: AxisZ, Turns: 2, Mask: FullMask(3)}
)

// WholeCube returns a rotation of every layer about axis for any extent.
func WholeCube(axis Axis, turns, extent int) Rotation {
	return Rotation{Axis: axis, Turns: turns, Mask: FullMask(extent)}
}
