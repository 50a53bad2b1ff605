package slicecube

import (
	"fmt"
	"strconv"
	"strings"
)

// Rotation turns the layers selected by Mask about Axis by Turns quarter-turns.
// The sign of Turns encodes direction; zero is a no-op.
type Rotation struct {
	Axis  Axis   // Which axis to rotate about
	Turns int    // Signed number of quarter-turns
	Mask  []bool // One flag per layer along Axis; true layers rotate
}

// NewRotation builds a rotation from the layers that take part in it.
// Layers outside [0, extent) yield ErrMalformedSliceMask.
func NewRotation(axis Axis, turns, extent int, layers ...int) (Rotation, error) {
	mask, err := LayerMask(extent, layers...)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{Axis: axis, Turns: turns, Mask: mask}, nil
}

// FullMask returns a mask selecting every layer.
func FullMask(extent int) []bool {
	mask := make([]bool, extent)
	for i := range mask {
		mask[i] = true
	}
	return mask
}

// LayerMask returns a mask selecting only the given layers.
func LayerMask(extent int, layers ...int) ([]bool, error) {
	if extent <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExtent, extent)
	}
	mask := make([]bool, extent)
	for _, l := range layers {
		if l < 0 || l >= extent {
			return nil, fmt.Errorf("%w: layer %d outside extent %d", ErrMalformedSliceMask, l, extent)
		}
		mask[l] = true
	}
	return mask, nil
}

// Validate checks the rotation against a grid of the given extent.
func (r Rotation) Validate(extent int) error {
	if !r.Axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(r.Axis))
	}
	if len(r.Mask) != extent {
		return fmt.Errorf("%w: %d flags for extent %d", ErrMalformedSliceMask, len(r.Mask), extent)
	}
	return nil
}

// Layers returns the indices of the layers that take part in the rotation.
func (r Rotation) Layers() []int {
	var layers []int
	for i, on := range r.Mask {
		if on {
			layers = append(layers, i)
		}
	}
	return layers
}

// Inverse returns the rotation that undoes r.
// The mask is shared with r.
func (r Rotation) Inverse() Rotation {
	inv := r
	inv.Turns = -r.Turns
	return inv
}

// String returns a compact form such as "X+1[0 2]".
func (r Rotation) String() string {
	parts := make([]string, 0, len(r.Mask))
	for _, l := range r.Layers() {
		parts = append(parts, strconv.Itoa(l))
	}
	return fmt.Sprintf("%s%+d[%s]", r.Axis, r.Turns, strings.Join(parts, " "))
}

// Invert returns the sequence that undoes seq: reversed, each rotation inverted.
func Invert(seq []Rotation) []Rotation {
	out := make([]Rotation, len(seq))
	for i, r := range seq {
		out[len(seq)-1-i] = r.Inverse()
	}
	return out
}

// FormatRotations formats a sequence as a space-separated list.
func FormatRotations(seq []Rotation) string {
	if len(seq) == 0 {
		return ""
	}

	parts := make([]string, len(seq))
	for i, r := range seq {
		parts[i] = r.String()
	}

	return strings.Join(parts, " ")
}
