package slicecube

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numbered returns a grid whose cells hold their own linear index.
func numbered(t *testing.T, extent int) *Grid[int] {
	t.Helper()
	n := 0
	g, err := NewGridFunc(extent, func(Coord) int {
		n++
		return n - 1
	})
	require.NoError(t, err)
	return g
}

// allMasks enumerates every slice mask for the extent.
func allMasks(extent int) [][]bool {
	var masks [][]bool
	for bits := 0; bits < 1<<extent; bits++ {
		mask := make([]bool, extent)
		for l := range mask {
			mask[l] = bits&(1<<l) != 0
		}
		masks = append(masks, mask)
	}
	return masks
}

func TestRotationProperties(t *testing.T) {
	t.Parallel()

	for extent := 1; extent <= 4; extent++ {
		extent := extent
		t.Run(fmt.Sprintf("extent=%d", extent), func(t *testing.T) {
			t.Parallel()
			g := numbered(t, extent)

			for _, a := range Axes {
				for _, mask := range allMasks(extent) {
					for turns := -5; turns <= 5; turns++ {
						r := Rotation{Axis: a, Turns: turns, Mask: mask}
						name := r.String()

						out, err := Rotate(g, []Rotation{r})
						require.NoError(t, err, name)

						if turns == 0 {
							assert.Empty(t, cmp.Diff(g.Cells(), out.Cells()), "identity %s", name)
						}

						back, err := Rotate(out, []Rotation{r.Inverse()})
						require.NoError(t, err, name)
						assert.Empty(t, cmp.Diff(g.Cells(), back.Cells()), "inverse %s", name)

						cells := out.Cells()
						sort.Ints(cells)
						assert.Equal(t, g.Cells(), cells, "population %s", name)

						out.Each(func(c Coord, v int) {
							src := coordOf(v, extent)
							if c.Layer(a) != src.Layer(a) {
								t.Errorf("%s: cell from %v landed in another layer at %v", name, src, c)
							}
							if !mask[c.Layer(a)] && c != src {
								t.Errorf("%s: masked-off cell moved from %v to %v", name, src, c)
							}
						})
					}
				}
			}
		})
	}
}

func TestOrderFourEveryMask(t *testing.T) {
	t.Parallel()

	for extent := 1; extent <= 4; extent++ {
		g := numbered(t, extent)
		for _, a := range Axes {
			for _, mask := range allMasks(extent) {
				r := Rotation{Axis: a, Turns: 1, Mask: mask}
				out, err := Rotate(g, []Rotation{r, r, r, r})
				require.NoError(t, err)
				if diff := cmp.Diff(g.Cells(), out.Cells()); diff != "" {
					t.Errorf("extent %d %s x 4 mismatch (-want +got):\n%s", extent, r, diff)
				}
			}
		}
	}
}

func TestEvenExtentThreeTurnsEqualsReverse(t *testing.T) {
	t.Parallel()

	g := numbered(t, 4)
	mask, err := LayerMask(4, 1, 3)
	require.NoError(t, err)

	three, err := Rotate(g, []Rotation{{Axis: AxisY, Turns: 3, Mask: mask}})
	require.NoError(t, err)
	back, err := Rotate(g, []Rotation{{Axis: AxisY, Turns: -1, Mask: mask}})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(three.Cells(), back.Cells()))
}

func TestLayerMask(t *testing.T) {
	t.Parallel()

	mask, err := LayerMask(4, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true}, mask)

	_, err = LayerMask(3, 3)
	assert.ErrorIs(t, err, ErrMalformedSliceMask)

	_, err = LayerMask(0)
	assert.ErrorIs(t, err, ErrInvalidExtent)

	r := Rotation{Axis: AxisZ, Turns: 1, Mask: mask}
	assert.Equal(t, []int{0, 3}, r.Layers())
	assert.NoError(t, r.Validate(4))
	assert.ErrorIs(t, r.Validate(3), ErrMalformedSliceMask)
}

// coordOf inverts the linear index used by numbered.
func coordOf(i, extent int) Coord {
	return Coord{i / (extent * extent), (i / extent) % extent, i % extent}
}
