package mesh

import (
	"fmt"

	"github.com/philipparndt/goscad/pkg/geometry"
)

// HeightFieldSpec describes a solid block whose top surface follows a
// matrix of heights. Cell [i][j] maps to the point
// (i*StepX, j*StepY, Heights[i][j]); the flat bottom sits at Base.
// StepX and StepY default to 1 when zero.
//
// Heights are not validated against Base: a height below the base
// produces a self-intersecting but still topologically closed mesh.
type HeightFieldSpec struct {
	Heights [][]float64
	Base    float64
	StepX   float64
	StepY   float64
}

// BuildHeightField tessellates the height matrix into a closed solid:
// a pair of triangles per cell on top (following the heights) and
// bottom (flat, wound downward), plus one quad per boundary edge
// joining the two rims. Matrices smaller than 2x2 fail with
// ErrDegenerateGrid.
func BuildHeightField(spec HeightFieldSpec) (*Mesh, error) {
	rows := len(spec.Heights)
	if rows < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows, got %d", ErrDegenerateGrid, rows)
	}
	cols := len(spec.Heights[0])
	if cols < 2 {
		return nil, fmt.Errorf("%w: need at least 2 columns, got %d", ErrDegenerateGrid, cols)
	}
	for i, row := range spec.Heights {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d heights, expected %d", ErrDegenerateGrid, i, len(row), cols)
		}
	}

	stepX, stepY := spec.StepX, spec.StepY
	if stepX == 0 {
		stepX = 1
	}
	if stepY == 0 {
		stepY = 1
	}

	// Top and bottom vertices interleave per grid point.
	vertices := make([]geometry.Vector3, 0, rows*cols*2)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, y := float64(i)*stepX, float64(j)*stepY
			vertices = append(vertices,
				geometry.NewVector3(x, y, spec.Heights[i][j]),
				geometry.NewVector3(x, y, spec.Base))
		}
	}
	top := func(i, j int) int { return (i*cols + j) * 2 }
	bottom := func(i, j int) int { return (i*cols+j)*2 + 1 }

	var faces [][]int

	// Top surface, wound upward; bottom, wound downward.
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a, b := top(i, j), top(i+1, j)
			c, d := top(i+1, j+1), top(i, j+1)
			faces = append(faces, []int{a, b, c}, []int{a, c, d})

			a, b = bottom(i, j), bottom(i+1, j)
			c, d = bottom(i+1, j+1), bottom(i, j+1)
			faces = append(faces, []int{a, d, c}, []int{a, c, b})
		}
	}

	// Rim quads along the four boundaries, wound outward.
	for i := 0; i < rows-1; i++ {
		m := cols - 1
		faces = append(faces,
			[]int{top(i, 0), bottom(i, 0), bottom(i+1, 0), top(i+1, 0)},
			[]int{top(i, m), top(i+1, m), bottom(i+1, m), bottom(i, m)})
	}
	for j := 0; j < cols-1; j++ {
		m := rows - 1
		faces = append(faces,
			[]int{top(0, j), top(0, j+1), bottom(0, j+1), bottom(0, j)},
			[]int{top(m, j), bottom(m, j), bottom(m, j+1), top(m, j+1)})
	}

	return New(vertices, faces)
}
