package mesh

import (
	"fmt"

	"github.com/philipparndt/goscad/pkg/geometry"
)

// GridSpec describes a 2D grid of points to be stitched into a surface.
// Each row is a cross-section loop when RowClosed is set; the sequence
// of rows wraps back onto itself when ColClosed is set. Both set makes
// a torus, RowClosed alone a tube, neither an open patch.
type GridSpec struct {
	Points    [][]geometry.Vector3
	RowClosed bool
	ColClosed bool

	// SeamOffset rotates which columns the closing band connects to
	// when ColClosed is set: the last row's column j joins row 0's
	// column j+SeamOffset. Needed when a swept cross section arrives
	// back at the seam rotated after a full loop.
	SeamOffset int

	// Uncapped leaves tube ends open. The resulting mesh is
	// non-manifold by design; default is capped.
	Uncapped bool
}

// BuildGrid stitches a grid of points into a mesh: one quadrilateral
// per cell, wrapping in either dimension per the closure flags, with
// N-gon caps on open tube ends. Winding is oriented so face normals
// point away from the grid centroid. Grids smaller than 2x2 fail with
// ErrDegenerateGrid, as does a closed dimension shorter than 3.
func BuildGrid(spec GridSpec) (*Mesh, error) {
	rows := len(spec.Points)
	if rows < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows, got %d", ErrDegenerateGrid, rows)
	}
	cols := len(spec.Points[0])
	if cols < 2 {
		return nil, fmt.Errorf("%w: need at least 2 columns, got %d", ErrDegenerateGrid, cols)
	}
	for i, row := range spec.Points {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d points, expected %d", ErrDegenerateGrid, i, len(row), cols)
		}
	}

	// A wrapping dimension of length 2 folds the band back onto the
	// same vertices, so a loop needs at least 3 points.
	if spec.RowClosed && cols < 3 {
		return nil, fmt.Errorf("%w: a closed row needs at least 3 columns, got %d", ErrDegenerateGrid, cols)
	}
	if spec.ColClosed && rows < 3 {
		return nil, fmt.Errorf("%w: a closed column needs at least 3 rows, got %d", ErrDegenerateGrid, rows)
	}

	vertices := make([]geometry.Vector3, 0, rows*cols)
	for _, row := range spec.Points {
		vertices = append(vertices, row...)
	}
	idx := func(i, j int) int {
		if i >= rows {
			i -= rows
			j += spec.SeamOffset
		}
		return i*cols + ((j%cols)+cols)%cols
	}

	iCells := rows - 1
	if spec.ColClosed {
		iCells = rows
	}
	jCells := cols - 1
	if spec.RowClosed {
		jCells = cols
	}

	var faces [][]int
	for i := 0; i < iCells; i++ {
		for j := 0; j < jCells; j++ {
			faces = append(faces, []int{
				idx(i, j),
				idx(i+1, j),
				idx(i+1, j+1),
				idx(i, j+1),
			})
		}
	}

	if !spec.Uncapped {
		faces = append(faces, capFaces(spec, rows, cols, idx)...)
	}

	orientOutward(vertices, faces)
	return New(vertices, faces)
}

// capFaces emits one N-gon per open tube end. A cap exists only where
// the open dimension's boundary is a loop, i.e. the other dimension is
// closed; a fully open patch has no loop boundary to cap.
func capFaces(spec GridSpec, rows, cols int, idx func(i, j int) int) [][]int {
	var faces [][]int
	if !spec.ColClosed && spec.RowClosed {
		// The cell quads traverse row 0 in decreasing column order
		// and the last row in increasing order; the caps run the
		// opposite way so every rim edge gets both directions.
		start := make([]int, cols)
		end := make([]int, cols)
		for j := 0; j < cols; j++ {
			start[j] = idx(0, j)
			end[j] = idx(rows-1, cols-1-j)
		}
		faces = append(faces, start, end)
	}
	if !spec.RowClosed && spec.ColClosed {
		first := make([]int, rows)
		last := make([]int, rows)
		for i := 0; i < rows; i++ {
			first[i] = idx(rows-1-i, 0)
			last[i] = idx(i, cols-1)
		}
		faces = append(faces, first, last)
	}
	return faces
}

// orientOutward flips the winding of every face at once if the faces
// point toward the grid centroid on balance. A single global flip
// preserves the shared-edge pairing between quads and caps.
func orientOutward(vertices []geometry.Vector3, faces [][]int) {
	if len(vertices) == 0 {
		return
	}
	var centroid geometry.Vector3
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1.0 / float64(len(vertices)))

	vote := 0.0
	for _, face := range faces {
		a, b, c := vertices[face[0]], vertices[face[1]], vertices[face[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		var center geometry.Vector3
		for _, vi := range face {
			center = center.Add(vertices[vi])
		}
		center = center.Mul(1.0 / float64(len(face)))
		vote += normal.Dot(center.Sub(centroid))
	}
	if vote < 0 {
		for _, face := range faces {
			for l, r := 0, len(face)-1; l < r; l, r = l+1, r-1 {
				face[l], face[r] = face[r], face[l]
			}
		}
	}
}
