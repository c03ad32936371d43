package mesh

import "errors"

var (
	// ErrInvalidTopology is returned when a face references an
	// out-of-range vertex or has fewer than 3 distinct vertices
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrDegenerateGrid is returned when a grid is too small to form
	// any quadrilateral
	ErrDegenerateGrid = errors.New("degenerate grid")

	// ErrDegenerateSegment is returned when two consecutive path
	// points are identical
	ErrDegenerateSegment = errors.New("degenerate segment")

	// ErrRadiusLengthMismatch is returned when a per-point radius
	// sequence does not match the path length
	ErrRadiusLengthMismatch = errors.New("radius length mismatch")
)
