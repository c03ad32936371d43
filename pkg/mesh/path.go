package mesh

import (
	"fmt"
	"math"

	"github.com/philipparndt/goscad/pkg/geometry"
)

// PathSpec describes a tube swept along a 3D polyline. The cross
// section is a regular FN-gon of the given radius, oriented by frames
// propagated along the path to avoid twist. Closed loops the path back
// onto its start, forming a toroid.
type PathSpec struct {
	Points []geometry.Vector3

	// Radius is the uniform tube radius. Radii, when non-nil,
	// overrides it with one radius per path point and must match the
	// path length exactly.
	Radius float64
	Radii  []float64

	// FN is the number of sides of the polygon approximating the
	// circular cross section; at least 3.
	FN int

	Closed bool

	// SeamOffset rotates the ring the closing band connects back to
	// on a closed path, compensating a cross-section frame that
	// returns from the loop rotated by whole ring steps.
	SeamOffset int

	// Uncapped leaves the two tube ends open (ignored for closed
	// paths, which have no ends).
	Uncapped bool
}

// frame is a local orthonormal basis at a path point: the tangent plus
// two side vectors spanning the cross-section plane.
type frame struct {
	tangent geometry.Vector3
	side1   geometry.Vector3
	side2   geometry.Vector3
}

// BuildPath sweeps the cross-section polygon along the path and
// stitches the resulting rings with the grid builder. Consecutive
// identical points fail with ErrDegenerateSegment; a per-point radius
// sequence of the wrong length fails with ErrRadiusLengthMismatch.
func BuildPath(spec PathSpec) (*Mesh, error) {
	n := len(spec.Points)
	if n < 2 {
		return nil, fmt.Errorf("%w: path needs at least 2 points, got %d", ErrDegenerateSegment, n)
	}
	if spec.FN < 3 {
		return nil, fmt.Errorf("%w: cross section needs at least 3 sides, got %d", ErrDegenerateGrid, spec.FN)
	}
	if spec.Radii != nil && len(spec.Radii) != n {
		return nil, fmt.Errorf("%w: %d radii for %d path points", ErrRadiusLengthMismatch, len(spec.Radii), n)
	}

	segments := n - 1
	if spec.Closed {
		segments = n
	}
	for s := 0; s < segments; s++ {
		if spec.Points[s] == spec.Points[(s+1)%n] {
			return nil, fmt.Errorf("%w: points %d and %d are identical", ErrDegenerateSegment, s, (s+1)%n)
		}
	}

	frames := propagateFrames(spec.Points, spec.Closed)

	radius := func(i int) float64 {
		if spec.Radii != nil {
			return spec.Radii[i]
		}
		return spec.Radius
	}

	rings := make([][]geometry.Vector3, n)
	for i, f := range frames {
		ring := make([]geometry.Vector3, spec.FN)
		for k := 0; k < spec.FN; k++ {
			theta := 2 * math.Pi * float64(k) / float64(spec.FN)
			offset := f.side1.Mul(math.Cos(theta)).Add(f.side2.Mul(math.Sin(theta)))
			ring[k] = spec.Points[i].Add(offset.Mul(radius(i)))
		}
		rings[i] = ring
	}

	return BuildGrid(GridSpec{
		Points:     rings,
		RowClosed:  true,
		ColClosed:  spec.Closed,
		SeamOffset: spec.SeamOffset,
		Uncapped:   spec.Uncapped,
	})
}

// propagateFrames computes a frame per path point as a fold over the
// point sequence: each side vector is the previous one projected onto
// the plane orthogonal to the new tangent and renormalized, so the
// cross section never twists between neighboring rings.
func propagateFrames(points []geometry.Vector3, closed bool) []frame {
	n := len(points)
	tangents := make([]geometry.Vector3, n)
	for i := range points {
		tangents[i] = tangentAt(points, i, closed)
	}

	frames := make([]frame, n)
	side := seedSide(tangents[0])
	for i, t := range tangents {
		if i > 0 {
			projected := side.Sub(t.Mul(side.Dot(t)))
			if projected.IsZero() {
				// Side vector parallel to the new tangent; reseed.
				projected = seedSide(t)
			}
			side = projected.Normalize()
		}
		frames[i] = frame{
			tangent: t,
			side1:   side,
			side2:   t.Cross(side).Normalize(),
		}
	}
	return frames
}

// tangentAt returns the unit tangent at point i: the segment direction
// at the path ends, the averaged direction of the adjacent segments in
// the interior. On a closed path every point is interior.
func tangentAt(points []geometry.Vector3, i int, closed bool) geometry.Vector3 {
	n := len(points)
	if !closed {
		if i == 0 {
			return points[1].Sub(points[0]).Normalize()
		}
		if i == n-1 {
			return points[n-1].Sub(points[n-2]).Normalize()
		}
	}
	in := points[i].Sub(points[(i-1+n)%n]).Normalize()
	out := points[(i+1)%n].Sub(points[i]).Normalize()
	avg := in.Add(out)
	if avg.IsZero() {
		// Near-180 degree reversal: the averaged directions cancel.
		// Fall back to the incoming segment direction.
		return in
	}
	return avg.Normalize()
}

// seedSide picks a vector orthogonal to the tangent for the first
// frame: tangent x Z, or the X axis when the tangent is vertical.
func seedSide(tangent geometry.Vector3) geometry.Vector3 {
	side := tangent.Cross(geometry.NewVector3(0, 0, 1))
	if side.IsZero() {
		return geometry.NewVector3(1, 0, 0)
	}
	return side.Normalize()
}
