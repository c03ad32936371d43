package geometry

import (
	"fmt"
	"math"
)

// Vector represents a point or vector with an arbitrary number of
// dimensions. The dimension is fixed per instance; mixed-dimension
// arithmetic fails with ErrDimensionMismatch. Values are immutable:
// every operation returns a fresh vector.
type Vector struct {
	c []float64
}

// NewVector creates a vector from its coordinates
func NewVector(coords ...float64) Vector {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Vector{c: c}
}

// Dim returns the number of dimensions
func (v Vector) Dim() int {
	return len(v.c)
}

// Coord returns the i-th coordinate
func (v Vector) Coord(i int) float64 {
	return v.c[i]
}

// Coords returns a copy of all coordinates
func (v Vector) Coords() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)
	return out
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v.c) != len(other.c) {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.c), len(other.c))
	}
	c := make([]float64, len(v.c))
	for i := range v.c {
		c[i] = v.c[i] + other.c[i]
	}
	return Vector{c: c}, nil
}

// Sub returns the difference between two vectors
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v.c) != len(other.c) {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.c), len(other.c))
	}
	c := make([]float64, len(v.c))
	for i := range v.c {
		c[i] = v.c[i] - other.c[i]
	}
	return Vector{c: c}, nil
}

// Scale multiplies the vector by a scalar
func (v Vector) Scale(k float64) Vector {
	c := make([]float64, len(v.c))
	for i := range v.c {
		c[i] = v.c[i] * k
	}
	return Vector{c: c}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v.c) != len(other.c) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.c), len(other.c))
	}
	sum := 0.0
	for i := range v.c {
		sum += v.c[i] * other.c[i]
	}
	return sum, nil
}

// Cross returns the cross product. Both vectors must be 3-dimensional.
func (v Vector) Cross(other Vector) (Vector, error) {
	if len(v.c) != 3 || len(other.c) != 3 {
		return Vector{}, fmt.Errorf("%w: cross product requires 3 dimensions", ErrDimensionMismatch)
	}
	return NewVector(
		v.c[1]*other.c[2]-v.c[2]*other.c[1],
		v.c[2]*other.c[0]-v.c[0]*other.c[2],
		v.c[0]*other.c[1]-v.c[1]*other.c[0],
	), nil
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	sum := 0.0
	for _, c := range v.c {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// IsZero reports whether all coordinates are exactly zero
func (v Vector) IsZero() bool {
	for _, c := range v.c {
		if c != 0 {
			return false
		}
	}
	return true
}

// Unit returns a unit vector in the same direction, or ErrZeroVector
// if the vector has zero length
func (v Vector) Unit() (Vector, error) {
	length := v.Length()
	if length == 0 {
		return Vector{}, ErrZeroVector
	}
	return v.Scale(1.0 / length), nil
}

// Angle returns the angle between two vectors in radians
func (v Vector) Angle(other Vector) (float64, error) {
	dot, err := v.Dot(other)
	if err != nil {
		return 0, err
	}
	lv, lo := v.Length(), other.Length()
	if lv == 0 || lo == 0 {
		return 0, ErrZeroVector
	}
	cos := dot / (lv * lo)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), nil
}

// AsVector3 converts the vector to a Vector3.
// Fails with ErrDimensionMismatch unless the vector is 3-dimensional.
func (v Vector) AsVector3() (Vector3, error) {
	if len(v.c) != 3 {
		return Vector3{}, fmt.Errorf("%w: expected 3 dimensions, got %d", ErrDimensionMismatch, len(v.c))
	}
	return NewVector3(v.c[0], v.c[1], v.c[2]), nil
}
