package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestVectorAdd(t *testing.T) {
	v1 := NewVector(1, 2)
	v2 := NewVector(3, 4)

	result, err := v1.Add(v2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if result.Coord(0) != 4 || result.Coord(1) != 6 {
		t.Errorf("Add failed: got %v", result.Coords())
	}
}

func TestVectorAddDimensionMismatch(t *testing.T) {
	_, err := NewVector(1, 2).Add(NewVector(1, 2, 3))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add with mixed dimensions: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorSub(t *testing.T) {
	result, err := NewVector(5, 7, 9).Sub(NewVector(1, 2, 3))
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if result.Coord(0) != 4 || result.Coord(1) != 5 || result.Coord(2) != 6 {
		t.Errorf("Sub failed: got %v", result.Coords())
	}
}

func TestVectorScale(t *testing.T) {
	result := NewVector(1, -2, 3).Scale(2)
	if result.Coord(0) != 2 || result.Coord(1) != -4 || result.Coord(2) != 6 {
		t.Errorf("Scale failed: got %v", result.Coords())
	}
}

func TestVectorDot(t *testing.T) {
	dot, err := NewVector(1, 2, 3).Dot(NewVector(4, 5, 6))
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if math.Abs(dot-32) > 1e-10 {
		t.Errorf("Dot failed: expected 32, got %v", dot)
	}
}

func TestVectorCross(t *testing.T) {
	result, err := NewVector(1, 0, 0).Cross(NewVector(0, 1, 0))
	if err != nil {
		t.Fatalf("Cross failed: %v", err)
	}
	if result.Coord(0) != 0 || result.Coord(1) != 0 || result.Coord(2) != 1 {
		t.Errorf("Cross failed: got %v", result.Coords())
	}
}

func TestVectorCrossRequires3D(t *testing.T) {
	_, err := NewVector(1, 0).Cross(NewVector(0, 1))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Cross in 2D: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorUnitZero(t *testing.T) {
	_, err := NewVector(0, 0, 0).Unit()
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("Unit on zero vector: expected ErrZeroVector, got %v", err)
	}
}

func TestVectorAngle(t *testing.T) {
	angle, err := NewVector(1, 1).Angle(NewVector(-1, 1))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if math.Abs(angle-math.Pi/2) > 1e-10 {
		t.Errorf("Angle failed: expected pi/2, got %v", angle)
	}
}

func TestVectorAsVector3(t *testing.T) {
	v3, err := NewVector(1, 2, 3).AsVector3()
	if err != nil {
		t.Fatalf("AsVector3 failed: %v", err)
	}
	if v3 != NewVector3(1, 2, 3) {
		t.Errorf("AsVector3 failed: got %v", v3)
	}

	if _, err := NewVector(1, 2).AsVector3(); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("AsVector3 in 2D: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorImmutable(t *testing.T) {
	coords := []float64{1, 2, 3}
	v := NewVector(coords...)
	coords[0] = 99
	if v.Coord(0) != 1 {
		t.Errorf("NewVector must copy its input")
	}

	out := v.Coords()
	out[1] = 99
	if v.Coord(1) != 2 {
		t.Errorf("Coords must return a copy")
	}
}
