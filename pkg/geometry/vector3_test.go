package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Unit(t *testing.T) {
	v := NewVector3(0, 3, 4)
	unit, err := v.Unit()
	if err != nil {
		t.Fatalf("Unit failed: %v", err)
	}
	if math.Abs(unit.Length()-1.0) > 1e-10 {
		t.Errorf("Unit failed: expected length 1, got %v", unit.Length())
	}
}

func TestVector3UnitZero(t *testing.T) {
	_, err := Vector3{}.Unit()
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("Unit on zero vector: expected ErrZeroVector, got %v", err)
	}
}

func TestVector3Angle(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	angle, err := v1.Angle(v2)
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if math.Abs(angle-math.Pi/2) > 1e-10 {
		t.Errorf("Angle failed: expected pi/2, got %v", angle)
	}
}

func TestVector3AngleParallel(t *testing.T) {
	// Slightly non-unit inputs must not push acos out of domain.
	// acos amplifies rounding near cos=1 to about sqrt(eps), so the
	// tolerance is looser than elsewhere.
	v := NewVector3(0.1, 0.2, 0.3)
	angle, err := v.Angle(v.Mul(3))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if math.Abs(angle) > 1e-7 {
		t.Errorf("Angle of parallel vectors: expected 0, got %v", angle)
	}
}

func TestVector3AngleZero(t *testing.T) {
	_, err := NewVector3(1, 0, 0).Angle(Vector3{})
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("Angle with zero vector: expected ErrZeroVector, got %v", err)
	}
}
