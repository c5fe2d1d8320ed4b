package grid

import (
	"math"
	"testing"
)

func TestCoordinateArithmetic(t *testing.T) {
	a := Pt(1, 1)
	off := Pt(3, -2)

	if got := a.Add(off); got != Pt(4, -1) {
		t.Errorf("Add() = %v, want %v", got, Pt(4, -1))
	}
	if got := Pt(4, -1).Sub(a); got != off {
		t.Errorf("Sub() = %v, want %v", got, off)
	}
}

func TestCoordinateIsAbsolute(t *testing.T) {
	tests := []struct {
		c        Coordinate
		expected bool
	}{
		{Pt(0, 0), true},
		{Pt(5, 3), true},
		{Pt(-1, 0), false},
		{Pt(0, -1), false},
	}

	for _, tt := range tests {
		if got := tt.c.IsAbsolute(); got != tt.expected {
			t.Errorf("%v.IsAbsolute() = %v, want %v", tt.c, got, tt.expected)
		}
	}
}

func TestTileCenterDistance(t *testing.T) {
	tests := []struct {
		from, to Coordinate
		expected float64
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(0, 0), Pt(4, 0), 10},
		{Pt(2, 2), Pt(2, 6), 10},
		{Pt(0, 0), Pt(3, 4), 12.5},
		{Pt(1, 1), Pt(2, 2), math.Sqrt2 * CellSize},
	}

	for _, tt := range tests {
		got := TileCenterDistance(tt.from, tt.to)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("TileCenterDistance(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestFootprint(t *testing.T) {
	cells := Footprint(Pt(3, 4), 2)
	want := []Coordinate{Pt(3, 4), Pt(4, 4), Pt(3, 5), Pt(4, 5)}

	if len(cells) != len(want) {
		t.Fatalf("Footprint() returned %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Footprint()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestSizeTiles(t *testing.T) {
	tests := []struct {
		size     Size
		expected int
	}{
		{SizeTiny, 1},
		{SizeSmall, 2},
		{SizeMedium, 2},
		{SizeLarge, 4},
		{SizeHuge, 6},
		{SizeGargantuan, 8},
	}

	for _, tt := range tests {
		if got := tt.size.Tiles(); got != tt.expected {
			t.Errorf("%v.Tiles() = %d, want %d", tt.size, got, tt.expected)
		}
	}
}

func TestParseSize(t *testing.T) {
	size, err := ParseSize("Large")
	if err != nil {
		t.Fatalf("ParseSize(Large) error: %v", err)
	}
	if size != SizeLarge {
		t.Errorf("ParseSize(Large) = %v, want large", size)
	}

	if _, err := ParseSize("colossal"); err == nil {
		t.Error("ParseSize(colossal) should fail")
	}
}

func TestGap(t *testing.T) {
	tests := []struct {
		a     Coordinate
		aSide int
		b     Coordinate
		bSide int
		want  int
	}{
		{Pt(0, 0), 2, Pt(2, 0), 2, 0},
		{Pt(0, 0), 2, Pt(3, 0), 2, 1},
		{Pt(0, 0), 2, Pt(5, 1), 2, 3},
		{Pt(4, 4), 1, Pt(0, 0), 2, 2},
		{Pt(0, 0), 2, Pt(1, 1), 2, 0},
		{Pt(0, 0), 1, Pt(2, 2), 1, 1},
	}

	for _, tt := range tests {
		if got := Gap(tt.a, tt.aSide, tt.b, tt.bSide); got != tt.want {
			t.Errorf("Gap(%v/%d, %v/%d) = %d, want %d", tt.a, tt.aSide, tt.b, tt.bSide, got, tt.want)
		}
	}
}
