package main

import (
	"image"
	"math"
	"testing"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func TestFract(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{0.75, 0.75},
		{1.5, 0.5},
		{2, 0},
		{-0.25, 0.75},
		{-1, 0},
		{-1.0625, 0.9375},
		{5.25, 0.25},
	}

	for _, tt := range tests {
		if got := Fract(tt.x); got != tt.want {
			t.Errorf("Fract(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestFPointFract(t *testing.T) {
	got := FPointFract(FPt(-0.25, 3.5))
	want := FPt(0.75, 0.5)

	if !got.Eq(want) {
		t.Errorf("FPointFract(-0.25, 3.5) = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t float64
		want    float64
	}{
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.5, 0.5},
		{2, 6, 0.25, 3},
		{5, -5, 0.5, 0},
		{1, 1, 0.3, 1},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %v, want 10", got)
	}
	if got := Clamp(0.75, 0.0, 0.5); got != 0.5 {
		t.Errorf("Clamp(0.75, 0, 0.5) = %v, want 0.5", got)
	}
}

func TestFPointArith(t *testing.T) {
	p := FPt(3, -2)
	q := FPt(0.5, 4)

	if got := p.Add(q); !got.Eq(FPt(3.5, 2)) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); !got.Eq(FPt(2.5, -6)) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(q); !got.Eq(FPt(1.5, -8)) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Div(q); !got.Eq(FPt(6, -0.5)) {
		t.Errorf("Div = %v", got)
	}
	if got := p.Scale(2); !got.Eq(FPt(6, -4)) {
		t.Errorf("Scale = %v", got)
	}
	if got := p.LengthSquared(); got != 13 {
		t.Errorf("LengthSquared = %v, want 13", got)
	}
}

func TestFPointRotate(t *testing.T) {
	got := FPt(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("quarter turn of (1,0) = %v, want (0,1)", got)
	}

	got = FPt(0, 1).Rotate(math.Pi)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y+1) > 1e-12 {
		t.Errorf("half turn of (0,1) = %v, want (0,-1)", got)
	}

	// zero angle is the exact identity
	p := FPt(1.25, -7.5)
	if got := p.Rotate(0); !got.Eq(p) {
		t.Errorf("Rotate(0) = %v, want %v", got, p)
	}

	// length survives any rotation
	before := p.LengthSquared()
	after := p.Rotate(1.234).LengthSquared()
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("rotation changed length: %v vs %v", before, after)
	}
}

func TestFPointIn(t *testing.T) {
	rect := FRect(0, 0, 10, 5)

	tests := []struct {
		p    FPoint
		want bool
	}{
		{FPt(5, 2), true},
		{FPt(0, 0), true},   // min edge is inside
		{FPt(10, 2), false}, // max edge is outside
		{FPt(5, 5), false},
		{FPt(-1, 2), false},
	}

	for _, tt := range tests {
		if got := tt.p.In(rect); got != tt.want {
			t.Errorf("(%v).In(%v) = %v, want %v", tt.p, rect, got, tt.want)
		}
	}
}

func TestFRectangleHelpers(t *testing.T) {
	rect := FRectXYWH(10, 20, 30, 40)

	if rect.Dx() != 30 || rect.Dy() != 40 {
		t.Errorf("FRectXYWH size = %v x %v, want 30 x 40", rect.Dx(), rect.Dy())
	}
	if !rect.Eq(FRect(10, 20, 40, 60)) {
		t.Errorf("FRectXYWH = %v, want (10,20)-(40,60)", rect)
	}

	inset := rect.Inset(5)
	if !inset.Eq(FRect(15, 25, 35, 55)) {
		t.Errorf("Inset(5) = %v", inset)
	}

	grown := rect.Inset(-5)
	if !grown.Eq(FRect(5, 15, 45, 65)) {
		t.Errorf("Inset(-5) = %v", grown)
	}

	center := FRectangleCenter(rect)
	if !center.Eq(FPt(25, 40)) {
		t.Errorf("FRectangleCenter = %v, want (25,40)", center)
	}

	moved := FRectMoveTo(rect, FPt(0, 0))
	if !moved.Eq(FRect(0, 0, 30, 40)) {
		t.Errorf("FRectMoveTo origin = %v", moved)
	}
}

func TestFRectangleSetOps(t *testing.T) {
	a := FRect(0, 0, 10, 10)
	b := FRect(5, 5, 15, 15)
	c := FRect(20, 20, 30, 30)

	if got := a.Intersect(b); !got.Eq(FRect(5, 5, 10, 10)) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Intersect(c); !got.Empty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
	if got := a.Union(b); !got.Eq(FRect(0, 0, 15, 15)) {
		t.Errorf("Union = %v", got)
	}
	if !a.Overlaps(b) || a.Overlaps(c) {
		t.Error("Overlaps gave wrong answers")
	}
	if !FRect(2, 2, 8, 8).In(a) || b.In(a) {
		t.Error("In gave wrong answers")
	}
}

func TestRectConversions(t *testing.T) {
	rect := image.Rect(1, 2, 11, 22)

	frect := RectToFRect(rect)
	if !frect.Eq(FRect(1, 2, 11, 22)) {
		t.Errorf("RectToFRect = %v", frect)
	}

	back := FRectToRect(frect)
	if back != rect {
		t.Errorf("FRectToRect = %v, want %v", back, rect)
	}

	if got := RectWH(7, 9); got != image.Rect(0, 0, 7, 9) {
		t.Errorf("RectWH = %v", got)
	}
	if got := FRectWH(7, 9); !got.Eq(FRect(0, 0, 7, 9)) {
		t.Errorf("FRectWH = %v", got)
	}

	pt := image.Pt(3, 4)
	if got := FPointToPoint(PointToFPoint(pt)); got != pt {
		t.Errorf("point round trip = %v, want %v", got, pt)
	}
}

func TestFPointTransform(t *testing.T) {
	var geom eb.GeoM
	geom.Scale(2, 3)
	geom.Translate(10, 20)

	got := FPointTransform(FPt(1, 1), geom)
	want := FPt(12, 23)

	if !got.Eq(want) {
		t.Errorf("FPointTransform = %v, want %v", got, want)
	}
}
