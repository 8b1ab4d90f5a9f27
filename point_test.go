package scope

import (
	"math"
	"testing"
)

func TestPointIsEmpty(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Point{}, true},
		{Pt(0, 1), false},
		{Pt(-1, 0), false},
		{Pt(1e-300, 0), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Add(Pt(1, 1)); !got.Eq(Pt(4, 5)) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(1, 1)); !got.Eq(Pt(2, 3)) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Div(2); got != Pt(1.5, 2) {
		t.Errorf("Div = %v", got)
	}
}

func TestPointScreen(t *testing.T) {
	p := Pt(1.0/3, math.Pi)
	s := p.Screen()
	if s.X != float32(1.0/3) || s.Y != float32(math.Pi) {
		t.Errorf("Screen() = %+v", s)
	}
	if math.Abs(float64(s.X)-p.X) > 1e-6 || math.Abs(float64(s.Y)-p.Y) > 1e-6 {
		t.Errorf("Screen() = %+v, want close to %v", s, p)
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(1.5, -2).String(); got != "{X=1.5, Y=-2}" {
		t.Errorf("String() = %q", got)
	}
}
