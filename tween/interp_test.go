package tween

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func colorsNear(a, b Color) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestLerpFloatBoundaries(t *testing.T) {
	if got := Lerp(Float(2), Float(5), 0); got != 2 {
		t.Errorf("Lerp(2, 5, 0) = %v, want 2", got)
	}
	if got := Lerp(Float(2), Float(5), 1); got != 5 {
		t.Errorf("Lerp(2, 5, 1) = %v, want 5", got)
	}
}

func TestLerpFloatMidpoint(t *testing.T) {
	if got := Lerp(Float(2), Float(5), 0.5); got != 3.5 {
		t.Errorf("Lerp(2, 5, 0.5) = %v, want 3.5", got)
	}
}

func TestLerpFloatExtrapolates(t *testing.T) {
	// Amounts outside [0,1] are allowed; overshoot easing depends on it.
	if got := Lerp(Float(0), Float(10), 1.5); got != 15 {
		t.Errorf("Lerp(0, 10, 1.5) = %v, want 15", got)
	}
	if got := Lerp(Float(0), Float(10), -0.5); got != -5 {
		t.Errorf("Lerp(0, 10, -0.5) = %v, want -5", got)
	}
}

func TestLerpIntRoundsToNearest(t *testing.T) {
	if got := Lerp(Int(0), Int(3), 0.5); got != 2 {
		t.Errorf("Lerp(0, 3, 0.5) = %v, want 2 (1.5 rounds up)", got)
	}
	if got := Lerp(Int(0), Int(10), 0.26); got != 3 {
		t.Errorf("Lerp(0, 10, 0.26) = %v, want 3", got)
	}
	if got := Lerp(Int(0), Int(10), 1); got != 10 {
		t.Errorf("Lerp(0, 10, 1) = %v, want 10", got)
	}
}

func TestLerpColorBoundaries(t *testing.T) {
	red, _ := Hex("#ff0000")
	blue, _ := Hex("#0000ff")

	if got := Lerp(red, blue, 0); !colorsNear(got, red) {
		t.Errorf("Lerp(red, blue, 0) = %+v, want red", got.Color)
	}
	if got := Lerp(red, blue, 1); !colorsNear(got, blue) {
		t.Errorf("Lerp(red, blue, 1) = %+v, want blue", got.Color)
	}
}

func TestLerpColorUsesHclBlend(t *testing.T) {
	// Color supplies its own blend, so the midpoint must match BlendHcl
	// rather than the channel-wise RGB midpoint.
	red, _ := Hex("#ff0000")
	blue, _ := Hex("#0000ff")

	got := Lerp(red, blue, 0.5)
	want := Color{red.BlendHcl(blue.Color, 0.5)}
	if !colorsNear(got, want) {
		t.Errorf("Lerp(red, blue, 0.5) = %+v, want BlendHcl midpoint %+v", got.Color, want.Color)
	}

	linear := Color{colorful.Color{R: 0.5, G: 0, B: 0.5}}
	if colorsNear(got, linear) {
		t.Error("Lerp(red, blue, 0.5) took the channel-wise path instead of the HCL blend")
	}
}

func TestColorAlgebra(t *testing.T) {
	a := Color{colorful.Color{R: 0.2, G: 0.4, B: 0.6}}
	b := Color{colorful.Color{R: 0.1, G: 0.1, B: 0.1}}

	sum := a.Add(b)
	if !near(sum.R, 0.3) || !near(sum.G, 0.5) || !near(sum.B, 0.7) {
		t.Errorf("Add = %+v, want {0.3 0.5 0.7}", sum.Color)
	}

	diff := a.Sub(b)
	if !near(diff.R, 0.1) || !near(diff.G, 0.3) || !near(diff.B, 0.5) {
		t.Errorf("Sub = %+v, want {0.1 0.3 0.5}", diff.Color)
	}

	half := a.Scale(0.5)
	if !near(half.R, 0.1) || !near(half.G, 0.2) || !near(half.B, 0.3) {
		t.Errorf("Scale(0.5) = %+v, want {0.1 0.2 0.3}", half.Color)
	}
}

func TestLerpIdentity(t *testing.T) {
	// add(a, multiply(subtract(a,a), x)) == a for any x.
	a := Float(7)
	for _, amount := range []float64{0, 0.3, 1, 2.5, -1} {
		if got := a.Add(a.Sub(a).Scale(amount)); got != a {
			t.Errorf("identity violated at amount %v: got %v, want %v", amount, got, a)
		}
	}
}
