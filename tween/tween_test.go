package tween

import (
	"testing"
)

func unitTween(t *testing.T) (*Target[Float], *Tween[Float]) {
	t.Helper()
	target := NewTarget(Float(0))
	tw, err := NewTween(target, Float(0), Float(1), 1)
	if err != nil {
		t.Fatalf("NewTween: %v", err)
	}
	return target, tw
}

func TestTweenSeekWritesTarget(t *testing.T) {
	target, tw := unitTween(t)

	tw.SeekTo(1.0)
	if got := target.Get(); got != 1 {
		t.Errorf("after SeekTo(1.0) target = %v, want 1", got)
	}

	tw.SeekTo(0.5)
	if got := target.Get(); got != 0.5 {
		t.Errorf("after SeekTo(0.5) target = %v, want 0.5", got)
	}

	// Repeating an identical seek must land on the same value.
	tw.SeekTo(1.0)
	tw.SeekTo(1.0)
	if got := target.Get(); got != 1 {
		t.Errorf("after repeated SeekTo(1.0) target = %v, want 1", got)
	}
}

func TestTweenSeekClamps(t *testing.T) {
	target, tw := unitTween(t)

	tw.SeekTo(-3)
	if got := target.Get(); got != 0 {
		t.Errorf("after SeekTo(-3) target = %v, want 0", got)
	}

	tw.SeekTo(42)
	if got := target.Get(); got != 1 {
		t.Errorf("after SeekTo(42) target = %v, want 1", got)
	}
}

func TestTweenCycles(t *testing.T) {
	target := NewTarget(Float(0))
	tw, err := NewCycleTween(target, Float(0), Float(1), 1, 2)
	if err != nil {
		t.Fatalf("NewCycleTween: %v", err)
	}

	if got := tw.Duration(); got != 2 {
		t.Fatalf("Duration = %v, want 2", got)
	}

	tw.SeekTo(1.5)
	if got := target.Get(); got != 0.5 {
		t.Errorf("mid second cycle target = %v, want 0.5", got)
	}

	// An interior cycle boundary wraps back to the start value.
	tw.SeekTo(1.0)
	if got := target.Get(); got != 0 {
		t.Errorf("at interior cycle boundary target = %v, want 0", got)
	}

	// The end of the final cycle lands on the end value instead of wrapping.
	tw.SeekTo(2.0)
	if got := target.Get(); got != 1 {
		t.Errorf("at final boundary target = %v, want 1", got)
	}
}

func TestTweenConstructionRejectsBadArgs(t *testing.T) {
	target := NewTarget(Float(0))

	if _, err := NewTween(target, Float(0), Float(1), 0); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := NewTween(target, Float(0), Float(1), -1); err == nil {
		t.Error("expected error for negative duration")
	}
	if _, err := NewCycleTween(target, Float(0), Float(1), 1, 0); err == nil {
		t.Error("expected error for zero cycle count")
	}
}

func TestTweenColorTarget(t *testing.T) {
	black, _ := Hex("#000000")
	white, _ := Hex("#ffffff")
	target := NewTarget(black)
	tw, err := NewTween(target, black, white, 2)
	if err != nil {
		t.Fatalf("NewTween: %v", err)
	}

	tw.SeekTo(2)
	if got := target.Get(); !colorsNear(got, white) {
		t.Errorf("at end target = %+v, want white", got.Color)
	}

	tw.SeekTo(0)
	if got := target.Get(); !colorsNear(got, black) {
		t.Errorf("back at start target = %+v, want black", got.Color)
	}
}
