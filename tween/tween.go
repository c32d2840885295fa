package tween

import (
	"fmt"
	"math"
)

// A Tween drives one target from a start value to an end value over a fixed
// duration, optionally looping across multiple cycles. It is the leaf node of
// a timeline tree.
type Tween[T Interpolatable[T]] struct {
	target        *Target[T]
	start         T
	end           T
	cycleDuration float64
	cycleCount    int
}

// NewTween creates a single-cycle Tween.
func NewTween[T Interpolatable[T]](target *Target[T], start, end T, duration float64) (*Tween[T], error) {
	return NewCycleTween(target, start, end, duration, 1)
}

// NewCycleTween creates a Tween that repeats its cycle cycleCount times.
func NewCycleTween[T Interpolatable[T]](target *Target[T], start, end T, cycleDuration float64, cycleCount int) (*Tween[T], error) {
	if cycleDuration <= 0 {
		return nil, fmt.Errorf("tween: cycle duration must be positive, got %v", cycleDuration)
	}
	if cycleCount < 1 {
		return nil, fmt.Errorf("tween: cycle count must be at least 1, got %d", cycleCount)
	}

	t := new(Tween[T])
	t.target = target
	t.start = start
	t.end = end
	t.cycleDuration = cycleDuration
	t.cycleCount = cycleCount

	return t, nil
}

// Duration returns the total duration across all cycles.
func (t *Tween[T]) Duration() float64 {
	return t.cycleDuration * float64(t.cycleCount)
}

// SeekTo clamps utime to [0, Duration] and writes the interpolated value for
// that instant into the target. The final instant of the last cycle lands on
// the end value rather than wrapping back to the start.
func (t *Tween[T]) SeekTo(utime float64) {
	utime = clamp(utime, 0, t.Duration())

	var phase float64
	if utime == t.Duration() {
		phase = 1.0
	} else {
		phase = math.Mod(utime, t.cycleDuration) / t.cycleDuration
	}

	t.target.Set(Lerp(t.start, t.end, phase))
}
