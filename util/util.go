package util

import (
	"math/rand"

	"github.com/fogleman/ease"

	"github.com/matt-g-everett/tweentx/tween"
)

func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a rise-and-fall gain table by sampling an eased
// up-then-down timeline.
func GenerateLut(length int) []float64 {
	target := tween.NewTarget(tween.Float(0))
	up, _ := tween.NewTween(target, tween.Float(0), tween.Float(1), 1)
	down, _ := tween.NewTween(target, tween.Float(1), tween.Float(0), 1)
	seq, _ := tween.NewSequence(tween.Ease(up, ease.InOutQuad), tween.Ease(down, ease.InOutQuad))
	return SampleTimeline(seq, target, length)
}

// SampleTimeline scrubs a timeline at evenly spaced times and records the
// target value after each seek.
func SampleTimeline(tl tween.Timeline, target *tween.Target[tween.Float], length int) []float64 {
	lut := make([]float64, length)
	if length == 0 {
		return lut
	}
	if length == 1 {
		tl.SeekTo(0)
		lut[0] = float64(target.Get())
		return lut
	}

	duration := tl.Duration()
	for i := 0; i < length; i++ {
		tl.SeekTo(duration * float64(i) / float64(length-1))
		lut[i] = float64(target.Get())
	}
	return lut
}
