package tween

// A Timeline is a node that can be scrubbed to any absolute time within its duration.
type Timeline interface {
	Duration() float64
	SeekTo(utime float64)
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
