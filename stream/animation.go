package stream

// An Animation renders the frame for a point in stream runtime. Scenes that
// implement it scrub tween timelines to the requested instant, so any runtime
// can be asked for, in any order.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
