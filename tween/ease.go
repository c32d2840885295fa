package tween

// A Func remaps a normalised position in [0,1]. Conventionally f(0) == 0 and
// f(1) == 1, but that is not enforced; curves that overshoot (elastic, back)
// are a supported effect. The signature matches the curves in
// github.com/fogleman/ease, so those can be passed directly.
type Func func(t float64) float64

// A Classic is the four-argument easing form (elapsed, start, change,
// duration) used by the traditional easing-curve libraries.
type Classic func(t, b, c, d float64) float64

// FromClassic adapts a Classic easing function to a Func.
func FromClassic(f Classic) Func {
	return func(t float64) float64 {
		return f(t, 0, 1, 1)
	}
}

// An Eased decorates any timeline node, remapping seek time through an easing
// curve before delegating. It adds no state beyond the curve itself.
type Eased struct {
	wrapped Timeline
	fn      Func
}

// Ease wraps a timeline node with an easing curve. It applies uniformly to
// any node variant.
func Ease(wrapped Timeline, fn Func) *Eased {
	e := new(Eased)
	e.wrapped = wrapped
	e.fn = fn
	return e
}

// Duration is inherited unchanged from the wrapped node.
func (e *Eased) Duration() float64 {
	return e.wrapped.Duration()
}

// SeekTo normalises utime against the duration, remaps it through the curve,
// rescales and forwards. The wrapped node clamps its own time input, so a
// curve that leaves [0,1] saturates at the node's boundary values.
func (e *Eased) SeekTo(utime float64) {
	duration := e.wrapped.Duration()
	if duration <= 0 {
		e.wrapped.SeekTo(0)
		return
	}

	utime = clamp(utime, 0, duration)
	e.wrapped.SeekTo(e.fn(utime/duration) * duration)
}
