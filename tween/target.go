package tween

// A Target is the mutable cell holding the current value of one animated
// property. The tween driving it writes through Set; the frame loop reads
// through Get. A target never references its driver.
type Target[T any] struct {
	value T
}

// NewTarget creates a Target holding an initial value.
func NewTarget[T any](value T) *Target[T] {
	t := new(Target[T])
	t.value = value
	return t
}

// Get returns the current value.
func (t *Target[T]) Get() T {
	return t.value
}

// Set overwrites the current value. No validation happens here; overshoot
// values from elastic or back easing are accepted as-is.
func (t *Target[T]) Set(value T) {
	t.value = value
}
