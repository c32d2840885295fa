package tween

import (
	"fmt"
	"math"
)

type segment struct {
	start float64
	end   float64
}

// A Sequence plays its children one after another, each child occupying a
// contiguous slice of the total duration. Seeking only touches the children
// whose slice overlaps the span between the previous seek position and the
// new one, so a frame-to-frame scrub costs the children it crossed, not the
// whole timeline.
type Sequence struct {
	children      []Timeline
	segments      []segment
	cycleDuration float64
	cycleCount    int
	currentTime   float64
}

// NewSequence creates a single-cycle Sequence of children, played in order.
func NewSequence(children ...Timeline) (*Sequence, error) {
	return NewCycleSequence(1, children...)
}

// NewCycleSequence creates a Sequence that repeats its children cycleCount times.
func NewCycleSequence(cycleCount int, children ...Timeline) (*Sequence, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("tween: a sequence needs at least one child")
	}
	if cycleCount < 1 {
		return nil, fmt.Errorf("tween: cycle count must be at least 1, got %d", cycleCount)
	}

	s := new(Sequence)
	s.children = children
	s.cycleCount = cycleCount
	s.currentTime = 0

	// Precompute each child's slice of the cycle. The slices partition
	// [0, cycleDuration] in child order with no gaps or overlaps.
	s.segments = make([]segment, len(children))
	offset := 0.0
	for i, c := range children {
		s.segments[i] = segment{start: offset, end: offset + c.Duration()}
		offset = s.segments[i].end
	}
	s.cycleDuration = offset

	return s, nil
}

// Duration returns the total duration across all cycles.
func (s *Sequence) Duration() float64 {
	return s.cycleDuration * float64(s.cycleCount)
}

// CurrentTime returns the position of the last seek.
func (s *Sequence) CurrentTime() float64 {
	return s.currentTime
}

// Update advances the sequence by deltaTime (which may be negative) and seeks
// to the resulting position.
func (s *Sequence) Update(deltaTime float64) {
	s.SeekTo(s.currentTime + deltaTime)
}

// SeekTo clamps utime to [0, Duration] and seeks every child whose segment
// overlaps the span between the previous position and the new one. A seek
// landing exactly on a boundary shared by two children updates both: the
// ending child receives its full duration and the starting child receives 0,
// so scrubbing across a seam never leaves either side stale.
func (s *Sequence) SeekTo(utime float64) {
	previousTime := s.currentTime
	s.currentTime = clamp(utime, 0, s.Duration())
	phase := s.phaseTime(s.currentTime)

	low := s.phaseTime(previousTime)
	high := phase
	if low > high {
		low, high = high, low
	}
	if s.cycleIndex(previousTime) != s.cycleIndex(s.currentTime) {
		// The seek crossed a cycle boundary; cycle-relative positions no
		// longer bracket the crossed span, so reseek the whole cycle.
		low, high = 0, s.cycleDuration
	}

	for i, c := range s.children {
		seg := s.segments[i]
		if seg.end >= low && seg.start <= high {
			c.SeekTo(clamp(phase-seg.start, 0, c.Duration()))
		}
	}
}

// phaseTime maps an absolute time to its position within a cycle. The exact
// end of the final cycle maps to cycleDuration rather than wrapping, so the
// last child can land on its end value.
func (s *Sequence) phaseTime(utime float64) float64 {
	if s.cycleDuration == 0 {
		return 0
	}
	if utime == s.Duration() {
		return s.cycleDuration
	}
	return math.Mod(utime, s.cycleDuration)
}

func (s *Sequence) cycleIndex(utime float64) int {
	if s.cycleDuration == 0 {
		return 0
	}
	i := int(utime / s.cycleDuration)
	if i >= s.cycleCount {
		i = s.cycleCount - 1
	}
	return i
}
