package tween

import (
	"fmt"
	"math"
)

// A Parallel plays all of its children from the same starting instant. Its
// cycle lasts as long as the longest child; shorter children hold their end
// values for the remainder. Every seek addresses every child.
type Parallel struct {
	children      []Timeline
	cycleDuration float64
	cycleCount    int
	currentTime   float64
}

// NewParallel creates a single-cycle Parallel of children.
func NewParallel(children ...Timeline) (*Parallel, error) {
	return NewCycleParallel(1, children...)
}

// NewCycleParallel creates a Parallel that repeats cycleCount times.
func NewCycleParallel(cycleCount int, children ...Timeline) (*Parallel, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("tween: a parallel needs at least one child")
	}
	if cycleCount < 1 {
		return nil, fmt.Errorf("tween: cycle count must be at least 1, got %d", cycleCount)
	}

	p := new(Parallel)
	p.children = children
	p.cycleCount = cycleCount
	p.currentTime = 0

	for _, c := range children {
		if c.Duration() > p.cycleDuration {
			p.cycleDuration = c.Duration()
		}
	}

	return p, nil
}

// Duration returns the total duration across all cycles.
func (p *Parallel) Duration() float64 {
	return p.cycleDuration * float64(p.cycleCount)
}

// CurrentTime returns the position of the last seek.
func (p *Parallel) CurrentTime() float64 {
	return p.currentTime
}

// Update advances the parallel by deltaTime (which may be negative) and seeks
// to the resulting position.
func (p *Parallel) Update(deltaTime float64) {
	p.SeekTo(p.currentTime + deltaTime)
}

// SeekTo clamps utime to [0, Duration] and seeks every child to the same
// cycle-relative time, clamped to the child's own duration.
func (p *Parallel) SeekTo(utime float64) {
	p.currentTime = clamp(utime, 0, p.Duration())

	var phase float64
	if p.cycleDuration == 0 {
		phase = 0
	} else if p.currentTime == p.Duration() {
		phase = p.cycleDuration
	} else {
		phase = math.Mod(p.currentTime, p.cycleDuration)
	}

	for _, c := range p.children {
		c.SeekTo(clamp(phase, 0, c.Duration()))
	}
}
