package stream

import (
	"math"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/tweentx/tween"
	"github.com/matt-g-everett/tweentx/util"
)

// A Fade is an Animation that washes the whole strip through a hue gradient,
// driven by a looping colour timeline.
type Fade struct {
	target   *tween.Target[tween.Color]
	timeline tween.Timeline
}

// NewFade creates an instance of a Fade object.
func NewFade(gradient GradientTable, cycleSeconds float64) (*Fade, error) {
	f := new(Fade)
	f.target = tween.NewTarget(tween.Color{})

	timeline, err := gradient.Timeline(f.target, 0.7, 0.12, cycleSeconds)
	if err != nil {
		return nil, err
	}
	f.timeline = timeline

	return f, nil
}

// CalculateFrame creates a new Frame instance.
func (f *Fade) CalculateFrame(runtimeMs int64) *Frame {
	seconds := float64(runtimeMs) / 1000.0
	f.timeline.SeekTo(math.Mod(seconds, f.timeline.Duration()))

	frame := NewFrame()
	frame.Fill(f.target.Get())
	return frame
}

// A Sweep is an Animation that slides an eased hue gradient along the strip.
// Every pixel scrubs the same colour timeline to its own position, so each
// frame seeks the timeline hundreds of times in both directions.
type Sweep struct {
	target      *tween.Target[tween.Color]
	timeline    tween.Timeline
	trailLength float64
	speed       float64
}

// NewSweep creates an instance of a Sweep object. speed is in pixels per
// second; a negative speed runs the trail backwards.
func NewSweep(gradient GradientTable, trailLength, speed float64) (*Sweep, error) {
	s := new(Sweep)
	s.target = tween.NewTarget(tween.Color{})
	s.trailLength = trailLength
	s.speed = speed

	timeline, err := gradient.Timeline(s.target, 1.0, 0.05, 1.0)
	if err != nil {
		return nil, err
	}
	s.timeline = tween.Ease(timeline, ease.InOutSine)

	return s, nil
}

// CalculateFrame creates a new Frame instance.
func (s *Sweep) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()
	offset := float64(runtimeMs) / 1000.0 * s.speed
	duration := s.timeline.Duration()
	for i := 0; i < len(f.pixels); i++ {
		pos := math.Mod(float64(i)+offset, s.trailLength)
		if pos < 0 {
			pos += s.trailLength
		}
		s.timeline.SeekTo(pos / s.trailLength * duration)
		f.pixels[i] = s.target.Get()
	}

	return f
}

type pulseParticle struct {
	lut        []float64
	current    int
	running    bool
	colour     tween.Color
	NextColour tween.Color
}

func newPulseParticle(colour tween.Color, lut []float64) *pulseParticle {
	p := new(pulseParticle)
	p.colour = colour
	p.NextColour = colour
	p.lut = lut
	p.current = 0
	p.running = false
	return p
}

func (p *pulseParticle) increment() {
	if p.running {
		p.current++
		if p.current > len(p.lut)/2 {
			p.colour = p.NextColour
		}

		if p.current == len(p.lut)-1 {
			p.current = 0
			p.running = false
		}
	}
}

func (p *pulseParticle) pulse() bool {
	result := !p.running
	p.running = true
	return result
}

func (p *pulseParticle) currentColour() tween.Color {
	if !p.running {
		return p.colour
	}

	gain := p.lut[p.current]
	h, c, l := p.colour.Hcl()

	// Ease the luminance up towards the scintillation peak and back.
	lumDiff := 0.6 - l
	return tween.Color{Color: colorful.Hcl(h, c, l+(lumDiff*gain))}
}

// A Pulse is an Animation that scintillates random pixels, easing their
// luminance up and back down through a tween-sampled gain table.
type Pulse struct {
	lut                 []float64
	backColours         []tween.Color
	scintillationChance int32
	pixels              []*pulseParticle
}

// NewPulse creates an instance of a Pulse object.
func NewPulse(scintillationChance int32, backColours []tween.Color) *Pulse {
	p := new(Pulse)
	p.lut = util.GenerateLut(48)
	p.backColours = backColours
	p.scintillationChance = scintillationChance
	p.pixels = nil
	return p
}

func (p *Pulse) getRandomBackColour() tween.Color {
	c := p.backColours[rand.Int31n(int32(len(p.backColours)))]
	h, _, l := c.Hcl()
	return tween.Color{Color: colorful.Hcl(h, util.RandomiseSaturation(0.4, 0.9), l)}
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()

	// Initialise if we need to
	if p.pixels == nil {
		p.pixels = make([]*pulseParticle, len(f.pixels))
		for i := 0; i < len(f.pixels); i++ {
			p.pixels[i] = newPulseParticle(p.getRandomBackColour(), p.lut)
		}
	}

	for i := 0; i < len(f.pixels); i++ {
		// Start scintillation by chance
		if rand.Int31n(p.scintillationChance) == 0 {
			if p.pixels[i].pulse() {
				p.pixels[i].NextColour = p.getRandomBackColour()
			}
		}

		// Always increment, it'll only affect those pixels that are scintillating
		p.pixels[i].increment()

		f.pixels[i] = p.pixels[i].currentColour()
	}

	return f
}
