package stream

import (
	"log"
	"reflect"

	"github.com/matt-g-everett/tweentx/tween"
)

// rainbow is the hue gradient the built-in scenes play through.
var rainbow = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquiose
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

type sceneFactory func() (Animation, error)

// Controller that manages animations, cycling between scenes and crossfading
// each outgoing scene into the next.
type Controller struct {
	scenes              []sceneFactory
	sceneIndex          int
	animation           Animation
	nextAnimation       Animation
	animationMs         int64
	nextSwitchMs        int64
	runtimeMs           int64
	transition          float64
	transitionIncrement float64
}

// NewController creates an instance of a Controller.
func NewController(config Config) (*Controller, error) {
	c := new(Controller)

	c.scenes = []sceneFactory{
		func() (Animation, error) { return NewFade(rainbow, 20) },
		func() (Animation, error) { return NewSweep(rainbow, 180, -9) },
		func() (Animation, error) {
			palette := make([]tween.Color, 0, 3)
			for _, hex := range []string{"#100505", "#051005", "#050510"} {
				colour, err := tween.Hex(hex)
				if err != nil {
					return nil, err
				}
				palette = append(palette, colour)
			}
			return NewPulse(400, palette), nil
		},
	}

	c.animationMs = int64(config.Stream.AnimationSeconds * 1000)
	c.nextSwitchMs = c.animationMs
	c.transition = 0.0
	c.transitionIncrement = 1.0 / (config.Stream.FrameRate * config.Stream.TransitionSeconds)

	first, err := c.scenes[0]()
	if err != nil {
		return nil, err
	}
	c.animation = first

	return c, nil
}

// CalculateFrame renders the frame for the given runtime, starting and
// advancing scene crossfades as their time comes.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.runtimeMs = runtimeMs
	if c.nextAnimation == nil && runtimeMs >= c.nextSwitchMs {
		c.cycleAnimation()
	}

	var f *Frame
	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(runtimeMs)
		f2 := c.nextAnimation.CalculateFrame(runtimeMs)
		f = f1.InterpolateFrame(f2, c.transition)
		c.transition += c.transitionIncrement

		if c.transition >= 1.0 {
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = 0.0
			c.nextSwitchMs = runtimeMs + c.animationMs
		}
	} else {
		f = c.animation.CalculateFrame(runtimeMs)
	}

	return f
}

// SceneName reports the type name of the running scene.
func (c *Controller) SceneName() string {
	return reflect.TypeOf(c.animation).Elem().String()
}

func (c *Controller) cycleAnimation() {
	c.sceneIndex = (c.sceneIndex + 1) % len(c.scenes)
	next, err := c.scenes[c.sceneIndex]()
	if err != nil {
		// A scene that fails to build only skips its own slot.
		log.Printf("scene %d failed to build: %v", c.sceneIndex, err)
		c.nextSwitchMs = c.runtimeMs + c.animationMs
		return
	}

	log.Printf("type: %v", reflect.TypeOf(next).Elem().String())
	c.nextAnimation = next
	c.transition = 0.0
}
