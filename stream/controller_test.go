package stream

import (
	"testing"
)

func testConfig() Config {
	var c Config
	c.Stream.FrameRate = 10
	c.Stream.AnimationSeconds = 1
	c.Stream.TransitionSeconds = 1
	return c
}

func TestControllerStartsOnFirstScene(t *testing.T) {
	c, err := NewController(testConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	if got := c.SceneName(); got != "stream.Fade" {
		t.Errorf("SceneName = %q, want stream.Fade", got)
	}

	// Before the switch time, frames come straight from the first scene.
	fade, err := NewFade(rainbow, 20)
	if err != nil {
		t.Fatalf("NewFade: %v", err)
	}
	got := c.CalculateFrame(500)
	want := fade.CalculateFrame(500)
	if !colorsNear(got.pixels[0], want.pixels[0]) {
		t.Errorf("frame pixel = %+v, want the Fade scene's %+v",
			got.pixels[0].Color, want.pixels[0].Color)
	}
}

func TestControllerCrossfadesToNextScene(t *testing.T) {
	c, err := NewController(testConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	// Reaching the switch time starts a crossfade, but the running scene
	// only changes once the transition completes.
	c.CalculateFrame(1000)
	if got := c.SceneName(); got != "stream.Fade" {
		t.Errorf("SceneName during transition = %q, want stream.Fade", got)
	}

	// frameRate 10 and transitionSeconds 1 step the blend by 0.1 per frame.
	for i := 1; i <= 10; i++ {
		c.CalculateFrame(1000 + int64(i)*100)
	}
	if got := c.SceneName(); got != "stream.Sweep" {
		t.Errorf("SceneName after transition = %q, want stream.Sweep", got)
	}
}
