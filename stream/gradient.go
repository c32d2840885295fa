package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/tweentx/tween"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) tween.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return tween.Color{Color: colorful.Hcl(h, s, l)}
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return tween.Color{Color: colorful.Hcl(g[len(g)-1].Hue, 1.0, 0.05)}
}

// Timeline builds a sequential colour timeline that plays through the table,
// one tween per gradient segment, writing into target. Playing the whole
// table takes cycleSeconds; each segment lasts its share of the position span.
func (g GradientTable) Timeline(target *tween.Target[tween.Color], s, l, cycleSeconds float64) (*tween.Sequence, error) {
	if len(g) < 2 {
		return nil, fmt.Errorf("stream: a gradient timeline needs at least two keypoints")
	}
	span := g[len(g)-1].Pos - g[0].Pos
	if span <= 0 {
		return nil, fmt.Errorf("stream: gradient keypoint positions must ascend")
	}

	children := make([]tween.Timeline, 0, len(g)-1)
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c2.Pos <= c1.Pos {
			continue
		}
		from := tween.Color{Color: colorful.Hcl(c1.Hue, s, l)}
		to := tween.Color{Color: colorful.Hcl(c2.Hue, s, l)}
		tw, err := tween.NewTween(target, from, to, (c2.Pos-c1.Pos)/span*cycleSeconds)
		if err != nil {
			return nil, err
		}
		children = append(children, tw)
	}

	return tween.NewSequence(children...)
}
