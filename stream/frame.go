package stream

import (
	"encoding/binary"

	"github.com/matt-g-everett/tweentx/tween"
)

const numPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels [numPixels]tween.Color
}

// NewFrame creates a new Frame instance.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// Fill sets every pixel to the same colour.
func (f *Frame) Fill(c tween.Color) {
	for i := 0; i < len(f.pixels); i++ {
		f.pixels[i] = c
	}
}

// InterpolateFrame merges two frames, blending each pixel pair through the
// hue-aware colour tween.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame()
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = tween.Lerp(f.pixels[i], f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, numPixels)
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
