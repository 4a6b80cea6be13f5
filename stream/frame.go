package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

const numPixels = 500

// Frame represents a frame of RGB pixels to display on an LED strip.
type Frame struct {
	pixels [numPixels]colorful.Color
}

// NewFrame creates a new Frame instance filled with the given colour.
func NewFrame(back colorful.Color) *Frame {
	f := new(Frame)
	for i := range f.pixels {
		f.pixels[i] = back
	}
	return f
}

// Blend mixes colour c into the pixel range [start, end] at the given bias.
func (f *Frame) Blend(start, end int, c colorful.Color, bias float64) {
	if start < 0 {
		start = 0
	}
	if end > numPixels-1 {
		end = numPixels - 1
	}
	for i := start; i <= end; i++ {
		f.pixels[i] = f.pixels[i].BlendHcl(c, bias)
	}
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
