package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPixels is the length of the ledrx strip.
const DefaultPixels = 500

// MaxPixels is the most pixels the uint16 frame header can describe.
const MaxPixels = math.MaxUint16

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame of n pixels. A non-positive n means
// DefaultPixels and n is capped at MaxPixels.
func NewFrame(n int) *Frame {
	if n <= 0 {
		n = DefaultPixels
	}
	if n > MaxPixels {
		n = MaxPixels
	}

	f := new(Frame)
	f.pixels = make([]colorful.Color, n)
	return f
}

// Len is the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour at i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// MarshalBinary converts a Frame into binary data: a little endian pixel
// count followed by one RGB triplet per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
