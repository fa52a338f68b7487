package main

import (
	"image"

	"github.com/chewxy/math32"
)

// clearColor is the reference renderer's background gray, (100,100,100).
var clearColor = PackRGB(100, 100, 100)

// FrameBuffer owns the color and depth buffers rasterization writes into,
// both sized width*height and cleared at the start of every frame.
type FrameBuffer struct {
	Width, Height int
	Color         []uint32
	Depth         []float32
}

// NewFrameBuffer allocates a frame buffer for the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint32, width*height),
		Depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb
}

// Clear resets the color buffer to the background gray and the depth
// buffer to +Inf, so the first depth test at any pixel always passes.
func (fb *FrameBuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = clearColor
	}
	for i := range fb.Depth {
		fb.Depth[i] = math32.Inf(1)
	}
}

func (fb *FrameBuffer) index(x, y int) int {
	return y*fb.Width + x
}

// frameBufferToImage converts the packed 0x00RRGGBB color buffer into a
// standard Go image for encoding (screenshot export).
func frameBufferToImage(fb *FrameBuffer) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			packed := fb.Color[fb.index(x, y)]
			r := uint8(packed >> 16)
			g := uint8(packed >> 8)
			b := uint8(packed)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = r
			img.Pix[offset+1] = g
			img.Pix[offset+2] = b
			img.Pix[offset+3] = 255
		}
	}
	return img
}
