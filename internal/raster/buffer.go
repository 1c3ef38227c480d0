package raster

import (
	"image"
	"math"

	"walkthrough3d/internal/geom"
)

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // NDC depth per pixel, smaller is nearer
}

// NewFrameBuffer allocates an opaque black color buffer and a far depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		Depth:  make([]float32, w*h),
	}
	fb.Clear(geom.Color{})
	return fb
}

// Clear fills every pixel with c and resets depth.
func (fb *FrameBuffer) Clear(c geom.Color) {
	r, g, b := to8(c.R), to8(c.G), to8(c.B)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = 255
	}
	inf := float32(math.Inf(1))
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// plot writes one fragment if it passes the depth test.
func (fb *FrameBuffer) plot(x, y int, z float32, c geom.Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if !(z < fb.Depth[i]) {
		return
	}
	fb.Depth[i] = z
	o := i * 4
	fb.Color[o] = to8(c.R)
	fb.Color[o+1] = to8(c.G)
	fb.Color[o+2] = to8(c.B)
	fb.Color[o+3] = 255
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func to8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
