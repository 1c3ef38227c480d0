// Package raster is a software render target for geom batches. It is
// used for headless snapshots of the walkthrough and for tests; the
// interactive window renders through OpenGL instead.
package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

// nearW keeps clipped vertices strictly in front of the eye.
const nearW = 1e-4

// Canvas rasterizes batches into a FrameBuffer as they are emitted.
type Canvas struct {
	fb  *FrameBuffer
	mvp mgl32.Mat4
}

// NewCanvas creates a w by h canvas that projects world positions with
// proj * view.
func NewCanvas(w, h int, view, proj mgl32.Mat4) *Canvas {
	return &Canvas{
		fb:  NewFrameBuffer(w, h),
		mvp: proj.Mul4(view),
	}
}

// Perspective is the projection the walkthrough uses: 45° vertical field
// of view, near 0.1, far 100.
func Perspective(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
}

func (c *Canvas) Clear(col geom.Color) {
	c.fb.Clear(col)
}

func (c *Canvas) Buffer() *FrameBuffer {
	return c.fb
}

func (c *Canvas) Image() *image.NRGBA {
	return c.fb.Image()
}

// Emit implements geom.Sink.
func (c *Canvas) Emit(b geom.Batch) {
	switch {
	case b.Filled():
		tris := b.Triangles()
		for i := 0; i+2 < len(tris); i += 3 {
			c.triangle(tris[i], tris[i+1], tris[i+2])
		}
	case b.Mode == geom.Lines:
		seg := b.Segments()
		for i := 0; i+1 < len(seg); i += 2 {
			c.line(seg[i], seg[i+1], b.Size)
		}
	case b.Mode == geom.Points:
		for _, v := range b.Verts {
			c.point(v, b.Size)
		}
	}
}

// clipVert is a vertex in homogeneous clip space.
type clipVert struct {
	pos   mgl32.Vec4
	color geom.Color
}

// screenVert is a vertex in pixel space with NDC depth.
type screenVert struct {
	x, y, z float32
	color   geom.Color
}

func (c *Canvas) toClip(v geom.Vertex) clipVert {
	return clipVert{pos: c.mvp.Mul4x1(v.Pos.Vec4(1)), color: v.Color}
}

func (c *Canvas) toScreen(v clipVert) screenVert {
	inv := 1 / v.pos.W()
	return screenVert{
		x:     (v.pos.X()*inv*0.5 + 0.5) * float32(c.fb.Width),
		y:     (0.5 - v.pos.Y()*inv*0.5) * float32(c.fb.Height),
		z:     v.pos.Z() * inv,
		color: v.color,
	}
}

// lerpClip interpolates position and color at t in [0, 1].
func lerpClip(a, b clipVert, t float32) clipVert {
	return clipVert{
		pos: a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		color: geom.Color{
			R: a.color.R + (b.color.R-a.color.R)*t,
			G: a.color.G + (b.color.G-a.color.G)*t,
			B: a.color.B + (b.color.B-a.color.B)*t,
		},
	}
}

// clipNear clips a polygon against the w = nearW plane.
func clipNear(in []clipVert) []clipVert {
	out := make([]clipVert, 0, len(in)+1)
	for i := range in {
		a, b := in[i], in[(i+1)%len(in)]
		aIn, bIn := a.pos.W() > nearW, b.pos.W() > nearW
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := (nearW - a.pos.W()) / (b.pos.W() - a.pos.W())
			out = append(out, lerpClip(a, b, t))
		}
	}
	return out
}
