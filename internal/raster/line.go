package raster

import (
	"math"

	"walkthrough3d/internal/geom"
)

// lineBias pulls lines slightly towards the eye so seams drawn on a
// surface win against that surface.
const lineBias = 1e-4

// line clips a segment against the near plane and draws it.
func (c *Canvas) line(a, b geom.Vertex, width float32) {
	ca, cb := c.toClip(a), c.toClip(b)
	aIn, bIn := ca.pos.W() > nearW, cb.pos.W() > nearW
	switch {
	case !aIn && !bIn:
		return
	case !aIn:
		ca = lerpClip(ca, cb, (nearW-ca.pos.W())/(cb.pos.W()-ca.pos.W()))
	case !bIn:
		cb = lerpClip(cb, ca, (nearW-cb.pos.W())/(ca.pos.W()-cb.pos.W()))
	}
	c.drawLine(c.toScreen(ca), c.toScreen(cb), width)
}

// drawLine steps from p to q with a DDA, one sample per pixel along the
// major axis, stamping a square brush of the given width.
func (c *Canvas) drawLine(p, q screenVert, width float32) {
	p, q, ok := c.clipToView(p, q, width)
	if !ok {
		return
	}
	dx := float64(q.x - p.x)
	dy := float64(q.y - p.y)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if math.IsNaN(steps) {
		return
	}
	n := int(steps)
	if n == 0 {
		c.stamp(p, width)
		return
	}

	for i := 0; i <= n; i++ {
		c.stamp(lerpScreen(p, q, float32(i)/float32(n)), width)
	}
}

// clipToView trims a screen segment to the framebuffer grown by the brush
// size (Liang-Barsky), so far off-screen endpoints cost nothing.
func (c *Canvas) clipToView(p, q screenVert, width float32) (screenVert, screenVert, bool) {
	pad := width + 1
	xmin, ymin := -pad, -pad
	xmax, ymax := float32(c.fb.Width)+pad, float32(c.fb.Height)+pad

	dx, dy := q.x-p.x, q.y-p.y
	t0, t1 := float32(0), float32(1)
	edges := [4][2]float32{
		{-dx, p.x - xmin},
		{dx, xmax - p.x},
		{-dy, p.y - ymin},
		{dy, ymax - p.y},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		r := qe / pe
		if pe < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
	}
	if t0 > t1 {
		return p, q, false
	}
	return lerpScreen(p, q, t0), lerpScreen(p, q, t1), true
}

func lerpScreen(p, q screenVert, t float32) screenVert {
	return screenVert{
		x: p.x + (q.x-p.x)*t,
		y: p.y + (q.y-p.y)*t,
		z: p.z + (q.z-p.z)*t,
		color: geom.Color{
			R: p.color.R + (q.color.R-p.color.R)*t,
			G: p.color.G + (q.color.G-p.color.G)*t,
			B: p.color.B + (q.color.B-p.color.B)*t,
		},
	}
}

// point draws a square point sprite.
func (c *Canvas) point(v geom.Vertex, size float32) {
	cv := c.toClip(v)
	if cv.pos.W() <= nearW {
		return
	}
	c.stamp(c.toScreen(cv), size)
}

// stamp plots a size by size square centered on s.
func (c *Canvas) stamp(s screenVert, size float32) {
	if s.z < -1 || s.z > 1 {
		return
	}
	n := max(1, int(size+0.5))
	x0 := int(math.Floor(float64(s.x))) - (n-1)/2
	y0 := int(math.Floor(float64(s.y))) - (n-1)/2
	for y := y0; y < y0+n; y++ {
		for x := x0; x < x0+n; x++ {
			c.fb.plot(x, y, s.z-lineBias, s.color)
		}
	}
}
