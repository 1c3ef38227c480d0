package raster

import (
	"math"

	"walkthrough3d/internal/geom"
)

// triangle clips, projects and fills one triangle. Both windings are drawn.
func (c *Canvas) triangle(a, b, d geom.Vertex) {
	poly := clipNear([]clipVert{c.toClip(a), c.toClip(b), c.toClip(d)})
	if len(poly) < 3 {
		return
	}
	s0 := c.toScreen(poly[0])
	for i := 1; i+1 < len(poly); i++ {
		c.fill(s0, c.toScreen(poly[i]), c.toScreen(poly[i+1]))
	}
}

// fill rasterizes a screen-space triangle with a z-buffer, sampling at
// pixel centers and interpolating color and depth barycentrically.
func (c *Canvas) fill(v0, v1, v2 screenVert) {
	fb := c.fb

	det := (v1.x-v0.x)*(v2.y-v0.y) - (v2.x-v0.x)*(v1.y-v0.y)
	// also rejects NaN
	if !(det < -1e-8 || det > 1e-8) {
		return
	}
	invDet := 1 / det

	minX := int(math.Floor(float64(min(v0.x, v1.x, v2.x))))
	maxX := int(math.Ceil(float64(max(v0.x, v1.x, v2.x))))
	minY := int(math.Floor(float64(min(v0.y, v1.y, v2.y))))
	maxY := int(math.Ceil(float64(max(v0.y, v1.y, v2.y))))
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, fb.Width-1), min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	for py := minY; py <= maxY; py++ {
		y := float32(py) + 0.5
		for px := minX; px <= maxX; px++ {
			x := float32(px) + 0.5

			// barycentric weights of v1 and v2
			w1 := ((x-v0.x)*(v2.y-v0.y) - (v2.x-v0.x)*(y-v0.y)) * invDet
			w2 := ((v1.x-v0.x)*(y-v0.y) - (x-v0.x)*(v1.y-v0.y)) * invDet
			w0 := 1 - w1 - w2
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.z + w1*v1.z + w2*v2.z
			if z < -1 || z > 1 {
				continue
			}
			fb.plot(px, py, z, geom.Color{
				R: w0*v0.color.R + w1*v1.color.R + w2*v2.color.R,
				G: w0*v0.color.G + w1*v1.color.G + w2*v2.color.G,
				B: w0*v0.color.B + w1*v1.color.B + w2*v2.color.B,
			})
		}
	}
}
