package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ArchSegments is the number of fan segments over the half circle of an arch.
const ArchSegments = 18

// archCutoff is the ratio below which an arch is drawn flat.
const archCutoff = 0.01

// Box emits the six faces of an axis-aligned box, each wound
// counter-clockwise when seen from outside.
func (p Pen) Box(center, size mgl32.Vec3, c Color) {
	h := size.Mul(0.5)
	x0, x1 := center[0]-h[0], center[0]+h[0]
	y0, y1 := center[1]-h[1], center[1]+h[1]
	z0, z1 := center[2]-h[2], center[2]+h[2]

	v := [8]mgl32.Vec3{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}
	faces := [6][4]int{
		{1, 0, 3, 2}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 4, 7, 3}, // -X
		{5, 1, 2, 6}, // +X
		{0, 1, 5, 4}, // -Y
		{7, 6, 2, 3}, // +Y
	}

	verts := make([]Vertex, 0, 24)
	for _, f := range faces {
		for _, i := range f {
			verts = append(verts, Vertex{v[i], c})
		}
	}
	p.Emit(Quads, 0, verts)
}

// ArchedOpening emits a flat opening in the plane z = center.z: a
// rectangular body topped by a half ellipse whose vertical radius is the
// half width scaled by ratio. A ratio of zero gives a plain rectangle.
func (p Pen) ArchedOpening(center, size mgl32.Vec3, c Color, ratio float32) {
	x, y, z := center[0], center[1], center[2]
	r := size[0] / 2
	body := size[1] - r*ratio
	if body < 0 {
		body = 0
	}
	bottom := y - size[1]/2
	top := bottom + body

	p.Quad(c,
		mgl32.Vec3{x - r, bottom, z},
		mgl32.Vec3{x + r, bottom, z},
		mgl32.Vec3{x + r, top, z},
		mgl32.Vec3{x - r, top, z},
	)

	if ratio <= archCutoff {
		return
	}
	verts := make([]Vertex, 0, ArchSegments+2)
	verts = append(verts, Vertex{mgl32.Vec3{x, top, z}, c})
	for i := 0; i <= ArchSegments; i++ {
		a := math.Pi * float64(i) / ArchSegments
		verts = append(verts, Vertex{mgl32.Vec3{
			x + float32(math.Cos(a))*r,
			top + float32(math.Sin(a))*r*ratio,
			z,
		}, c})
	}
	p.Emit(TriangleFan, 0, verts)
}

// Cylinder emits a closed cylinder standing on base along +Y: the side as
// a strip and two cap fans. The bottom fan runs the opposite way round so
// both caps face outwards. Fewer than one slice emits nothing.
func (p Pen) Cylinder(base mgl32.Vec3, radius, height float32, c Color, slices int) {
	if slices <= 0 {
		return
	}
	ring := circle(radius, slices)
	x, y, z := base[0], base[1], base[2]

	side := make([]Vertex, 0, 2*len(ring))
	for _, q := range ring {
		side = append(side,
			Vertex{mgl32.Vec3{x + q[0], y, z + q[1]}, c},
			Vertex{mgl32.Vec3{x + q[0], y + height, z + q[1]}, c},
		)
	}
	p.Emit(TriangleStrip, 0, side)

	top := make([]Vertex, 0, len(ring)+1)
	top = append(top, Vertex{mgl32.Vec3{x, y + height, z}, c})
	for i := len(ring) - 1; i >= 0; i-- {
		q := ring[i]
		top = append(top, Vertex{mgl32.Vec3{x + q[0], y + height, z + q[1]}, c})
	}
	p.Emit(TriangleFan, 0, top)

	bottom := make([]Vertex, 0, len(ring)+1)
	bottom = append(bottom, Vertex{mgl32.Vec3{x, y, z}, c})
	for _, q := range ring {
		bottom = append(bottom, Vertex{mgl32.Vec3{x + q[0], y, z + q[1]}, c})
	}
	p.Emit(TriangleFan, 0, bottom)
}

// DiskXY emits a filled circle in the plane z = center.z, facing +Z.
func (p Pen) DiskXY(center mgl32.Vec3, radius float32, c Color, slices int) {
	if slices <= 0 {
		return
	}
	ring := circle(radius, slices)
	verts := make([]Vertex, 0, len(ring)+1)
	verts = append(verts, Vertex{center, c})
	for _, q := range ring {
		verts = append(verts, Vertex{mgl32.Vec3{center[0] + q[0], center[1] + q[1], center[2]}, c})
	}
	p.Emit(TriangleFan, 0, verts)
}

// DiskYZ emits a filled circle in the plane x = center.x.
func (p Pen) DiskYZ(center mgl32.Vec3, radius float32, c Color, slices int) {
	if slices <= 0 {
		return
	}
	ring := circle(radius, slices)
	verts := make([]Vertex, 0, len(ring)+1)
	verts = append(verts, Vertex{center, c})
	for _, q := range ring {
		verts = append(verts, Vertex{mgl32.Vec3{center[0], center[1] + q[0], center[2] + q[1]}, c})
	}
	p.Emit(TriangleFan, 0, verts)
}

// AnnulusXY emits a ring between inner and outer radius in the plane
// z = center.z.
func (p Pen) AnnulusXY(center mgl32.Vec3, outer, inner float32, c Color, slices int) {
	if slices <= 0 {
		return
	}
	verts := make([]Vertex, 0, 2*(slices+1))
	for i := 0; i <= slices; i++ {
		a := 2 * math.Pi * float64(i) / float64(slices)
		co, si := float32(math.Cos(a)), float32(math.Sin(a))
		verts = append(verts,
			Vertex{mgl32.Vec3{center[0] + outer*co, center[1] + outer*si, center[2]}, c},
			Vertex{mgl32.Vec3{center[0] + inner*co, center[1] + inner*si, center[2]}, c},
		)
	}
	p.Emit(TriangleStrip, 0, verts)
}

// circle returns slices+1 points of a circle, first and last coinciding.
func circle(radius float32, slices int) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, slices+1)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(slices)
		pts[i] = mgl32.Vec2{radius * float32(math.Cos(a)), radius * float32(math.Sin(a))}
	}
	return pts
}
