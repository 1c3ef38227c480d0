package geom

import "github.com/go-gl/mathgl/mgl32"

// Pen writes geometry to a Sink through a local-to-world transform.
//
// A Pen is a value: Translate and the Rotate helpers return a new Pen and
// leave the receiver untouched, so composites nest by passing derived
// pens down instead of pushing and popping a shared matrix stack.
type Pen struct {
	sink Sink
	xf   mgl32.Mat4
}

// NewPen returns a Pen with the identity transform.
func NewPen(s Sink) Pen {
	return Pen{sink: s, xf: mgl32.Ident4()}
}

// Transform is the current local-to-world matrix.
func (p Pen) Transform() mgl32.Mat4 {
	return p.xf
}

// With appends m to the current transform.
func (p Pen) With(m mgl32.Mat4) Pen {
	p.xf = p.xf.Mul4(m)
	return p
}

func (p Pen) Translate(x, y, z float32) Pen {
	return p.With(mgl32.Translate3D(x, y, z))
}

func (p Pen) TranslateV(v mgl32.Vec3) Pen {
	return p.Translate(v[0], v[1], v[2])
}

// RotateX rotates by deg degrees about the local X axis.
func (p Pen) RotateX(deg float32) Pen {
	return p.With(mgl32.HomogRotate3DX(mgl32.DegToRad(deg)))
}

// RotateY rotates by deg degrees about the local Y axis.
func (p Pen) RotateY(deg float32) Pen {
	return p.With(mgl32.HomogRotate3DY(mgl32.DegToRad(deg)))
}

// RotateZ rotates by deg degrees about the local Z axis.
func (p Pen) RotateZ(deg float32) Pen {
	return p.With(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)))
}

// Emit transforms verts in place and hands them to the sink. Empty
// batches are dropped.
func (p Pen) Emit(mode Primitive, size float32, verts []Vertex) {
	if p.sink == nil || len(verts) == 0 {
		return
	}
	for i := range verts {
		verts[i].Pos = mgl32.TransformCoordinate(verts[i].Pos, p.xf)
	}
	p.sink.Emit(Batch{Mode: mode, Verts: verts, Size: size})
}

// Quad emits a single flat-colored quad.
func (p Pen) Quad(c Color, a, b, d, e mgl32.Vec3) {
	p.Emit(Quads, 0, []Vertex{{a, c}, {b, c}, {d, c}, {e, c}})
}

// GradientQuad emits a quad whose first edge (a, b) has color top and
// second edge (d, e) has color bottom.
func (p Pen) GradientQuad(top, bottom Color, a, b, d, e mgl32.Vec3) {
	p.Emit(Quads, 0, []Vertex{{a, top}, {b, top}, {d, bottom}, {e, bottom}})
}

// Lines emits independent segments from consecutive point pairs.
func (p Pen) Lines(c Color, width float32, pts ...mgl32.Vec3) {
	verts := make([]Vertex, 0, len(pts))
	for _, pt := range pts {
		verts = append(verts, Vertex{pt, c})
	}
	p.Emit(Lines, width, verts)
}

// Point emits one point of the given size.
func (p Pen) Point(c Color, size float32, pos mgl32.Vec3) {
	p.Emit(Points, size, []Vertex{{pos, c}})
}
