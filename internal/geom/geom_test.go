package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

const tol = 1e-5

var red = RGB(1, 0, 0)

func normal(a, b, c Vertex) mgl32.Vec3 {
	return b.Pos.Sub(a.Pos).Cross(c.Pos.Sub(a.Pos))
}

func centroid(tri []Vertex) mgl32.Vec3 {
	return tri[0].Pos.Add(tri[1].Pos).Add(tri[2].Pos).Mul(1.0 / 3)
}

func TestBox(t *testing.T) {
	Convey("Given a recorded box", t, func() {
		rec := &Recorder{}
		center := mgl32.Vec3{1, 2, 3}
		NewPen(rec).Box(center, mgl32.Vec3{2, 4, 6}, red)

		So(len(rec.Batches), ShouldEqual, 1)
		b := rec.Batches[0]
		So(b.Mode, ShouldEqual, Quads)
		So(len(b.Verts), ShouldEqual, 24)

		Convey("every face winds outwards", func() {
			tris := b.Triangles()
			So(len(tris), ShouldEqual, 36)
			for i := 0; i < len(tris); i += 3 {
				n := normal(tris[i], tris[i+1], tris[i+2])
				out := centroid(tris[i : i+3]).Sub(center)
				So(n.Dot(out), ShouldBeGreaterThan, 0)
			}
		})

		Convey("vertices span the extents", func() {
			for _, v := range b.Verts {
				So(v.Pos.X(), ShouldBeIn, float32(0), float32(2))
				So(v.Pos.Y(), ShouldBeIn, float32(0), float32(4))
				So(v.Pos.Z(), ShouldBeIn, float32(0), float32(6))
				So(v.Color, ShouldResemble, red)
			}
		})
	})
}

func TestArchedOpening(t *testing.T) {
	center := mgl32.Vec3{0, 1.4, 4}
	size := mgl32.Vec3{1.6, 2.8, 0.1}

	Convey("A flat arch is only the rectangular body", t, func() {
		rec := &Recorder{}
		NewPen(rec).ArchedOpening(center, size, red, 0)

		So(len(rec.Batches), ShouldEqual, 1)
		So(rec.VertexCount(Quads), ShouldEqual, 4)
		So(rec.VertexCount(TriangleFan), ShouldEqual, 0)

		var top float32 = -100
		for _, v := range rec.Batches[0].Verts {
			if v.Pos.Y() > top {
				top = v.Pos.Y()
			}
		}
		So(top, ShouldAlmostEqual, 1.4+1.4, tol)
	})

	Convey("A full arch caps the body with a half circle", t, func() {
		rec := &Recorder{}
		NewPen(rec).ArchedOpening(center, size, red, 1)

		So(len(rec.Batches), ShouldEqual, 2)
		fan := rec.Batches[1]
		So(fan.Mode, ShouldEqual, TriangleFan)
		So(len(fan.Verts), ShouldEqual, ArchSegments+2)

		base := fan.Verts[0].Pos.Y()
		var peak float32 = base
		for _, v := range fan.Verts[1:] {
			if v.Pos.Y() > peak {
				peak = v.Pos.Y()
			}
			So(v.Pos.Z(), ShouldAlmostEqual, 4, tol)
		}
		r := size.X() / 2
		So(peak-base, ShouldAlmostEqual, r, tol)
		// the cap tops out at the full height of the opening
		So(peak, ShouldAlmostEqual, 1.4+1.4, tol)
	})

	Convey("A very tall ratio never gives the body a negative height", t, func() {
		rec := &Recorder{}
		NewPen(rec).ArchedOpening(center, mgl32.Vec3{4, 0.5, 0}, red, 1)
		body := rec.Batches[0].Verts
		So(body[2].Pos.Y(), ShouldAlmostEqual, body[0].Pos.Y(), tol)
	})
}

func TestCylinder(t *testing.T) {
	Convey("Given a cylinder with 16 slices", t, func() {
		rec := &Recorder{}
		NewPen(rec).Cylinder(mgl32.Vec3{0, 0, 0}, 1, 2, red, 16)

		So(len(rec.Batches), ShouldEqual, 3)
		side, top, bottom := rec.Batches[0], rec.Batches[1], rec.Batches[2]
		So(side.Mode, ShouldEqual, TriangleStrip)
		So(len(side.Verts), ShouldEqual, 34)

		Convey("the caps face away from each other", func() {
			nt := normal(top.Verts[0], top.Verts[1], top.Verts[2])
			nb := normal(bottom.Verts[0], bottom.Verts[1], bottom.Verts[2])
			So(nt.Y(), ShouldBeGreaterThan, 0)
			So(nb.Y(), ShouldBeLessThan, 0)
		})

		Convey("the side faces outwards", func() {
			tris := side.Triangles()
			for i := 0; i < len(tris); i += 3 {
				n := normal(tris[i], tris[i+1], tris[i+2])
				c := centroid(tris[i : i+3])
				So(n.Dot(mgl32.Vec3{c.X(), 0, c.Z()}), ShouldBeGreaterThan, 0)
			}
		})
	})

	Convey("Zero slices produce no geometry", t, func() {
		rec := &Recorder{}
		p := NewPen(rec)
		p.Cylinder(mgl32.Vec3{}, 1, 1, red, 0)
		p.DiskXY(mgl32.Vec3{}, 1, red, 0)
		p.DiskYZ(mgl32.Vec3{}, 1, red, -3)
		p.AnnulusXY(mgl32.Vec3{}, 1, 0.5, red, 0)
		So(rec.Batches, ShouldBeEmpty)
	})
}

func TestDisks(t *testing.T) {
	Convey("A disk in XY is a closed fan facing +Z", t, func() {
		rec := &Recorder{}
		NewPen(rec).DiskXY(mgl32.Vec3{0, 0, 0.5}, 2, red, 8)
		fan := rec.Batches[0]
		So(len(fan.Verts), ShouldEqual, 10)
		So(fan.Verts[9].Pos.X(), ShouldAlmostEqual, fan.Verts[1].Pos.X(), tol)
		So(fan.Verts[9].Pos.Y(), ShouldAlmostEqual, fan.Verts[1].Pos.Y(), tol)
		So(normal(fan.Verts[0], fan.Verts[1], fan.Verts[2]).Z(), ShouldBeGreaterThan, 0)
		for _, v := range fan.Verts[1:] {
			So(v.Pos.Vec2().Len(), ShouldAlmostEqual, 2, tol)
			So(v.Pos.Z(), ShouldAlmostEqual, 0.5, tol)
		}
	})

	Convey("A disk in YZ stays on its x plane", t, func() {
		rec := &Recorder{}
		NewPen(rec).DiskYZ(mgl32.Vec3{3, 1, 1}, 0.5, red, 12)
		for _, v := range rec.Batches[0].Verts {
			So(v.Pos.X(), ShouldAlmostEqual, 3, tol)
		}
	})

	Convey("An annulus alternates outer and inner rims", t, func() {
		rec := &Recorder{}
		NewPen(rec).AnnulusXY(mgl32.Vec3{}, 1, 0.8, red, 24)
		strip := rec.Batches[0]
		So(len(strip.Verts), ShouldEqual, 50)
		for i, v := range strip.Verts {
			want := float32(1)
			if i%2 == 1 {
				want = 0.8
			}
			So(v.Pos.Vec2().Len(), ShouldAlmostEqual, want, tol)
		}
	})
}

func TestPen(t *testing.T) {
	Convey("Derived pens do not leak their transform", t, func() {
		rec := &Recorder{}
		root := NewPen(rec)
		moved := root.Translate(5, 0, 0).RotateY(90)

		moved.Point(red, 4, mgl32.Vec3{1, 0, 0})
		root.Point(red, 4, mgl32.Vec3{1, 0, 0})

		So(len(rec.Batches), ShouldEqual, 2)
		p0 := rec.Batches[0].Verts[0].Pos
		So(p0.X(), ShouldAlmostEqual, 5, tol)
		So(p0.Z(), ShouldAlmostEqual, -1, tol)
		So(rec.Batches[1].Verts[0].Pos, ShouldResemble, mgl32.Vec3{1, 0, 0})
		So(rec.Batches[0].Size, ShouldEqual, float32(4))
	})

	Convey("A pen without a sink is a no-op", t, func() {
		var p Pen
		So(func() { p.Box(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, red) }, ShouldNotPanic)
	})

	Convey("Lines pair up their points", t, func() {
		rec := &Recorder{}
		NewPen(rec).Lines(red, 2, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0})
		b := rec.Batches[0]
		So(b.Filled(), ShouldBeFalse)
		So(len(b.Segments()), ShouldEqual, 2)
		So(b.Triangles(), ShouldBeEmpty)
	})
}

func TestTriangulation(t *testing.T) {
	verts := make([]Vertex, 6)
	Convey("Topologies expand to triangle lists", t, func() {
		So(len(Batch{Mode: Triangles, Verts: verts[:5]}.Triangles()), ShouldEqual, 3)
		So(len(Batch{Mode: Quads, Verts: verts[:4]}.Triangles()), ShouldEqual, 6)
		So(len(Batch{Mode: TriangleFan, Verts: verts}.Triangles()), ShouldEqual, 12)
		So(len(Batch{Mode: TriangleStrip, Verts: verts}.Triangles()), ShouldEqual, 12)
		So(Batch{Mode: TriangleFan, Verts: verts[:2]}.Triangles(), ShouldBeEmpty)
		So(Batch{Mode: Points, Verts: verts}.Triangles(), ShouldBeEmpty)
	})

	Convey("Recorder reset keeps nothing", t, func() {
		rec := &Recorder{}
		rec.Emit(Batch{Mode: Points, Verts: verts[:1]})
		rec.Reset()
		So(rec.Batches, ShouldBeEmpty)
	})
}

func TestPick(t *testing.T) {
	Convey("Pick wraps around the sequence", t, func() {
		seq := []int{10, 20, 30}
		So(Pick(seq, 0), ShouldEqual, 10)
		So(Pick(seq, 4), ShouldEqual, 20)
		So(Pick(seq, 300), ShouldEqual, 10)
		So(Pick(seq, -1), ShouldEqual, 30)
		So(Pick([]int(nil), 5), ShouldEqual, 0)
	})

	Convey("Color scaling saturates", t, func() {
		c := RGB(0.5, 0.9, 0).Scale(1.5)
		So(c.R, ShouldAlmostEqual, 0.75, tol)
		So(c.G, ShouldEqual, float32(1))
		So(c.B, ShouldEqual, float32(0))
	})
}

func TestPack(t *testing.T) {
	Convey("Given a frame mixing fills, lines and points", t, func() {
		rec := &Recorder{}
		pen := NewPen(rec)
		pen.Point(red, 4, mgl32.Vec3{9, 9, 9})
		pen.Lines(red, 2, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{5, 5, 5})
		pen.Quad(red, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 1, 0})

		p := rec.Pack(nil)

		Convey("vertices are grouped by topology", func() {
			So(p.Triangles, ShouldEqual, 6)
			So(p.Lines, ShouldEqual, 2)
			So(p.Points, ShouldEqual, 1)
			So(len(p.Data), ShouldEqual, (6+2+1)*Stride)
		})

		Convey("the point comes last and keeps its size", func() {
			last := p.Data[len(p.Data)-Stride:]
			So(last, ShouldResemble, []float32{9, 9, 9, 1, 0, 0, 4})
		})

		Convey("the buffer is reused", func() {
			buf := make([]float32, 0, 128)
			again := rec.Pack(buf)
			So(&again.Data[0], ShouldEqual, &buf[:1][0])
		})
	})
}
