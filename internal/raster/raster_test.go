package raster

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"

	"walkthrough3d/internal/geom"
)

const size = 64

var (
	red  = geom.RGB(1, 0, 0)
	blue = geom.RGB(0, 0, 1)
	sky  = geom.RGB(0.5, 0.8, 1)
)

func newTestCanvas() *Canvas {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	c := NewCanvas(size, size, view, Perspective(size, size))
	c.Clear(sky)
	return c
}

func pixel(c *Canvas, x, y int) [3]uint8 {
	o := (y*c.Buffer().Width + x) * 4
	px := c.Buffer().Color
	return [3]uint8{px[o], px[o+1], px[o+2]}
}

func TestCanvasFill(t *testing.T) {
	Convey("Given a canvas looking at the origin", t, func() {
		c := newTestCanvas()
		pen := geom.NewPen(c)

		Convey("an empty frame is the clear color", func() {
			So(pixel(c, size/2, size/2), ShouldResemble, [3]uint8{128, 204, 255})
		})

		Convey("a box in front of the eye covers the center", func() {
			pen.Box(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, red)
			So(pixel(c, size/2, size/2), ShouldResemble, [3]uint8{255, 0, 0})
			So(pixel(c, 0, 0), ShouldResemble, [3]uint8{128, 204, 255})
		})

		Convey("the nearer box wins regardless of order", func() {
			pen.Box(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 1, 0.2}, blue)
			pen.Box(mgl32.Vec3{}, mgl32.Vec3{2, 2, 0.2}, red)
			So(pixel(c, size/2, size/2), ShouldResemble, [3]uint8{0, 0, 255})
			// the far box still shows around the near one
			So(pixel(c, size/2, size/2-12), ShouldResemble, [3]uint8{255, 0, 0})
		})

		Convey("geometry behind the eye is clipped away", func() {
			pen.Box(mgl32.Vec3{0, 0, 8}, mgl32.Vec3{1, 1, 1}, red)
			So(pixel(c, size/2, size/2), ShouldResemble, [3]uint8{128, 204, 255})
		})

		Convey("a quad crossing the eye plane still draws its visible part", func() {
			pen.Quad(red,
				mgl32.Vec3{-1, -0.2, 10}, mgl32.Vec3{1, -0.2, 10},
				mgl32.Vec3{1, -0.2, -10}, mgl32.Vec3{-1, -0.2, -10})
			So(pixel(c, size/2, size-1), ShouldResemble, [3]uint8{255, 0, 0})
			So(pixel(c, size/2, size/2+4), ShouldResemble, [3]uint8{255, 0, 0})
			// above the horizon
			So(pixel(c, size/2, size/2-4), ShouldResemble, [3]uint8{128, 204, 255})
		})

		Convey("gradient quads interpolate color", func() {
			pen.GradientQuad(geom.RGB(1, 1, 1), geom.RGB(0, 0, 0),
				mgl32.Vec3{-2, 2, 0}, mgl32.Vec3{2, 2, 0},
				mgl32.Vec3{2, -2, 0}, mgl32.Vec3{-2, -2, 0})
			top := pixel(c, size/2, size/2-10)
			bottom := pixel(c, size/2, size/2+10)
			So(top[0], ShouldBeGreaterThan, bottom[0])
			So(pixel(c, size/2, size/2)[0], ShouldBeBetween, uint8(100), uint8(155))
		})
	})
}

func TestCanvasLines(t *testing.T) {
	Convey("Given a canvas looking at the origin", t, func() {
		c := newTestCanvas()
		pen := geom.NewPen(c)

		Convey("a horizontal line crosses the center row", func() {
			pen.Lines(red, 1, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{1, 0, 0})
			row := size / 2
			hits := 0
			for x := 0; x < size; x++ {
				for _, y := range []int{row - 1, row} {
					if pixel(c, x, y) == [3]uint8{255, 0, 0} {
						hits++
						break
					}
				}
			}
			So(hits, ShouldBeGreaterThan, 20)
		})

		Convey("a seam lying on a surface shows through it", func() {
			pen.Quad(blue,
				mgl32.Vec3{-2, -2, 0}, mgl32.Vec3{2, -2, 0},
				mgl32.Vec3{2, 2, 0}, mgl32.Vec3{-2, 2, 0})
			pen.Lines(red, 3, mgl32.Vec3{0, -1, 0.0007}, mgl32.Vec3{0, 1, 0.0007})
			So(pixel(c, size/2, size/2), ShouldResemble, [3]uint8{255, 0, 0})
		})

		Convey("a line running from behind the eye is trimmed, not dropped", func() {
			pen.Lines(red, 2, mgl32.Vec3{0, -0.5, 20}, mgl32.Vec3{0, -0.5, -20})
			found := false
			for y := size / 2; y < size; y++ {
				if pixel(c, size/2, y) == [3]uint8{255, 0, 0} || pixel(c, size/2-1, y) == [3]uint8{255, 0, 0} {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})

		Convey("points stamp a square", func() {
			pen.Point(red, 5, mgl32.Vec3{})
			So(pixel(c, size/2, size/2), ShouldResemble, [3]uint8{255, 0, 0})
			So(pixel(c, size/2-2, size/2-2), ShouldResemble, [3]uint8{255, 0, 0})
			So(pixel(c, size/2+4, size/2+4), ShouldResemble, [3]uint8{128, 204, 255})
		})
	})
}

func TestFrameBuffer(t *testing.T) {
	Convey("Degenerate input never panics", t, func() {
		So(func() { NewFrameBuffer(-3, 0).Image() }, ShouldNotPanic)

		c := newTestCanvas()
		nan := float32(math.NaN())
		So(func() {
			geom.NewPen(c).Box(mgl32.Vec3{nan, 0, 0}, mgl32.Vec3{1, 1, 1}, red)
			geom.NewPen(c).Lines(red, 1, mgl32.Vec3{nan, nan, nan}, mgl32.Vec3{})
			geom.NewPen(c).Box(mgl32.Vec3{}, mgl32.Vec3{0, 0, 0}, red)
		}, ShouldNotPanic)
	})

	Convey("Image copies the color buffer", t, func() {
		fb := NewFrameBuffer(2, 1)
		fb.Clear(geom.RGB(1, 0.5, 0))
		img := fb.Image()
		So(img.Bounds().Dx(), ShouldEqual, 2)
		So(img.Pix[:4], ShouldResemble, []uint8{255, 128, 0, 255})
	})
}
