package geom

import "github.com/go-gl/mathgl/mgl32"

// Color is a normalized RGB triple.
type Color struct {
	R, G, B float32
}

// RGB builds a Color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

// Scale multiplies every channel by f, saturating at 1.
func (c Color) Scale(f float32) Color {
	return Color{sat(c.R * f), sat(c.G * f), sat(c.B * f)}
}

func sat(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// Vertex is a world-space position with its color.
type Vertex struct {
	Pos   mgl32.Vec3
	Color Color
}

// Primitive is the topology of a batch.
type Primitive uint8

const (
	Triangles Primitive = iota
	Quads
	TriangleFan
	TriangleStrip
	Lines
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Quads:
		return "quads"
	case TriangleFan:
		return "triangle-fan"
	case TriangleStrip:
		return "triangle-strip"
	case Lines:
		return "lines"
	case Points:
		return "points"
	}
	return "unknown"
}

// Batch is one emission: a topology and its vertices.
// Size is the line width or point size and is ignored for filled batches.
type Batch struct {
	Mode  Primitive
	Verts []Vertex
	Size  float32
}

// Filled reports whether the batch covers area.
func (b Batch) Filled() bool {
	return b.Mode <= TriangleStrip
}

// Triangles expands a filled batch into an independent triangle list.
// Trailing vertices that do not complete a primitive are dropped.
func (b Batch) Triangles() []Vertex {
	v := b.Verts
	var out []Vertex
	switch b.Mode {
	case Triangles:
		n := len(v) / 3 * 3
		out = append(out, v[:n]...)
	case Quads:
		for i := 0; i+3 < len(v); i += 4 {
			out = append(out, v[i], v[i+1], v[i+2], v[i], v[i+2], v[i+3])
		}
	case TriangleFan:
		for i := 1; i+1 < len(v); i++ {
			out = append(out, v[0], v[i], v[i+1])
		}
	case TriangleStrip:
		for i := 0; i+2 < len(v); i++ {
			if i%2 == 0 {
				out = append(out, v[i], v[i+1], v[i+2])
			} else {
				out = append(out, v[i+1], v[i], v[i+2])
			}
		}
	}
	return out
}

// Segments returns the endpoint pairs of a line batch.
func (b Batch) Segments() []Vertex {
	if b.Mode != Lines {
		return nil
	}
	n := len(b.Verts) / 2 * 2
	return b.Verts[:n]
}

// Sink consumes batches. A renderer, a rasterizer and a Recorder are sinks.
type Sink interface {
	Emit(b Batch)
}

// Recorder keeps every batch of a frame in emission order.
type Recorder struct {
	Batches []Batch
}

func (r *Recorder) Emit(b Batch) {
	r.Batches = append(r.Batches, b)
}

// Reset empties the recorder and keeps its storage.
func (r *Recorder) Reset() {
	clear(r.Batches)
	r.Batches = r.Batches[:0]
}

// VertexCount sums vertices across batches of the given mode.
func (r *Recorder) VertexCount(mode Primitive) int {
	n := 0
	for _, b := range r.Batches {
		if b.Mode == mode {
			n += len(b.Verts)
		}
	}
	return n
}
