package geom

// Stride is the number of floats per packed vertex: position, color and
// line width or point size.
const Stride = 7

// Packed is a frame flattened for a single buffer upload. Vertices are
// grouped as triangles, then line segments, then points; the counts are
// in vertices.
type Packed struct {
	Data      []float32
	Triangles int
	Lines     int
	Points    int
}

// Pack flattens the recorded frame into dst, reusing its storage.
func (r *Recorder) Pack(dst []float32) Packed {
	p := Packed{Data: dst[:0]}
	put := func(verts []Vertex, size float32) {
		for _, v := range verts {
			p.Data = append(p.Data,
				v.Pos[0], v.Pos[1], v.Pos[2],
				v.Color.R, v.Color.G, v.Color.B,
				size)
		}
	}

	for _, b := range r.Batches {
		if b.Filled() {
			t := b.Triangles()
			put(t, 0)
			p.Triangles += len(t)
		}
	}
	for _, b := range r.Batches {
		if s := b.Segments(); len(s) > 0 {
			put(s, b.Size)
			p.Lines += len(s)
		}
	}
	for _, b := range r.Batches {
		if b.Mode == Points {
			put(b.Verts, b.Size)
			p.Points += len(b.Verts)
		}
	}
	return p
}
