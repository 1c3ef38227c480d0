package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		in vec3 vc;
		in float vs;
		uniform mat4 mvp;
		out vec3 colour;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
			gl_PointSize = max(vs, 1.0);
			colour = vc;
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec3 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(colour, 1.0);
		}
	` + "\x00"
)

// renderer streams a recorded frame into one vertex buffer and draws it.
type renderer struct {
	program    uint32
	mvpUniform int32
	vao        uint32
	vbo        uint32
	packed     []float32
}

func newRenderer() (*renderer, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	r := &renderer{
		program:    program,
		mvpUniform: gl.GetUniformLocation(program, gl.Str("mvp\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(geom.Stride * 4)
	attrib := func(name string, size int32, offset int) {
		loc := uint32(gl.GetAttribLocation(program, gl.Str(name+"\x00")))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, size, gl.FLOAT, false, stride, gl.PtrOffset(offset*4))
	}
	attrib("vp", 3, 0)
	attrib("vc", 3, 3)
	attrib("vs", 1, 6)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	// seams and outlines drawn on a surface must win the depth test
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)

	return r, nil
}

// draw uploads frame and renders it with the given view-projection.
func (r *renderer) draw(frame *geom.Recorder, mvp mgl32.Mat4, clear geom.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := frame.Pack(r.packed)
	r.packed = p.Data
	if len(p.Data) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.Data)*4, gl.Ptr(p.Data), gl.DYNAMIC_DRAW)

	first := int32(0)
	for _, group := range []struct {
		mode  uint32
		count int
	}{
		{gl.TRIANGLES, p.Triangles},
		{gl.LINES, p.Lines},
		{gl.POINTS, p.Points},
	} {
		if group.count > 0 {
			gl.DrawArrays(group.mode, first, int32(group.count))
		}
		first += int32(group.count)
	}
}

func (r *renderer) delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
