package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/config"
	"walkthrough3d/internal/geom"
	"walkthrough3d/internal/scene"
)

// maxFrameTime caps how much simulation a single slow frame can owe.
const maxFrameTime = 0.25

func main() {
	configPath := flag.String("config", "", "JSON config file")
	snapshotPath := flag.String("snapshot", "", "render one frame to this .webp, .tga or .png and exit")
	width := flag.Int("width", 0, "window or snapshot width")
	height := flag.Int("height", 0, "window or snapshot height")
	supersample := flag.Int("supersample", 0, "snapshot supersampling factor")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalln(err)
		}
	}
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		Snapshot:    *snapshotPath,
		Supersample: *supersample,
	})

	sc := scene.New(cfg.Layout)

	if cfg.Snapshot.Path != "" {
		if err := writeSnapshot(cfg, sc); err != nil {
			log.Fatalln(err)
		}
		log.Printf("wrote %s (%dx%d)", cfg.Snapshot.Path, cfg.Snapshot.Width, cfg.Snapshot.Height)
		return
	}

	if err := run(cfg, sc); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config.Config, sc *scene.Scene) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win := cfg.Window
	window, err := glfw.CreateWindow(win.Width, win.Height, win.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)
	fmt.Println("Controls: W/A/S/D move, mouse look, Space jump, F door, Esc quit")

	r, err := newRenderer()
	if err != nil {
		return err
	}
	defer r.delete()

	var door scene.Door
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyF:
			door.Toggle()
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	// Projection Matrix
	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	projection := mgl32.Perspective(mgl32.DegToRad(45.0), float32(win.Width)/float32(win.Height), 0.1, 100.0)

	cam := cfg.Camera.NewCamera()
	var (
		cursor mouse
		frame  geom.Recorder
	)
	tick := 1.0 / float64(win.TickRate)
	accumulator := 0.0

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		// Calculate Delta Time
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		// FPS Counter Update (every 1 second)
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", win.Title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		cam.ProcessMouse(cursor.delta(window))

		accumulator += min(deltaTime, maxFrameTime)
		for accumulator >= tick {
			cam.Update(pollKeys(window))
			accumulator -= tick
		}

		frame.Reset()
		sc.Draw(geom.NewPen(&frame), cam.Position, door)

		mvp := projection.Mul4(cam.View())
		r.draw(&frame, mvp, sc.ClearColor(cam.Position))

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
