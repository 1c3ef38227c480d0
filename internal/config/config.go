package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/camera"
	"walkthrough3d/internal/scene"
)

// Config holds window, camera, building and snapshot settings.
type Config struct {
	Window   Window       `json:"window"`
	Camera   Camera       `json:"camera"`
	Layout   scene.Layout `json:"layout"`
	Snapshot Snapshot     `json:"snapshot"`
}

type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	// TickRate is the simulation rate in ticks per second.
	TickRate int `json:"tick_rate"`
}

type Camera struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch"`

	Speed        float32 `json:"speed"`
	Sensitivity  float32 `json:"sensitivity"`
	Gravity      float32 `json:"gravity"`
	JumpSpeed    float32 `json:"jump_speed"`
	PlayerHeight float32 `json:"player_height"`
}

type Snapshot struct {
	// Path is the output image; its extension picks the encoder.
	Path        string `json:"path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	Snapshot    string
	Supersample int
}

// Default returns the walkthrough as it ships: a 1280x720 window and the
// eye on the street in front of the library.
func Default() Config {
	s := camera.DefaultSettings()
	return Config{
		Window: Window{
			Width:    1280,
			Height:   720,
			Title:    "Biblioteca Pública Estadual de Alagoas - Maceió",
			TickRate: 60,
		},
		Camera: Camera{
			Position:     [3]float32{0, s.PlayerHeight, 25},
			Yaw:          -90,
			Speed:        s.Speed,
			Sensitivity:  s.Sensitivity,
			Gravity:      s.Gravity,
			JumpSpeed:    s.JumpSpeed,
			PlayerHeight: s.PlayerHeight,
		},
		Layout:   scene.DefaultLayout(),
		Snapshot: Snapshot{Supersample: 2},
	}
}

// Load reads a JSON config file on top of Default.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills zero or invalid fields with
// defaults. Camera orientation and position are taken as given.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Window.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Window.Height = flags.Height
	}
	if flags.Snapshot != "" {
		c.Snapshot.Path = flags.Snapshot
	}
	if flags.Supersample > 0 {
		c.Snapshot.Supersample = flags.Supersample
	}

	def := Default()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.TickRate <= 0 {
		c.Window.TickRate = def.Window.TickRate
	}

	if c.Camera.Speed <= 0 {
		c.Camera.Speed = def.Camera.Speed
	}
	if c.Camera.Sensitivity <= 0 {
		c.Camera.Sensitivity = def.Camera.Sensitivity
	}
	// gravity pulls down; anything else leaves the eye floating
	if c.Camera.Gravity >= 0 {
		c.Camera.Gravity = def.Camera.Gravity
	}
	if c.Camera.JumpSpeed <= 0 {
		c.Camera.JumpSpeed = def.Camera.JumpSpeed
	}
	if c.Camera.PlayerHeight <= 0 {
		c.Camera.PlayerHeight = def.Camera.PlayerHeight
	}

	resolveLayout(&c.Layout, def.Layout)

	// Snapshots default to the window size
	if c.Snapshot.Width <= 0 {
		c.Snapshot.Width = c.Window.Width
	}
	if c.Snapshot.Height <= 0 {
		c.Snapshot.Height = c.Window.Height
	}
	if c.Snapshot.Supersample <= 0 {
		c.Snapshot.Supersample = def.Snapshot.Supersample
	}
}

func resolveLayout(l *scene.Layout, def scene.Layout) {
	fill := func(v *float32, d float32) {
		if *v <= 0 {
			*v = d
		}
	}
	fillInt := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}

	fill(&l.HalfWidth, def.HalfWidth)
	fill(&l.HalfDepth, def.HalfDepth)
	if l.Lift < 0 {
		l.Lift = def.Lift
	}
	fill(&l.BaySpacing, def.BaySpacing)
	if l.UpperBays < 0 {
		l.UpperBays = def.UpperBays
	}
	if l.GroundBays == nil {
		l.GroundBays = def.GroundBays
	}
	fillInt(&l.Floors, def.Floors)
	fill(&l.FloorHeight, def.FloorHeight)
	fill(&l.BalconyRail, def.BalconyRail)
	fillInt(&l.BalconyPosts, def.BalconyPosts)
	fill(&l.DoorWidth, def.DoorWidth)
	fill(&l.DoorHeight, def.DoorHeight)
	fill(&l.DoorThickness, def.DoorThickness)
	fill(&l.DoorHinge, def.DoorHinge)
}

// Settings converts the camera section into controller tuning.
func (c Camera) Settings() camera.Settings {
	return camera.Settings{
		Speed:        c.Speed,
		Sensitivity:  c.Sensitivity,
		Gravity:      c.Gravity,
		JumpSpeed:    c.JumpSpeed,
		PlayerHeight: c.PlayerHeight,
	}
}

// NewCamera builds the controller at the configured start pose.
func (c Camera) NewCamera() *camera.Camera {
	return camera.New(mgl32.Vec3(c.Position), c.Yaw, c.Pitch, c.Settings())
}
