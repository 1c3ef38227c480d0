package main

import (
	"walkthrough3d/internal/config"
	"walkthrough3d/internal/geom"
	"walkthrough3d/internal/raster"
	"walkthrough3d/internal/scene"
	"walkthrough3d/internal/snapshot"
)

// writeSnapshot renders the start pose in software at the supersampled
// size, scales it down and writes it to cfg.Snapshot.Path.
func writeSnapshot(cfg config.Config, sc *scene.Scene) error {
	ss := cfg.Snapshot
	w, h := ss.Width*ss.Supersample, ss.Height*ss.Supersample

	cam := cfg.Camera.NewCamera()
	canvas := raster.NewCanvas(w, h, cam.View(), raster.Perspective(w, h))
	canvas.Clear(sc.ClearColor(cam.Position))
	sc.Draw(geom.NewPen(canvas), cam.Position, scene.Door{})

	img := snapshot.Downsample(canvas.Image(), ss.Width, ss.Height)
	return snapshot.Write(ss.Path, img)
}
