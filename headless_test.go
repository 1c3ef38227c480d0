package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"walkthrough3d/internal/config"
	"walkthrough3d/internal/scene"
)

func TestWriteSnapshot(t *testing.T) {
	Convey("Given a small snapshot config", t, func() {
		cfg := config.Default()
		path := filepath.Join(t.TempDir(), "shots", "front.png")
		cfg.Resolve(config.Flags{Width: 32, Height: 32, Snapshot: path})
		sc := scene.New(cfg.Layout)

		So(writeSnapshot(cfg, sc), ShouldBeNil)

		Convey("the image has the requested size", func() {
			f, err := os.Open(path)
			So(err, ShouldBeNil)
			defer f.Close()

			img, err := png.Decode(f)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 32)
			So(img.Bounds().Dy(), ShouldEqual, 32)
		})

		Convey("an unknown extension is refused", func() {
			cfg.Snapshot.Path = filepath.Join(t.TempDir(), "front.bmp")
			So(writeSnapshot(cfg, sc), ShouldNotBeNil)
		})
	})
}
