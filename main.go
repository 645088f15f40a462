package main

import (
	"log"
	"os"
	"runtime/pprof"

	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/animdata"
	"github.com/gbatools/gbanim/util"
	"github.com/gbatools/gbanim/window"
)

//go:generate go run ./cmd/gifconv -o animdata/animdata.go --package animdata animation.gif

// loadAnimation prefers the gifconv tables baked into the animdata
// package and falls back to the synthesized demo when none were
// generated.
func loadAnimation() (*anim.Animation, error) {
	if animdata.AnimationFrameCount > 0 {
		return anim.FromTables(animdata.AnimationFrames, animdata.AnimationDurations)
	}
	return anim.Builtin(), nil
}

func run() error {
	if os.Getenv("GBANIM_TRACE") == "1" {
		util.EnableTrace()
	}
	if filename := os.Getenv("GBANIM_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}

	// Create a window
	wind, err := window.NewSDLWindow()
	if err != nil {
		return err
	}

	// Go animation
	an, err := loadAnimation()
	if err != nil {
		return err
	}
	gbanim, err := NewGBAnim(wind, an)
	if err != nil {
		return err
	}
	return gbanim.Run()
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
