package main

import (
	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/constant"
	"github.com/gbatools/gbanim/pad"
	"github.com/gbatools/gbanim/player"
	"github.com/gbatools/gbanim/screen"
	"github.com/gbatools/gbanim/window"
)

type GBAnim struct {
	player *player.Player
	pad    *pad.Pad
	wind   window.Window
}

func NewGBAnim(wind window.Window, an *anim.Animation) (*GBAnim, error) {
	// Build the components
	pres := screen.NewPresenter(wind)
	pl := player.NewPlayer(an, pres)
	pd := pad.NewPad()

	// Clear to black, then show the first frame
	if err := pres.Clear(constant.COLOR_BLACK); err != nil {
		return nil, err
	}
	if err := pl.Reset(); err != nil {
		return nil, err
	}

	return &GBAnim{pl, pd, wind}, nil
}

// Update runs one vertical-sync step: apply button edges, then tick the
// animation.
func (a *GBAnim) Update(event *window.WindowEvent) error {
	a.pad.Update(event.Buttons)

	if a.pad.Pressed(constant.BTN_A) {
		if err := a.player.Pause(); err != nil {
			return err
		}
	}
	if a.pad.Pressed(constant.BTN_B) {
		if err := a.player.Resume(); err != nil {
			return err
		}
	}

	return a.player.Tick()
}

func (a *GBAnim) Run() error {
	synchronizer := window.NewSDLTimeSynchronizer(constant.TARGET_FPS)
	for {
		escape, event := a.wind.HandleEvents()
		if escape {
			return nil
		}

		if err := a.Update(event); err != nil {
			return err
		}

		if err := a.wind.UpdateScreen(); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
}
