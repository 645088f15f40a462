package player

import (
	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/util"
)

// Renderer is the drawing surface the player talks to. *screen.Presenter
// satisfies it; tests substitute a recorder.
type Renderer interface {
	Blit(f anim.Frame) error
	ColorBars() error
}

// Player advances a looping animation one vertical-sync tick at a time.
// All mutation happens on the main loop between sync points.
type Player struct {
	anim    *anim.Animation
	rend    Renderer
	frame   int
	elapsed uint
	playing bool
}

func NewPlayer(an *anim.Animation, rend Renderer) *Player {
	return &Player{
		anim:    an,
		rend:    rend,
		playing: true,
	}
}

// Frame reports the frame currently on display.
func (p *Player) Frame() int {
	return p.frame
}

func (p *Player) Playing() bool {
	return p.playing
}

// Reset draws frame 0 without touching the play state. Called once at
// startup before the first tick.
func (p *Player) Reset() error {
	p.frame = 0
	p.elapsed = 0
	return p.draw(0)
}

// Tick consumes one vertical-sync signal. While playing, the elapsed
// counter runs up to the current frame's duration; crossing it advances
// to the next frame, wrapping past the last, and repaints. Paused, it
// does nothing.
func (p *Player) Tick() error {
	if !p.playing {
		return nil
	}
	if p.anim.FrameCount() <= 1 {
		return nil
	}

	p.elapsed++
	if p.elapsed < p.anim.Duration(p.frame) {
		return nil
	}

	p.elapsed = 0
	p.frame++
	if p.frame >= p.anim.FrameCount() {
		p.frame = 0
	}
	util.Trace("advance to frame %d", p.frame)
	return p.draw(p.frame)
}

// Pause freezes playback and paints the color-bar test pattern once.
func (p *Player) Pause() error {
	p.playing = false
	util.Trace("paused at frame %d", p.frame)
	return p.rend.ColorBars()
}

// Resume restarts playback from frame 0 regardless of where the
// animation stopped.
func (p *Player) Resume() error {
	p.playing = true
	p.frame = 0
	p.elapsed = 0
	util.Trace("resumed")
	return p.draw(0)
}

// draw ignores out-of-range indices; the condition cannot arise from
// Tick/Resume but the original firmware checks it and so do we.
func (p *Player) draw(index int) error {
	if index >= p.anim.FrameCount() {
		return nil
	}
	return p.rend.Blit(p.anim.Frame(index))
}
