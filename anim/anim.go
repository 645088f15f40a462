package anim

import (
	"fmt"

	"github.com/gbatools/gbanim/constant"
)

// Frame is one full still image: LCD_PIXELS cells in row-major order,
// one BGR555 value per pixel.
type Frame []uint16

// Animation pairs an ordered frame sequence with a per-frame duration
// table. Durations are vertical-sync ticks. Both slices are owned by the
// Animation after New and must not be mutated by the caller.
type Animation struct {
	frames    []Frame
	durations []uint
}

func New(frames []Frame, durations []uint) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("animation needs at least one frame")
	}
	if len(frames) != len(durations) {
		return nil, fmt.Errorf(
			"mismatched animation tables: %d frames, %d durations",
			len(frames),
			len(durations),
		)
	}
	for i, f := range frames {
		if len(f) != constant.LCD_PIXELS {
			return nil, fmt.Errorf(
				"invalid length of frame %d: expected %d, got %d",
				i,
				constant.LCD_PIXELS,
				len(f),
			)
		}
	}
	for i, d := range durations {
		if d == 0 {
			return nil, fmt.Errorf("invalid duration of frame %d: must be positive", i)
		}
	}
	return &Animation{frames: frames, durations: durations}, nil
}

// FromTables builds an Animation from the plain tables gifconv emits:
// one []uint16 per frame plus the tick durations. Validation is the
// same as New's.
func FromTables(frames [][]uint16, durations []uint) (*Animation, error) {
	fs := make([]Frame, len(frames))
	for i, f := range frames {
		fs[i] = Frame(f)
	}
	return New(fs, durations)
}

func (a *Animation) FrameCount() int {
	return len(a.frames)
}

func (a *Animation) Frame(index int) Frame {
	return a.frames[index]
}

func (a *Animation) Duration(index int) uint {
	return a.durations[index]
}

func (a *Animation) Durations() []uint {
	return a.durations
}
