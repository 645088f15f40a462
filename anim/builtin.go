package anim

import "github.com/gbatools/gbanim/constant"

const (
	builtinFrameCount = 16
	builtinDuration   = 4
)

// Builtin synthesizes the demo animation compiled into the gbanim
// binary: a diagonal color sweep cycling through the 15-bit gamut.
// Real content comes from gifconv output; this just keeps the binary
// runnable without any generated data.
func Builtin() *Animation {
	frames := make([]Frame, builtinFrameCount)
	durations := make([]uint, builtinFrameCount)

	for i := range frames {
		f := make(Frame, constant.LCD_PIXELS)
		phase := i * 32 / builtinFrameCount
		for y := 0; y < constant.LCD_HEIGHT; y++ {
			for x := 0; x < constant.LCD_WIDTH; x++ {
				r := uint8((x*32/constant.LCD_WIDTH + phase) % 32)
				g := uint8((y*32/constant.LCD_HEIGHT + phase) % 32)
				b := uint8(((x+y)*32/(constant.LCD_WIDTH+constant.LCD_HEIGHT) + 31 - phase) % 32)
				f[y*constant.LCD_WIDTH+x] = RGB15(r, g, b)
			}
		}
		frames[i] = f
		durations[i] = builtinDuration
	}

	an, err := New(frames, durations)
	if err != nil {
		// The tables above are constructed to satisfy New's invariants.
		panic(err)
	}
	return an
}
