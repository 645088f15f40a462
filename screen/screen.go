package screen

import (
	"fmt"

	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/constant"
)

// PixelSink is the display buffer as this package sees it: a fixed-size
// row-major surface that accepts full-buffer writes. The SDL window
// implements it for real output; Buffer implements it for tests.
type PixelSink interface {
	WriteBuffer(pixels []uint16) error
}

// Presenter owns all drawing to a PixelSink.
type Presenter struct {
	sink PixelSink
	work [constant.LCD_PIXELS]uint16
}

func NewPresenter(sink PixelSink) *Presenter {
	return &Presenter{sink: sink}
}

// Blit copies one frame verbatim into the sink.
func (p *Presenter) Blit(f anim.Frame) error {
	if len(f) != constant.LCD_PIXELS {
		return fmt.Errorf(
			"invalid length of frame data: expected %d, got %d",
			constant.LCD_PIXELS,
			len(f),
		)
	}
	return p.sink.WriteBuffer(f)
}

// ColorBars fills the sink with three equal-width vertical bands:
// red, green, blue.
func (p *Presenter) ColorBars() error {
	for y := 0; y < constant.LCD_HEIGHT; y++ {
		for x := 0; x < constant.LCD_WIDTH; x++ {
			var c uint16
			switch {
			case x < constant.LCD_WIDTH/3:
				c = constant.COLOR_RED
			case x < 2*constant.LCD_WIDTH/3:
				c = constant.COLOR_GREEN
			default:
				c = constant.COLOR_BLUE
			}
			p.work[y*constant.LCD_WIDTH+x] = c
		}
	}
	return p.sink.WriteBuffer(p.work[:])
}

// Clear fills the sink with a single color.
func (p *Presenter) Clear(color uint16) error {
	for i := range p.work {
		p.work[i] = color
	}
	return p.sink.WriteBuffer(p.work[:])
}
