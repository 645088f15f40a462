package screen

import (
	"fmt"

	"github.com/gbatools/gbanim/constant"
)

// Buffer is an in-memory PixelSink. It stands in for the display in
// tests and keeps a write count so callers can assert how often the
// surface was repainted.
type Buffer struct {
	pixels [constant.LCD_PIXELS]uint16
	writes int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) WriteBuffer(pixels []uint16) error {
	if len(pixels) != constant.LCD_PIXELS {
		return fmt.Errorf(
			"invalid length of pixel data: expected %d, got %d",
			constant.LCD_PIXELS,
			len(pixels),
		)
	}
	copy(b.pixels[:], pixels)
	b.writes++
	return nil
}

func (b *Buffer) Pixels() []uint16 {
	return b.pixels[:]
}

// At returns the cell at (x, y) in row-major order.
func (b *Buffer) At(x, y int) uint16 {
	return b.pixels[y*constant.LCD_WIDTH+x]
}

func (b *Buffer) Writes() int {
	return b.writes
}
