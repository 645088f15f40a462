package window

// WindowEvent carries the logical button bits currently held, sampled
// once per tick. Edge detection happens in the pad package.
type WindowEvent struct {
	Buttons uint8
}

type Window interface {
	WriteBuffer(pixels []uint16) error
	UpdateScreen() error
	HandleEvents() (bool, *WindowEvent)
}
