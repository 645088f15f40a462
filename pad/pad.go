package pad

// Pad derives pressed edges from the held-button bits the window
// reports each tick, the way the firmware's scanKeys/keysDown pair
// does. A button appears in Pressed for exactly one Update after it
// goes down.
type Pad struct {
	held    uint8
	pressed uint8
}

func NewPad() *Pad {
	return &Pad{}
}

func (p *Pad) Update(held uint8) {
	p.pressed = held &^ p.held
	p.held = held
}

// Pressed reports whether the button (a constant.BTN_* bit position)
// went down since the previous Update.
func (p *Pad) Pressed(button uint8) bool {
	return p.pressed&(1<<button) != 0
}

// Held reports whether the button is currently down.
func (p *Pad) Held(button uint8) bool {
	return p.held&(1<<button) != 0
}
