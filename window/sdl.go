package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/constant"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

type SDLWindow struct {
	window      *sdl.Window
	renderer    *sdl.Renderer
	texture     *sdl.Texture
	srcPic      [constant.LCD_PIXELS]uint16
	prevButtons uint8
}

func NewSDLWindow() (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		constant.WINDOW_WIDTH,
		constant.WINDOW_HEIGHT,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		constant.LCD_WIDTH,
		constant.LCD_HEIGHT,
	)
	if err != nil {
		return nil, err
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
		srcPic:   [constant.LCD_PIXELS]uint16{},
	}, nil
}

func (wind *SDLWindow) WriteBuffer(pixels []uint16) error {
	if len(pixels) != constant.LCD_PIXELS {
		return fmt.Errorf(
			"invalid length of pixel data: expected %d, got %d",
			constant.LCD_PIXELS,
			len(pixels),
		)
	}
	copy(wind.srcPic[:], pixels)
	return nil
}

// HandleEvents polls SDL and reports (escape, held buttons). Keys:
// k = A (pause), j = B (resume), matching the usual emulator layout.
func (wind *SDLWindow) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{Buttons: wind.prevButtons}
	escape := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			escape = true

		case *sdl.KeyboardEvent:
			kbEvent := event.(*sdl.KeyboardEvent)
			switch kbEvent.Type {
			case sdl.KEYDOWN:
				switch kbEvent.Keysym.Sym {
				case sdl.K_ESCAPE:
					escape = true
				case sdl.K_k:
					we.Buttons |= (1 << constant.BTN_A)
				case sdl.K_j:
					we.Buttons |= (1 << constant.BTN_B)
				}

			case sdl.KEYUP:
				switch kbEvent.Keysym.Sym {
				case sdl.K_k:
					we.Buttons &^= (1 << constant.BTN_A)
				case sdl.K_j:
					we.Buttons &^= (1 << constant.BTN_B)
				}
			}
		}
	}

	wind.prevButtons = we.Buttons

	return escape, we
}

func (wind *SDLWindow) UpdateScreen() error {
	// Update the texture
	pixels, _, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	for row := 0; row < constant.LCD_HEIGHT; row++ {
		for col := 0; col < constant.LCD_WIDTH; col++ {
			off := row*constant.LCD_WIDTH + col
			r, g, b := anim.RGB888From15(wind.srcPic[off])
			pixels[off*4+0] = b
			pixels[off*4+1] = g
			pixels[off*4+2] = r
			pixels[off*4+3] = 0xff
		}
	}
	wind.texture.Unlock()

	// Present the scene
	wind.renderer.Clear()
	wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()

	return nil
}

type SDLTimeSynchronizer struct {
	prevTicks, usPerFrame int64
}

func NewSDLTimeSynchronizer(targetFPS float64) *SDLTimeSynchronizer {
	return &SDLTimeSynchronizer{
		prevTicks:  int64(sdl.GetTicks()) * 1000,
		usPerFrame: int64(1000000.0 / targetFPS),
	}
}

func (ts *SDLTimeSynchronizer) MaySleep() {
	cur := int64(sdl.GetTicks()) * 1000
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		sdl.Delay(uint32(diff / 1000))
	}
	ts.prevTicks += ts.usPerFrame
}
