package constant

const (
	BTN_A = 0x00
	BTN_B = 0x01

	LCD_WIDTH  = 240
	LCD_HEIGHT = 160
	LCD_PIXELS = LCD_WIDTH * LCD_HEIGHT

	WINDOW_SCALE  = 3
	WINDOW_WIDTH  = LCD_WIDTH * WINDOW_SCALE
	WINDOW_HEIGHT = LCD_HEIGHT * WINDOW_SCALE
	WINDOW_TITLE  = "gbanim"

	// One tick per display refresh; animation durations are counted in these.
	TARGET_FPS = 60
)

// BGR555: r in bits 0-4, g in 5-9, b in 10-14.
const (
	COLOR_BLACK uint16 = 0x0000
	COLOR_RED   uint16 = 0x001f
	COLOR_GREEN uint16 = 0x03e0
	COLOR_BLUE  uint16 = 0x7c00
	COLOR_WHITE uint16 = 0x7fff
)
