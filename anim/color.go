package anim

// RGB15 packs 5-bit color components into a BGR555 cell.
func RGB15(r, g, b uint8) uint16 {
	return uint16(r&0x1f) | uint16(g&0x1f)<<5 | uint16(b&0x1f)<<10
}

// RGB15From888 quantizes 8-bit color components down to BGR555.
func RGB15From888(r, g, b uint8) uint16 {
	return RGB15(r>>3, g>>3, b>>3)
}

// RGB888From15 expands a BGR555 cell back to 8-bit components.
func RGB888From15(p uint16) (r, g, b uint8) {
	rr := p & 0x1f
	gg := (p >> 5) & 0x1f
	bb := (p >> 10) & 0x1f

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 31)
	b = uint8((bb * 255) / 31)
	return r, g, b
}
