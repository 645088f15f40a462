package anim

import (
	"testing"

	"github.com/gbatools/gbanim/constant"
)

func blankFrames(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = make(Frame, constant.LCD_PIXELS)
	}
	return frames
}

func TestNew(t *testing.T) {
	table := []struct {
		name      string
		frames    []Frame
		durations []uint
		wantErr   bool
	}{
		{"single frame", blankFrames(1), []uint{1}, false},
		{"three frames", blankFrames(3), []uint{2, 2, 2}, false},
		{"no frames", nil, nil, true},
		{"more durations than frames", blankFrames(1), []uint{1, 1}, true},
		{"more frames than durations", blankFrames(2), []uint{1}, true},
		{"zero duration", blankFrames(2), []uint{1, 0}, true},
		{"short frame", []Frame{make(Frame, 7)}, []uint{1}, true},
	}

	for _, entry := range table {
		an, err := New(entry.frames, entry.durations)
		if entry.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got animation with %d frames", entry.name, an.FrameCount())
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", entry.name, err)
		}
		if an.FrameCount() != len(entry.frames) {
			t.Fatalf("%s: (got: %d frames) (expected: %d)", entry.name, an.FrameCount(), len(entry.frames))
		}
		for i, d := range entry.durations {
			if an.Duration(i) != d {
				t.Fatalf("%s: duration %d (got: %d) (expected: %d)", entry.name, i, an.Duration(i), d)
			}
		}
	}
}

func TestFromTables(t *testing.T) {
	// The plain-table shape gifconv emits builds an Animation directly.
	tables := make([][]uint16, 2)
	for i := range tables {
		row := make([]uint16, constant.LCD_PIXELS)
		row[0] = uint16(i + 1)
		tables[i] = row
	}

	an, err := FromTables(tables, []uint{3, 5})
	if err != nil {
		t.Fatalf("FromTables: %v", err)
	}
	if an.FrameCount() != 2 {
		t.Fatalf("FromTables: (got: %d frames) (expected: 2)", an.FrameCount())
	}
	for i := range tables {
		if got := an.Frame(i)[0]; got != uint16(i+1) {
			t.Fatalf("frame %d: (got: %04x) (expected: %04x)", i, got, i+1)
		}
	}

	if _, err := FromTables(tables, []uint{3}); err == nil {
		t.Fatalf("expected error for mismatched tables")
	}
	if _, err := FromTables(nil, nil); err == nil {
		t.Fatalf("expected error for empty tables")
	}
}

func TestRGB15(t *testing.T) {
	table := []struct {
		r, g, b  uint8
		expected uint16
	}{
		{31, 0, 0, constant.COLOR_RED},
		{0, 31, 0, constant.COLOR_GREEN},
		{0, 0, 31, constant.COLOR_BLUE},
		{0, 0, 0, constant.COLOR_BLACK},
		{31, 31, 31, constant.COLOR_WHITE},
	}

	for _, entry := range table {
		val := RGB15(entry.r, entry.g, entry.b)
		if val != entry.expected {
			t.Fatalf("RGB15: (got: %04x) (expected: %04x) = (%v, %v, %v)", val, entry.expected, entry.r, entry.g, entry.b)
		}
	}
}

func TestRGB15From888(t *testing.T) {
	table := []struct {
		r, g, b  uint8
		expected uint16
	}{
		{255, 255, 255, constant.COLOR_WHITE},
		{255, 0, 0, constant.COLOR_RED},
		{0, 255, 0, constant.COLOR_GREEN},
		{0, 0, 255, constant.COLOR_BLUE},
		{7, 7, 7, constant.COLOR_BLACK}, // below one 5-bit step
	}

	for _, entry := range table {
		val := RGB15From888(entry.r, entry.g, entry.b)
		if val != entry.expected {
			t.Fatalf("RGB15From888: (got: %04x) (expected: %04x) = (%v, %v, %v)", val, entry.expected, entry.r, entry.g, entry.b)
		}
	}
}

func TestRGB888From15RoundTrip(t *testing.T) {
	// 5-bit components survive a pack/unpack/pack cycle exactly.
	for _, p := range []uint16{0x0000, 0x7fff, 0x001f, 0x03e0, 0x7c00, 0x1234} {
		r, g, b := RGB888From15(p)
		if back := RGB15From888(r, g, b); back != p {
			t.Fatalf("round trip: (got: %04x) (expected: %04x)", back, p)
		}
	}
}

func TestBuiltin(t *testing.T) {
	an := Builtin()
	if an.FrameCount() != builtinFrameCount {
		t.Fatalf("Builtin: (got: %d frames) (expected: %d)", an.FrameCount(), builtinFrameCount)
	}
	for i := 0; i < an.FrameCount(); i++ {
		if len(an.Frame(i)) != constant.LCD_PIXELS {
			t.Fatalf("Builtin: frame %d has %d pixels", i, len(an.Frame(i)))
		}
		if an.Duration(i) == 0 {
			t.Fatalf("Builtin: frame %d has zero duration", i)
		}
	}
}
