package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/constant"
)

const pixelsPerLine = 12

// ValidSymbol reports whether name can be used as the symbol stem in
// generated output (a C/Go identifier).
func ValidSymbol(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// goStem turns the symbol name into an exported Go identifier prefix:
// "poisson_tank" -> "PoissonTank".
func goStem(name string) string {
	parts := strings.Split(name, "_")
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	if sb.Len() == 0 {
		return "Animation"
	}
	return sb.String()
}

// EmitGo writes the animation as a Go source file: a frame slice table,
// a duration table and a frame-count constant, all derived from the
// caller-chosen symbol name.
func EmitGo(w io.Writer, pkgName, name, sourceName string, an *anim.Animation) error {
	bw := bufio.NewWriter(w)
	stem := goStem(name)

	fmt.Fprintf(bw, "// Code generated by gifconv from %s. DO NOT EDIT.\n\n", sourceName)
	fmt.Fprintf(bw, "package %s\n\n", pkgName)

	fmt.Fprintf(bw, "// %sFrames holds %d frames of %dx%d BGR555 pixels in row-major order.\n",
		stem, an.FrameCount(), constant.LCD_WIDTH, constant.LCD_HEIGHT)
	fmt.Fprintf(bw, "var %sFrames = [][]uint16{\n", stem)
	for i := 0; i < an.FrameCount(); i++ {
		fmt.Fprintf(bw, "\t{ // frame %d\n", i)
		writeGoPixels(bw, an.Frame(i))
		fmt.Fprintf(bw, "\t},\n")
	}
	fmt.Fprintf(bw, "}\n\n")

	fmt.Fprintf(bw, "// %sDurations holds each frame's display time in 60Hz ticks.\n", stem)
	fmt.Fprintf(bw, "var %sDurations = []uint{", stem)
	for i, d := range an.Durations() {
		if i > 0 {
			fmt.Fprint(bw, ", ")
		}
		fmt.Fprintf(bw, "%d", d)
	}
	fmt.Fprintf(bw, "}\n\n")

	fmt.Fprintf(bw, "const %sFrameCount = %d\n", stem, an.FrameCount())

	return bw.Flush()
}

// EmitC writes the animation in the structure GBA firmware expects:
// per-frame u16 arrays, a frame pointer table, a duration table and a
// frame-count constant, inside an include guard. Pixel rows follow the
// original converter's layout: ", "-separated values, twelve per line.
func EmitC(w io.Writer, name, sourceName string, an *anim.Animation) error {
	bw := bufio.NewWriter(w)
	guard := strings.ToUpper(name) + "_H"

	fmt.Fprintf(bw, "// Auto-generated GIF to GBA conversion\n")
	fmt.Fprintf(bw, "// Original file: %s\n\n", sourceName)
	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(bw, "#include <gba_types.h>\n\n")

	for i := 0; i < an.FrameCount(); i++ {
		fmt.Fprintf(bw, "// Frame %d\n", i)
		fmt.Fprintf(bw, "const u16 %s_frame%d[%d] = {\n", name, i, constant.LCD_PIXELS)
		writeCPixels(bw, an.Frame(i))
		fmt.Fprintf(bw, "};\n\n")
	}

	fmt.Fprintf(bw, "// Frame pointers\n")
	fmt.Fprintf(bw, "const u16* const %s_frames[%d] = {\n    ", name, an.FrameCount())
	for i := 0; i < an.FrameCount(); i++ {
		if i > 0 {
			fmt.Fprint(bw, ", ")
			if i%5 == 0 {
				fmt.Fprint(bw, "\n    ")
			}
		}
		fmt.Fprintf(bw, "%s_frame%d", name, i)
	}
	fmt.Fprintf(bw, "\n};\n\n")

	fmt.Fprintf(bw, "// Frame durations (in frames at 60fps)\n")
	fmt.Fprintf(bw, "const u16 %s_durations[%d] = {\n    ", name, an.FrameCount())
	for i, d := range an.Durations() {
		if i > 0 {
			fmt.Fprint(bw, ", ")
			if i%10 == 0 {
				fmt.Fprint(bw, "\n    ")
			}
		}
		fmt.Fprintf(bw, "%d", d)
	}
	fmt.Fprintf(bw, "\n};\n\n")

	fmt.Fprintf(bw, "// Animation info\n")
	fmt.Fprintf(bw, "const u16 %s_frame_count = %d;\n", name, an.FrameCount())
	fmt.Fprintf(bw, "\n#endif // %s\n", guard)

	return bw.Flush()
}

func writeGoPixels(w io.Writer, f anim.Frame) {
	for i := 0; i < len(f); i += pixelsPerLine {
		end := i + pixelsPerLine
		if end > len(f) {
			end = len(f)
		}
		fmt.Fprint(w, "\t\t")
		for j := i; j < end; j++ {
			fmt.Fprintf(w, "0x%04X,", f[j])
			if j+1 < end {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, "\n")
	}
}

func writeCPixels(w io.Writer, f anim.Frame) {
	fmt.Fprint(w, "    ")
	for j, p := range f {
		fmt.Fprintf(w, "0x%04X", p)
		if j < len(f)-1 {
			fmt.Fprint(w, ", ")
			if (j+1)%pixelsPerLine == 0 {
				fmt.Fprint(w, "\n    ")
			}
		}
	}
	fmt.Fprint(w, "\n")
}
