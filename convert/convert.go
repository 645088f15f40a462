// Package convert turns a GIF animation into gbanim frame data: frames
// scaled to fit the 240x160 LCD, centered on a black letterbox, and
// quantized to BGR555.
package convert

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gbatools/gbanim/anim"
	"github.com/gbatools/gbanim/constant"
)

type Options struct {
	// FPS, when positive, forces the original converter's fixed-rate
	// behavior: every frame holds for round(60/FPS) ticks. Zero means
	// use each frame's own GIF delay.
	FPS int
}

func FromGIFFile(path string, opts Options) (*anim.Animation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return FromGIF(file, opts)
}

func FromGIF(r io.Reader, opts Options) (*anim.Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode GIF: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("GIF has no frames")
	}

	width, height := g.Config.Width, g.Config.Height
	if width <= 0 || height <= 0 {
		b := g.Image[0].Bounds()
		width, height = b.Max.X, b.Max.Y
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("GIF has a degenerate logical screen")
	}

	// Flatten each frame onto the logical canvas. Frames may cover only
	// part of the screen, so composition is inherently sequential.
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	snapshots := make([]*image.RGBA, len(g.Image))
	for i, src := range g.Image {
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			return nil, fmt.Errorf("frame %d uses restore-to-previous disposal, which is not supported", i)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)

		snap := image.NewRGBA(canvas.Bounds())
		draw.Draw(snap, canvas.Bounds(), canvas, image.Point{}, draw.Src)
		snapshots[i] = snap

		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalBackground {
			draw.Draw(canvas, src.Bounds(), image.Transparent, image.Point{}, draw.Src)
		}
	}

	durations := make([]uint, len(g.Image))
	for i := range durations {
		if opts.FPS > 0 {
			durations[i] = fixedTicks(opts.FPS)
		} else {
			delay := 0
			if i < len(g.Delay) {
				delay = g.Delay[i]
			}
			durations[i] = delayTicks(delay)
		}
	}

	// Scaling and quantization work on independent snapshots.
	frames := make([]anim.Frame, len(snapshots))
	var eg errgroup.Group
	for i := range snapshots {
		i := i
		eg.Go(func() error {
			frames[i] = rasterize(snapshots[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return anim.New(frames, durations)
}

// delayTicks converts a GIF delay (100ths of a second) to vertical-sync
// ticks, holding every frame for at least one.
func delayTicks(delay int) uint {
	t := (delay*constant.TARGET_FPS + 50) / 100
	if t < 1 {
		t = 1
	}
	return uint(t)
}

// fixedTicks reproduces the fixed-framerate duration of the original
// converter: round(60/fps).
func fixedTicks(fps int) uint {
	t := (constant.TARGET_FPS + fps/2) / fps
	if t < 1 {
		t = 1
	}
	return uint(t)
}

// rasterize scales a flattened GIF frame to fit the LCD, centers it on
// a black background and quantizes the result down to BGR555.
func rasterize(src *image.RGBA) anim.Frame {
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()

	scaleX := float64(constant.LCD_WIDTH) / float64(srcW)
	scaleY := float64(constant.LCD_HEIGHT) / float64(srcH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	posX := (constant.LCD_WIDTH - newW) / 2
	posY := (constant.LCD_HEIGHT - newH) / 2

	dst := image.NewRGBA(image.Rect(0, 0, constant.LCD_WIDTH, constant.LCD_HEIGHT))
	xdraw.CatmullRom.Scale(
		dst,
		image.Rect(posX, posY, posX+newW, posY+newH),
		src,
		src.Bounds(),
		xdraw.Src,
		nil,
	)

	frame := make(anim.Frame, constant.LCD_PIXELS)
	for y := 0; y < constant.LCD_HEIGHT; y++ {
		for x := 0; x < constant.LCD_WIDTH; x++ {
			off := dst.PixOffset(x, y)
			r := dst.Pix[off+0]
			g := dst.Pix[off+1]
			b := dst.Pix[off+2]
			frame[y*constant.LCD_WIDTH+x] = anim.RGB15From888(r, g, b)
		}
	}
	return frame
}
