package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gbatools/gbanim/convert"
	"github.com/gbatools/gbanim/logger"
)

type CLI struct {
	Gif     string `arg:"" help:"Input GIF file path" type:"existingfile"`
	Output  string `short:"o" help:"Output file path (default: input path with the extension swapped)" placeholder:"FILE"`
	Name    string `short:"n" help:"Symbol name to use in the output" default:"animation"`
	Fps     int    `short:"f" help:"Force a fixed input framerate instead of per-frame GIF delays (0, the default, uses the delays)" placeholder:"FPS"`
	Format  string `help:"Output format" enum:"go,c" default:"go"`
	Package string `help:"Package name for go output" default:"animdata"`
}

func (c *CLI) Validate() error {
	if !convert.ValidSymbol(c.Name) {
		return fmt.Errorf("symbol name must be a valid identifier")
	}

	if !convert.ValidSymbol(c.Package) {
		return fmt.Errorf("package name must be a valid identifier")
	}

	if c.Fps < 0 {
		return fmt.Errorf("fps must not be negative")
	}

	return nil
}

func (c *CLI) outputPath() string {
	if c.Output != "" {
		return c.Output
	}

	base := strings.TrimSuffix(c.Gif, ".gif")
	if c.Format == "c" {
		return base + ".h"
	}
	return base + ".go"
}

func (c *CLI) Run() error {
	an, err := convert.FromGIFFile(c.Gif, convert.Options{FPS: c.Fps})
	if err != nil {
		return err
	}

	// Render to memory first so a generation error never leaves a
	// truncated file behind.
	var buf bytes.Buffer
	sourceName := c.Gif
	switch c.Format {
	case "c":
		err = convert.EmitC(&buf, c.Name, sourceName, an)
	default:
		err = convert.EmitGo(&buf, c.Package, c.Name, sourceName, an)
	}
	if err != nil {
		return err
	}

	out := c.outputPath()
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return err
	}

	slog.Info("converted GIF",
		"input", c.Gif,
		"output", out,
		"frames", an.FrameCount(),
		"format", c.Format,
	)
	return nil
}

func main() {
	logger.SetupSLog()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gifconv"),
		kong.Description("Convert a GIF animation into frame data for the gbanim player"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(cli.Run())
}
