package main

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	table := []struct {
		name    string
		cli     CLI
		wantErr string
	}{
		{"defaults", CLI{Name: "animation", Package: "animdata"}, ""},
		{"fixed fps", CLI{Name: "animation", Package: "animdata", Fps: 20}, ""},
		{"negative fps", CLI{Name: "animation", Package: "animdata", Fps: -1}, "fps must not be negative"},
		{"bad symbol", CLI{Name: "fish-tank", Package: "animdata"}, "symbol name"},
		{"bad package", CLI{Name: "animation", Package: "anim data"}, "package name"},
	}

	for _, entry := range table {
		err := entry.cli.Validate()
		if entry.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", entry.name, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%s: expected error", entry.name)
		}
		if !strings.Contains(err.Error(), entry.wantErr) {
			t.Fatalf("%s: (got: %q) (expected to contain: %q)", entry.name, err, entry.wantErr)
		}
	}
}

func TestOutputPath(t *testing.T) {
	table := []struct {
		cli      CLI
		expected string
	}{
		{CLI{Gif: "fish.gif", Format: "go"}, "fish.go"},
		{CLI{Gif: "fish.gif", Format: "c"}, "fish.h"},
		{CLI{Gif: "fish.gif", Format: "go", Output: "out/data.go"}, "out/data.go"},
	}

	for _, entry := range table {
		if got := entry.cli.outputPath(); got != entry.expected {
			t.Fatalf("outputPath: (got: %q) (expected: %q)", got, entry.expected)
		}
	}
}
