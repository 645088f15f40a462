// Package animdata carries the gifconv-generated animation tables the
// demo binary compiles in. Regenerate over this file with:
//
//	go run ./cmd/gifconv -o animdata/animdata.go --package animdata YOURS.gif
//
// The default symbol name "animation" yields exactly the identifiers
// declared below.
package animdata

// Empty tables; main falls back to the synthesized demo animation
// until gifconv output replaces this file.
var AnimationFrames [][]uint16

var AnimationDurations []uint

const AnimationFrameCount = 0
