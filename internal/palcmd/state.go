// Package palcmd is the palcomp command table: a sorted list of named
// verbs plus the expression-evaluator shorthand, mutating a single
// 16-entry palette register file in argv order.
package palcmd

import (
	"io"
	"os"

	"github.com/rkoesters/vfontas/internal/palette"
)

// State is the palette under construction plus the two streams commands
// read/write (loadpal reads the FILE named on the command line, with
// FILE="-" meaning stdin, mirroring vfcmd's convention; loadreg reads a
// preset or NAME.palreg).
type State struct {
	Palette *palette.Palette
	Stdout  io.Writer
	Stdin   io.Reader
}

// NewState returns the state a fresh palcomp run starts from: an all-black
// palette, matching vfontas's "nothing loaded yet" starting point.
func NewState() *State {
	return &State{
		Palette: palette.New(),
		Stdout:  os.Stdout,
		Stdin:   os.Stdin,
	}
}
