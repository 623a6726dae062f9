// Package vfcmd is the vfontas command table: a sorted list of named verbs,
// each mutating a single in-memory font container, executed in argv order
// against one shared State.
package vfcmd

import (
	"io"
	"os"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/vector"
	"github.com/rkoesters/vfontas/internal/vfformat/cpi"
	"github.com/rkoesters/vfontas/internal/vfont"
)

// defaultCanvas is the glyph size blankfnt uses when canvas was never set,
// and the size scenario 1 ("blankfnt savefnt -") assumes.
var defaultCanvas = geom.Size{W: 8, H: 16}

// State is the font under construction plus the working parameters later
// commands in the same run read back: the canvas size blankfnt uses, the
// vectorizer's descent/scale for the save{n1,n2,n2ev,sfd} verbs, and the
// CPI device type cpisep selects for savecpi output.
type State struct {
	Font    *vfont.Font
	Canvas  geom.Size
	Descent int
	Scale   vector.Scale
	CPISep  uint16

	Stdout io.Writer
	Stdin  io.Reader
}

// NewState returns the state a fresh vfontas run starts from.
func NewState() *State {
	return &State{
		Font:    vfont.New(),
		Canvas:  defaultCanvas,
		Descent: 0,
		Scale:   vector.DefaultScale,
		CPISep:  cpi.DeviceScreen,
		Stdout:  os.Stdout,
		Stdin:   os.Stdin,
	}
}
