package vfcmd

import (
	"fmt"
	"sort"
)

type command struct {
	name string
	run  func(st *State, args []string) error
}

var commandTable = buildCommandTable()

func buildCommandTable() []command {
	cmds := []command{
		{"blankfnt", cmdBlankfnt},
		{"canvas", cmdCanvas},
		{"clearmap", cmdClearmap},
		{"copy", cmdCopy},
		{"cpisep", cmdCpisep},
		{"crop", cmdCrop},
		{"fliph", cmdFliph},
		{"flipv", cmdFlipv},
		{"invert", cmdInvert},
		{"lge", cmdLge},
		{"lgeu", cmdLgeu},
		{"lgeuf", cmdLgeuf},
		{"loadbdf", cmdLoadbdf},
		{"loadclt", cmdLoadclt},
		{"loadfnt", cmdLoadfnt},
		{"loadhex", cmdLoadhex},
		{"loadmap", cmdLoadmap},
		{"loadpcf", cmdLoadpcf},
		{"loadpsf", cmdLoadpsf},
		{"loadraw", cmdLoadraw},
		{"move", cmdMove},
		{"overstrike", cmdOverstrike},
		{"savebdf", cmdSavebdf},
		{"saveclt", cmdSaveclt},
		{"savecpi", cmdSavecpi},
		{"savefnt", cmdSavefnt},
		{"savemap", cmdSavemap},
		{"saven1", cmdSaven1},
		{"saven2", cmdSaven2},
		{"saven2ev", cmdSaven2ev},
		{"savepbm", cmdSavepbm},
		{"savepcf", cmdSavepcf},
		{"savepsf", cmdSavepsf},
		{"savesfd", cmdSavesfd},
		{"setbold", cmdSetbold},
		{"setname", cmdSetname},
		{"setprop", cmdSetprop},
		{"upscale", cmdUpscale},
		{"xcpi", cmdXcpi},
		{"xcpi.ice", cmdXcpiIce},
		{"xlat", cmdXlat},
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })
	return cmds
}

func lookup(name string) (command, bool) {
	i := sort.Search(len(commandTable), func(i int) bool { return commandTable[i].name >= name })
	if i < len(commandTable) && commandTable[i].name == name {
		return commandTable[i], true
	}
	return command{}, false
}

// Run executes each word of argv in order against a fresh State, mutating
// its font container. It returns the first error encountered, wrapped
// with the offending word's position, matching "exit 0 on success,
// non-zero on any command's failure" -- preceding commands' mutations
// are retained, only the run is aborted.
func Run(argv []string) error {
	st := NewState()
	return RunState(st, argv)
}

// RunState is Run against an existing State, letting callers (tests,
// palcomp-style pipelines) inspect the font afterward.
func RunState(st *State, argv []string) error {
	for i, word := range argv {
		pc := parseWord(word)
		if pc.verb == "" {
			continue
		}
		cmd, ok := lookup(pc.verb)
		if !ok {
			return fmt.Errorf("vfontas: arg %d (%q): unknown command %q", i+1, word, pc.verb)
		}
		if err := cmd.run(st, pc.args); err != nil {
			return fmt.Errorf("vfontas: arg %d (%q): %w", i+1, word, err)
		}
	}
	return nil
}
