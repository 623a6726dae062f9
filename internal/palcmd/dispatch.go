package palcmd

import (
	"fmt"
	"sort"
	"strings"
)

type command struct {
	name string
	run  func(st *State, args []string) error
}

var commandTable = buildCommandTable()

func buildCommandTable() []command {
	cmds := []command{
		{"b0", cmdB0},
		{"bd", cmdBD},
		{"bg", cmdBG},
		{"blend", cmdBlend},
		{"cfgamma", cmdCfgamma},
		{"ct", cmdCT},
		{"ct256", cmdCT256},
		{"cxa", cmdCXA},
		{"cxl", cmdCXL},
		{"emit", cmdXFCE},
		{"eq", cmdEq},
		{"fg", cmdFG},
		{"hsltint", cmdHSLTint},
		{"ild", cmdIld},
		{"inv16", cmdInv16},
		{"lch", cmdLch},
		{"lchtint", cmdLChTint},
		{"loadpal", cmdLoadpal},
		{"loadreg", cmdLoadreg},
		{"loeq", cmdLoeq},
		{"savereg", cmdSavereg},
		{"syncfromlch", cmdSyncFromLCh},
		{"syncfromrgb", cmdSyncFromRGB},
		{"vga", cmdVGA},
		{"vgs", cmdVGS},
		{"win", cmdWin},
		{"xfce", cmdXFCE},
		{"xterm", cmdXterm},
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

// Run executes each word of argv in order against a fresh State.
func Run(argv []string) error {
	st := NewState()
	return RunState(st, argv)
}

// RunState is Run against an existing State, letting callers (tests,
// batch pipelines) inspect the palette afterward.
func RunState(st *State, argv []string) error {
	for i, word := range argv {
		pc := parseWord(word)
		if pc.verb == "" {
			continue
		}
		if pc.verb == "eval" || strings.HasPrefix(pc.verb, "eval@") {
			scope := strings.TrimPrefix(pc.verb, "eval@")
			if pc.verb == "eval" {
				scope = ""
			}
			if err := cmdEval(st, pc.rawRest, scope); err != nil {
				return fmt.Errorf("palcomp: arg %d (%q): %w", i+1, word, err)
			}
			continue
		}
		cmd, ok := lookup(pc.verb)
		if !ok {
			return fmt.Errorf("palcomp: arg %d (%q): unknown command %q", i+1, word, pc.verb)
		}
		if err := cmd.run(st, pc.args); err != nil {
			return fmt.Errorf("palcomp: arg %d (%q): %w", i+1, word, err)
		}
	}
	return nil
}
