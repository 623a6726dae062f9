package vfcmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parsedWord is one argv word split into its verb and comma-separated
// arguments: "canvas=80,24" -> {"canvas", ["80","24"]}; a bare "fliph" has
// no arguments. A leading "-" is stripped before splitting, per the "a
// leading - on any command is ignored" rule.
type parsedWord struct {
	verb string
	args []string
}

func parseWord(word string) parsedWord {
	word = strings.TrimPrefix(word, "-")
	name, rest, hasEq := strings.Cut(word, "=")
	if !hasEq {
		return parsedWord{verb: name}
	}
	return parsedWord{verb: name, args: strings.Split(rest, ",")}
}

func wantArgs(verb string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d", verb, n, len(args))
	}
	return nil
}

func atoi(verb, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: bad integer %q: %w", verb, s, err)
	}
	return v, nil
}
