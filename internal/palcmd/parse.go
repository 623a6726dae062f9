package palcmd

import (
	"fmt"
	"strings"

	"github.com/rkoesters/vfontas/internal/paleval"
)

// parsedWord is a single argv word split into its verb and its argument(s).
// Most verbs take comma-separated arguments ("hsltint=10,1.1,0.9"), but the
// eval family takes one raw expression that may itself contain commas and
// "=" signs ("(l=l*0, c=c*0, h=h*0)"), so rawRest is kept unsplit for them.
type parsedWord struct {
	verb    string
	args    []string
	rawRest string
}

func parseWord(raw string) parsedWord {
	word := strings.TrimPrefix(raw, "-")
	if paleval.IsEvalShorthand(word) {
		return parsedWord{verb: "eval", rawRest: word}
	}
	name, rest, hasEq := strings.Cut(word, "=")
	if !hasEq {
		return parsedWord{verb: name}
	}
	if name == "eval" || strings.HasPrefix(name, "eval@") {
		return parsedWord{verb: name, rawRest: rest}
	}
	return parsedWord{verb: name, args: strings.Split(rest, ",")}
}

func wantArgs(verb string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d", verb, n, len(args))
	}
	return nil
}
