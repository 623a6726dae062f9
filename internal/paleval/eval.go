package paleval

import (
	"fmt"
	"strconv"
	"strings"
)

// Registers is the per-palette-entry register surface the evaluator reads
// and writes through. name is always canonical: one of r, g, b, l, c, h,
// x, y, z (s is resolved to c before either method is called). Get fetches
// the current value of a component; Set writes it and is responsible for
// recomputing whichever companion representation (RGB vs LCh) the write
// didn't touch directly.
type Registers interface {
	Get(name byte) float64
	Set(name byte, value float64)
}

// Eval parses expr once and evaluates it against every entry in entries,
// in order. A parse error aborts before any entry is touched; a runtime
// error (there are none beyond parse/type errors in this language) would
// abort mid-sequence, leaving earlier entries' mutations in place, per the
// spec's error-handling rule that preceding commands' mutations survive a
// later failure.
func Eval(expr string, entries []Registers) error {
	n, err := parse(expr)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := n.eval(e); err != nil {
			return err
		}
	}
	return nil
}

// ParseScope parses the `a,b-c,...` index-list syntax of `eval@LIST=...`,
// returning the selected indices in the order and multiplicity they were
// named (the caller bounds-checks against the actual palette size;
// duplicates are kept).
func ParseScope(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if dash := strings.IndexByte(part, '-'); dash >= 0 {
			lo, err := strconv.Atoi(strings.TrimSpace(part[:dash]))
			if err != nil {
				return nil, fmt.Errorf("paleval: bad range start %q: %w", part, err)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(part[dash+1:]))
			if err != nil {
				return nil, fmt.Errorf("paleval: bad range end %q: %w", part, err)
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for i := lo; i <= hi; i++ {
				out = append(out, i)
			}
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("paleval: bad index %q: %w", part, err)
		}
		out = append(out, i)
	}
	return out, nil
}

// IsEvalShorthand reports whether cmd should be treated as an `eval=`
// command under the bare-expression shorthand: an expression beginning
// with '(' or of the form "<reg>=...".
func IsEvalShorthand(cmd string) bool {
	if strings.HasPrefix(cmd, "(") {
		return true
	}
	if len(cmd) >= 2 && isRegisterLetter(cmd[0]) && cmd[1] == '=' {
		return true
	}
	return false
}
