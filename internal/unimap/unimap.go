// Package unimap implements the bidirectional index <-> codepoint-set
// relation used by fonts to translate between glyph index and Unicode.
package unimap

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Map is a bidirectional index <-> codepoint relation. A missing i2u[i] is
// interpreted as the identity mapping: ToUnicode(i) == {i}.
type Map struct {
	i2u map[int]map[rune]bool
	u2i map[rune]int
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		i2u: make(map[int]map[rune]bool),
		u2i: make(map[rune]int),
	}
}

// AddI2U inserts cp into i2u[i] and sets u2i[cp] = i, overwriting any prior
// owner of cp.
func (m *Map) AddI2U(i int, cp rune) {
	if m.i2u[i] == nil {
		m.i2u[i] = make(map[rune]bool)
	}
	m.i2u[i][cp] = true
	m.u2i[cp] = i
}

// ToUnicode returns i2u[i] if present, else the identity set {rune(i)}.
func (m *Map) ToUnicode(i int) map[rune]bool {
	if set, ok := m.i2u[i]; ok {
		out := make(map[rune]bool, len(set))
		for cp := range set {
			out[cp] = true
		}
		return out
	}
	return map[rune]bool{rune(i): true}
}

// ToIndex returns u2i[cp], or -1 if cp has never been added.
func (m *Map) ToIndex(cp rune) int {
	if i, ok := m.u2i[cp]; ok {
		return i
	}
	return -1
}

// SwapIdx exchanges the entries for indices a and b in both directions.
func (m *Map) SwapIdx(a, b int) {
	sa, oka := m.i2u[a]
	sb, okb := m.i2u[b]
	if oka {
		delete(m.i2u, a)
	}
	if okb {
		delete(m.i2u, b)
	}
	if okb {
		m.i2u[a] = sb
		for cp := range sb {
			m.u2i[cp] = a
		}
	}
	if oka {
		m.i2u[b] = sa
		for cp := range sa {
			m.u2i[cp] = b
		}
	}
}

// Clear removes all entries, reverting the map to all-identity.
func (m *Map) Clear() {
	m.i2u = make(map[int]map[rune]bool)
	m.u2i = make(map[rune]int)
}

// Indices returns the set of indices with an explicit (non-identity) entry,
// sorted ascending.
func (m *Map) Indices() []int {
	out := make([]int, 0, len(m.i2u))
	for i := range m.i2u {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Load parses the unimap text format described by §4.6: lines of
// "<index>[-<index>] <mapping>", where <mapping> is either "idem" (a no-op;
// missing entries already map to themselves) or whitespace-separated
// "U+hhhh" codepoints, all attached to the same index. "#" starts a
// comment. Ranged left-hand sides are only valid with "idem".
func Load(r io.Reader) (*Map, error) {
	m := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if h := strings.IndexByte(line, '#'); h >= 0 {
			line = line[:h]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("unimap: line %d: expected \"<index> <mapping>\"", lineNo)
		}
		lo, hi, err := parseIndexRange(fields[0])
		if err != nil {
			return nil, fmt.Errorf("unimap: line %d: %w", lineNo, err)
		}
		mapping := fields[1:]
		if len(mapping) == 1 && mapping[0] == "idem" {
			// Identity is already the default; nothing to record.
			continue
		}
		if hi != lo {
			return nil, fmt.Errorf("unimap: line %d: ranged index only valid with idem", lineNo)
		}
		for _, tok := range mapping {
			cp, err := parseCodepoint(tok)
			if err != nil {
				return nil, fmt.Errorf("unimap: line %d: %w", lineNo, err)
			}
			m.AddI2U(lo, cp)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseIndexRange(tok string) (lo, hi int, err error) {
	if dash := strings.IndexByte(tok, '-'); dash > 0 {
		lo, err = strconv.Atoi(tok[:dash])
		if err != nil {
			return 0, 0, fmt.Errorf("bad index range %q: %w", tok, err)
		}
		hi, err = strconv.Atoi(tok[dash+1:])
		if err != nil {
			return 0, 0, fmt.Errorf("bad index range %q: %w", tok, err)
		}
		return lo, hi, nil
	}
	lo, err = strconv.Atoi(tok)
	if err != nil {
		return 0, 0, fmt.Errorf("bad index %q: %w", tok, err)
	}
	return lo, lo, nil
}

func parseCodepoint(tok string) (rune, error) {
	if !strings.HasPrefix(tok, "U+") && !strings.HasPrefix(tok, "u+") {
		return 0, fmt.Errorf("expected U+hhhh codepoint, got %q", tok)
	}
	v, err := strconv.ParseInt(tok[2:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad codepoint %q: %w", tok, err)
	}
	return rune(v), nil
}

// Save writes m back out in the unimap text format, one explicit index per
// line, identity entries omitted.
func Save(w io.Writer, m *Map) error {
	for _, i := range m.Indices() {
		cps := make([]rune, 0, len(m.i2u[i]))
		for cp := range m.i2u[i] {
			cps = append(cps, cp)
		}
		sort.Slice(cps, func(a, b int) bool { return cps[a] < cps[b] })
		parts := make([]string, len(cps))
		for j, cp := range cps {
			parts[j] = fmt.Sprintf("U+%04X", cp)
		}
		if _, err := fmt.Fprintf(w, "%d %s\n", i, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
