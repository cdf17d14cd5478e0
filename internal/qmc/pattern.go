// Package qmc implements Quine-McCluskey minimization extended with XOR
// and XNOR term combination, as described by SPEC_FULL.md.
package qmc

import "github.com/pkg/errors"

// Pattern is a fixed-length string over {'0','1','-','^','~'}. Position i
// fixes bit i (for '0'/'1'), frees it (for '-'), or groups it into the
// pattern's single XOR ('^') or XNOR ('~') parity class.
//
// Patterns are immutable value objects; every operation in this package
// returns a new Pattern rather than mutating one in place.
type Pattern string

// cellKind is a typed view of a single Pattern byte, kept separate from any
// stored representation (see SPEC_FULL.md's note on the tagged-variant
// design suggestion for why Pattern itself stays a string end-to-end).
type cellKind byte

const (
	cellZero cellKind = '0'
	cellOne  cellKind = '1'
	cellDash cellKind = '-'
	cellXor  cellKind = '^'
	cellXnor cellKind = '~'
)

func cellAt(p Pattern, i int) cellKind {
	return cellKind(p[i])
}

func (k cellKind) valid() bool {
	switch k {
	case cellZero, cellOne, cellDash, cellXor, cellXnor:
		return true
	default:
		return false
	}
}

// Len returns the pattern's bit width.
func (p Pattern) Len() int { return len(p) }

// CountOnes returns the number of fixed '1' positions.
func (p Pattern) CountOnes() int { return p.count(cellOne) }

// CountZeros returns the number of fixed '0' positions.
func (p Pattern) CountZeros() int { return p.count(cellZero) }

// CountDashes returns the number of don't-care ('-') positions.
func (p Pattern) CountDashes() int { return p.count(cellDash) }

// CountXors returns the number of XOR ('^') positions.
func (p Pattern) CountXors() int { return p.count(cellXor) }

// CountXnors returns the number of XNOR ('~') positions.
func (p Pattern) CountXnors() int { return p.count(cellXnor) }

func (p Pattern) count(k cellKind) int {
	n := 0
	for i := 0; i < len(p); i++ {
		if cellAt(p, i) == k {
			n++
		}
	}
	return n
}

// ValidatePattern rejects any pattern using a byte outside the documented
// alphabet, or mixing '^' and '~' in a single pattern (spec.md §3 invariant
// 2). Every public entry point calls this before doing any set algebra, so
// the '#'-writing fallback in Expand is reachable only by constructing a
// Pattern value directly and bypassing this check.
func ValidatePattern(p Pattern) error {
	xors, xnors := 0, 0
	for i := 0; i < len(p); i++ {
		k := cellAt(p, i)
		if !k.valid() {
			return errors.Errorf("invalid character %q at position %d in pattern %q", p[i], i, string(p))
		}
		if k == cellXor {
			xors++
		}
		if k == cellXnor {
			xnors++
		}
	}
	if xors > 0 && xnors > 0 {
		return errors.Errorf("pattern %q mixes XOR and XNOR positions", string(p))
	}
	return nil
}

// validateAll checks a slice of same-length patterns, returning the shared
// width. It reports "inconsistent width" the way encode_strings must per
// spec.md §4.1.
func validateAll(patterns []Pattern) (int, error) {
	if len(patterns) == 0 {
		return 0, nil
	}
	n := patterns[0].Len()
	for _, p := range patterns {
		if p.Len() != n {
			return 0, errors.Errorf("inconsistent width: pattern %q has length %d, want %d", string(p), p.Len(), n)
		}
		if err := ValidatePattern(p); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// allDashes returns the n-bit pattern of all don't-cares — the degenerate
// "anything" result named by spec.md §3 invariant 5 and used whenever a
// cover collapses to nothing but don't-cares.
func allDashes(n int) Pattern {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(cellDash)
	}
	return Pattern(b)
}
