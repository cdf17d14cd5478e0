// Package cupl adapts sum-of-products boolean terms to internal/qmc's
// pattern-based minimization engine.
package cupl

import (
	"sort"

	"github.com/pborges/qmcx/internal/qmc"
)

// Literal is a named boolean variable, optionally negated.
type Literal struct {
	Name string
	Neg  bool
}

// Term is a product term: the conjunction of its literals.
type Term struct {
	Lits []Literal
}

// minimizeTerms applies Quine-McCluskey minimization to reduce the number
// of product terms. It delegates the encode/merge/cover pipeline to
// internal/qmc, translating this package's Term/Literal representation to
// and from qmc.Pattern. XOR/XNOR combination is left off: GAL fuse arrays
// have no way to express a parity term directly, so a reduced cover must
// stay in plain sum-of-products form.
func minimizeTerms(terms []Term) []Term {
	if len(terms) <= 1 {
		return terms
	}
	for _, t := range terms {
		if len(t.Lits) == 0 {
			return terms
		}
	}

	vars, varIndex := collectVars(terms)
	if len(vars) == 0 {
		return terms
	}
	numBits := len(vars)

	patterns := make([]qmc.Pattern, len(terms))
	for i, t := range terms {
		patterns[i] = termToPattern(t, varIndex, numBits)
	}

	result, _, ok := qmc.SimplifyStringsWithProfile(patterns, nil, &numBits, false)
	if !ok {
		return terms
	}

	reduced := patternsToTerms(result, vars)
	if len(reduced) < len(terms) {
		sort.Slice(reduced, func(i, j int) bool { return lessTerm(reduced[i], reduced[j]) })
		return reduced
	}

	sorted := make([]Term, len(terms))
	copy(sorted, terms)
	sort.Slice(sorted, func(i, j int) bool { return lessTerm(sorted[i], sorted[j]) })
	return sorted
}

// termToPattern encodes a Term as a Pattern over vars in index order: '1'
// for a positive literal, '0' for a negated one, '-' wherever the term
// doesn't mention that variable.
func termToPattern(t Term, varIndex map[string]int, numBits int) qmc.Pattern {
	cells := make([]byte, numBits)
	for i := range cells {
		cells[i] = '-'
	}
	for _, l := range t.Lits {
		if l.Neg {
			cells[varIndex[l.Name]] = '0'
		} else {
			cells[varIndex[l.Name]] = '1'
		}
	}
	return qmc.Pattern(cells)
}

// patternsToTerms converts a reduced cover back into Terms, dropping any
// don't-care position from the literal list.
func patternsToTerms(patterns []qmc.Pattern, vars []string) []Term {
	terms := make([]Term, 0, len(patterns))
	for _, p := range patterns {
		var lits []Literal
		for i, v := range vars {
			switch p[i] {
			case '1':
				lits = append(lits, Literal{Name: v})
			case '0':
				lits = append(lits, Literal{Name: v, Neg: true})
			}
		}
		sort.Slice(lits, func(i, j int) bool { return lits[i].Name < lits[j].Name })
		terms = append(terms, Term{Lits: lits})
	}
	return terms
}

func lessTerm(a, b Term) bool {
	la, lb := len(a.Lits), len(b.Lits)
	for i := 0; i < la && i < lb; i++ {
		if a.Lits[i].Name != b.Lits[i].Name {
			return a.Lits[i].Name < b.Lits[i].Name
		}
		if a.Lits[i].Neg != b.Lits[i].Neg {
			return !a.Lits[i].Neg
		}
	}
	return la < lb
}

// collectVars gathers sorted unique variable names and builds an index map.
func collectVars(terms []Term) ([]string, map[string]int) {
	seen := make(map[string]bool)
	for _, t := range terms {
		for _, l := range t.Lits {
			seen[l.Name] = true
		}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	idx := make(map[string]int, len(vars))
	for i, v := range vars {
		idx[v] = i
	}
	return vars, idx
}
