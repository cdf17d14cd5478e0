package qmc

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// Complexity scores a pattern the way spec.md §4.4 Step B does, used both
// to break ties in Step B (lowest complexity redundant pattern removed
// first) and in Step C (candidate combination of minimum complexity wins).
func Complexity(p Pattern) float64 {
	return 1.00*float64(p.CountOnes()) + 1.50*float64(p.CountZeros()) +
		1.25*float64(p.CountXors()) + 1.75*float64(p.CountXnors())
}

// rank scores a prime implicant for Step A's greedy selection order:
// rank(t, |perms(t)|) = 4*|perms(t)| + score(t).
func rank(t Pattern, coverage int) int {
	score := 8*t.CountDashes() + 4*t.CountXors() + 2*t.CountXnors() + t.CountOnes()
	return 4*coverage + score
}

// SelectEssential implements C4 Step A: rank every prime implicant by
// coverage size and pattern shape, then greedily accept implicants
// (highest rank first, descending lexicographic order within a rank) whose
// coverage is not already subsumed by what has been accepted so far.
func SelectEssential(primes mapset.Set[Pattern], dc mapset.Set[Pattern], n int) mapset.Set[Pattern] {
	memo := make(map[Pattern]mapset.Set[Pattern], primes.Cardinality())
	perms := func(t Pattern) mapset.Set[Pattern] {
		if s, ok := memo[t]; ok {
			return s
		}
		s := Expand(t, dc)
		memo[t] = s
		return s
	}

	byRank := make(map[int][]Pattern)
	for t := range primes.Iter() {
		r := rank(t, perms(t).Cardinality())
		byRank[r] = append(byRank[r], t)
	}

	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)
	slices.Reverse(ranks)

	essential := mapset.NewThreadUnsafeSet[Pattern]()
	eiRange := mapset.NewThreadUnsafeSet[Pattern]()
	for _, r := range ranks {
		group := byRank[r]
		slices.Sort(group)
		slices.Reverse(group)
		for _, t := range group {
			p := perms(t)
			if !p.IsSubset(eiRange) {
				essential.Add(t)
				eiRange = eiRange.Union(p)
			}
		}
	}

	if essential.Cardinality() == 0 {
		essential.Add(allDashes(n))
	}
	return essential
}

// Combine implements the combine(a, b, dont_cares) helper from spec.md
// §4.4 Step C: it tries to fold a and b into one implicant covering
// exactly their combined coverage, preferring the lower-complexity
// candidate and, on a tie, the one built from a ("encounter order").
func Combine(a, b Pattern, dc mapset.Set[Pattern]) (Pattern, bool) {
	covA := Expand(a, dc)
	covB := Expand(b, dc)
	union := covA.Union(covB)

	candidateFrom := func(base, donor Pattern) Pattern {
		out := []byte(base)
		for i := 0; i < base.Len(); i++ {
			if cellAt(base, i) == cellDash {
				out[i] = byte(cellAt(donor, i))
			}
		}
		return Pattern(out)
	}

	candidates := []Pattern{candidateFrom(a, b), candidateFrom(b, a)}
	var best Pattern
	haveBest := false
	for _, c := range candidates {
		if Expand(c, dc).Equal(union) {
			if !haveBest || Complexity(c) < Complexity(best) {
				best = c
				haveBest = true
			}
		}
	}
	return best, haveBest
}

// ReduceImplicants implements C4 Steps B and C: run Step C's pairwise
// combine pass to its own fixpoint first, then Step B's redundancy-pruning
// loop, exactly as the reference interleaves them (combine fully, then
// prune — not alternating one step of each).
func ReduceImplicants(n int, implicants mapset.Set[Pattern], dc mapset.Set[Pattern]) mapset.Set[Pattern] {
	working := implicants.Clone()

	// Step C: combine to fixpoint.
	for {
		items := sortedPatterns(working)
		combinedOnce := false
		for i := 0; i < len(items) && !combinedOnce; i++ {
			for j := i + 1; j < len(items); j++ {
				if survivor, ok := Combine(items[i], items[j], dc); ok {
					working.Remove(items[i])
					working.Remove(items[j])
					working.Add(survivor)
					combinedOnce = true
					break
				}
			}
		}
		if !combinedOnce {
			break
		}
	}

	// Step B: build restricted coverage (excludes don't-cares), then prune
	// redundant implicants until none remain.
	coverage := make(map[Pattern]mapset.Set[Pattern], working.Cardinality())
	for t := range working.Iter() {
		full := Expand(t, mapset.NewThreadUnsafeSet[Pattern]())
		coverage[t] = full.Difference(dc)
	}

	for {
		keys := make([]Pattern, 0, len(coverage))
		for t := range coverage {
			keys = append(keys, t)
		}
		slices.Sort(keys)

		var redundant []Pattern
		for _, this := range keys {
			others := mapset.NewThreadUnsafeSet[Pattern]()
			for _, other := range keys {
				if other == this {
					continue
				}
				others = others.Union(coverage[other])
			}
			if coverage[this].IsSubset(others) {
				redundant = append(redundant, this)
			}
		}
		if len(redundant) == 0 {
			break
		}
		slices.SortFunc(redundant, func(a, b Pattern) int {
			ca, cb := Complexity(a), Complexity(b)
			switch {
			case ca < cb:
				return -1
			case ca > cb:
				return 1
			default:
				return 0
			}
		})
		delete(coverage, redundant[0])
	}

	if len(coverage) == 0 {
		coverage[allDashes(n)] = mapset.NewThreadUnsafeSet[Pattern]()
	}

	out := mapset.NewThreadUnsafeSet[Pattern]()
	for t := range coverage {
		out.Add(t)
	}
	return out
}
