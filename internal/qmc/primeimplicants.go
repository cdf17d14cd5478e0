package qmc

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Profile tallies how many bit positions the generator considered for each
// merge kind, for callers that want the *_with_profile diagnostics from
// spec.md §6.
type Profile struct {
	Cmp  int
	Xor  int
	Xnor int
}

// groupKey is the (ones, xors, xnors) triple spec.md §4.2 groups terms by.
type groupKey struct {
	ones, xors, xnors int
}

func keyOf(p Pattern) groupKey {
	return groupKey{ones: p.CountOnes(), xors: p.CountXors(), xnors: p.CountXnors()}
}

// FindPrimeImplicants runs the C2 merge fixpoint over terms (the union of
// minterms and don't-cares already encoded as same-width Patterns) and
// returns the resulting prime implicants together with the merge-attempt
// counters described by spec.md §4.2.
func FindPrimeImplicants(terms mapset.Set[Pattern], useXOR bool) (mapset.Set[Pattern], Profile) {
	var profile Profile
	working := terms.Clone()

	if useXOR {
		seedXorXnor(working)
	}

	marked := mapset.NewThreadUnsafeSet[Pattern]()
	for round := 0; working.Cardinality() > 0; round++ {
		log.WithField("round", round).WithField("size", working.Cardinality()).Debug("merge pass")
		groups := groupBy(working)
		merged := mapset.NewThreadUnsafeSet[Pattern]()
		used := mapset.NewThreadUnsafeSet[Pattern]()

		for k, group := range groups {
			// 1. Adjacency merge.
			nextKey := groupKey{k.ones + 1, k.xors, k.xnors}
			if next, ok := groups[nextKey]; ok {
				mergeAdjacency(group, next, merged, used, &profile.Cmp)
			}

			// 2. XOR merge: only when this group actually holds XOR terms.
			if k.xors > 0 {
				compKey := groupKey{k.ones + 1, k.xnors, k.xors}
				if comp, ok := groups[compKey]; ok {
					mergeXorLike(group, comp, cellXor, cellXnor, merged, used, &profile.Xor)
				}
			}

			// 3. XNOR merge: symmetric.
			if k.xnors > 0 {
				compKey := groupKey{k.ones + 1, k.xnors, k.xors}
				if comp, ok := groups[compKey]; ok {
					mergeXorLike(group, comp, cellXnor, cellXor, merged, used, &profile.Xnor)
				}
			}
		}

		for _, group := range groups {
			for p := range group.Iter() {
				if !used.ContainsOne(p) {
					marked.Add(p)
				}
			}
		}

		if used.Cardinality() == 0 {
			break
		}
		working = merged
	}

	primes := marked.Clone()
	primes = primes.Union(working)
	return primes, profile
}

// groupBy partitions terms by their (ones, xors, xnors) key.
func groupBy(terms mapset.Set[Pattern]) map[groupKey]mapset.Set[Pattern] {
	groups := make(map[groupKey]mapset.Set[Pattern])
	for p := range terms.Iter() {
		k := keyOf(p)
		g, ok := groups[k]
		if !ok {
			g = mapset.NewThreadUnsafeSet[Pattern]()
			groups[k] = g
		}
		g.Add(p)
	}
	return groups
}

// sortedPatterns returns a set's members in deterministic ascending order,
// per spec.md §5's determinism requirement for any iteration this package
// performs.
func sortedPatterns(s mapset.Set[Pattern]) []Pattern {
	out := s.ToSlice()
	slices.Sort(out)
	return out
}

// mergeAdjacency implements spec.md §4.2 merge (1): for each t1 in group
// and each '0' position, check whether flipping it to '1' lands in next.
func mergeAdjacency(group, next mapset.Set[Pattern], merged, used mapset.Set[Pattern], counter *int) {
	for _, t1 := range sortedPatterns(group) {
		for i := 0; i < t1.Len(); i++ {
			if cellAt(t1, i) != cellZero {
				continue
			}
			*counter++
			t2 := withCell(t1, i, cellOne)
			if next.ContainsOne(t2) {
				used.Add(t1)
				used.Add(t2)
				merged.Add(withCell(t1, i, cellDash))
			}
		}
	}
}

// mergeXorLike implements spec.md §4.2 merges (2) and (3), which are
// mirror images of each other: `own` is the wildcard this group carries
// ('^' for the XOR merge, '~' for the XNOR merge), `other` is its
// complement used to build t1' and to name the complementary group key.
func mergeXorLike(group, comp mapset.Set[Pattern], own, other cellKind, merged, used mapset.Set[Pattern], counter *int) {
	for _, t1 := range sortedPatterns(group) {
		t1c := replaceCell(t1, own, other)
		for i := 0; i < t1.Len(); i++ {
			if cellAt(t1, i) != cellZero {
				continue
			}
			*counter++
			t2 := withCell(t1c, i, cellOne)
			if comp.ContainsOne(t2) {
				used.Add(t1)
				merged.Add(withCell(t1, i, own))
			}
		}
	}
}

// seedXorXnor performs the initial XOR/XNOR seeding pass (spec.md §4.2):
// for every pair of minterms in the same ones-group, try reduce_simple_xor;
// for every pair two ones-groups apart, try reduce_simple_xnor. Successful
// seeds are added to the working set; originals are kept.
func seedXorXnor(working mapset.Set[Pattern]) {
	byOnes := make(map[int][]Pattern)
	for p := range working.Iter() {
		byOnes[p.CountOnes()] = append(byOnes[p.CountOnes()], p)
	}
	ones := maps.Keys(byOnes)
	slices.Sort(ones)

	var seeds []Pattern
	for _, gi := range ones {
		group := byOnes[gi]
		for _, t1 := range group {
			for _, t2 := range group {
				if seed, ok := ReduceSimpleXOR(t1, t2); ok {
					seeds = append(seeds, seed)
				}
			}
			for _, t2 := range byOnes[gi+2] {
				if seed, ok := ReduceSimpleXNOR(t1, t2); ok {
					seeds = append(seeds, seed)
				}
			}
		}
	}
	for _, seed := range seeds {
		working.Add(seed)
	}
}

// ReduceSimpleXOR tries to combine two wildcard-free patterns into a
// two-position XOR term (spec.md §4.2). It succeeds iff t1 and t2 differ in
// exactly two positions, one with t1='1',t2='0' and the other the reverse.
func ReduceSimpleXOR(t1, t2 Pattern) (Pattern, bool) {
	return reduceSimple(t1, t2, cellXor, func(d10, d20 int) bool {
		return d10 == 1 && d20 == 1
	})
}

// ReduceSimpleXNOR tries to combine two wildcard-free patterns into a
// two-position XNOR term (spec.md §4.2). It succeeds iff t1 and t2 differ
// in exactly two positions with identical direction.
func ReduceSimpleXNOR(t1, t2 Pattern) (Pattern, bool) {
	return reduceSimple(t1, t2, cellXnor, func(d10, d20 int) bool {
		return (d10 == 2 && d20 == 0) || (d10 == 0 && d20 == 2)
	})
}

func reduceSimple(t1, t2 Pattern, mark cellKind, accept func(d10, d20 int) bool) (Pattern, bool) {
	if t1.Len() != t2.Len() {
		return "", false
	}
	out := make([]byte, t1.Len())
	d10, d20 := 0, 0
	for i := 0; i < t1.Len(); i++ {
		c1, c2 := cellAt(t1, i), cellAt(t2, i)
		if c1 == cellXor || c1 == cellXnor || c2 == cellXor || c2 == cellXnor {
			return "", false
		}
		if c1 != c2 {
			out[i] = byte(mark)
			if mark == cellXor {
				if c2 == cellZero {
					d10++
				} else {
					d20++
				}
			} else {
				if c1 == cellZero {
					d10++
				} else {
					d20++
				}
			}
		} else {
			out[i] = byte(c1)
		}
	}
	if !accept(d10, d20) {
		return "", false
	}
	return Pattern(out), true
}

// withCell returns p with position i replaced by k.
func withCell(p Pattern, i int, k cellKind) Pattern {
	b := []byte(p)
	out := make([]byte, len(b))
	copy(out, b)
	out[i] = byte(k)
	return Pattern(out)
}

// replaceCell returns p with every occurrence of from replaced by to.
func replaceCell(p Pattern, from, to cellKind) Pattern {
	b := []byte(p)
	out := make([]byte, len(b))
	for i, c := range b {
		if cellKind(c) == from {
			out[i] = byte(to)
		} else {
			out[i] = c
		}
	}
	return Pattern(out)
}
