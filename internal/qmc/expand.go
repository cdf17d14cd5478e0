package qmc

import mapset "github.com/deckarep/golang-set/v2"

// Expand enumerates cover(p) \ exclude (C3): every concrete minterm the
// pattern p covers, except those present in exclude.
//
// This is a direct transliteration of the reference "permutations" walk
// (spec.md §4.3): a cursor sweeps the pattern left to right emitting a
// concrete assignment at each wildcard, reverses at the right edge to
// advance the rightmost still-advanceable wildcard, and terminates when it
// walks off the left edge with no wildcard left to advance. Every public
// entry point validates its patterns before this function ever sees them
// (see ValidatePattern), so the '#' branch below is unreachable except
// through a Pattern built by hand outside this package — it is kept for
// fidelity with the documented reference behavior (spec.md §4.3/§7).
func Expand(p Pattern, exclude mapset.Set[Pattern]) mapset.Set[Pattern] {
	n := p.Len()
	result := mapset.NewThreadUnsafeSet[Pattern]()
	if n == 0 {
		return result
	}

	nXor := p.CountXors() + p.CountXnors()
	res := make([]byte, n)
	xorValue := 0
	seenXors := 0
	i := 0
	direction := 1

	for i >= 0 {
		c := cellAt(p, i)
		switch c {
		case cellZero, cellOne:
			res[i] = byte(c)
		case cellDash:
			if direction == 1 {
				res[i] = byte(cellZero)
			} else if res[i] == byte(cellZero) {
				res[i] = byte(cellOne)
				direction = 1
			}
		case cellXor:
			seenXors += direction
			if direction == 1 {
				if seenXors == nXor && xorValue == 0 {
					res[i] = byte(cellOne)
				} else {
					res[i] = byte(cellZero)
				}
			} else if res[i] == byte(cellZero) && seenXors < nXor-1 {
				res[i] = byte(cellOne)
				direction = 1
				seenXors++
			}
			if res[i] == byte(cellOne) {
				xorValue ^= 1
			}
		case cellXnor:
			seenXors += direction
			if direction == 1 {
				if seenXors == nXor && xorValue == 1 {
					res[i] = byte(cellOne)
				} else {
					res[i] = byte(cellZero)
				}
			} else if res[i] == byte(cellZero) && seenXors < nXor-1 {
				res[i] = byte(cellOne)
				direction = 1
				seenXors++
			}
			if res[i] == byte(cellOne) {
				xorValue ^= 1
			}
		default:
			res[i] = '#'
		}

		i += direction
		if i == n {
			direction = -1
			i = n - 1
			minterm := Pattern(append([]byte(nil), res...))
			if exclude == nil || !exclude.ContainsOne(minterm) {
				result.Add(minterm)
			}
		}
	}

	return result
}
