package qmc

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
)

// FuzzSimplifyRoundTrip checks the one property that must hold for any
// input Simplify accepts: every minterm handed in is covered by the
// returned patterns, and every returned pattern's full expansion only
// ever adds don't-care or original minterms, never something foreign.
func FuzzSimplifyRoundTrip(f *testing.F) {
	f.Add(uint64(0b0101), uint8(4))
	f.Add(uint64(0b1111), uint8(4))
	f.Add(uint64(0b0001), uint8(3))

	f.Fuzz(func(t *testing.T, mintermMask uint64, width uint8) {
		n := int(width%6) + 1
		mintermMask &= (uint64(1) << uint(n)) - 1

		var ones []uint64
		for m := uint64(0); m < (uint64(1) << uint(n)); m++ {
			if mintermMask&(uint64(1)<<m) != 0 {
				ones = append(ones, m)
			}
		}
		if len(ones) == 0 {
			return
		}

		bits := n
		got, ok := Simplify(ones, nil, &bits, false)
		if !ok {
			t.Fatalf("Simplify rejected non-empty input")
		}

		covered := mapset.NewThreadUnsafeSet[Pattern]()
		for _, p := range got {
			if p.Len() != n {
				t.Fatalf("pattern %q has width %d, want %d", p, p.Len(), n)
			}
			covered = covered.Union(Expand(p, nil))
		}
		for _, m := range ones {
			if !covered.ContainsOne(encodeOne(m, n)) {
				t.Fatalf("minterm %d not covered by result %v", m, got)
			}
		}

		want := mapset.NewThreadUnsafeSet[Pattern]()
		for _, m := range ones {
			want.Add(encodeOne(m, n))
		}
		for _, m := range covered.ToSlice() {
			if !want.ContainsOne(m) {
				t.Fatalf("result %v covers %s, which is not an input minterm", got, m)
			}
		}
	})
}
