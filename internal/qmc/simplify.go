package qmc

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// Simplify runs the full C1-C4 pipeline over integer minterms/don't-cares
// and returns the minimized cover as sorted Patterns. ok is false on the
// empty-input edge case (spec.md §3 invariant 5).
func Simplify(ones, dc []uint64, numBits *int, useXOR bool) ([]Pattern, bool) {
	result, _, ok := simplifyIntegers(ones, dc, numBits, useXOR)
	return result, ok
}

// SimplifyWithProfile is Simplify plus the C2 merge-attempt counters.
func SimplifyWithProfile(ones, dc []uint64, numBits *int, useXOR bool) ([]Pattern, Profile, bool) {
	return simplifyIntegers(ones, dc, numBits, useXOR)
}

// SimplifyStrings runs the full pipeline over pre-encoded string patterns.
func SimplifyStrings(ones, dc []Pattern, numBits *int, useXOR bool) ([]Pattern, bool) {
	result, _, ok := simplifyStringsImpl(ones, dc, numBits, useXOR)
	return result, ok
}

// SimplifyStringsWithProfile is SimplifyStrings plus the C2 merge-attempt
// counters.
func SimplifyStringsWithProfile(ones, dc []Pattern, numBits *int, useXOR bool) ([]Pattern, Profile, bool) {
	return simplifyStringsImpl(ones, dc, numBits, useXOR)
}

func simplifyIntegers(ones, dc []uint64, numBits *int, useXOR bool) ([]Pattern, Profile, bool) {
	onesP, dcP, n, ok := EncodeIntegers(ones, dc, numBits)
	if !ok {
		return nil, Profile{}, false
	}
	return runPipeline(onesP, dcP, n, useXOR)
}

func simplifyStringsImpl(ones, dc []Pattern, numBits *int, useXOR bool) ([]Pattern, Profile, bool) {
	onesP, dcP, n, ok := EncodeStrings(ones, dc, numBits)
	if !ok {
		return nil, Profile{}, false
	}
	return runPipeline(onesP, dcP, n, useXOR)
}

// runPipeline wires C2 -> C4 together: find prime implicants over
// ones union don't-cares, pick the essential cover, then reduce it.
func runPipeline(ones, dc []Pattern, n int, useXOR bool) ([]Pattern, Profile, bool) {
	dcSet := mapset.NewThreadUnsafeSet[Pattern](dc...)
	allTerms := mapset.NewThreadUnsafeSet[Pattern](ones...)
	allTerms = allTerms.Union(dcSet)

	log.WithField("n", n).WithField("terms", allTerms.Cardinality()).Debug("starting simplify")

	primes, profile := FindPrimeImplicants(allTerms, useXOR)
	essential := SelectEssential(primes, dcSet, n)
	reduced := ReduceImplicants(n, essential, dcSet)

	out := reduced.ToSlice()
	slices.Sort(out)
	return out, profile, true
}
