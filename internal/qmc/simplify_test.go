package qmc

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify_S1(t *testing.T) {
	bits := 2
	got, ok := Simplify([]uint64{1, 2, 3}, nil, &bits, false)
	require.True(t, ok)
	assert.ElementsMatch(t, []Pattern{"-1", "1-"}, got)
}

func TestSimplify_S2_CoversRequiredMinterms(t *testing.T) {
	bits := 4
	got, ok := Simplify([]uint64{4, 8, 10, 11, 12, 15}, []uint64{9, 14}, &bits, false)
	require.True(t, ok)

	required := []uint64{4, 8, 10, 11, 12, 15}
	for _, m := range required {
		encoded := encodeOne(m, 4)
		found := false
		for _, p := range got {
			if Expand(p, nil).ContainsOne(encoded) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "minterm %d (%s) not covered by %v", m, encoded, got)
	}
}

func TestSimplify_S3_EmptyInput(t *testing.T) {
	_, ok := Simplify(nil, nil, nil, false)
	assert.False(t, ok)
}

func TestSimplify_S4_XorForm(t *testing.T) {
	bits := 3
	got, ok := Simplify([]uint64{0, 3, 5, 6}, nil, &bits, true)
	require.True(t, ok)

	covered := mapset.NewThreadUnsafeSet[Pattern]()
	for _, p := range got {
		covered = covered.Union(Expand(p, nil))
	}
	for _, m := range []uint64{0, 3, 5, 6} {
		assert.True(t, covered.ContainsOne(encodeOne(m, 3)))
	}
}

func TestSimplify_S5_AllMintermsIsAllDashes(t *testing.T) {
	bits := 3
	got, ok := Simplify([]uint64{0, 1, 2, 3, 4, 5, 6, 7}, nil, &bits, false)
	require.True(t, ok)
	assert.Equal(t, []Pattern{"---"}, got)
}

func TestSimplifyStrings_S6(t *testing.T) {
	got, ok := SimplifyStrings([]Pattern{"10-1"}, nil, nil, false)
	require.True(t, ok)
	assert.Equal(t, []Pattern{"10-1"}, got)
}

func TestSimplifyWithProfile_ReportsMergeCounts(t *testing.T) {
	bits := 2
	got, profile, ok := SimplifyWithProfile([]uint64{1, 2, 3}, nil, &bits, false)
	require.True(t, ok)
	assert.NotEmpty(t, got)
	assert.Greater(t, profile.Cmp, 0)
}

func TestSimplify_DeterministicOrdering(t *testing.T) {
	bits := 4
	a, _ := Simplify([]uint64{4, 8, 10, 11, 12, 15}, []uint64{9, 14}, &bits, false)
	b, _ := Simplify([]uint64{4, 8, 10, 11, 12, 15}, []uint64{9, 14}, &bits, false)
	assert.Equal(t, a, b)
}
