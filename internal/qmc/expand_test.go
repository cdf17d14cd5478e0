package qmc

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
)

func TestExpand_NoWildcards(t *testing.T) {
	got := Expand("101", nil)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet[Pattern]("101")))
}

func TestExpand_Dashes(t *testing.T) {
	got := Expand("-1", nil)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet[Pattern]("01", "11")))
}

func TestExpand_ExcludesDontCares(t *testing.T) {
	exclude := mapset.NewThreadUnsafeSet[Pattern]("01")
	got := Expand("-1", exclude)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet[Pattern]("11")))
}

func TestExpand_XorOddParity(t *testing.T) {
	got := Expand("^^^", nil)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet[Pattern]("001", "010", "100", "111")))
}

func TestExpand_XnorEvenParity(t *testing.T) {
	got := Expand("~~~", nil)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet[Pattern]("000", "011", "101", "110")))
}

func TestExpand_AllDashes(t *testing.T) {
	got := Expand(allDashes(2), nil)
	assert.Equal(t, 4, got.Cardinality())
}
