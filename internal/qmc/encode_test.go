package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIntegers_S1(t *testing.T) {
	bits := 2
	ones, dc, n, ok := EncodeIntegers([]uint64{1, 2, 3}, nil, &bits)
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, []Pattern{"01", "10", "11"}, ones)
	assert.Empty(t, dc)
}

func TestEncodeIntegers_EmptyInput(t *testing.T) {
	_, _, _, ok := EncodeIntegers(nil, nil, nil)
	assert.False(t, ok)
}

func TestEncodeIntegers_ZeroWidthDefault(t *testing.T) {
	ones, _, n, ok := EncodeIntegers([]uint64{0}, nil, nil)
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, []Pattern{"0"}, ones)
}

func TestEncodeIntegers_InferredWidth(t *testing.T) {
	_, _, n, ok := EncodeIntegers([]uint64{0, 3, 5, 6}, nil, nil)
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestEncodeStrings_S6(t *testing.T) {
	ones, dc, n, ok := EncodeStrings([]Pattern{"10-1"}, nil, nil)
	require.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, []Pattern{"10-1"}, ones)
	assert.Empty(t, dc)
}

func TestEncodeStrings_InconsistentWidth(t *testing.T) {
	_, _, _, ok := EncodeStrings([]Pattern{"10", "101"}, nil, nil)
	assert.False(t, ok)
}

func TestEncodeStrings_NumBitsMismatch(t *testing.T) {
	bits := 3
	_, _, _, ok := EncodeStrings([]Pattern{"10"}, nil, &bits)
	assert.False(t, ok)
}

func TestEncodeStrings_EmptyInput(t *testing.T) {
	_, _, _, ok := EncodeStrings(nil, nil, nil)
	assert.False(t, ok)
}
