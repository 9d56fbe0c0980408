package listops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want List
	}{
		{"ints equal length", List{1, 2, 3}, List{4, 5, 6}, List{5, 7, 9}},
		{"strings equal length", List{"a", "b"}, List{"x", "y"}, List{"ax", "by"}},
		{"floats", List{1.5, 2.0}, List{0.5, 1.0}, List{2.0, 3.0}},
		{"int promoted by float", List{1}, List{0.5}, List{1.5}},
		{"unequal length", List{1, 2}, List{10}, List{}},
		{"tuple rejected", List{1, 2}, Tuple{3, 4}, List{}},
		{"plain slice rejected", []any{1, 2}, List{3, 4}, List{}},
		{"nil element", List{1, nil}, List{2, 3}, List{}},
		{"string plus int", List{"a"}, List{1}, List{}},
		{"nested lists concatenate", List{List{1}, List{2}}, List{List{3}, List{4}}, List{List{1, 3}, List{2, 4}}},
		{"list plus tuple element", List{List{1}}, List{Tuple{2}}, List{}},
		{"booleans count as ints", List{true, false}, List{1, 2.5}, List{2, 2.5}},
		{"int overflow", List{math.MaxInt}, List{1}, List{}},
		{"int underflow", List{math.MinInt}, List{-1}, List{}},
		{"nil arguments", nil, nil, List{}},
		{"both empty", List{}, List{}, List{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.a, tt.b)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombineDiscardsPartialResult(t *testing.T) {
	// The failing pair is last, after two pairs that add fine.
	got, ok := TryCombine(List{1, 2, "x"}, List{1, 2, 3})
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Empty(t, Combine(List{1, 2, "x"}, List{1, 2, 3}))
}

func TestTryCombineDistinguishesEmptySuccess(t *testing.T) {
	got, ok := TryCombine(List{}, List{})
	assert.True(t, ok)
	assert.Empty(t, got)

	_, ok = TryCombine(List{1}, List{})
	assert.False(t, ok)
}

func TestAdd(t *testing.T) {
	sum, ok := Add(2, 3)
	require.True(t, ok)
	assert.Equal(t, 5, sum)

	sum, ok = Add(2.5, 1)
	require.True(t, ok)
	assert.Equal(t, 3.5, sum)

	sum, ok = Add(true, true)
	require.True(t, ok)
	assert.Equal(t, 2, sum)

	_, ok = Add(true, "a")
	assert.False(t, ok)

	_, ok = Add(math.MaxInt, 1)
	assert.False(t, ok)

	sum, ok = Add(math.MaxInt, -1)
	require.True(t, ok)
	assert.Equal(t, math.MaxInt-1, sum)

	_, ok = Add(nil, nil)
	assert.False(t, ok)
}

func TestAddConcatenatesSequences(t *testing.T) {
	left := List{1, "a"}
	sum, ok := Add(left, List{nil})
	require.True(t, ok)
	assert.Equal(t, List{1, "a", nil}, sum)
	assert.Equal(t, List{1, "a"}, left)

	sum, ok = Add(Tuple{1}, Tuple{2})
	require.True(t, ok)
	assert.Equal(t, Tuple{1, 2}, sum)
}

func TestCombineSlices(t *testing.T) {
	ints, ok := CombineSlices([]int{1, 2, 3}, []int{4, 5, 6})
	require.True(t, ok)
	assert.Equal(t, []int{5, 7, 9}, ints)

	strs, ok := CombineSlices([]string{"a", "b"}, []string{"x", "y"})
	require.True(t, ok)
	assert.Equal(t, []string{"ax", "by"}, strs)

	_, ok = CombineSlices([]int{1, 2}, []int{10})
	assert.False(t, ok)
}
