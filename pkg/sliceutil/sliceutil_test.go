package sliceutil

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSortNumbers(t *testing.T) {
	// String sorting would put 10 before 9.
	got := SortNumbers([]int{10, 9, 100, -1, 2})
	assert.Equal(t, []int{-1, 2, 9, 10, 100}, got)

	assert.Equal(t, []float64{-0.5, 0.25, 3}, SortNumbers([]float64{3, -0.5, 0.25}))
}

func TestFind(t *testing.T) {
	words := []string{"apple", "banana", "cherry"}

	got, ok := Find(words, func(s string) bool { return strings.HasPrefix(s, "b") })
	assert.True(t, ok)
	assert.Equal(t, "banana", got)

	_, ok = Find(words, func(s string) bool { return s == "durian" })
	assert.False(t, ok)

	v, ok := FindValue([]int{4, 5, 6}, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = FindValue([]int{}, 5)
	assert.False(t, ok)
}

func TestFindIndex(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	s := []int{1, 2, 3, 4, 6}

	assert.Equal(t, 1, FindIndex(s, even))
	assert.Equal(t, -1, FindIndex([]int{1, 3}, even))
	if diff := cmp.Diff([]int{1, 3, 4}, FindIndexAll(s, even)); diff != "" {
		t.Errorf("FindIndexAll mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, FindIndexAll([]int{1}, even))
}

func TestShuffle(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a := Shuffle(slices.Clone(in), rand.New(rand.NewPCG(1, 2)))
	b := Shuffle(slices.Clone(in), rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, a, b, "same seed must give the same order")
	assert.ElementsMatch(t, in, a)
	assert.ElementsMatch(t, in, Shuffle(slices.Clone(in), nil))
	assert.Empty(t, Shuffle([]int{}, nil))
}

func TestUnique(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	got := Unique(in)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("Unique mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"b", "a", "b", "c", "a"}, in, "input must not be reordered")
	assert.Empty(t, Unique([]int(nil)))
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"single", 1, 1, []int{0, 2, 3, 4}},
		{"range", 1, 2, []int{0, 3, 4}},
		{"last two", -2, -1, []int{0, 1, 2}},
		{"second to last", -2, -2, []int{0, 1, 2, 4}},
		{"to past end is clamped", 3, 99, []int{0, 1, 2}},
		{"from before start is clamped", -99, 0, []int{1, 2, 3, 4}},
		{"inverted range removes nothing", 3, 1, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remove([]int{0, 1, 2, 3, 4}, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []int{0, 1, 2, 3}, RemoveAt([]int{0, 1, 2, 3, 4}, -1))
	assert.Empty(t, Remove([]int{}, 0, 0))
}
