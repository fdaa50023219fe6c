// Package sliceutil holds small generic helpers for searching, sorting and
// trimming slices.
package sliceutil

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SortNumbers sorts s numerically in place and returns it.
func SortNumbers[T Number](s []T) []T {
	slices.Sort(s)
	return s
}

// Find returns the first element matching pred.
func Find[T any](s []T, pred func(T) bool) (T, bool) {
	if i := slices.IndexFunc(s, pred); i >= 0 {
		return s[i], true
	}
	var zero T
	return zero, false
}

// FindValue returns the first element equal to v.
func FindValue[T comparable](s []T, v T) (T, bool) {
	return Find(s, func(e T) bool { return e == v })
}

// FindIndex returns the index of the first element matching pred, or -1.
func FindIndex[T any](s []T, pred func(T) bool) int {
	return slices.IndexFunc(s, pred)
}

// FindIndexAll returns the index of every element matching pred.
func FindIndexAll[T any](s []T, pred func(T) bool) []int {
	var idx []int
	for i, e := range s {
		if pred(e) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Shuffle permutes s in place. A nil r uses the global source.
func Shuffle[T any](s []T, r *rand.Rand) []T {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if r == nil {
		rand.Shuffle(len(s), swap)
	} else {
		r.Shuffle(len(s), swap)
	}
	return s
}

// Unique returns a sorted copy of s without duplicates. s is left untouched.
func Unique[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}

// Remove deletes the elements from index from through index to, inclusive.
// Negative indexes count back from the end, so Remove(s, -2, -1) drops the last
// two elements. Indexes are clamped to the slice; an empty range removes nothing.
func Remove[T any](s []T, from, to int) []T {
	n := len(s)
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	from = max(from, 0)
	to = min(to, n-1)
	if n == 0 || from > to {
		return s
	}
	return slices.Delete(s, from, to+1)
}

// RemoveAt deletes the element at index i; negative i counts from the end.
func RemoveAt[T any](s []T, i int) []T {
	return Remove(s, i, i)
}
