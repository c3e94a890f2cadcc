// Package arrays holds the textbook search and sort routines used by the
// algorithms lecture. Every function works on the slice it is given; none
// allocate.
package arrays

import "cmp"

// NotFound is returned by the index functions when there is no answer.
const NotFound = -1

// IndexOf returns the position of the first element equal to target, or NotFound.
func IndexOf[T cmp.Ordered](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return NotFound
}

// Contains reports whether target appears in s.
func Contains[T cmp.Ordered](s []T, target T) bool {
	return IndexOf(s, target) != NotFound
}

// MinIndex returns the position of the smallest element. Ties go to the
// earliest position. An empty slice yields NotFound.
func MinIndex[T cmp.Ordered](s []T) int {
	if len(s) == 0 {
		return NotFound
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[best] {
			best = i
		}
	}
	return best
}

// MaxIndex is the mirror of MinIndex.
func MaxIndex[T cmp.Ordered](s []T) int {
	if len(s) == 0 {
		return NotFound
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best
}

// SelectionSort sorts s in place. On each pass the minimum of the unsorted
// suffix is swapped into position i. Not stable.
func SelectionSort[T cmp.Ordered](s []T) {
	for i := 0; i < len(s)-1; i++ {
		m := i + MinIndex(s[i:])
		if m != i {
			s[i], s[m] = s[m], s[i]
		}
	}
}

// InsertionSort sorts s in place by shifting each element left past its
// larger predecessors. Already-sorted input costs a single pass.
func InsertionSort[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for j > 0 && v < s[j-1] {
			s[j] = s[j-1]
			j--
		}
		s[j] = v
	}
}

// Scale multiplies every element of s by factor. The caller's slice sees the
// change because s shares its backing array.
func Scale[T int | float64](s []T, factor T) {
	for i := range s {
		s[i] *= factor
	}
}
