package sequence

import (
	"fmt"
	"math/rand"
	"strings"
)

// Sequence is the mutable array of integers being sorted.
type Sequence []int

// New returns the ascending sequence 1..n.
func New(n int) Sequence {
	s := make(Sequence, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func (s Sequence) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Bounds returns the range covering the whole sequence.
func (s Sequence) Bounds() Range {
	return RangeFrom(0, len(s)-1)
}

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// InPlace counts the elements of a permutation of 1..n that already sit
// in their final slot.
func (s Sequence) InPlace() int {
	n := 0
	for i, v := range s {
		if v == i+1 {
			n++
		}
	}
	return n
}

// Counts returns how often each value occurs.
func (s Sequence) Counts() map[int]int {
	m := make(map[int]int, len(s))
	for _, v := range s {
		m[v]++
	}
	return m
}

// IsSorted reports whether s is non-decreasing over every adjacent pair.
func IsSorted(s Sequence) bool {
	return IsSortedRange(s, s.Bounds(), nil)
}

// IsSortedRange reports whether s[r.Lo..r.Hi] is ordered by less. A nil
// less uses the natural integer order.
func IsSortedRange(s Sequence, r Range, less func(a, b int) bool) bool {
	for i := r.Lo + 1; i <= r.Hi; i++ {
		if less == nil {
			if s[i] < s[i-1] {
				return false
			}
			continue
		}
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// Mode is the initial arrangement of a sequence.
type Mode string

const (
	Shuffle Mode = "shuffle"
	Reverse Mode = "reverse"
	Sorted  Mode = "sorted"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case Shuffle, Reverse, Sorted:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q, want one of %s, %s, %s", s, Shuffle, Reverse, Sorted)
}

// Arrange reorders s according to m. rnd is only used by Shuffle.
func (s Sequence) Arrange(m Mode, rnd *rand.Rand) {
	switch m {
	case Shuffle:
		rnd.Shuffle(len(s), s.Swap)
	case Reverse:
		for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
			s.Swap(i, j)
		}
	}
}
