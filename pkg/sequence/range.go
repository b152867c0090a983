package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive [Lo, Hi] span of sequence indices.
type Range struct {
	Lo int
	Hi int
}

func RangeFrom(lo, hi int) Range {
	return Range{Lo: lo, Hi: hi}
}

// ParseRange parses "lo-hi", e.g. "0-99".
func ParseRange(s string) (Range, error) {
	var r Range
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	lo, err := strconv.Atoi(from)
	if err != nil {
		return r, fmt.Errorf("invalid lo index %q in range %q", from, s)
	}
	hi, err := strconv.Atoi(to)
	if err != nil {
		return r, fmt.Errorf("invalid hi index %q in range %q", to, s)
	}
	return RangeFrom(lo, hi), nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

func (r Range) Size() int {
	return r.Hi - r.Lo + 1
}

func (r Range) IsValid() bool {
	return r.Lo >= 0 && r.Lo <= r.Hi
}

func (r Range) Contains(i int) bool {
	return i >= r.Lo && i <= r.Hi
}

// CoveredBy returns whether r lies entirely within other.
func (r Range) CoveredBy(other Range) bool {
	return other.Lo <= r.Lo && r.Hi <= other.Hi
}

// Split divides r at its midpoint. The lower half gets the extra element
// on odd sizes.
func (r Range) Split() (Range, Range) {
	mid := (r.Lo + r.Hi) / 2
	return RangeFrom(r.Lo, mid), RangeFrom(mid+1, r.Hi)
}

// Adjacent returns whether other starts right after r ends.
func (r Range) Adjacent(other Range) bool {
	return r.Hi+1 == other.Lo
}
