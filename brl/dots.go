package brl

import (
	"fmt"
	"strconv"
	"strings"
)

// DotSet is the set of raised positions of one Braille cell, packed as a
// bitmask: bit k-1 is set iff dot number k (1…8) is raised. The layout is
// the one used by the Unicode Braille Patterns block, so converting a
// DotSet to its display character is a single addition (see [DotSet.Rune]).
//
// The zero value is the blank cell.
type DotSet uint8

// Blank is the empty dot set, rendered as U+2800.
const Blank DotSet = 0

// Well-known indicator and marker cells.
var (
	// Capital is the capitalization indicator (dot 6).
	Capital = Dots(6)
	// Number is the numeric indicator (dots 3,4,5,6).
	Number = Dots(3, 4, 5, 6)
	// Fallback marks an unrecognized input character (dots 2,6).
	Fallback = Dots(2, 6)
)

// Dots constructs a dot set from dot numbers. Duplicates are allowed and
// the order of arguments is irrelevant. Dot numbers outside 1…8 are a
// programming error and cause a panic; all call sites are static table
// literals, so a bad value surfaces at package initialization.
func Dots(nums ...int) DotSet {
	var d DotSet
	for _, n := range nums {
		if n < 1 || n > 8 {
			panic(fmt.Sprintf("brl: dot number %d out of range 1..8", n))
		}
		d |= 1 << (n - 1)
	}
	return d
}

// Has reports whether dot number n is raised. Out-of-range n is not an
// error; it simply is never a member.
func (d DotSet) Has(n int) bool {
	if n < 1 || n > 8 {
		return false
	}
	return d&(1<<(n-1)) != 0
}

// Union returns the set of dots raised in either d or other.
func (d DotSet) Union(other DotSet) DotSet {
	return d | other
}

// With returns d with dot number n raised. It panics for n outside 1…8,
// like [Dots].
func (d DotSet) With(n int) DotSet {
	return d | Dots(n)
}

// Count returns the number of raised dots.
func (d DotSet) Count() int {
	c := 0
	for v := d; v != 0; v &= v - 1 {
		c++
	}
	return c
}

// List returns the raised dot numbers in ascending order. The blank cell
// yields an empty slice.
func (d DotSet) List() []int {
	nums := make([]int, 0, d.Count())
	for n := 1; n <= 8; n++ {
		if d.Has(n) {
			nums = append(nums, n)
		}
	}
	return nums
}

// Rune returns the Unicode Braille Patterns character for d, i.e.
// U+2800 plus the dot bitmask. The blank cell maps to U+2800, which is
// distinct from the ASCII space character.
func (d DotSet) Rune() rune {
	return 0x2800 + rune(d)
}

// String renders the dot numbers in set notation, e.g. "{1,2,6}".
// Mostly useful in traces and test failure messages.
func (d DotSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, n := range d.List() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte('}')
	return sb.String()
}
