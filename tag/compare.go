package tag

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two tags.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Kinds order as Byte < Short < Int < Long < Float < Double < String <
// List < Compound; within a kind values compare naturally.
func Compare(a, b *Tag) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case ByteType:
		return cmp.Compare(a.Byte, b.Byte)
	case ShortType:
		return cmp.Compare(a.Short, b.Short)
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case LongType:
		return cmp.Compare(a.Long, b.Long)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case DoubleType:
		return cmp.Compare(a.Double, b.Double)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareLists(a, b)
	case CompoundType:
		return compareCompounds(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same kind and value.
func Equal(a, b *Tag) bool {
	return Compare(a, b) == 0
}

func compareLists(a, b *Tag) int {
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareCompounds(a, b *Tag) int {
	n := min(len(a.Names), len(b.Names))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.Names[i], b.Names[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Names), len(b.Names))
}
