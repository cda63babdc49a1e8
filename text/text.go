// Package text provides the string search, comparison, and transform
// routines of the library, with an identifier-dispatched Exec facade.
package text

import (
	"strings"

	fossilalgo "github.com/fossillogic/fossil-algo"
)

// Algorithm identifiers accepted by Exec.
const (
	AlgoFind    = "find"
	AlgoRFind   = "rfind"
	AlgoCount   = "count"
	AlgoEquals  = "equals"
	AlgoIEquals = "iequals"
	AlgoToUpper = "toupper"
	AlgoToLower = "tolower"
	AlgoReverse = "reverse"
)

// Find returns the index of the first occurrence of sub in s, -1 if absent.
func Find(s, sub string) int {
	return strings.Index(s, sub)
}

// RFind returns the index of the last occurrence of sub in s, -1 if absent.
func RFind(s, sub string) int {
	return strings.LastIndex(s, sub)
}

// Count returns the number of occurrences of sub in s, counting overlaps:
// Count("aaa", "aa") is 2. An empty sub is invalid input and reports
// int(fossilalgo.InvalidInput).
func Count(s, sub string) int {
	if sub == "" {
		return int(fossilalgo.InvalidInput)
	}
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}

	return count
}

// Equals reports whether a and b are byte-identical.
func Equals(a, b string) bool { return a == b }

// EqualsFold reports whether a and b are equal under Unicode case-folding.
func EqualsFold(a, b string) bool { return strings.EqualFold(a, b) }

// Upper returns s mapped to upper case.
func Upper(s string) string { return strings.ToUpper(s) }

// Lower returns s mapped to lower case.
func Lower(s string) string { return strings.ToLower(s) }

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// Exec dispatches on algorithmID over input (and arg, for the search and
// comparison algorithms).
//
// The integer code carries the payload for search and comparison
// identifiers — an index for find/rfind (-1 when absent), an occurrence
// count for count, 1 (equal) or -1 (different) for equals/iequals — and is
// 0 for the transforms, whose result rides the output string. Error codes
// follow the library's uniform taxonomy: int(fossilalgo.InvalidInput) for
// an empty identifier or an invalid argument, and
// int(fossilalgo.UnsupportedAlgorithm) for unknown identifiers.
func Exec(algorithmID, input, arg string) (int, string) {
	switch algorithmID {
	case "":
		return int(fossilalgo.InvalidInput), ""
	case AlgoFind:
		return Find(input, arg), ""
	case AlgoRFind:
		return RFind(input, arg), ""
	case AlgoCount:
		return Count(input, arg), ""
	case AlgoEquals:
		return boolCode(Equals(input, arg)), ""
	case AlgoIEquals:
		return boolCode(EqualsFold(input, arg)), ""
	case AlgoToUpper:
		return 0, Upper(input)
	case AlgoToLower:
		return 0, Lower(input)
	case AlgoReverse:
		return 0, Reverse(input)
	default:
		return int(fossilalgo.UnsupportedAlgorithm), ""
	}
}

// Supported reports whether Exec implements algorithmID. Safe to call with
// an empty identifier (reports false).
func Supported(algorithmID string) bool {
	switch algorithmID {
	case AlgoFind, AlgoRFind, AlgoCount, AlgoEquals, AlgoIEquals,
		AlgoToUpper, AlgoToLower, AlgoReverse:
		return true
	default:
		return false
	}
}

// boolCode maps a comparison result onto the 1 / -1 convention of the
// comparison identifiers.
func boolCode(equal bool) int {
	if equal {
		return 1
	}

	return -1
}
