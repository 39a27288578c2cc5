package model

import (
	"cmp"
	"math"
)

// CompareFloat compares two floats under a total order.
// NaN sorts after every other value and is equal to itself.
func CompareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareInt compares two integers.
func CompareInt[T ~int | ~int64](a, b T) int {
	return cmp.Compare(a, b)
}

// CompareString compares two strings lexicographically by byte.
func CompareString(a, b string) int {
	return cmp.Compare(a, b)
}

// CompareBool orders false before true.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
