package helpers

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// IfElse returns valueIfTrue or valueIfFalse depending on isTrue. It is
// mostly used to pick labels in test names and log lines.
func IfElse[V any](isTrue bool, valueIfTrue, valueIfFalse V) V {
	if isTrue {
		return valueIfTrue
	}
	return valueIfFalse
}

// Sorted returns a sorted copy of a slice without modifying the original.
func Sorted[V constraints.Ordered](slice []V) []V {
	ret := slices.Clone(slice)
	slices.Sort(ret)
	return ret
}
