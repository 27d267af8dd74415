package models

import (
	"strings"

	"golang.org/x/text/cases"
)

// CanonicalName returns the representation of a name or description used
// for uniqueness comparisons: surrounding whitespace is stripped and the
// result is case-folded. A Caser is stateful, so each call builds its own.
func CanonicalName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// SameName reports whether two names are equal after canonicalization.
func SameName(a, b string) bool {
	return CanonicalName(a) == CanonicalName(b)
}
