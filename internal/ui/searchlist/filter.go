package searchlist

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultFilter stringifies item with fmt.Sprint and reports whether it
// contains term, ignoring case.
//
// Structs stringify as "{field field}", so for non-primitive items this
// matches against field values rather than anything meaningful. Callers
// that care should pass a SearchFilter.
func DefaultFilter[T any](item T, term string) bool {
	return strings.Contains(strings.ToLower(fmt.Sprint(item)), strings.ToLower(term))
}

// SubstringFilter matches term case-insensitively against any of the
// strings returned by fields.
func SubstringFilter[T any](fields func(T) []string) SearchFilterFunc[T] {
	return func(item T, term string) bool {
		term = strings.ToLower(term)
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// FuzzyFilter matches when the characters of term appear in order in
// text(item). Matching is per item, so the visible order stays the
// original order rather than fuzzy score order.
func FuzzyFilter[T any](text func(T) string) SearchFilterFunc[T] {
	return func(item T, term string) bool {
		return len(fuzzy.Find(term, []string{text(item)})) > 0
	}
}
