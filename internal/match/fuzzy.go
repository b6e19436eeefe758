// Package match holds the single substring predicate shared by every
// component that compares tags, allergies and preference strings. Keeping it
// in one place guarantees identical semantics everywhere: the comparison is
// case-insensitive and bidirectional, so "Pea" matches "Peanuts" and
// "Peanut Butter" matches "Peanuts".
package match

import "strings"

// Fuzzy reports whether a contains b or b contains a, ignoring case.
func Fuzzy(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// AnyFuzzy reports whether any candidate fuzzy-matches any target.
func AnyFuzzy(candidates, targets []string) bool {
	for _, c := range candidates {
		for _, t := range targets {
			if Fuzzy(c, t) {
				return true
			}
		}
	}
	return false
}

// ContainsFold reports whether haystack contains needle, ignoring case.
// Unlike Fuzzy this is one-directional; it is used for ingredient-text
// checks where only "ingredient mentions X" makes sense.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
