// Package strings holds small string-slice helpers.
package strings

import "strings"

// Distinct trims each value, drops blanks and keeps the first occurrence of
// each remaining value in input order. The result is never nil.
func Distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DistinctFunc applies Distinct to key(item) for each item.
func DistinctFunc[T any](items []T, key func(T) string) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = key(it)
	}
	return Distinct(keys)
}
