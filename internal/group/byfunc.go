package group

import (
	"cmp"
	"slices"
)

// ByFunc groups items by a statically-typed key function. It returns the
// distinct keys in ascending order alongside the groups, which preserve the
// input order of their items. This is the typed companion to By for callers
// that hold concrete structs rather than loose records.
func ByFunc[T any, K cmp.Ordered](items []T, key func(T) K) ([]K, map[K][]T) {
	groups := make(map[K][]T, len(items))
	var keys []K
	for _, item := range items {
		k := key(item)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}
	slices.Sort(keys)
	return keys, groups
}
