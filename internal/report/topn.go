package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopN ranks groups by key descending, ties broken by display name
// ascending, and truncates to n entries. The input is never mutated, so the
// selector is idempotent and safe to re-run on the same aggregate set.
func TopN[T any](groups []T, n int, key func(T) decimal.Decimal, name func(T) string) []T {
	if n <= 0 {
		return []T{}
	}

	ranked := make([]T, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(i, j int) bool {
		cmp := key(ranked[i]).Cmp(key(ranked[j]))
		if cmp != 0 {
			return cmp > 0
		}

		return name(ranked[i]) < name(ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
