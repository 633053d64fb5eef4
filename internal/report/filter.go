// Package report implements the pure reporting core: range normalization,
// in-memory filtering and aggregation over flat order rows, ranking, and
// report assembly. Everything here is deterministic and free of I/O; the
// pushdown repository produces the same results at the store.
package report

import (
	"strings"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
)

// DefaultRangeDays is the fallback report window when no start date is given.
const DefaultRangeDays = 30

// NormalizeRange resolves optional report bounds against now. A missing end
// defaults to now, a missing start to defaultDays before the end. A start
// after the end is rejected with ErrInvalidRange, never swapped: a reversed
// range is a caller bug and silently fixing it would hide it.
func NormalizeRange(start, end *time.Time, now time.Time, defaultDays int) (entity.DateRange, error) {
	if defaultDays <= 0 {
		defaultDays = DefaultRangeDays
	}

	resolvedEnd := now
	if end != nil {
		resolvedEnd = *end
	}

	resolvedStart := resolvedEnd.AddDate(0, 0, -defaultDays)
	if start != nil {
		resolvedStart = *start
	}

	if resolvedStart.After(resolvedEnd) {
		return entity.DateRange{}, domainerrors.ErrInvalidRange.WithDetails(
			"start " + resolvedStart.Format("2006-01-02") + " is after end " + resolvedEnd.Format("2006-01-02"))
	}

	return entity.DateRange{Start: resolvedStart, End: resolvedEnd}, nil
}

// FilterOrderFacts narrows order rows to the range and, when status is
// non-empty, to an exact case-sensitive status match.
func FilterOrderFacts(facts []entity.OrderFact, dateRange entity.DateRange, status string) []entity.OrderFact {
	filtered := make([]entity.OrderFact, 0, len(facts))
	for _, fact := range facts {
		if !dateRange.Contains(fact.OrderDate) {
			continue
		}
		if status != "" && fact.Status != status {
			continue
		}
		filtered = append(filtered, fact)
	}

	return filtered
}

// FilterLineFacts narrows line rows with the same predicate as
// FilterOrderFacts so both views always describe the same order set.
func FilterLineFacts(facts []entity.LineFact, dateRange entity.DateRange, status string) []entity.LineFact {
	filtered := make([]entity.LineFact, 0, len(facts))
	for _, fact := range facts {
		if !dateRange.Contains(fact.OrderDate) {
			continue
		}
		if status != "" && fact.Status != status {
			continue
		}
		filtered = append(filtered, fact)
	}

	return filtered
}

// MatchesSearch reports whether a product name contains the search term,
// case-insensitively. An empty term matches everything. Mirrors the ILIKE
// predicate the product listing pushes to the store.
func MatchesSearch(name, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}
