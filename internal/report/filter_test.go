package report

import (
	"testing"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRange_Defaults(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	got, err := NormalizeRange(nil, nil, now, 30)
	require.NoError(t, err)

	assert.Equal(t, now, got.End)
	assert.Equal(t, now.AddDate(0, 0, -30), got.Start)
}

func TestNormalizeRange_ExplicitBounds(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	got, err := NormalizeRange(&start, &end, now, 30)
	require.NoError(t, err)
	assert.Equal(t, start, got.Start)
	assert.Equal(t, end, got.End)
}

func TestNormalizeRange_MissingStartAnchorsToEnd(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	got, err := NormalizeRange(nil, &end, now, 7)
	require.NoError(t, err)
	assert.Equal(t, end.AddDate(0, 0, -7), got.Start)
	assert.Equal(t, end, got.End)
}

func TestNormalizeRange_RejectsReversedRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NormalizeRange(&start, &end, now, 30)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRange.ErrorCode(), appErr.ErrorCode())
}

func TestDateRange_ContainsIsInclusive(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	r := entity.DateRange{Start: start, End: end}

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.True(t, r.Contains(start.AddDate(0, 0, 15)))
	assert.False(t, r.Contains(start.Add(-time.Second)))
	assert.False(t, r.Contains(end.Add(time.Second)))
}

func TestFilterOrderFacts(t *testing.T) {
	r := entity.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	facts := []entity.OrderFact{
		{OrderID: 1, OrderDate: r.Start, Status: entity.StatusCompleted},
		{OrderID: 2, OrderDate: r.End, Status: entity.StatusPending},
		{OrderID: 3, OrderDate: r.End.AddDate(0, 1, 0), Status: entity.StatusCompleted},
	}

	inRange := FilterOrderFacts(facts, r, "")
	require.Len(t, inRange, 2)

	completed := FilterOrderFacts(facts, r, entity.StatusCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, int64(1), completed[0].OrderID)

	// Status match is exact and case-sensitive.
	assert.Empty(t, FilterOrderFacts(facts, r, "completed"))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("Hex Bolts M8", "bolt"))
	assert.True(t, MatchesSearch("Hex Bolts M8", ""))
	assert.False(t, MatchesSearch("Hex Bolts M8", "washer"))
}
