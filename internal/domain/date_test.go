package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2026, time.February, 28), d)
	assert.Equal(t, "2026-03-01", d.AddDays(1).String())

	_, err = domain.ParseDate("28/02/2026")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d := domain.NewDate(2026, time.July, 4)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-07-04"`, string(b))

	var got domain.Date
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, d, got)

	assert.Error(t, json.Unmarshal([]byte(`"July 4"`), &got))
}

func TestDate_Ordering(t *testing.T) {
	a := domain.NewDate(2026, time.January, 31)
	b := a.AddDays(1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.True(t, domain.Date{}.IsZero())
}

func TestAgeInDays(t *testing.T) {
	created := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 0, domain.AgeInDays(created, created.Add(time.Minute-time.Second)))
	assert.Equal(t, 1, domain.AgeInDays(created, time.Date(2026, 1, 2, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, 91, domain.AgeInDays(created, time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)))
}

func TestToday_UsesClock(t *testing.T) {
	c := domain.FixedClock(time.Date(2026, 5, 1, 3, 0, 0, 0, time.UTC))
	assert.Equal(t, domain.NewDate(2026, time.May, 1), domain.Today(c))
}

func TestNewPaginationParams(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 50}, p)
	assert.Equal(t, 0, p.Offset())

	page, limit := 3, 500
	p = domain.NewPaginationParams(&page, &limit)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())

	zero := 0
	p = domain.NewPaginationParams(&zero, &zero)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 50}, p)
}
