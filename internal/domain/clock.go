package domain

import "time"

// Clock supplies the evaluation-time "now" for validation and age computation.
// Injecting it keeps the 90-day window deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today returns the UTC calendar date of c.Now().
func Today(c Clock) Date {
	return DateOf(c.Now().UTC())
}

// AgeInDays returns the number of whole calendar days between created and now,
// both taken in UTC.
func AgeInDays(created, now time.Time) int {
	from := DateOf(created.UTC()).Time()
	to := DateOf(now.UTC()).Time()
	return int(to.Sub(from).Hours() / 24)
}
