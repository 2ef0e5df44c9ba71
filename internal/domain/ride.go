// Package domain holds the core entities of the ride logbook: rides, their
// read-model projections, weather snapshots and the calendar/clock helpers
// used to validate them. Nothing here performs I/O.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// DistanceUnit is the unit a ride's distance is recorded in.
type DistanceUnit string

const (
	DistanceMiles      DistanceUnit = "miles"
	DistanceKilometers DistanceUnit = "kilometers"
)

// Valid reports whether u is one of the supported units.
func (u DistanceUnit) Valid() bool {
	return u == DistanceMiles || u == DistanceKilometers
}

// DeletionStatus tracks soft deletion of a ride.
type DeletionStatus string

const (
	DeletionActive            DeletionStatus = "active"
	DeletionMarkedForDeletion DeletionStatus = "marked_for_deletion"
)

// CommunityStatus controls whether a ride may appear in community listings.
type CommunityStatus string

const (
	CommunityPrivate   CommunityStatus = "private"
	CommunityShareable CommunityStatus = "shareable"
	CommunityPublic    CommunityStatus = "public"
)

const (
	// MaxRideAgeDays bounds both how far back a ride may be dated and how old
	// a ride may be before it can no longer be deleted.
	MaxRideAgeDays = 90
	// MaxTextLength is the rune limit on ride name and locations.
	MaxTextLength = 200
	// MaxNotesLength is enforced at the request boundary, not by Validate.
	MaxNotesLength = 1000
)

// Ride is a single logged bicycle ride.
type Ride struct {
	ID              uuid.UUID
	UserID          string
	Date            Date
	Hour            int
	Distance        decimal.Decimal
	DistanceUnit    DistanceUnit
	RideName        string
	StartLocation   string
	EndLocation     string
	Notes           *string
	Weather         *Weather
	CreatedAt       time.Time
	ModifiedAt      *time.Time
	DeletionStatus  DeletionStatus
	CommunityStatus CommunityStatus
}

// Validate runs the ride invariants in order and returns the first violation
// as a ValidationFailed failure. now is the evaluation instant; its UTC date
// is "today".
func (r Ride) Validate(now time.Time) result.Result[result.Unit] {
	today := DateOf(now.UTC())
	return result.Combine(
		result.Require(!r.Date.After(today),
			result.ValidationFailed("Date cannot be in the future.")),
		result.Require(!r.Date.Before(today.AddDays(-MaxRideAgeDays)),
			result.ValidationFailed("Ride date must be within the last 90 days.")),
		result.Require(r.Hour >= 0 && r.Hour <= 23,
			result.ValidationFailed("Hour must be between 0 and 23.")),
		result.Require(r.Distance.IsPositive(),
			result.ValidationFailed("Distance must be greater than zero.")),
		result.Require(r.DistanceUnit.Valid(),
			result.ValidationFailed("Distance unit must be 'miles' or 'kilometers'.")),
		requireText(r.RideName, "Ride name"),
		requireText(r.StartLocation, "Start location"),
		requireText(r.EndLocation, "End location"),
		limitText(r.RideName, "Ride name"),
		limitText(r.StartLocation, "Start location"),
		limitText(r.EndLocation, "End location"),
	)
}

// Projection returns the read-model mirror of r.
func (r Ride) Projection() RideProjection {
	return RideProjection{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            r.Date,
		Hour:            r.Hour,
		Distance:        r.Distance,
		DistanceUnit:    r.DistanceUnit,
		RideName:        r.RideName,
		StartLocation:   r.StartLocation,
		EndLocation:     r.EndLocation,
		Notes:           r.Notes,
		Weather:         r.Weather,
		CreatedAt:       r.CreatedAt,
		ModifiedAt:      r.ModifiedAt,
		DeletionStatus:  r.DeletionStatus,
		CommunityStatus: r.CommunityStatus,
	}
}

func requireText(s, field string) result.Result[result.Unit] {
	return result.Require(strings.TrimSpace(s) != "",
		result.ValidationFailed(field+" is required."))
}

func limitText(s, field string) result.Result[result.Unit] {
	return result.Require(utf8.RuneCountInString(s) <= MaxTextLength,
		result.ValidationFailed(field+" cannot exceed 200 characters."))
}
