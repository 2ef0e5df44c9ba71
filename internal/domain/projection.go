package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RideProjection is the current-state read model of a ride. It is derived
// from the event log and may be rebuilt from it at any time.
type RideProjection struct {
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

	// AgeInDays is computed by the store from its clock when the row is read.
	AgeInDays int
}

// Ride returns the entity view of p, used to re-validate edits.
func (p RideProjection) Ride() Ride {
	return Ride{
		ID:              p.ID,
		UserID:          p.UserID,
		Date:            p.Date,
		Hour:            p.Hour,
		Distance:        p.Distance,
		DistanceUnit:    p.DistanceUnit,
		RideName:        p.RideName,
		StartLocation:   p.StartLocation,
		EndLocation:     p.EndLocation,
		Notes:           p.Notes,
		Weather:         p.Weather,
		CreatedAt:       p.CreatedAt,
		ModifiedAt:      p.ModifiedAt,
		DeletionStatus:  p.DeletionStatus,
		CommunityStatus: p.CommunityStatus,
	}
}

// IsActive reports whether p has not been marked for deletion.
func (p RideProjection) IsActive() bool {
	return p.DeletionStatus == DeletionActive
}

// WithAge returns p with AgeInDays computed against now.
func (p RideProjection) WithAge(now time.Time) RideProjection {
	p.AgeInDays = AgeInDays(p.CreatedAt, now)
	return p
}
