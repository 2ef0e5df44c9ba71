// Package projection folds ride events into the RideProjection read model.
package projection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
)

var (
	// ErrNotCreated is returned when an event is applied before RideCreated.
	ErrNotCreated = errors.New("ride has no RideCreated event")
	// ErrAggregateMismatch is returned when an event belongs to another ride.
	ErrAggregateMismatch = errors.New("event belongs to a different ride")
)

// Apply folds e into p. Weather events are informational: the weather they
// carry is already on RideCreated or RideEdited, so they leave p unchanged.
func Apply(p *domain.RideProjection, e event.Event) error {
	if _, ok := e.Payload.(event.RideCreated); !ok {
		if p.ID != e.AggregateID {
			if p.ID == uuid.Nil {
				return fmt.Errorf("projection.Apply: %s %s: %w", e.Type(), e.EventID, ErrNotCreated)
			}
			return fmt.Errorf("projection.Apply: %s %s: %w", e.Type(), e.EventID, ErrAggregateMismatch)
		}
	}

	switch pl := e.Payload.(type) {
	case event.RideCreated:
		*p = domain.RideProjection{
			ID:              e.AggregateID,
			UserID:          e.UserID,
			Date:            pl.Date,
			Hour:            pl.Hour,
			Distance:        pl.Distance,
			DistanceUnit:    pl.DistanceUnit,
			RideName:        pl.RideName,
			StartLocation:   pl.StartLocation,
			EndLocation:     pl.EndLocation,
			Notes:           pl.Notes,
			Weather:         pl.Weather,
			CreatedAt:       e.Timestamp,
			DeletionStatus:  domain.DeletionActive,
			CommunityStatus: domain.CommunityPrivate,
		}
	case event.RideEdited:
		applyEdit(p, pl)
		ts := e.Timestamp
		p.ModifiedAt = &ts
	case event.RideDeleted:
		p.DeletionStatus = domain.DeletionMarkedForDeletion
		ts := e.Timestamp
		p.ModifiedAt = &ts
	case event.WeatherFetched, event.WeatherFetchFailed:
	default:
		return fmt.Errorf("projection.Apply: %s: %w", e.Type(), event.ErrUnknownType)
	}
	return nil
}

func applyEdit(p *domain.RideProjection, pl event.RideEdited) {
	if pl.NewDate != nil {
		p.Date = *pl.NewDate
	}
	if pl.NewHour != nil {
		p.Hour = *pl.NewHour
	}
	if pl.NewDistance != nil {
		p.Distance = *pl.NewDistance
	}
	if pl.NewDistanceUnit != nil {
		p.DistanceUnit = *pl.NewDistanceUnit
	}
	if pl.NewRideName != nil {
		p.RideName = *pl.NewRideName
	}
	if pl.NewStartLocation != nil {
		p.StartLocation = *pl.NewStartLocation
	}
	if pl.NewEndLocation != nil {
		p.EndLocation = *pl.NewEndLocation
	}
	if pl.NewNotes != nil {
		notes := *pl.NewNotes
		p.Notes = &notes
	}
	if pl.NewWeather != nil {
		p.Weather = pl.NewWeather
	}
}

// Replay folds events, in the order given, into a fresh projection. The
// stream must start with RideCreated.
func Replay(events []event.Event) (domain.RideProjection, error) {
	var p domain.RideProjection
	for _, e := range events {
		if err := Apply(&p, e); err != nil {
			return domain.RideProjection{}, err
		}
	}
	if p.ID == uuid.Nil {
		return domain.RideProjection{}, fmt.Errorf("projection.Replay: %w", ErrNotCreated)
	}
	return p, nil
}
