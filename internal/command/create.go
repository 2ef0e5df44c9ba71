package command

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// CreateRide is the input of CreateRideHandler.
type CreateRide struct {
	RideID        uuid.UUID
	UserID        string
	Date          domain.Date
	Hour          int
	Distance      decimal.Decimal
	DistanceUnit  domain.DistanceUnit
	RideName      string
	StartLocation string
	EndLocation   string
	Notes         *string
	Latitude      *decimal.Decimal
	Longitude     *decimal.Decimal
}

// CreateRideOutcome holds the primary event and zero or one weather event.
type CreateRideOutcome struct {
	Created    event.Event
	Additional []event.Event
}

// Payload returns the RideCreated payload of the primary event.
func (o CreateRideOutcome) Payload() event.RideCreated {
	return o.Created.Payload.(event.RideCreated)
}

// Events returns all events in append order: RideCreated first.
func (o CreateRideOutcome) Events() []event.Event {
	return append([]event.Event{o.Created}, o.Additional...)
}

// Option configures a handler.
type Option func(*options)

type options struct {
	newID func() uuid.UUID
}

// WithIDGenerator overrides how event ids are generated.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(o *options) { o.newID = fn }
}

func buildOptions(opts []Option) options {
	o := options{newID: uuid.New}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CreateRideHandler validates a new ride, enriches it with weather when
// coordinates are given, and emits RideCreated.
type CreateRideHandler struct {
	weather WeatherProvider
	clock   domain.Clock
	newID   func() uuid.UUID
}

// NewCreateRideHandler panics if weather or clock is nil.
func NewCreateRideHandler(weather WeatherProvider, clock domain.Clock, opts ...Option) *CreateRideHandler {
	if weather == nil {
		panic("command.NewCreateRideHandler: nil WeatherProvider")
	}
	if clock == nil {
		panic("command.NewCreateRideHandler: nil Clock")
	}
	o := buildOptions(opts)
	return &CreateRideHandler{weather: weather, clock: clock, newID: o.newID}
}

// Handle never fails because of weather: lookup errors, panics and empty
// results become a WeatherFetchFailed event and the ride is created anyway.
func (h *CreateRideHandler) Handle(ctx context.Context, cmd CreateRide) result.Result[CreateRideOutcome] {
	now := h.clock.Now()
	ride := domain.Ride{
		ID:              cmd.RideID,
		UserID:          cmd.UserID,
		Date:            cmd.Date,
		Hour:            cmd.Hour,
		Distance:        cmd.Distance,
		DistanceUnit:    cmd.DistanceUnit,
		RideName:        cmd.RideName,
		StartLocation:   cmd.StartLocation,
		EndLocation:     cmd.EndLocation,
		Notes:           cmd.Notes,
		CreatedAt:       now,
		DeletionStatus:  domain.DeletionActive,
		CommunityStatus: domain.CommunityPrivate,
	}

	return result.Map(ride.Validate(now), func(result.Unit) CreateRideOutcome {
		f := eventFactory{newID: h.newID, rideID: cmd.RideID, userID: cmd.UserID, at: now}

		var (
			weather    *domain.Weather
			additional []event.Event
		)
		if q, ok := coordinates(cmd.Latitude, cmd.Longitude, cmd.Date, cmd.Hour); ok {
			var e event.Event
			weather, e = fetchWeather(ctx, h.weather, q, msgCreateWeatherUnavailable, f)
			additional = append(additional, e)
		}

		created := f.build(event.VersionCreated, event.RideCreated{
			Date:          ride.Date,
			Hour:          ride.Hour,
			Distance:      ride.Distance,
			DistanceUnit:  ride.DistanceUnit,
			RideName:      ride.RideName,
			StartLocation: ride.StartLocation,
			EndLocation:   ride.EndLocation,
			Notes:         ride.Notes,
			Weather:       weather,
		})
		return CreateRideOutcome{Created: created, Additional: additional}
	})
}
