package command

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// EditRide is the input of EditRideHandler. A nil New* field leaves the
// current value unchanged.
type EditRide struct {
	RideID  uuid.UUID
	UserID  string
	Current *domain.RideProjection

	NewDate          *domain.Date
	NewHour          *int
	NewDistance      *decimal.Decimal
	NewDistanceUnit  *domain.DistanceUnit
	NewRideName      *string
	NewStartLocation *string
	NewEndLocation   *string
	NewNotes         *string

	Latitude  *decimal.Decimal
	Longitude *decimal.Decimal
}

// EditRideOutcome holds RideEdited and zero or one weather event.
type EditRideOutcome struct {
	Edited     event.Event
	Additional []event.Event
	// Ride is the validated entity after the edit, with ModifiedAt set.
	Ride domain.Ride
}

// Payload returns the RideEdited payload of the primary event.
func (o EditRideOutcome) Payload() event.RideEdited {
	return o.Edited.Payload.(event.RideEdited)
}

// Events returns all events in append order: RideEdited first.
func (o EditRideOutcome) Events() []event.Event {
	return append([]event.Event{o.Edited}, o.Additional...)
}

// EditRideHandler diffs an edit against the current projection, re-validates
// the result and emits RideEdited.
type EditRideHandler struct {
	weather WeatherProvider
	clock   domain.Clock
	newID   func() uuid.UUID
}

// NewEditRideHandler panics if weather or clock is nil.
func NewEditRideHandler(weather WeatherProvider, clock domain.Clock, opts ...Option) *EditRideHandler {
	if weather == nil {
		panic("command.NewEditRideHandler: nil WeatherProvider")
	}
	if clock == nil {
		panic("command.NewEditRideHandler: nil Clock")
	}
	o := buildOptions(opts)
	return &EditRideHandler{weather: weather, clock: clock, newID: o.newID}
}

// Handle returns NotFound when cmd.Current is nil. Weather is re-fetched only
// when the date or hour changed and coordinates were supplied.
func (h *EditRideHandler) Handle(ctx context.Context, cmd EditRide) result.Result[EditRideOutcome] {
	if cmd.Current == nil {
		return result.Failure[EditRideOutcome](result.NotFound("Ride " + cmd.RideID.String() + " not found."))
	}
	cur := *cmd.Current
	now := h.clock.Now()

	changes := diff(cur, cmd)
	ride := changes.apply(cur.Ride())
	ride.ID = cmd.RideID
	ride.UserID = cmd.UserID
	ride.ModifiedAt = &now

	return result.Map(ride.Validate(now), func(result.Unit) EditRideOutcome {
		f := eventFactory{newID: h.newID, rideID: cmd.RideID, userID: cmd.UserID, at: now}
		payload := changes.payload()

		var additional []event.Event
		if changes.has(event.FieldDate) || changes.has(event.FieldHour) {
			if q, ok := coordinates(cmd.Latitude, cmd.Longitude, ride.Date, ride.Hour); ok {
				w, e := fetchWeather(ctx, h.weather, q, msgEditWeatherUnavailable, f)
				additional = append(additional, e)
				payload.NewWeather = w
				if w != nil {
					ride.Weather = w
				}
			}
		}

		return EditRideOutcome{
			Edited:     f.build(event.VersionEdited, payload),
			Additional: additional,
			Ride:       ride,
		}
	})
}

// changeSet holds the supplied values that differ from the current ride,
// keyed by field name, plus the order they were detected in.
type changeSet struct {
	order []string
	edit  EditRide
}

func (c *changeSet) mark(field string) { c.order = append(c.order, field) }

func (c changeSet) has(field string) bool {
	for _, f := range c.order {
		if f == field {
			return true
		}
	}
	return false
}

// diff compares each supplied value against cur in a fixed field order.
func diff(cur domain.RideProjection, cmd EditRide) changeSet {
	c := changeSet{order: []string{}, edit: cmd}
	if cmd.NewDate != nil && *cmd.NewDate != cur.Date {
		c.mark(event.FieldDate)
	}
	if cmd.NewHour != nil && *cmd.NewHour != cur.Hour {
		c.mark(event.FieldHour)
	}
	if cmd.NewDistance != nil && !cmd.NewDistance.Equal(cur.Distance) {
		c.mark(event.FieldDistance)
	}
	if cmd.NewDistanceUnit != nil && *cmd.NewDistanceUnit != cur.DistanceUnit {
		c.mark(event.FieldDistanceUnit)
	}
	if cmd.NewRideName != nil && *cmd.NewRideName != cur.RideName {
		c.mark(event.FieldRideName)
	}
	if cmd.NewStartLocation != nil && *cmd.NewStartLocation != cur.StartLocation {
		c.mark(event.FieldStartLocation)
	}
	if cmd.NewEndLocation != nil && *cmd.NewEndLocation != cur.EndLocation {
		c.mark(event.FieldEndLocation)
	}
	if cmd.NewNotes != nil && *cmd.NewNotes != deref(cur.Notes) {
		c.mark(event.FieldNotes)
	}
	return c
}

// apply returns r with every changed field overwritten.
func (c changeSet) apply(r domain.Ride) domain.Ride {
	e := c.edit
	for _, f := range c.order {
		switch f {
		case event.FieldDate:
			r.Date = *e.NewDate
		case event.FieldHour:
			r.Hour = *e.NewHour
		case event.FieldDistance:
			r.Distance = *e.NewDistance
		case event.FieldDistanceUnit:
			r.DistanceUnit = *e.NewDistanceUnit
		case event.FieldRideName:
			r.RideName = *e.NewRideName
		case event.FieldStartLocation:
			r.StartLocation = *e.NewStartLocation
		case event.FieldEndLocation:
			r.EndLocation = *e.NewEndLocation
		case event.FieldNotes:
			r.Notes = copyPtr(e.NewNotes)
		}
	}
	return r
}

// payload builds a RideEdited carrying new values for changed fields only.
func (c changeSet) payload() event.RideEdited {
	e := c.edit
	p := event.RideEdited{ChangedFields: append([]string{}, c.order...)}
	for _, f := range c.order {
		switch f {
		case event.FieldDate:
			p.NewDate = copyPtr(e.NewDate)
		case event.FieldHour:
			p.NewHour = copyPtr(e.NewHour)
		case event.FieldDistance:
			p.NewDistance = copyPtr(e.NewDistance)
		case event.FieldDistanceUnit:
			p.NewDistanceUnit = copyPtr(e.NewDistanceUnit)
		case event.FieldRideName:
			p.NewRideName = copyPtr(e.NewRideName)
		case event.FieldStartLocation:
			p.NewStartLocation = copyPtr(e.NewStartLocation)
		case event.FieldEndLocation:
			p.NewEndLocation = copyPtr(e.NewEndLocation)
		case event.FieldNotes:
			p.NewNotes = copyPtr(e.NewNotes)
		}
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
