package handler

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/handler/gen"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

// ---- request mapping --------------------------------------------------------

// requestToCreateRide checks the request shape and builds the create command.
// Business rules (dates, lengths, units, distance) are left to the domain.
func requestToCreateRide(b *gen.CreateRideRequest, userID string) result.Result[command.CreateRide] {
	if b == nil {
		return result.Failure[command.CreateRide](badRequest("Request body is required."))
	}
	check := result.Combine(
		result.Require(!b.Date.Time.IsZero(), result.ValidationFailed("date is required.")),
		result.Require(b.Hour != nil, result.ValidationFailed("hour is required.")),
		checkNotes(b.Notes),
		checkCoordinates(b.Latitude, b.Longitude),
	)
	return result.Map(check, func(result.Unit) command.CreateRide {
		return command.CreateRide{
			UserID:        userID,
			Date:          fromAPIDate(b.Date),
			Hour:          *b.Hour,
			Distance:      b.Distance,
			DistanceUnit:  domain.DistanceUnit(b.DistanceUnit),
			RideName:      b.RideName,
			StartLocation: b.StartLocation,
			EndLocation:   b.EndLocation,
			Notes:         b.Notes,
			Latitude:      b.Latitude,
			Longitude:     b.Longitude,
		}
	})
}

// requestToEditRide builds the edit command. Omitted fields stay nil and
// keep their current value.
func requestToEditRide(rideID uuid.UUID, b *gen.UpdateRideRequest, userID string) result.Result[command.EditRide] {
	if b == nil {
		return result.Failure[command.EditRide](badRequest("Request body is required."))
	}
	check := result.Combine(
		checkNotes(b.Notes),
		checkCoordinates(b.Latitude, b.Longitude),
	)
	return result.Map(check, func(result.Unit) command.EditRide {
		cmd := command.EditRide{
			RideID:           rideID,
			UserID:           userID,
			NewHour:          b.Hour,
			NewDistance:      b.Distance,
			NewRideName:      b.RideName,
			NewStartLocation: b.StartLocation,
			NewEndLocation:   b.EndLocation,
			NewNotes:         b.Notes,
			Latitude:         b.Latitude,
			Longitude:        b.Longitude,
		}
		if b.Date != nil {
			d := fromAPIDate(*b.Date)
			cmd.NewDate = &d
		}
		if b.DistanceUnit != nil {
			u := domain.DistanceUnit(*b.DistanceUnit)
			cmd.NewDistanceUnit = &u
		}
		return cmd
	})
}

func checkNotes(notes *string) result.Result[result.Unit] {
	ok := notes == nil || utf8.RuneCountInString(*notes) <= domain.MaxNotesLength
	return result.Require(ok, result.ValidationFailed(
		fmt.Sprintf("Notes cannot exceed %d characters.", domain.MaxNotesLength)))
}

func checkCoordinates(lat, lon *decimal.Decimal) result.Result[result.Unit] {
	return result.Combine(
		result.Require((lat == nil) == (lon == nil),
			result.ValidationFailed("latitude and longitude must be supplied together.")),
		result.Require(lat == nil || lat.Abs().LessThanOrEqual(maxLatitude),
			result.ValidationFailed("latitude must be between -90 and 90.")),
		result.Require(lon == nil || lon.Abs().LessThanOrEqual(maxLongitude),
			result.ValidationFailed("longitude must be between -180 and 180.")),
	)
}

// ---- response mapping -------------------------------------------------------

// rideToResponse maps a projection to the generated Ride. CanDelete tells
// clients whether DELETE would currently succeed.
func rideToResponse(p domain.RideProjection) gen.Ride {
	return gen.Ride{
		Id:              p.ID,
		Date:            toAPIDate(p.Date),
		Hour:            p.Hour,
		Distance:        p.Distance,
		DistanceUnit:    gen.DistanceUnit(p.DistanceUnit),
		RideName:        p.RideName,
		StartLocation:   p.StartLocation,
		EndLocation:     p.EndLocation,
		Notes:           p.Notes,
		Weather:         weatherToResponse(p.Weather),
		CreatedAt:       p.CreatedAt,
		ModifiedAt:      p.ModifiedAt,
		DeletionStatus:  gen.RideDeletionStatus(p.DeletionStatus),
		CommunityStatus: gen.RideCommunityStatus(p.CommunityStatus),
		AgeInDays:       p.AgeInDays,
		CanDelete:       p.IsActive() && p.AgeInDays <= domain.MaxRideAgeDays,
	}
}

func weatherToResponse(w *domain.Weather) *gen.Weather {
	if w == nil {
		return nil
	}
	f := w.Fields()
	return &gen.Weather{
		Temperature:   f.Temperature,
		Conditions:    f.Conditions,
		WindSpeed:     f.WindSpeed,
		WindDirection: f.WindDirection,
		Humidity:      f.Humidity,
		Pressure:      f.Pressure,
		CapturedAt:    f.CapturedAt,
	}
}

// eventsToResponse renders a ride's history. Data is the payload in the
// form the event store persists it.
func eventsToResponse(events []event.Event) ([]gen.Event, error) {
	out := make([]gen.Event, 0, len(events))
	for _, e := range events {
		rec, err := event.Encode(e)
		if err != nil {
			return nil, err
		}
		out = append(out, gen.Event{
			EventId:       rec.EventID,
			AggregateId:   rec.AggregateID,
			AggregateType: rec.AggregateType,
			EventType:     string(rec.EventType),
			Version:       rec.Version,
			Timestamp:     rec.Timestamp,
			UserId:        rec.UserID,
			Data:          rec.Data,
		})
	}
	return out, nil
}

func toAPIDate(d domain.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func fromAPIDate(d openapi_types.Date) domain.Date {
	return domain.DateOf(d.Time)
}
