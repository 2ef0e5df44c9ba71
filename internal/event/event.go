// Package event defines the immutable domain events of a ride aggregate and
// the record codec used to persist them. Each payload variant is tagged by an
// explicit Type that is stored alongside the serialized payload and used to
// decode it again.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of a ride event. The value is persisted as the
// event type tag, so existing values must never change.
type Type string

const (
	// TypeRideCreated records the creation of a ride.
	TypeRideCreated Type = "RideCreated"
	// TypeRideEdited records changes to one or more ride fields.
	TypeRideEdited Type = "RideEdited"
	// TypeWeatherFetched records a successful weather lookup.
	TypeWeatherFetched Type = "WeatherFetched"
	// TypeWeatherFetchFailed records a weather lookup that produced no data.
	TypeWeatherFetchFailed Type = "WeatherFetchFailed"
	// TypeRideDeleted records a soft deletion.
	TypeRideDeleted Type = "RideDeleted"
)

// AggregateTypeRide is the aggregate type tag of every ride event.
const AggregateTypeRide = "Ride"

// Versions assigned by the emitting handlers.
const (
	VersionCreated      = 0
	VersionEdited       = 1
	VersionDeleted      = 1
	VersionWeather      = 1
	VersionWeatherError = 2
)

// Envelope holds the fields common to every event.
type Envelope struct {
	EventID       uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	Timestamp     time.Time
	// Version is assigned by the emitting handler, not by storage.
	Version int
	UserID  string
}

// Payload is implemented by the five ride event variants only.
type Payload interface {
	EventType() Type
	isPayload()
}

// Event is an envelope carrying exactly one payload variant.
type Event struct {
	Envelope
	Payload Payload
}

// New builds a ride event. The envelope's aggregate type is always "Ride"
// and its timestamp is normalized to UTC.
func New(id, aggregateID uuid.UUID, userID string, version int, at time.Time, p Payload) Event {
	return Event{
		Envelope: Envelope{
			EventID:       id,
			AggregateID:   aggregateID,
			AggregateType: AggregateTypeRide,
			Timestamp:     at.UTC(),
			Version:       version,
			UserID:        userID,
		},
		Payload: p,
	}
}

// Type returns the payload's type tag, or "" when the payload is nil.
func (e Event) Type() Type {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.EventType()
}
