package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownType is returned by Decode for a type tag it does not recognize.
var ErrUnknownType = errors.New("unknown event type")

// Record is the persisted shape of an event: envelope columns plus the
// payload serialized as JSON under its type tag.
type Record struct {
	EventID       uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	EventType     Type
	Data          []byte
	Timestamp     time.Time
	Version       int
	UserID        string
}

// Encode serializes e into a Record.
func Encode(e Event) (Record, error) {
	if e.Payload == nil {
		return Record{}, fmt.Errorf("event.Encode: event %s has no payload", e.EventID)
	}
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return Record{}, fmt.Errorf("event.Encode: %s: %w", e.Payload.EventType(), err)
	}
	return Record{
		EventID:       e.EventID,
		AggregateID:   e.AggregateID,
		AggregateType: e.AggregateType,
		EventType:     e.Payload.EventType(),
		Data:          data,
		Timestamp:     e.Timestamp.UTC(),
		Version:       e.Version,
		UserID:        e.UserID,
	}, nil
}

// Decode restores the event stored in r by switching on its type tag.
func Decode(r Record) (Event, error) {
	var (
		p   Payload
		err error
	)
	switch r.EventType {
	case TypeRideCreated:
		p, err = decodePayload[RideCreated](r.Data)
	case TypeRideEdited:
		p, err = decodePayload[RideEdited](r.Data)
	case TypeWeatherFetched:
		p, err = decodePayload[WeatherFetched](r.Data)
	case TypeWeatherFetchFailed:
		p, err = decodePayload[WeatherFetchFailed](r.Data)
	case TypeRideDeleted:
		p, err = decodePayload[RideDeleted](r.Data)
	default:
		return Event{}, fmt.Errorf("event.Decode: %q: %w", r.EventType, ErrUnknownType)
	}
	if err != nil {
		return Event{}, fmt.Errorf("event.Decode: %s %s: %w", r.EventType, r.EventID, err)
	}
	return Event{
		Envelope: Envelope{
			EventID:       r.EventID,
			AggregateID:   r.AggregateID,
			AggregateType: r.AggregateType,
			Timestamp:     r.Timestamp.UTC(),
			Version:       r.Version,
			UserID:        r.UserID,
		},
		Payload: p,
	}, nil
}

func decodePayload[T Payload](data []byte) (Payload, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
