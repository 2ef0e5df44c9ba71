package event

import (
	"github.com/shopspring/decimal"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
)

// Names used in RideEdited.ChangedFields, in the order fields are compared.
const (
	FieldDate          = "Date"
	FieldHour          = "Hour"
	FieldDistance      = "Distance"
	FieldDistanceUnit  = "DistanceUnit"
	FieldRideName      = "RideName"
	FieldStartLocation = "StartLocation"
	FieldEndLocation   = "EndLocation"
	FieldNotes         = "Notes"
)

// DeletionManual is the deletion type of a user-initiated delete.
const DeletionManual = "manual_3m"

// RideCreated captures the full initial state of a ride.
type RideCreated struct {
	Date          domain.Date         `json:"date"`
	Hour          int                 `json:"hour"`
	Distance      decimal.Decimal     `json:"distance"`
	DistanceUnit  domain.DistanceUnit `json:"distance_unit"`
	RideName      string              `json:"ride_name"`
	StartLocation string              `json:"start_location"`
	EndLocation   string              `json:"end_location"`
	Notes         *string             `json:"notes,omitempty"`
	Weather       *domain.Weather     `json:"weather,omitempty"`
}

// RideEdited lists the changed fields and carries a new value for each of
// them. Fields that did not change are nil.
type RideEdited struct {
	ChangedFields    []string             `json:"changed_fields"`
	NewDate          *domain.Date         `json:"new_date,omitempty"`
	NewHour          *int                 `json:"new_hour,omitempty"`
	NewDistance      *decimal.Decimal     `json:"new_distance,omitempty"`
	NewDistanceUnit  *domain.DistanceUnit `json:"new_distance_unit,omitempty"`
	NewRideName      *string              `json:"new_ride_name,omitempty"`
	NewStartLocation *string              `json:"new_start_location,omitempty"`
	NewEndLocation   *string              `json:"new_end_location,omitempty"`
	NewNotes         *string              `json:"new_notes,omitempty"`
	NewWeather       *domain.Weather      `json:"new_weather,omitempty"`
}

// Changed reports whether field is listed in ChangedFields.
func (p RideEdited) Changed(field string) bool {
	for _, f := range p.ChangedFields {
		if f == field {
			return true
		}
	}
	return false
}

// WeatherFetched records the weather returned by a provider.
type WeatherFetched struct {
	Weather   domain.Weather `json:"weather"`
	SourceAPI string         `json:"source_api"`
}

// WeatherFetchFailed records why a weather lookup produced no data.
type WeatherFetchFailed struct {
	ErrorMessage string `json:"error_message"`
	SourceAPI    string `json:"source_api"`
}

// RideDeleted records a soft deletion.
type RideDeleted struct {
	DeletionType string `json:"deletion_type"`
}

func (RideCreated) EventType() Type        { return TypeRideCreated }
func (RideEdited) EventType() Type         { return TypeRideEdited }
func (WeatherFetched) EventType() Type     { return TypeWeatherFetched }
func (WeatherFetchFailed) EventType() Type { return TypeWeatherFetchFailed }
func (RideDeleted) EventType() Type        { return TypeRideDeleted }

func (RideCreated) isPayload()        {}
func (RideEdited) isPayload()         {}
func (WeatherFetched) isPayload()     {}
func (WeatherFetchFailed) isPayload() {}
func (RideDeleted) isPayload()        {}
