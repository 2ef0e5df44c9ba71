package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WeatherFields carries the optional readings used to build a Weather.
// A nil pointer means the reading is absent.
type WeatherFields struct {
	Temperature   *decimal.Decimal
	Conditions    *string
	WindSpeed     *decimal.Decimal
	WindDirection *string
	Humidity      *decimal.Decimal
	Pressure      *decimal.Decimal
	CapturedAt    time.Time
}

// Weather is the point-in-time conditions of a ride. It is immutable: fields
// are copied in by NewWeather and read through accessors, so a Weather shared
// between an event and a projection cannot be changed through either.
type Weather struct {
	temperature   decimal.NullDecimal
	conditions    optString
	windSpeed     decimal.NullDecimal
	windDirection optString
	humidity      decimal.NullDecimal
	pressure      decimal.NullDecimal
	capturedAt    time.Time
}

type optString struct {
	value string
	valid bool
}

// NewWeather copies f into an immutable Weather. CapturedAt is stored in UTC.
func NewWeather(f WeatherFields) Weather {
	return Weather{
		temperature:   nullDecimal(f.Temperature),
		conditions:    nullString(f.Conditions),
		windSpeed:     nullDecimal(f.WindSpeed),
		windDirection: nullString(f.WindDirection),
		humidity:      nullDecimal(f.Humidity),
		pressure:      nullDecimal(f.Pressure),
		capturedAt:    f.CapturedAt.UTC(),
	}
}

// UnavailableWeather returns the all-fields-absent sentinel captured at t.
func UnavailableWeather(t time.Time) Weather {
	return NewWeather(WeatherFields{CapturedAt: t})
}

// IsUnavailable reports whether all six readings are absent.
func (w Weather) IsUnavailable() bool {
	return !w.temperature.Valid &&
		!w.conditions.valid &&
		!w.windSpeed.Valid &&
		!w.windDirection.valid &&
		!w.humidity.Valid &&
		!w.pressure.Valid
}

// Temperature returns the temperature in °C, if present.
func (w Weather) Temperature() (decimal.Decimal, bool) {
	return w.temperature.Decimal, w.temperature.Valid
}

// Conditions returns the textual conditions, if present.
func (w Weather) Conditions() (string, bool) { return w.conditions.value, w.conditions.valid }

// WindSpeed returns the wind speed in km/h, if present.
func (w Weather) WindSpeed() (decimal.Decimal, bool) { return w.windSpeed.Decimal, w.windSpeed.Valid }

// WindDirection returns the compass wind direction, if present.
func (w Weather) WindDirection() (string, bool) { return w.windDirection.value, w.windDirection.valid }

// Humidity returns relative humidity in percent, if present.
func (w Weather) Humidity() (decimal.Decimal, bool) { return w.humidity.Decimal, w.humidity.Valid }

// Pressure returns surface pressure in hPa, if present.
func (w Weather) Pressure() (decimal.Decimal, bool) { return w.pressure.Decimal, w.pressure.Valid }

// CapturedAt returns when the readings were taken.
func (w Weather) CapturedAt() time.Time { return w.capturedAt }

// Fields returns a copy of the readings as a WeatherFields.
func (w Weather) Fields() WeatherFields {
	return WeatherFields{
		Temperature:   decimalPtr(w.temperature),
		Conditions:    stringPtr(w.conditions),
		WindSpeed:     decimalPtr(w.windSpeed),
		WindDirection: stringPtr(w.windDirection),
		Humidity:      decimalPtr(w.humidity),
		Pressure:      decimalPtr(w.pressure),
		CapturedAt:    w.capturedAt,
	}
}

// Equal reports whether w and o hold the same readings and capture time.
// Decimals compare numerically, so 12.5 equals 12.50.
func (w Weather) Equal(o Weather) bool {
	return nullDecimalEqual(w.temperature, o.temperature) &&
		w.conditions == o.conditions &&
		nullDecimalEqual(w.windSpeed, o.windSpeed) &&
		w.windDirection == o.windDirection &&
		nullDecimalEqual(w.humidity, o.humidity) &&
		nullDecimalEqual(w.pressure, o.pressure) &&
		w.capturedAt.Equal(o.capturedAt)
}

// weatherJSON is the persisted shape. Absent readings are omitted entirely so
// that decoding restores them as absent rather than as zero.
type weatherJSON struct {
	Temperature   *decimal.Decimal `json:"temperature,omitempty"`
	Conditions    *string          `json:"conditions,omitempty"`
	WindSpeed     *decimal.Decimal `json:"wind_speed,omitempty"`
	WindDirection *string          `json:"wind_direction,omitempty"`
	Humidity      *decimal.Decimal `json:"humidity,omitempty"`
	Pressure      *decimal.Decimal `json:"pressure,omitempty"`
	CapturedAt    time.Time        `json:"captured_at"`
}

// MarshalJSON implements json.Marshaler.
func (w Weather) MarshalJSON() ([]byte, error) {
	f := w.Fields()
	return json.Marshal(weatherJSON(f))
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Weather) UnmarshalJSON(b []byte) error {
	var raw weatherJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("domain.Weather: %w", err)
	}
	*w = NewWeather(WeatherFields(raw))
	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func nullString(s *string) optString {
	if s == nil {
		return optString{}
	}
	return optString{value: *s, valid: true}
}

func decimalPtr(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func stringPtr(s optString) *string {
	if !s.valid {
		return nil
	}
	v := s.value
	return &v
}

func nullDecimalEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

// WeatherQuery identifies the place and hour to look up historical weather for.
type WeatherQuery struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
	Date      Date
	Hour      int
}
