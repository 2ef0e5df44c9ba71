// Package command turns ride intents into validated domain events. Handlers
// never persist anything: they return events for the caller to append and
// apply to the read model.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
)

// WeatherProvider looks up historical weather for a place and hour.
// It may return populated weather, unavailable weather (or nil), or an error;
// handlers treat all three the same way at the caller-visible level.
type WeatherProvider interface {
	HistoricalWeather(ctx context.Context, q domain.WeatherQuery) (*domain.Weather, error)
	// SourceName is recorded on weather events.
	SourceName() string
}

const (
	msgCreateWeatherUnavailable = "Weather data unavailable - API returned null values"
	msgEditWeatherUnavailable   = "Updated weather data unavailable"
	msgWeatherErrorPrefix       = "Weather fetch error: "
)

// eventFactory stamps envelopes for one handler invocation.
type eventFactory struct {
	newID  func() uuid.UUID
	rideID uuid.UUID
	userID string
	at     time.Time
}

func (f eventFactory) build(version int, p event.Payload) event.Event {
	return event.New(f.newID(), f.rideID, f.userID, version, f.at, p)
}

// coordinates returns a query when both lat and lon are set.
func coordinates(lat, lon *decimal.Decimal, date domain.Date, hour int) (domain.WeatherQuery, bool) {
	if lat == nil || lon == nil {
		return domain.WeatherQuery{}, false
	}
	return domain.WeatherQuery{Latitude: *lat, Longitude: *lon, Date: date, Hour: hour}, true
}

// fetchWeather calls the provider and converts every outcome into data.
// It returns the populated weather (nil otherwise) and exactly one event.
func fetchWeather(ctx context.Context, p WeatherProvider, q domain.WeatherQuery, unavailableMsg string, f eventFactory) (*domain.Weather, event.Event) {
	source := p.SourceName()
	w, err := callProvider(ctx, p, q)
	switch {
	case err != nil:
		return nil, f.build(event.VersionWeatherError, event.WeatherFetchFailed{
			ErrorMessage: msgWeatherErrorPrefix + err.Error(),
			SourceAPI:    source,
		})
	case w == nil || w.IsUnavailable():
		return nil, f.build(event.VersionWeatherError, event.WeatherFetchFailed{
			ErrorMessage: unavailableMsg,
			SourceAPI:    source,
		})
	default:
		return w, f.build(event.VersionWeather, event.WeatherFetched{Weather: *w, SourceAPI: source})
	}
}

// callProvider converts a provider panic into an error.
func callProvider(ctx context.Context, p WeatherProvider, q domain.WeatherQuery) (w *domain.Weather, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return p.HistoricalWeather(ctx, q)
}
