// Package weather provides the historical weather lookups used to enrich
// rides: an Open-Meteo archive client and a caching decorator.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
)

const (
	// DefaultBaseURL is the Open-Meteo historical archive endpoint.
	DefaultBaseURL = "https://archive-api.open-meteo.com/v1/archive"
	// SourceOpenMeteo is recorded on weather events produced by OpenMeteo.
	SourceOpenMeteo = "open-meteo-archive"

	hourlyVariables = "temperature_2m,relative_humidity_2m,surface_pressure,wind_speed_10m,wind_direction_10m,weather_code"
	hourLayout      = "2006-01-02T15:04"
	maxErrorBody    = 1 << 10
	tracerName      = "github.com/pkordes/ride-logbook/backend/internal/weather"
)

// ErrBadStatus is wrapped by errors for non-2xx archive responses.
var ErrBadStatus = errors.New("unexpected status")

// OpenMeteo looks up hourly historical weather from the Open-Meteo archive.
// It needs no API key. Transient failures (network errors, 429 and 5xx) are
// retried with exponential backoff.
type OpenMeteo struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryConfig
	timezone   string
	tracer     trace.Tracer
}

// OpenMeteoOption configures an OpenMeteo client.
type OpenMeteoOption func(*OpenMeteo)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) OpenMeteoOption {
	return func(o *OpenMeteo) { o.httpClient = c }
}

// WithRetryConfig replaces DefaultRetryConfig.
func WithRetryConfig(cfg RetryConfig) OpenMeteoOption {
	return func(o *OpenMeteo) { o.retry = cfg }
}

// WithTimezone sets the zone the ride hour is interpreted in. The default,
// "auto", uses the local zone of the coordinates.
func WithTimezone(tz string) OpenMeteoOption {
	return func(o *OpenMeteo) { o.timezone = tz }
}

// NewOpenMeteo returns a client for baseURL (DefaultBaseURL when empty) whose
// requests time out after timeout.
func NewOpenMeteo(baseURL string, timeout time.Duration, opts ...OpenMeteoOption) *OpenMeteo {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	o := &OpenMeteo{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		retry:      DefaultRetryConfig(),
		timezone:   "auto",
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SourceName implements command.WeatherProvider.
func (o *OpenMeteo) SourceName() string { return SourceOpenMeteo }

// HistoricalWeather returns the readings for q's date and hour. It returns
// nil, nil when the archive has no row for that hour.
func (o *OpenMeteo) HistoricalWeather(ctx context.Context, q domain.WeatherQuery) (*domain.Weather, error) {
	ctx, span := o.tracer.Start(ctx, "OpenMeteo.HistoricalWeather", trace.WithAttributes(
		attribute.String("weather.date", q.Date.String()),
		attribute.Int("weather.hour", q.Hour),
	))
	defer span.End()

	if q.Hour < 0 || q.Hour > 23 {
		return nil, fmt.Errorf("weather.OpenMeteo: hour %d out of range", q.Hour)
	}

	resp, err := retryWithBackoff(ctx, o.retry, func() (archiveResponse, error) {
		return o.fetch(ctx, q)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("weather.OpenMeteo: %w", err)
	}

	w, ok := resp.reading(q)
	if !ok {
		span.SetAttributes(attribute.Bool("weather.found", false))
		return nil, nil
	}
	return &w, nil
}

func (o *OpenMeteo) fetch(ctx context.Context, q domain.WeatherQuery) (archiveResponse, error) {
	params := url.Values{}
	params.Set("latitude", q.Latitude.String())
	params.Set("longitude", q.Longitude.String())
	params.Set("start_date", q.Date.String())
	params.Set("end_date", q.Date.String())
	params.Set("hourly", hourlyVariables)
	params.Set("timezone", o.timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return archiveResponse{}, permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return archiveResponse{}, fmt.Errorf("api call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := fmt.Errorf("%w %d: %s", ErrBadStatus, resp.StatusCode, errorReason(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return archiveResponse{}, err
		}
		return archiveResponse{}, permanent(err)
	}

	var out archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return archiveResponse{}, permanent(fmt.Errorf("decode response: %w", err))
	}
	return out, nil
}

// errorReason extracts the "reason" of an Open-Meteo error body, falling back
// to the raw text.
func errorReason(body []byte) string {
	var e struct {
		Reason string `json:"reason"`
	}
	if json.Unmarshal(body, &e) == nil && e.Reason != "" {
		return e.Reason
	}
	return string(body)
}

type archiveResponse struct {
	UTCOffsetSeconds int          `json:"utc_offset_seconds"`
	Hourly           hourlyValues `json:"hourly"`
}

// hourlyValues holds parallel arrays indexed like Time. Missing readings are
// JSON nulls, decoded as nil pointers.
type hourlyValues struct {
	Time          []string           `json:"time"`
	Temperature   []*decimal.Decimal `json:"temperature_2m"`
	Humidity      []*decimal.Decimal `json:"relative_humidity_2m"`
	Pressure      []*decimal.Decimal `json:"surface_pressure"`
	WindSpeed     []*decimal.Decimal `json:"wind_speed_10m"`
	WindDirection []*decimal.Decimal `json:"wind_direction_10m"`
	WeatherCode   []*int             `json:"weather_code"`
}

// reading picks the row for q's date and hour and converts it to a Weather.
func (r archiveResponse) reading(q domain.WeatherQuery) (domain.Weather, bool) {
	want := fmt.Sprintf("%sT%02d:00", q.Date, q.Hour)
	i := -1
	for j, ts := range r.Hourly.Time {
		if ts == want {
			i = j
			break
		}
	}
	if i < 0 {
		return domain.Weather{}, false
	}

	local, err := time.Parse(hourLayout, want)
	if err != nil {
		return domain.Weather{}, false
	}
	f := domain.WeatherFields{
		Temperature: index(r.Hourly.Temperature, i),
		WindSpeed:   index(r.Hourly.WindSpeed, i),
		Humidity:    index(r.Hourly.Humidity, i),
		Pressure:    index(r.Hourly.Pressure, i),
		CapturedAt:  local.Add(-time.Duration(r.UTCOffsetSeconds) * time.Second),
	}
	if code := index(r.Hourly.WeatherCode, i); code != nil {
		if s, ok := Conditions(*code); ok {
			f.Conditions = &s
		}
	}
	if deg := index(r.Hourly.WindDirection, i); deg != nil {
		s := Compass(*deg)
		f.WindDirection = &s
	}
	return domain.NewWeather(f), true
}

func index[T any](s []*T, i int) *T {
	if i >= len(s) {
		return nil
	}
	return s[i]
}
