package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/handler"
	"github.com/pkordes/ride-logbook/backend/internal/middleware"
	"github.com/pkordes/ride-logbook/backend/internal/result"
	"github.com/pkordes/ride-logbook/backend/internal/service"
)

// ---- mock RideServicer ------------------------------------------------------

// mockRideServicer is a hand-written test double for handler.RideServicer.
// Each field is a function the test sets to control the mock's behaviour.
type mockRideServicer struct {
	create      func(ctx context.Context, cmd command.CreateRide) result.Result[domain.RideProjection]
	edit        func(ctx context.Context, cmd command.EditRide) result.Result[domain.RideProjection]
	remove      func(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
	get         func(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
	list        func(ctx context.Context, userID string, page domain.PaginationParams) result.Result[service.RidePage]
	history     func(ctx context.Context, rideID uuid.UUID, userID string) result.Result[[]event.Event]
	rebuildRide func(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
	export      func(ctx context.Context, userID string) result.Result[[]domain.ExportRow]
}

func (m *mockRideServicer) Create(ctx context.Context, cmd command.CreateRide) result.Result[domain.RideProjection] {
	return m.create(ctx, cmd)
}

func (m *mockRideServicer) Edit(ctx context.Context, cmd command.EditRide) result.Result[domain.RideProjection] {
	return m.edit(ctx, cmd)
}

func (m *mockRideServicer) Delete(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	return m.remove(ctx, rideID, userID)
}

func (m *mockRideServicer) Get(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	return m.get(ctx, rideID, userID)
}

func (m *mockRideServicer) List(ctx context.Context, userID string, page domain.PaginationParams) result.Result[service.RidePage] {
	return m.list(ctx, userID, page)
}

func (m *mockRideServicer) History(ctx context.Context, rideID uuid.UUID, userID string) result.Result[[]event.Event] {
	return m.history(ctx, rideID, userID)
}

func (m *mockRideServicer) RebuildRide(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	return m.rebuildRide(ctx, rideID, userID)
}

func (m *mockRideServicer) Export(ctx context.Context, userID string) result.Result[[]domain.ExportRow] {
	return m.export(ctx, userID)
}

// compile-time check: mockRideServicer must satisfy handler.RideServicer.
var _ handler.RideServicer = (*mockRideServicer)(nil)

// ---- helpers ----------------------------------------------------------------

const testUser = "user-1"

var createdAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newHTTPHandler(svc handler.RideServicer) http.Handler {
	return handler.NewServer(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Handler()
}

// do sends a request as testUser. A nil body sends no body.
func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(middleware.UserIDHeader, testUser)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func rideFixture(id uuid.UUID) domain.RideProjection {
	notes := "Headwind on the way back"
	temp := decimal.RequireFromString("11.5")
	w := domain.NewWeather(domain.WeatherFields{Temperature: &temp, CapturedAt: createdAt})
	return domain.RideProjection{
		ID:              id,
		UserID:          testUser,
		Date:            domain.NewDate(2026, 3, 14),
		Hour:            8,
		Distance:        decimal.RequireFromString("24.5"),
		DistanceUnit:    domain.DistanceKilometers,
		RideName:        "Morning loop",
		StartLocation:   "Home",
		EndLocation:     "Home",
		Notes:           &notes,
		Weather:         &w,
		CreatedAt:       createdAt,
		DeletionStatus:  domain.DeletionActive,
		CommunityStatus: domain.CommunityPrivate,
		AgeInDays:       1,
	}
}

// errorBody decodes the standard error envelope.
type errorBody struct {
	Error struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		Severity string `json:"severity"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
