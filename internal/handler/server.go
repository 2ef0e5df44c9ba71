// Package handler implements the HTTP handlers for the ride logbook API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by resource (health.go, rides.go, export.go)
// but share the same Server struct and its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/handler/gen"
	"github.com/pkordes/ride-logbook/backend/internal/middleware"
	"github.com/pkordes/ride-logbook/backend/internal/result"
	"github.com/pkordes/ride-logbook/backend/internal/service"
)

// RideServicer defines the ride operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching a store.
type RideServicer interface {
	Create(ctx context.Context, cmd command.CreateRide) result.Result[domain.RideProjection]
	Edit(ctx context.Context, cmd command.EditRide) result.Result[domain.RideProjection]
	Delete(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
	Get(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
	List(ctx context.Context, userID string, page domain.PaginationParams) result.Result[service.RidePage]
	History(ctx context.Context, rideID uuid.UUID, userID string) result.Result[[]event.Event]
	RebuildRide(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
	Export(ctx context.Context, userID string) result.Result[[]domain.ExportRow]
}

// Server implements gen.StrictServerInterface for all API endpoints.
type Server struct {
	rides  RideServicer
	logger *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(rides RideServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{rides: rides, logger: logger}
}

// Routes registers every operation of the generated router on r.
// Operations under the UserID security scheme require the X-User-ID header;
// health and the OpenAPI document do not.
func (s *Server) Routes(r chi.Router) {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{s.requireUser},
		ErrorHandlerFunc: s.paramError,
	})
}

// Handler returns a chi router with Routes registered, for tests and for
// mounting under an outer router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// requireUser applies middleware.RequireUser to requests whose operation
// carries the UserID security requirement. The generated wrapper marks
// those by storing gen.UserIDScopes in the request context.
func (s *Server) requireUser(next http.Handler) http.Handler {
	secured := middleware.RequireUser(http.HandlerFunc(s.unauthorized))(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(gen.UserIDScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}
		secured.ServeHTTP(w, r)
	})
}
