package handler

import (
	"context"
	"net/http"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/handler/gen"
	"github.com/pkordes/ride-logbook/backend/internal/middleware"
	"github.com/pkordes/ride-logbook/backend/internal/result"
	"github.com/pkordes/ride-logbook/backend/internal/service"
)

// Declared failure responses per operation.
var (
	createRideErrors = errorResponses[gen.CreateRideResponseObject]{
		http.StatusBadRequest:          func(b gen.ErrorResponse) gen.CreateRideResponseObject { return gen.CreateRide400JSONResponse(b) },
		http.StatusUnauthorized:        func(b gen.ErrorResponse) gen.CreateRideResponseObject { return gen.CreateRide401JSONResponse(b) },
		http.StatusConflict:            func(b gen.ErrorResponse) gen.CreateRideResponseObject { return gen.CreateRide409JSONResponse(b) },
		http.StatusUnprocessableEntity: func(b gen.ErrorResponse) gen.CreateRideResponseObject { return gen.CreateRide422JSONResponse(b) },
	}
	listRidesErrors = errorResponses[gen.ListRidesResponseObject]{
		http.StatusBadRequest:   func(b gen.ErrorResponse) gen.ListRidesResponseObject { return gen.ListRides400JSONResponse(b) },
		http.StatusUnauthorized: func(b gen.ErrorResponse) gen.ListRidesResponseObject { return gen.ListRides401JSONResponse(b) },
	}
	getRideErrors = errorResponses[gen.GetRideResponseObject]{
		http.StatusBadRequest:   func(b gen.ErrorResponse) gen.GetRideResponseObject { return gen.GetRide400JSONResponse(b) },
		http.StatusUnauthorized: func(b gen.ErrorResponse) gen.GetRideResponseObject { return gen.GetRide401JSONResponse(b) },
		http.StatusForbidden:    func(b gen.ErrorResponse) gen.GetRideResponseObject { return gen.GetRide403JSONResponse(b) },
		http.StatusNotFound:     func(b gen.ErrorResponse) gen.GetRideResponseObject { return gen.GetRide404JSONResponse(b) },
	}
	updateRideErrors = errorResponses[gen.UpdateRideResponseObject]{
		http.StatusBadRequest:          func(b gen.ErrorResponse) gen.UpdateRideResponseObject { return gen.UpdateRide400JSONResponse(b) },
		http.StatusUnauthorized:        func(b gen.ErrorResponse) gen.UpdateRideResponseObject { return gen.UpdateRide401JSONResponse(b) },
		http.StatusForbidden:           func(b gen.ErrorResponse) gen.UpdateRideResponseObject { return gen.UpdateRide403JSONResponse(b) },
		http.StatusNotFound:            func(b gen.ErrorResponse) gen.UpdateRideResponseObject { return gen.UpdateRide404JSONResponse(b) },
		http.StatusConflict:            func(b gen.ErrorResponse) gen.UpdateRideResponseObject { return gen.UpdateRide409JSONResponse(b) },
		http.StatusUnprocessableEntity: func(b gen.ErrorResponse) gen.UpdateRideResponseObject { return gen.UpdateRide422JSONResponse(b) },
	}
	deleteRideErrors = errorResponses[gen.DeleteRideResponseObject]{
		http.StatusBadRequest:   func(b gen.ErrorResponse) gen.DeleteRideResponseObject { return gen.DeleteRide400JSONResponse(b) },
		http.StatusUnauthorized: func(b gen.ErrorResponse) gen.DeleteRideResponseObject { return gen.DeleteRide401JSONResponse(b) },
		http.StatusForbidden:    func(b gen.ErrorResponse) gen.DeleteRideResponseObject { return gen.DeleteRide403JSONResponse(b) },
		http.StatusNotFound:     func(b gen.ErrorResponse) gen.DeleteRideResponseObject { return gen.DeleteRide404JSONResponse(b) },
		http.StatusConflict:     func(b gen.ErrorResponse) gen.DeleteRideResponseObject { return gen.DeleteRide409JSONResponse(b) },
	}
	listRideEventsErrors = errorResponses[gen.ListRideEventsResponseObject]{
		http.StatusBadRequest:   func(b gen.ErrorResponse) gen.ListRideEventsResponseObject { return gen.ListRideEvents400JSONResponse(b) },
		http.StatusUnauthorized: func(b gen.ErrorResponse) gen.ListRideEventsResponseObject { return gen.ListRideEvents401JSONResponse(b) },
		http.StatusForbidden:    func(b gen.ErrorResponse) gen.ListRideEventsResponseObject { return gen.ListRideEvents403JSONResponse(b) },
		http.StatusNotFound:     func(b gen.ErrorResponse) gen.ListRideEventsResponseObject { return gen.ListRideEvents404JSONResponse(b) },
	}
	rebuildRideErrors = errorResponses[gen.RebuildRideResponseObject]{
		http.StatusBadRequest:   func(b gen.ErrorResponse) gen.RebuildRideResponseObject { return gen.RebuildRide400JSONResponse(b) },
		http.StatusUnauthorized: func(b gen.ErrorResponse) gen.RebuildRideResponseObject { return gen.RebuildRide401JSONResponse(b) },
		http.StatusForbidden:    func(b gen.ErrorResponse) gen.RebuildRideResponseObject { return gen.RebuildRide403JSONResponse(b) },
		http.StatusNotFound:     func(b gen.ErrorResponse) gen.RebuildRideResponseObject { return gen.RebuildRide404JSONResponse(b) },
	}
)

// CreateRide handles POST /api/rides.
func (s *Server) CreateRide(ctx context.Context, req gen.CreateRideRequestObject) (gen.CreateRideResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	res := result.Bind(requestToCreateRide(req.Body, userID), func(cmd command.CreateRide) result.Result[domain.RideProjection] {
		return s.rides.Create(ctx, cmd)
	})
	return result.MatchContext(ctx, res,
		func(_ context.Context, p domain.RideProjection) (gen.CreateRideResponseObject, error) {
			return gen.CreateRide201JSONResponse(rideToResponse(p)), nil
		},
		createRideErrors.respond,
	)
}

// ListRides handles GET /api/rides.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=50, max=100).
func (s *Server) ListRides(ctx context.Context, req gen.ListRidesRequestObject) (gen.ListRidesResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	return result.MatchContext(ctx, s.rides.List(ctx, userID, params),
		func(_ context.Context, page service.RidePage) (gen.ListRidesResponseObject, error) {
			data := make([]gen.Ride, 0, len(page.Rides))
			for _, p := range page.Rides {
				data = append(data, rideToResponse(p))
			}
			return gen.ListRides200JSONResponse{
				Data: data,
				Pagination: gen.Pagination{
					Page:  page.Page.Page,
					Limit: page.Page.Limit,
					Total: page.Total,
				},
			}, nil
		},
		listRidesErrors.respond,
	)
}

// GetRide handles GET /api/rides/{rideId}.
func (s *Server) GetRide(ctx context.Context, req gen.GetRideRequestObject) (gen.GetRideResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	return result.MatchContext(ctx, s.rides.Get(ctx, req.RideId, userID),
		func(_ context.Context, p domain.RideProjection) (gen.GetRideResponseObject, error) {
			return gen.GetRide200JSONResponse(rideToResponse(p)), nil
		},
		getRideErrors.respond,
	)
}

// UpdateRide handles PUT /api/rides/{rideId}.
func (s *Server) UpdateRide(ctx context.Context, req gen.UpdateRideRequestObject) (gen.UpdateRideResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	res := result.Bind(requestToEditRide(req.RideId, req.Body, userID), func(cmd command.EditRide) result.Result[domain.RideProjection] {
		return s.rides.Edit(ctx, cmd)
	})
	return result.MatchContext(ctx, res,
		func(_ context.Context, p domain.RideProjection) (gen.UpdateRideResponseObject, error) {
			return gen.UpdateRide200JSONResponse(rideToResponse(p)), nil
		},
		updateRideErrors.respond,
	)
}

// DeleteRide handles DELETE /api/rides/{rideId}. Success is 204 No Content.
func (s *Server) DeleteRide(ctx context.Context, req gen.DeleteRideRequestObject) (gen.DeleteRideResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	return result.MatchContext(ctx, s.rides.Delete(ctx, req.RideId, userID),
		func(context.Context, domain.RideProjection) (gen.DeleteRideResponseObject, error) {
			return gen.DeleteRide204Response{}, nil
		},
		deleteRideErrors.respond,
	)
}

// ListRideEvents handles GET /api/rides/{rideId}/events.
func (s *Server) ListRideEvents(ctx context.Context, req gen.ListRideEventsRequestObject) (gen.ListRideEventsResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	return result.MatchContext(ctx, s.rides.History(ctx, req.RideId, userID),
		func(_ context.Context, events []event.Event) (gen.ListRideEventsResponseObject, error) {
			out, err := eventsToResponse(events)
			if err != nil {
				return nil, err
			}
			return gen.ListRideEvents200JSONResponse(out), nil
		},
		listRideEventsErrors.respond,
	)
}

// RebuildRide handles POST /api/rides/{rideId}/rebuild.
func (s *Server) RebuildRide(ctx context.Context, req gen.RebuildRideRequestObject) (gen.RebuildRideResponseObject, error) {
	userID, _ := middleware.UserFromContext(ctx)
	return result.MatchContext(ctx, s.rides.RebuildRide(ctx, req.RideId, userID),
		func(_ context.Context, p domain.RideProjection) (gen.RebuildRideResponseObject, error) {
			return gen.RebuildRide200JSONResponse(rideToResponse(p)), nil
		},
		rebuildRideErrors.respond,
	)
}
