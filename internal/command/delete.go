package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// DeleteRide is the input of DeleteRideHandler.
type DeleteRide struct {
	RideID  uuid.UUID
	UserID  string
	Current *domain.RideProjection
}

// DeleteRideHandler emits RideDeleted for rides that may still be deleted.
type DeleteRideHandler struct {
	clock domain.Clock
	newID func() uuid.UUID
}

// NewDeleteRideHandler panics if clock is nil.
func NewDeleteRideHandler(clock domain.Clock, opts ...Option) *DeleteRideHandler {
	if clock == nil {
		panic("command.NewDeleteRideHandler: nil Clock")
	}
	o := buildOptions(opts)
	return &DeleteRideHandler{clock: clock, newID: o.newID}
}

// Handle fails with NotFound for a nil projection and with Conflict when the
// ride is already marked for deletion or older than 90 days.
func (h *DeleteRideHandler) Handle(_ context.Context, cmd DeleteRide) result.Result[event.Event] {
	if cmd.Current == nil {
		return result.Failure[event.Event](result.NotFound("Ride " + cmd.RideID.String() + " not found."))
	}
	now := h.clock.Now()
	cur := *cmd.Current

	return result.Map(
		result.Combine(
			result.Require(cur.IsActive(),
				result.Conflict("Ride is already marked for deletion.")),
			result.Require(domain.AgeInDays(cur.CreatedAt, now) <= domain.MaxRideAgeDays,
				result.Conflict("Rides older than 90 days cannot be deleted.")),
		),
		func(result.Unit) event.Event {
			f := eventFactory{newID: h.newID, rideID: cmd.RideID, userID: cmd.UserID, at: now}
			return f.build(event.VersionDeleted, event.RideDeleted{DeletionType: event.DeletionManual})
		},
	)
}
