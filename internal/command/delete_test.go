package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

func TestDeleteRide_Active(t *testing.T) {
	cur := currentProjection()

	e, ok := command.NewDeleteRideHandler(clock).Handle(context.Background(), command.DeleteRide{
		RideID: cur.ID, UserID: cur.UserID, Current: cur,
	}).Value()

	require.True(t, ok)
	assert.Equal(t, event.TypeRideDeleted, e.Type())
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, cur.ID, e.AggregateID)
	assert.Equal(t, "manual_3m", e.Payload.(event.RideDeleted).DeletionType)
}

func TestDeleteRide_Failures(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*domain.RideProjection)
		code    result.Code
		message string
	}{
		"already marked": {
			mutate:  func(p *domain.RideProjection) { p.DeletionStatus = domain.DeletionMarkedForDeletion },
			code:    result.CodeConflict,
			message: "Ride is already marked for deletion.",
		},
		"too old": {
			mutate:  func(p *domain.RideProjection) { p.CreatedAt = now.AddDate(0, 0, -91) },
			code:    result.CodeConflict,
			message: "Rides older than 90 days cannot be deleted.",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cur := currentProjection()
			tc.mutate(cur)

			res := command.NewDeleteRideHandler(clock).Handle(context.Background(), command.DeleteRide{
				RideID: cur.ID, UserID: cur.UserID, Current: cur,
			})

			require.True(t, res.IsFailure())
			assert.Equal(t, tc.code, res.Err().Code)
			assert.Equal(t, tc.message, res.Err().Message)
		})
	}
}

func TestDeleteRide_ExactlyNinetyDaysOldIsAllowed(t *testing.T) {
	cur := currentProjection()
	cur.CreatedAt = now.AddDate(0, 0, -90)

	res := command.NewDeleteRideHandler(clock).Handle(context.Background(), command.DeleteRide{
		RideID: cur.ID, UserID: cur.UserID, Current: cur,
	})

	assert.True(t, res.IsSuccess())
}

func TestDeleteRide_NilCurrent(t *testing.T) {
	res := command.NewDeleteRideHandler(clock).Handle(context.Background(), command.DeleteRide{RideID: uuid.New()})

	require.True(t, res.IsFailure())
	assert.Equal(t, result.CodeNotFound, res.Err().Code)
}
