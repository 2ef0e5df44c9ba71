package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

type mockRebuilder struct {
	rebuildUser func(ctx context.Context, userID string) result.Result[int]
	rebuildRide func(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
}

func (m *mockRebuilder) RebuildUser(ctx context.Context, userID string) result.Result[int] {
	return m.rebuildUser(ctx, userID)
}

func (m *mockRebuilder) RebuildRide(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	return m.rebuildRide(ctx, rideID, userID)
}

var _ rebuilder = (*mockRebuilder)(nil)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("rebuild", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	id := uuid.New()

	f, err := parseFlags(newFlagSet(), []string{"-user", "u1", "-ride", id.String(), "-timeout", "30s"})

	require.NoError(t, err)
	assert.Equal(t, Flags{UserID: "u1", RideID: id, Timeout: 30 * time.Second}, f)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing user", nil},
		{"bad ride id", []string{"-user", "u1", "-ride", "nope"}},
		{"unknown flag", []string{"-user", "u1", "-all"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseFlags(newFlagSet(), tc.args)
			assert.Error(t, err)
		})
	}
}

func TestRun_AllRidesOfUser(t *testing.T) {
	svc := &mockRebuilder{rebuildUser: func(_ context.Context, userID string) result.Result[int] {
		assert.Equal(t, "u1", userID)
		return result.Success(3)
	}}
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), Flags{UserID: "u1"}, svc, &out))
	assert.Equal(t, "rebuilt 3 rides for u1\n", out.String())
}

func TestRun_SingleRide(t *testing.T) {
	id := uuid.New()
	svc := &mockRebuilder{rebuildRide: func(_ context.Context, rideID uuid.UUID, _ string) result.Result[domain.RideProjection] {
		return result.Success(domain.RideProjection{ID: rideID, DeletionStatus: domain.DeletionActive})
	}}
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), Flags{UserID: "u1", RideID: id}, svc, &out))
	assert.Equal(t, "rebuilt ride "+id.String()+" (active)\n", out.String())
}

func TestRun_ServiceFailure(t *testing.T) {
	svc := &mockRebuilder{rebuildUser: func(context.Context, string) result.Result[int] {
		return result.Failure[int](result.Unexpected("An unexpected error occurred."))
	}}

	err := run(context.Background(), Flags{UserID: "u1"}, svc, io.Discard)

	assert.ErrorIs(t, err, result.Unexpected(""))
}
