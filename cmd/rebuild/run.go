package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// Flags holds the command-line options.
type Flags struct {
	UserID  string
	RideID  uuid.UUID
	Timeout time.Duration
}

// rebuilder is the subset of the ride service the command drives.
type rebuilder interface {
	RebuildUser(ctx context.Context, userID string) result.Result[int]
	RebuildRide(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection]
}

func parseFlags(fs *flag.FlagSet, args []string) (Flags, error) {
	var (
		f    Flags
		ride string
	)
	fs.StringVar(&f.UserID, "user", "", "user whose projections are rebuilt (required)")
	fs.StringVar(&ride, "ride", "", "rebuild only this ride")
	fs.DurationVar(&f.Timeout, "timeout", 10*time.Minute, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	if f.UserID == "" {
		err := errors.New("-user is required")
		fmt.Fprintln(fs.Output(), err)
		return Flags{}, err
	}
	if ride != "" {
		id, err := uuid.Parse(ride)
		if err != nil {
			err = fmt.Errorf("-ride: %w", err)
			fmt.Fprintln(fs.Output(), err)
			return Flags{}, err
		}
		f.RideID = id
	}
	return f, nil
}

// run rebuilds one ride when RideID is set, otherwise every ride of the user,
// and reports the outcome on out.
func run(ctx context.Context, f Flags, svc rebuilder, out io.Writer) error {
	if f.RideID != uuid.Nil {
		return result.Match(svc.RebuildRide(ctx, f.RideID, f.UserID),
			func(p domain.RideProjection) error {
				_, err := fmt.Fprintf(out, "rebuilt ride %s (%s)\n", p.ID, p.DeletionStatus)
				return err
			},
			func(e *result.Error) error { return e },
		)
	}
	return result.Match(svc.RebuildUser(ctx, f.UserID),
		func(n int) error {
			_, err := fmt.Fprintf(out, "rebuilt %d rides for %s\n", n, f.UserID)
			return err
		},
		func(e *result.Error) error { return e },
	)
}
