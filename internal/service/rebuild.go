package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// RebuildUser rewrites the projection of every ride the user has events for
// and returns how many were rebuilt. Rides are replayed concurrently, at most
// rebuildLimit at a time; the first failure cancels the rest.
func (s *RideService) RebuildUser(ctx context.Context, userID string) result.Result[int] {
	ctx, span := s.tracer.Start(ctx, "RideService.RebuildUser", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	all, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return finish(span, fail[int](ctx, s, "rebuild user: list events", err))
	}

	// ListByUser is in timestamp order, which is not the fold order, so each
	// ride is re-read on its own below.
	seen := make(map[uuid.UUID]struct{})
	var rideIDs []uuid.UUID
	for _, e := range all {
		if _, ok := seen[e.AggregateID]; ok {
			continue
		}
		seen[e.AggregateID] = struct{}{}
		rideIDs = append(rideIDs, e.AggregateID)
	}

	var rebuilt atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.rebuildLimit)
	for _, id := range rideIDs {
		g.Go(func() error {
			events, err := s.events.ListByAggregate(gctx, id)
			if err != nil {
				return fmt.Errorf("ride %s: %w", id, err)
			}
			if _, err := s.rebuild(gctx, events); err != nil {
				return fmt.Errorf("ride %s: %w", id, err)
			}
			rebuilt.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return finish(span, fail[int](ctx, s, "rebuild user", err))
	}

	n := int(rebuilt.Load())
	span.SetAttributes(attribute.Int("rebuild.rides", n))
	s.logger.InfoContext(ctx, "projections rebuilt", "user_id", userID, "rides", n)
	return finish(span, result.Success(n))
}
