package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/repo"
)

// mockEventStore is a hand-written test double for repo.EventStore.
// Each method is a function field; set only the ones a test needs.
type mockEventStore struct {
	appendFn          func(ctx context.Context, e event.Event) error
	listByAggregateFn func(ctx context.Context, id uuid.UUID) ([]event.Event, error)
	listByUserFn      func(ctx context.Context, userID string) ([]event.Event, error)
}

func (m *mockEventStore) Append(ctx context.Context, e event.Event) error {
	return m.appendFn(ctx, e)
}
func (m *mockEventStore) ListByAggregate(ctx context.Context, id uuid.UUID) ([]event.Event, error) {
	return m.listByAggregateFn(ctx, id)
}
func (m *mockEventStore) ListByUser(ctx context.Context, userID string) ([]event.Event, error) {
	return m.listByUserFn(ctx, userID)
}

var _ repo.EventStore = (*mockEventStore)(nil)

// mockProjectionStore is a hand-written test double for repo.ProjectionStore.
type mockProjectionStore struct {
	createFn      func(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (domain.RideProjection, error)
	listByUserFn  func(ctx context.Context, userID string, page domain.PaginationParams) ([]domain.RideProjection, error)
	updateFn      func(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error)
	upsertFn      func(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	countByUserFn func(ctx context.Context, userID string) (int64, error)
}

func (m *mockProjectionStore) Create(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	return m.createFn(ctx, p)
}
func (m *mockProjectionStore) GetByID(ctx context.Context, id uuid.UUID) (domain.RideProjection, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockProjectionStore) ListByUser(ctx context.Context, userID string, page domain.PaginationParams) ([]domain.RideProjection, error) {
	return m.listByUserFn(ctx, userID, page)
}
func (m *mockProjectionStore) Update(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	return m.updateFn(ctx, p)
}
func (m *mockProjectionStore) Upsert(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	return m.upsertFn(ctx, p)
}
func (m *mockProjectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
func (m *mockProjectionStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	return m.countByUserFn(ctx, userID)
}

var _ repo.ProjectionStore = (*mockProjectionStore)(nil)

// mockWeather is a hand-written test double for command.WeatherProvider.
type mockWeather struct {
	historical func(ctx context.Context, q domain.WeatherQuery) (*domain.Weather, error)
}

func (m *mockWeather) HistoricalWeather(ctx context.Context, q domain.WeatherQuery) (*domain.Weather, error) {
	return m.historical(ctx, q)
}

func (m *mockWeather) SourceName() string { return "test-source" }

var _ command.WeatherProvider = (*mockWeather)(nil)

// memory wires both store mocks to shared maps so a test can drive several
// service calls against the same state. Individual function fields can still
// be overridden after construction.
type memory struct {
	mu          sync.Mutex
	events      []event.Event
	projections map[uuid.UUID]domain.RideProjection

	eventStore      *mockEventStore
	projectionStore *mockProjectionStore
}

func newMemory() *memory {
	m := &memory{projections: make(map[uuid.UUID]domain.RideProjection)}
	m.eventStore = &mockEventStore{
		appendFn: func(_ context.Context, e event.Event) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.events = append(m.events, e)
			return nil
		},
		listByAggregateFn: func(_ context.Context, id uuid.UUID) ([]event.Event, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var out []event.Event
			for _, e := range m.events {
				if e.AggregateID == id {
					out = append(out, e)
				}
			}
			return out, nil
		},
		listByUserFn: func(_ context.Context, userID string) ([]event.Event, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var out []event.Event
			for _, e := range m.events {
				if e.UserID == userID {
					out = append(out, e)
				}
			}
			return out, nil
		},
	}
	put := func(_ context.Context, p domain.RideProjection) (domain.RideProjection, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.projections[p.ID] = p
		return p, nil
	}
	m.projectionStore = &mockProjectionStore{
		createFn: put,
		updateFn: put,
		upsertFn: put,
		getByIDFn: func(_ context.Context, id uuid.UUID) (domain.RideProjection, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			p, ok := m.projections[id]
			if !ok {
				return domain.RideProjection{}, domain.ErrNotFound
			}
			return p, nil
		},
	}
	return m
}

func (m *memory) types() []event.Type {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]event.Type, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type())
	}
	return out
}
