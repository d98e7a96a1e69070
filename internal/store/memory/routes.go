package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

// RouteStore exposes the route collection.
type RouteStore struct{ s *Store }

// Routes returns the route collection view.
func (s *Store) Routes() *RouteStore { return &RouteStore{s: s} }

func cloneRoute(r models.Route) models.Route {
	r.Coordinates = cloneString(r.Coordinates)
	return r
}

// List returns all routes in insertion order.
func (r *RouteStore) List(ctx context.Context) ([]models.Route, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Route, 0, len(r.s.routeOrder))
	for _, id := range r.s.routeOrder {
		out = append(out, cloneRoute(r.s.routes[id]))
	}
	return out, nil
}

// Get returns the route by id.
func (r *RouteStore) Get(ctx context.Context, id int64) (*models.Route, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.routes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneRoute(rec)
	return &out, nil
}

// Create assigns an id and stores the record.
func (r *RouteStore) Create(ctx context.Context, route *models.Route) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	route.ID = r.s.allocateID()
	r.s.routes[route.ID] = cloneRoute(*route)
	r.s.routeOrder = append(r.s.routeOrder, route.ID)
	return nil
}

// Update merges the patch onto the stored record under the store lock.
func (r *RouteStore) Update(ctx context.Context, id int64, patch models.RoutePatch) (*models.Route, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.routes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Distance != nil {
		rec.Distance = *patch.Distance
	}
	if patch.EstimatedTime != nil {
		rec.EstimatedTime = *patch.EstimatedTime
	}
	if patch.CollectionsCount != nil {
		rec.CollectionsCount = *patch.CollectionsCount
	}
	if patch.TruckID != nil {
		rec.TruckID = *patch.TruckID
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.Coordinates != nil {
		rec.Coordinates = cloneString(patch.Coordinates)
	}
	r.s.routes[id] = rec
	out := cloneRoute(rec)
	return &out, nil
}
