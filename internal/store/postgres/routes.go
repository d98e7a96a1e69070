package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/menro-ph/waste-api/internal/models"
)

const routeColumns = "id, name, distance, estimated_time, collections_count, truck_id, status, coordinates"

// RouteRepository handles persistence for truck routes.
type RouteRepository struct {
	db *sqlx.DB
}

// NewRouteRepository instantiates a route repository.
func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// List returns all routes in insertion order.
func (r *RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	query := fmt.Sprintf("SELECT %s FROM routes ORDER BY id", routeColumns)
	routes := make([]models.Route, 0)
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

// Get loads a route by id.
func (r *RouteRepository) Get(ctx context.Context, id int64) (*models.Route, error) {
	query := fmt.Sprintf("SELECT %s FROM routes WHERE id = $1", routeColumns)
	var route models.Route
	if err := r.db.GetContext(ctx, &route, query, id); err != nil {
		return nil, notFound(err)
	}
	return &route, nil
}

// Create inserts a new route drawing its id from the shared sequence.
func (r *RouteRepository) Create(ctx context.Context, route *models.Route) error {
	const query = `INSERT INTO routes (id, name, distance, estimated_time, collections_count, truck_id, status, coordinates)
		VALUES (nextval('entity_ids'), $1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		route.Name, route.Distance, route.EstimatedTime, route.CollectionsCount, route.TruckID, route.Status, route.Coordinates,
	).Scan(&route.ID); err != nil {
		return fmt.Errorf("create route: %w", err)
	}
	return nil
}

// Update applies the patch in a single statement and returns the new row.
func (r *RouteRepository) Update(ctx context.Context, id int64, patch models.RoutePatch) (*models.Route, error) {
	var sets []string
	var args []interface{}
	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *patch.Name)
	}
	if patch.Distance != nil {
		sets = append(sets, fmt.Sprintf("distance = $%d", len(args)+1))
		args = append(args, *patch.Distance)
	}
	if patch.EstimatedTime != nil {
		sets = append(sets, fmt.Sprintf("estimated_time = $%d", len(args)+1))
		args = append(args, *patch.EstimatedTime)
	}
	if patch.CollectionsCount != nil {
		sets = append(sets, fmt.Sprintf("collections_count = $%d", len(args)+1))
		args = append(args, *patch.CollectionsCount)
	}
	if patch.TruckID != nil {
		sets = append(sets, fmt.Sprintf("truck_id = $%d", len(args)+1))
		args = append(args, *patch.TruckID)
	}
	if patch.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *patch.Status)
	}
	if patch.Coordinates != nil {
		sets = append(sets, fmt.Sprintf("coordinates = $%d", len(args)+1))
		args = append(args, *patch.Coordinates)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE routes SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), routeColumns)
	var route models.Route
	if err := r.db.GetContext(ctx, &route, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &route, nil
}
