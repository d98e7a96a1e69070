package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

// RouteStore is the persistence contract for truck routes.
type RouteStore interface {
	List(ctx context.Context) ([]models.Route, error)
	Get(ctx context.Context, id int64) (*models.Route, error)
	Create(ctx context.Context, route *models.Route) error
	Update(ctx context.Context, id int64, patch models.RoutePatch) (*models.Route, error)
}

// RouteService handles truck routes.
type RouteService struct {
	repo      RouteStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRouteService constructs the service.
func NewRouteService(repo RouteStore, validate *validator.Validate, logger *zap.Logger) *RouteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RouteService{repo: repo, validator: validate, logger: logger}
}

// CreateRouteRequest describes the create payload. Distance and
// estimatedTime are free text, matching how dispatchers enter them.
type CreateRouteRequest struct {
	Name             string  `json:"name" validate:"required"`
	Distance         string  `json:"distance" validate:"required"`
	EstimatedTime    string  `json:"estimatedTime" validate:"required"`
	CollectionsCount int     `json:"collectionsCount"`
	TruckID          string  `json:"truckId" validate:"required"`
	Status           string  `json:"status"`
	Coordinates      *string `json:"coordinates"`
}

// List returns every route in insertion order.
func (s *RouteService) List(ctx context.Context) ([]models.Route, error) {
	routes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list routes")
	}
	return routes, nil
}

// Get returns a route by id.
func (s *RouteService) Get(ctx context.Context, id int64) (*models.Route, error) {
	route, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "route not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load route")
	}
	return route, nil
}

// Create materializes a route, defaulting status to scheduled and
// coordinates to null when omitted.
func (s *RouteService) Create(ctx context.Context, req CreateRouteRequest) (*models.Route, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid route data")
	}
	route := &models.Route{
		Name:             req.Name,
		Distance:         req.Distance,
		EstimatedTime:    req.EstimatedTime,
		CollectionsCount: req.CollectionsCount,
		TruckID:          req.TruckID,
		Status:           req.Status,
		Coordinates:      req.Coordinates,
	}
	if route.Status == "" {
		route.Status = models.RouteStatusScheduled
	}
	if err := s.repo.Create(ctx, route); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create route")
	}
	s.logger.Info("route created", zap.Int64("id", route.ID), zap.String("truck_id", route.TruckID))
	return route, nil
}

// Update merges the patch onto the stored record.
func (s *RouteService) Update(ctx context.Context, id int64, patch models.RoutePatch) (*models.Route, error) {
	route, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "route not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update route")
	}
	return route, nil
}
