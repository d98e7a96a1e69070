package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/service"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/response"
)

// RouteHandler exposes truck route endpoints.
type RouteHandler struct {
	routes *service.RouteService
}

// NewRouteHandler constructs RouteHandler.
func NewRouteHandler(routes *service.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// List godoc
// @Summary List routes
// @Tags Routes
// @Produce json
// @Success 200 {array} models.Route
// @Router /routes [get]
func (h *RouteHandler) List(c *gin.Context) {
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routes)
}

// Get godoc
// @Summary Get route detail
// @Tags Routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} models.Route
// @Router /routes/{id} [get]
func (h *RouteHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	route, err := h.routes.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, route)
}

// Create godoc
// @Summary Create route
// @Tags Routes
// @Accept json
// @Produce json
// @Param payload body service.CreateRouteRequest true "Route payload"
// @Success 201 {object} models.Route
// @Router /routes [post]
func (h *RouteHandler) Create(c *gin.Context) {
	var req service.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	route, err := h.routes.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, route)
}

// Update godoc
// @Summary Partially update route
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param payload body models.RoutePatch true "Fields to change"
// @Success 200 {object} models.Route
// @Router /routes/{id} [patch]
func (h *RouteHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch models.RoutePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	route, err := h.routes.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, route)
}
