package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/service"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/response"
)

// EducationHandler exposes educational content endpoints.
type EducationHandler struct {
	education *service.EducationService
}

// NewEducationHandler constructs EducationHandler.
func NewEducationHandler(education *service.EducationService) *EducationHandler {
	return &EducationHandler{education: education}
}

// List godoc
// @Summary List educational content
// @Tags Education
// @Produce json
// @Success 200 {array} models.EducationalContent
// @Router /educational-content [get]
func (h *EducationHandler) List(c *gin.Context) {
	items, err := h.education.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get content detail
// @Tags Education
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.EducationalContent
// @Router /educational-content/{id} [get]
func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.education.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Publish educational content
// @Tags Education
// @Accept json
// @Produce json
// @Param payload body service.CreateEducationalContentRequest true "Content payload"
// @Success 201 {object} models.EducationalContent
// @Router /educational-content [post]
func (h *EducationHandler) Create(c *gin.Context) {
	var req service.CreateEducationalContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.education.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Partially update content
// @Tags Education
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param payload body models.EducationalContentPatch true "Fields to change"
// @Success 200 {object} models.EducationalContent
// @Router /educational-content/{id} [patch]
func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch models.EducationalContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.education.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}
