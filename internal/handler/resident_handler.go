package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/service"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/response"
)

// ResidentHandler exposes resident endpoints.
type ResidentHandler struct {
	residents *service.ResidentService
}

// NewResidentHandler constructs ResidentHandler.
func NewResidentHandler(residents *service.ResidentService) *ResidentHandler {
	return &ResidentHandler{residents: residents}
}

// List godoc
// @Summary List residents
// @Tags Residents
// @Produce json
// @Success 200 {array} models.Resident
// @Router /residents [get]
func (h *ResidentHandler) List(c *gin.Context) {
	residents, err := h.residents.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, residents)
}

// Get godoc
// @Summary Get resident detail
// @Tags Residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} models.Resident
// @Router /residents/{id} [get]
func (h *ResidentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resident, err := h.residents.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resident)
}

// Create godoc
// @Summary Register resident
// @Tags Residents
// @Accept json
// @Produce json
// @Param payload body service.CreateResidentRequest true "Resident payload"
// @Success 201 {object} models.Resident
// @Router /residents [post]
func (h *ResidentHandler) Create(c *gin.Context) {
	var req service.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resident, err := h.residents.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resident)
}

// Update godoc
// @Summary Partially update resident
// @Tags Residents
// @Accept json
// @Produce json
// @Param id path int true "Resident ID"
// @Param payload body models.ResidentPatch true "Fields to change"
// @Success 200 {object} models.Resident
// @Router /residents/{id} [patch]
func (h *ResidentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch models.ResidentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resident, err := h.residents.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resident)
}
