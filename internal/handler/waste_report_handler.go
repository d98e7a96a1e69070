package handler

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/service"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/response"
	"github.com/menro-ph/waste-api/pkg/storage"
)

// WasteReportHandler exposes waste report endpoints. Create accepts either a
// JSON body or a multipart form carrying an optional image upload.
type WasteReportHandler struct {
	reports    *service.WasteReportService
	uploads    *storage.LocalStorage
	publicPath string
}

// NewWasteReportHandler constructs WasteReportHandler.
func NewWasteReportHandler(reports *service.WasteReportService, uploads *storage.LocalStorage, publicPath string) *WasteReportHandler {
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &WasteReportHandler{reports: reports, uploads: uploads, publicPath: publicPath}
}

// List godoc
// @Summary List waste reports
// @Tags WasteReports
// @Produce json
// @Success 200 {array} models.WasteReport
// @Router /waste-reports [get]
func (h *WasteReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports)
}

// Get godoc
// @Summary Get waste report detail
// @Tags WasteReports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.WasteReport
// @Router /waste-reports/{id} [get]
func (h *WasteReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// Create godoc
// @Summary File waste report
// @Tags WasteReports
// @Accept json
// @Accept mpfd
// @Produce json
// @Param payload body service.CreateWasteReportRequest true "Report payload"
// @Success 201 {object} models.WasteReport
// @Router /waste-reports [post]
func (h *WasteReportHandler) Create(c *gin.Context) {
	var req service.CreateWasteReportRequest
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		parsed, err := h.parseMultipart(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		req = *parsed
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
	}
	report, err := h.reports.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, report)
}

// Update godoc
// @Summary Partially update waste report
// @Tags WasteReports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param payload body models.WasteReportPatch true "Fields to change"
// @Success 200 {object} models.WasteReport
// @Router /waste-reports/{id} [patch]
func (h *WasteReportHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch models.WasteReportPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	report, err := h.reports.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// parseMultipart reads report fields from a multipart form. When an image
// file is attached it is stored under a generated name and its public URL
// replaces any imageUrl form value.
func (h *WasteReportHandler) parseMultipart(c *gin.Context) (*service.CreateWasteReportRequest, error) {
	req := &service.CreateWasteReportRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        c.PostForm("type"),
		Location:    c.PostForm("location"),
		Status:      c.PostForm("status"),
	}
	if coords := c.PostForm("coordinates"); coords != "" {
		req.Coordinates = &coords
	}
	if raw := c.PostForm("reportedBy"); raw != "" {
		reportedBy, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid reportedBy")
		}
		req.ReportedBy = &reportedBy
	}
	if imageURL := c.PostForm("imageUrl"); imageURL != "" {
		req.ImageURL = &imageURL
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return req, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid image upload")
	}
	if h.uploads == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "uploads are not configured")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read image upload")
	}
	defer file.Close() //nolint:errcheck

	name := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	if _, err := h.uploads.SaveStream(name, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store image upload")
	}
	publicURL := strings.TrimRight(h.publicPath, "/") + "/" + name
	req.ImageURL = &publicURL
	return req, nil
}
