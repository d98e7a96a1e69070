package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/response"
)

type exportService interface {
	CSV(ctx context.Context) ([]byte, error)
	PDF(ctx context.Context) ([]byte, error)
}

// ExportHandler serves waste report downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export godoc
// @Summary Export waste reports
// @Tags WasteReports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /waste-reports/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		out, err := h.service.CSV(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="waste-reports.csv"`)
		c.Data(http.StatusOK, "text/csv", out)
	case "pdf":
		out, err := h.service.PDF(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="waste-reports.pdf"`)
		c.Data(http.StatusOK, "application/pdf", out)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported export format"))
	}
}
