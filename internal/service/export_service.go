package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/export"
)

// ExportService renders the waste report register as CSV or PDF downloads.
type ExportService struct {
	reports reportLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(reports reportLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		reports: reports,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

var wasteReportExportHeaders = []string{"ID", "Title", "Type", "Location", "Status", "Reported By", "Created At"}

// CSV renders all waste reports as a CSV document.
func (s *ExportService) CSV(ctx context.Context) ([]byte, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render CSV export")
	}
	return out, nil
}

// PDF renders all waste reports as a PDF document.
func (s *ExportService) PDF(ctx context.Context) ([]byte, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.pdf.Render(*data, "Waste Reports")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render PDF export")
	}
	return out, nil
}

func (s *ExportService) dataset(ctx context.Context) (*export.Dataset, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reports for export")
	}

	data := &export.Dataset{Headers: wasteReportExportHeaders}
	for _, report := range reports {
		reportedBy := ""
		if report.ReportedBy != nil {
			reportedBy = strconv.FormatInt(*report.ReportedBy, 10)
		}
		data.Rows = append(data.Rows, map[string]string{
			"ID":          strconv.FormatInt(report.ID, 10),
			"Title":       report.Title,
			"Type":        report.Type,
			"Location":    report.Location,
			"Status":      report.Status,
			"Reported By": reportedBy,
			"Created At":  report.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return data, nil
}
