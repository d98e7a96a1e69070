package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/menro-ph/waste-api/internal/models"
)

const wasteReportColumns = "id, title, description, type, location, coordinates, image_url, status, reported_by, created_at"

// WasteReportRepository handles persistence for waste reports.
type WasteReportRepository struct {
	db *sqlx.DB
}

// NewWasteReportRepository instantiates a waste report repository.
func NewWasteReportRepository(db *sqlx.DB) *WasteReportRepository {
	return &WasteReportRepository{db: db}
}

// List returns all waste reports in insertion order.
func (r *WasteReportRepository) List(ctx context.Context) ([]models.WasteReport, error) {
	query := fmt.Sprintf("SELECT %s FROM waste_reports ORDER BY id", wasteReportColumns)
	reports := make([]models.WasteReport, 0)
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("list waste reports: %w", err)
	}
	return reports, nil
}

// Get loads a waste report by id.
func (r *WasteReportRepository) Get(ctx context.Context, id int64) (*models.WasteReport, error) {
	query := fmt.Sprintf("SELECT %s FROM waste_reports WHERE id = $1", wasteReportColumns)
	var report models.WasteReport
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		return nil, notFound(err)
	}
	return &report, nil
}

// Create inserts a new waste report drawing its id from the shared sequence.
// reported_by is stored as given: it is a soft reference and never checked.
func (r *WasteReportRepository) Create(ctx context.Context, report *models.WasteReport) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO waste_reports (id, title, description, type, location, coordinates, image_url, status, reported_by, created_at)
		VALUES (nextval('entity_ids'), $1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		report.Title, report.Description, report.Type, report.Location,
		report.Coordinates, report.ImageURL, report.Status, report.ReportedBy, report.CreatedAt,
	).Scan(&report.ID); err != nil {
		return fmt.Errorf("create waste report: %w", err)
	}
	return nil
}

// Update applies the patch in a single statement and returns the new row.
func (r *WasteReportRepository) Update(ctx context.Context, id int64, patch models.WasteReportPatch) (*models.WasteReport, error) {
	var sets []string
	var args []interface{}
	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)+1))
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *patch.Description)
	}
	if patch.Type != nil {
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)+1))
		args = append(args, *patch.Type)
	}
	if patch.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", len(args)+1))
		args = append(args, *patch.Location)
	}
	if patch.Coordinates != nil {
		sets = append(sets, fmt.Sprintf("coordinates = $%d", len(args)+1))
		args = append(args, *patch.Coordinates)
	}
	if patch.ImageURL != nil {
		sets = append(sets, fmt.Sprintf("image_url = $%d", len(args)+1))
		args = append(args, *patch.ImageURL)
	}
	if patch.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *patch.Status)
	}
	if patch.ReportedBy != nil {
		sets = append(sets, fmt.Sprintf("reported_by = $%d", len(args)+1))
		args = append(args, *patch.ReportedBy)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE waste_reports SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), wasteReportColumns)
	var report models.WasteReport
	if err := r.db.GetContext(ctx, &report, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &report, nil
}
