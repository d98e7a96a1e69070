package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

// WasteReportStore exposes the waste report collection.
type WasteReportStore struct{ s *Store }

// WasteReports returns the waste report collection view.
func (s *Store) WasteReports() *WasteReportStore { return &WasteReportStore{s: s} }

func cloneReport(r models.WasteReport) models.WasteReport {
	r.Coordinates = cloneString(r.Coordinates)
	r.ImageURL = cloneString(r.ImageURL)
	r.ReportedBy = cloneInt64(r.ReportedBy)
	return r
}

// List returns all waste reports in insertion order.
func (w *WasteReportStore) List(ctx context.Context) ([]models.WasteReport, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	out := make([]models.WasteReport, 0, len(w.s.reportOrder))
	for _, id := range w.s.reportOrder {
		out = append(out, cloneReport(w.s.reports[id]))
	}
	return out, nil
}

// Get returns the waste report by id.
func (w *WasteReportStore) Get(ctx context.Context, id int64) (*models.WasteReport, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	rec, ok := w.s.reports[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneReport(rec)
	return &out, nil
}

// Create assigns an id, stamps the creation time and stores the record.
func (w *WasteReportStore) Create(ctx context.Context, report *models.WasteReport) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	report.ID = w.s.allocateID()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = w.s.now()
	}
	w.s.reports[report.ID] = cloneReport(*report)
	w.s.reportOrder = append(w.s.reportOrder, report.ID)
	return nil
}

// Update merges the patch onto the stored record under the store lock.
func (w *WasteReportStore) Update(ctx context.Context, id int64, patch models.WasteReportPatch) (*models.WasteReport, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	rec, ok := w.s.reports[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	if patch.Type != nil {
		rec.Type = *patch.Type
	}
	if patch.Location != nil {
		rec.Location = *patch.Location
	}
	if patch.Coordinates != nil {
		rec.Coordinates = cloneString(patch.Coordinates)
	}
	if patch.ImageURL != nil {
		rec.ImageURL = cloneString(patch.ImageURL)
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.ReportedBy != nil {
		rec.ReportedBy = cloneInt64(patch.ReportedBy)
	}
	w.s.reports[id] = rec
	out := cloneReport(rec)
	return &out, nil
}
