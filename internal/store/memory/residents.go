package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

// ResidentStore exposes the resident collection.
type ResidentStore struct{ s *Store }

// Residents returns the resident collection view.
func (s *Store) Residents() *ResidentStore { return &ResidentStore{s: s} }

// List returns all residents in insertion order.
func (r *ResidentStore) List(ctx context.Context) ([]models.Resident, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Resident, 0, len(r.s.residentOrder))
	for _, id := range r.s.residentOrder {
		out = append(out, r.s.residents[id])
	}
	return out, nil
}

// Get returns the resident by id.
func (r *ResidentStore) Get(ctx context.Context, id int64) (*models.Resident, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.residents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &rec, nil
}

// Create assigns an id, stamps the registration date and stores the record.
func (r *ResidentStore) Create(ctx context.Context, resident *models.Resident) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	resident.ID = r.s.allocateID()
	if resident.RegisteredDate.IsZero() {
		resident.RegisteredDate = r.s.now()
	}
	r.s.residents[resident.ID] = *resident
	r.s.residentOrder = append(r.s.residentOrder, resident.ID)
	return nil
}

// Update merges the patch onto the stored record. The read-modify-write runs
// under the store lock so concurrent patches never interleave.
func (r *ResidentStore) Update(ctx context.Context, id int64, patch models.ResidentPatch) (*models.Resident, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.residents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Email != nil {
		rec.Email = *patch.Email
	}
	if patch.Location != nil {
		rec.Location = *patch.Location
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	r.s.residents[id] = rec
	return &rec, nil
}
