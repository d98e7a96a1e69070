package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

// EducationStore exposes the educational content collection.
type EducationStore struct{ s *Store }

// Education returns the educational content view.
func (s *Store) Education() *EducationStore { return &EducationStore{s: s} }

func cloneContent(c models.EducationalContent) models.EducationalContent {
	c.ImageURL = cloneString(c.ImageURL)
	return c
}

// List returns all content in insertion order.
func (e *EducationStore) List(ctx context.Context) ([]models.EducationalContent, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	out := make([]models.EducationalContent, 0, len(e.s.contentOrder))
	for _, id := range e.s.contentOrder {
		out = append(out, cloneContent(e.s.contents[id]))
	}
	return out, nil
}

// Get returns the content by id.
func (e *EducationStore) Get(ctx context.Context, id int64) (*models.EducationalContent, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	rec, ok := e.s.contents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneContent(rec)
	return &out, nil
}

// Create assigns an id, stamps both timestamps and stores the record.
func (e *EducationStore) Create(ctx context.Context, content *models.EducationalContent) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	content.ID = e.s.allocateID()
	now := e.s.now()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	if content.UpdatedAt.IsZero() {
		content.UpdatedAt = now
	}
	e.s.contents[content.ID] = cloneContent(*content)
	e.s.contentOrder = append(e.s.contentOrder, content.ID)
	return nil
}

// Update merges the patch onto the stored record. UpdatedAt is refreshed on
// every successful update, even when the patch is empty.
func (e *EducationStore) Update(ctx context.Context, id int64, patch models.EducationalContentPatch) (*models.EducationalContent, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	rec, ok := e.s.contents[id]
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
	if patch.Content != nil {
		rec.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		rec.ImageURL = cloneString(patch.ImageURL)
	}
	if patch.Views != nil {
		rec.Views = *patch.Views
	}
	rec.UpdatedAt = e.s.now()
	e.s.contents[id] = rec
	out := cloneContent(rec)
	return &out, nil
}
