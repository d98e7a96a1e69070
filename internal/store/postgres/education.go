package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/menro-ph/waste-api/internal/models"
)

const contentColumns = "id, title, description, type, content, image_url, views, created_at, updated_at"

// EducationRepository handles persistence for educational content.
type EducationRepository struct {
	db *sqlx.DB
}

// NewEducationRepository instantiates an education repository.
func NewEducationRepository(db *sqlx.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

// List returns all content in insertion order.
func (r *EducationRepository) List(ctx context.Context) ([]models.EducationalContent, error) {
	query := fmt.Sprintf("SELECT %s FROM educational_content ORDER BY id", contentColumns)
	contents := make([]models.EducationalContent, 0)
	if err := r.db.SelectContext(ctx, &contents, query); err != nil {
		return nil, fmt.Errorf("list educational content: %w", err)
	}
	return contents, nil
}

// Get loads a content item by id.
func (r *EducationRepository) Get(ctx context.Context, id int64) (*models.EducationalContent, error) {
	query := fmt.Sprintf("SELECT %s FROM educational_content WHERE id = $1", contentColumns)
	var content models.EducationalContent
	if err := r.db.GetContext(ctx, &content, query, id); err != nil {
		return nil, notFound(err)
	}
	return &content, nil
}

// Create inserts a new content item drawing its id from the shared sequence.
func (r *EducationRepository) Create(ctx context.Context, content *models.EducationalContent) error {
	now := time.Now().UTC()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	if content.UpdatedAt.IsZero() {
		content.UpdatedAt = now
	}
	const query = `INSERT INTO educational_content (id, title, description, type, content, image_url, views, created_at, updated_at)
		VALUES (nextval('entity_ids'), $1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		content.Title, content.Description, content.Type, content.Content,
		content.ImageURL, content.Views, content.CreatedAt, content.UpdatedAt,
	).Scan(&content.ID); err != nil {
		return fmt.Errorf("create educational content: %w", err)
	}
	return nil
}

// Update applies the patch and unconditionally refreshes updated_at, even for
// an empty patch.
func (r *EducationRepository) Update(ctx context.Context, id int64, patch models.EducationalContentPatch) (*models.EducationalContent, error) {
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
	if patch.Content != nil {
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)+1))
		args = append(args, *patch.Content)
	}
	if patch.ImageURL != nil {
		sets = append(sets, fmt.Sprintf("image_url = $%d", len(args)+1))
		args = append(args, *patch.ImageURL)
	}
	if patch.Views != nil {
		sets = append(sets, fmt.Sprintf("views = $%d", len(args)+1))
		args = append(args, *patch.Views)
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)+1))
	args = append(args, time.Now().UTC())
	args = append(args, id)
	query := fmt.Sprintf("UPDATE educational_content SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), contentColumns)
	var content models.EducationalContent
	if err := r.db.GetContext(ctx, &content, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &content, nil
}
