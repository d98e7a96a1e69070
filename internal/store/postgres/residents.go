package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/menro-ph/waste-api/internal/models"
)

const residentColumns = "id, name, email, location, registered_date, status"

// ResidentRepository handles persistence for resident registrations.
type ResidentRepository struct {
	db *sqlx.DB
}

// NewResidentRepository instantiates a resident repository.
func NewResidentRepository(db *sqlx.DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

// List returns all residents in insertion order.
func (r *ResidentRepository) List(ctx context.Context) ([]models.Resident, error) {
	query := fmt.Sprintf("SELECT %s FROM residents ORDER BY id", residentColumns)
	residents := make([]models.Resident, 0)
	if err := r.db.SelectContext(ctx, &residents, query); err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	return residents, nil
}

// Get loads a resident by id.
func (r *ResidentRepository) Get(ctx context.Context, id int64) (*models.Resident, error) {
	query := fmt.Sprintf("SELECT %s FROM residents WHERE id = $1", residentColumns)
	var resident models.Resident
	if err := r.db.GetContext(ctx, &resident, query, id); err != nil {
		return nil, notFound(err)
	}
	return &resident, nil
}

// Create inserts a new resident drawing its id from the shared sequence.
func (r *ResidentRepository) Create(ctx context.Context, resident *models.Resident) error {
	if resident.RegisteredDate.IsZero() {
		resident.RegisteredDate = time.Now().UTC()
	}
	const query = `INSERT INTO residents (id, name, email, location, registered_date, status)
		VALUES (nextval('entity_ids'), $1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, resident.Name, resident.Email, resident.Location, resident.RegisteredDate, resident.Status).Scan(&resident.ID); err != nil {
		return fmt.Errorf("create resident: %w", err)
	}
	return nil
}

// Update applies the patch in a single statement and returns the new row.
func (r *ResidentRepository) Update(ctx context.Context, id int64, patch models.ResidentPatch) (*models.Resident, error) {
	var sets []string
	var args []interface{}
	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *patch.Name)
	}
	if patch.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)+1))
		args = append(args, *patch.Email)
	}
	if patch.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", len(args)+1))
		args = append(args, *patch.Location)
	}
	if patch.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *patch.Status)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE residents SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), residentColumns)
	var resident models.Resident
	if err := r.db.GetContext(ctx, &resident, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &resident, nil
}
