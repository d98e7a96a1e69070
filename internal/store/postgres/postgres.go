// Package postgres implements the entity store contract over PostgreSQL.
// All tables draw their ids from the single entity_ids sequence so ids stay
// unique process-wide, exactly as the in-memory store behaves. See
// db/schema.sql for the DDL.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/menro-ph/waste-api/internal/store"
)

// notFound translates driver-level absence into the store sentinel.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
