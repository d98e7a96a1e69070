// Package store defines the persistence contract shared by the in-memory and
// Postgres entity stores. Every collection is append/update-only: no store
// implementation exposes a delete operation.
package store

import "errors"

// ErrNotFound is returned by Get and Update operations when the id does not
// exist in the collection. Implementations translate their backend-specific
// absence signal (e.g. sql.ErrNoRows) into this sentinel.
var ErrNotFound = errors.New("record not found")
