package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

func TestEducationRepositoryEmptyPatchStillRefreshesUpdatedAt(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEducationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "type", "content", "image_url", "views", "created_at", "updated_at"}).
		AddRow(12, "Guide", "Desc", "guide", "Body", nil, 10, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE educational_content SET updated_at = $1 WHERE id = $2 RETURNING id, title, description, type, content, image_url, views, created_at, updated_at")).
		WithArgs(sqlmock.AnyArg(), int64(12)).
		WillReturnRows(rows)

	updated, err := repo.Update(context.Background(), 12, models.EducationalContentPatch{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationRepositoryUpdateIncludesPatchedFields(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEducationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "type", "content", "image_url", "views", "created_at", "updated_at"}).
		AddRow(12, "New title", "Desc", "guide", "Body", nil, 11, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE educational_content SET title = $1, views = $2, updated_at = $3 WHERE id = $4")).
		WithArgs("New title", 11, sqlmock.AnyArg(), int64(12)).
		WillReturnRows(rows)

	title := "New title"
	views := 11
	updated, err := repo.Update(context.Background(), 12, models.EducationalContentPatch{Title: &title, Views: &views})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationRepositoryGetMissingReturnsNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEducationRepository(db)

	mock.ExpectQuery("SELECT .+ FROM educational_content WHERE id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
