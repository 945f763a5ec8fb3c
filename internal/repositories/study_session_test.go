package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStudySessionWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudySessionWriteRepository(db)

	mock.ExpectExec("INSERT INTO study_sessions").
		WithArgs(int64(1), "flashcards").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), 1, "flashcards")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudySessionWriteRepository_Save_StorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudySessionWriteRepository(db)

	mock.ExpectExec("INSERT INTO study_sessions").
		WithArgs(int64(1), "flashcards").
		WillReturnError(errors.New("connection refused"))

	err := repo.Save(context.Background(), 1, "flashcards")
	assert.Error(t, err)
}

func TestStudySessionReadRepository_CountByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudySessionReadRepository(db)

	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\).*FROM study_sessions.*WHERE user_id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := repo.CountByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestStudySessionReadRepository_CountByUserID_StorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudySessionReadRepository(db)

	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\).*FROM study_sessions.*WHERE user_id`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.CountByUserID(context.Background(), 1)
	assert.Error(t, err)
}
