package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// ListByUserID returns the user's favorited vocabulary items, most
// recently favorited first.
func (r *FavoriteReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.VocabularyDB, error) {
	const query = `
		SELECT v.id, v.german_word, v.english_translation, v.theme, v.cefr_level,
		       v.word_group_id, v.example_sentence, v.example_sentence_translation
		FROM favorites f
		JOIN vocabulary v ON v.id = f.vocabulary_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	items := []models.VocabularyDB{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logger.Log.Infow("favorites query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

type FavoriteWriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteWriteRepository(db *sqlx.DB) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db}
}

// Save inserts a favorite. Returns ErrUniqueViolation when the user
// already favorited the item; the (user_id, vocabulary_id) constraint
// makes concurrent duplicate requests safe.
func (r *FavoriteWriteRepository) Save(ctx context.Context, userID, vocabularyID int64) error {
	const query = `
		INSERT INTO favorites (user_id, vocabulary_id, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{userID, vocabularyID}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("favorite insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrUniqueViolation
	}
	return err
}

// Delete removes a favorite and reports whether a row was actually
// removed. Deleting a favorite that does not exist is not an error.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID, vocabularyID int64) (bool, error) {
	const query = `
		DELETE FROM favorites
		WHERE user_id = $1 AND vocabulary_id = $2
	`
	args := []any{userID, vocabularyID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("favorite delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
