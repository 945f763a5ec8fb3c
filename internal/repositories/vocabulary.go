package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

type VocabularyReadRepository struct {
	db *sqlx.DB
}

func NewVocabularyReadRepository(db *sqlx.DB) *VocabularyReadRepository {
	return &VocabularyReadRepository{db: db}
}

// List returns vocabulary items ordered by german_word. A nil level
// or word group id means no filter on that column.
func (r *VocabularyReadRepository) List(ctx context.Context, level *string, wordGroupID *int64) ([]models.VocabularyDB, error) {
	const query = `
		SELECT id, german_word, english_translation, theme, cefr_level,
		       word_group_id, example_sentence, example_sentence_translation
		FROM vocabulary
		WHERE ($1::TEXT IS NULL OR cefr_level = $1)
		  AND ($2::BIGINT IS NULL OR word_group_id = $2)
		ORDER BY german_word
	`

	items := []models.VocabularyDB{}
	err := r.db.SelectContext(ctx, &items, query, level, wordGroupID)

	logger.Log.Infow("vocabulary query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{level, wordGroupID},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

type VocabularyWriteRepository struct {
	db *sqlx.DB
}

func NewVocabularyWriteRepository(db *sqlx.DB) *VocabularyWriteRepository {
	return &VocabularyWriteRepository{db: db}
}

// Save inserts one vocabulary item and returns its id. Returns
// ErrUniqueViolation when the german word already exists.
func (r *VocabularyWriteRepository) Save(ctx context.Context, item models.VocabularyDB) (int64, error) {
	const query = `
		INSERT INTO vocabulary
			(german_word, english_translation, theme, cefr_level,
			 word_group_id, example_sentence, example_sentence_translation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	args := []any{
		item.GermanWord, item.EnglishTranslation, item.Theme, item.CEFRLevel,
		item.WordGroupID, item.ExampleSentence, item.ExampleSentenceTranslation,
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("vocabulary insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{item.GermanWord, item.CEFRLevel},
		"result", id,
		"error", err,
	)

	if isUniqueViolation(err) {
		return 0, ErrUniqueViolation
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}
