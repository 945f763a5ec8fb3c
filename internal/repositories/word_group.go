package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

type WordGroupReadRepository struct {
	db *sqlx.DB
}

func NewWordGroupReadRepository(db *sqlx.DB) *WordGroupReadRepository {
	return &WordGroupReadRepository{db: db}
}

// List returns all word groups ordered by name.
func (r *WordGroupReadRepository) List(ctx context.Context) ([]models.WordGroupDB, error) {
	const query = `
		SELECT id, name, description
		FROM word_groups
		ORDER BY name
	`

	groups := []models.WordGroupDB{}
	err := r.db.SelectContext(ctx, &groups, query)

	logger.Log.Infow("word group query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(groups),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return groups, nil
}
