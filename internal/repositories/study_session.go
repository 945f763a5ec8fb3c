package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
)

type StudySessionWriteRepository struct {
	db *sqlx.DB
}

func NewStudySessionWriteRepository(db *sqlx.DB) *StudySessionWriteRepository {
	return &StudySessionWriteRepository{db: db}
}

// Save appends one study session log entry. Entries are never updated
// or deleted.
func (r *StudySessionWriteRepository) Save(ctx context.Context, userID int64, activityType string) error {
	const query = `
		INSERT INTO study_sessions (user_id, activity_type, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{userID, activityType}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("study session insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

type StudySessionReadRepository struct {
	db *sqlx.DB
}

func NewStudySessionReadRepository(db *sqlx.DB) *StudySessionReadRepository {
	return &StudySessionReadRepository{db: db}
}

// CountByUserID returns how many study sessions the user has recorded.
func (r *StudySessionReadRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM study_sessions
		WHERE user_id = $1
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("study session count",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}
