package services

import (
	"context"
	"errors"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
)

// ErrMissingActivityType is returned when a study session is recorded
// without an activity type.
var ErrMissingActivityType = errors.New("activity_type is required")

// StudySessionWriter defines write operations for study sessions.
type StudySessionWriter interface {
	Save(ctx context.Context, userID int64, activityType string) error
}

// StudySessionReader defines read-only operations for study sessions.
type StudySessionReader interface {
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// StudySessionService records completed study activities per user.
// The log is append-only.
type StudySessionService struct {
	reader StudySessionReader
	writer StudySessionWriter
}

// NewStudySessionService creates a new StudySessionService instance.
func NewStudySessionService(reader StudySessionReader, writer StudySessionWriter) *StudySessionService {
	return &StudySessionService{
		reader: reader,
		writer: writer,
	}
}

// Record appends one study session entry for the user.
func (svc *StudySessionService) Record(ctx context.Context, userID int64, activityType string) error {
	if activityType == "" {
		return ErrMissingActivityType
	}

	if err := svc.writer.Save(ctx, userID, activityType); err != nil {
		logger.Log.Errorw("failed to record study session", "user_id", userID, "activity_type", activityType, "err", err)
		return err
	}

	return nil
}

// Count returns how many study sessions the user has recorded.
func (svc *StudySessionService) Count(ctx context.Context, userID int64) (int64, error) {
	count, err := svc.reader.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count study sessions", "user_id", userID, "err", err)
		return 0, err
	}

	return count, nil
}
