package services

import (
	"context"
	"errors"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
	"github.com/anjabuckley/wortwunder-backend/internal/repositories"
)

// ErrAlreadyFavorite is returned when a user favorites the same
// vocabulary item twice.
var ErrAlreadyFavorite = errors.New("vocabulary item is already a favorite")

// FavoriteReader defines read-only operations for favorites.
type FavoriteReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.VocabularyDB, error)
}

// FavoriteWriter defines write operations for favorites.
type FavoriteWriter interface {
	Save(ctx context.Context, userID, vocabularyID int64) error
	Delete(ctx context.Context, userID, vocabularyID int64) (bool, error)
}

// FavoritesService manages a user's favorite vocabulary items. Every
// operation is scoped to the user id of the authenticated caller.
type FavoritesService struct {
	reader FavoriteReader
	writer FavoriteWriter
}

// NewFavoritesService creates a new FavoritesService instance.
func NewFavoritesService(reader FavoriteReader, writer FavoriteWriter) *FavoritesService {
	return &FavoritesService{
		reader: reader,
		writer: writer,
	}
}

// Add favorites a vocabulary item for the user. Favoriting the same
// item twice fails with ErrAlreadyFavorite rather than being silently
// ignored.
func (svc *FavoritesService) Add(ctx context.Context, userID, vocabularyID int64) error {
	if err := svc.writer.Save(ctx, userID, vocabularyID); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return ErrAlreadyFavorite
		}
		logger.Log.Errorw("failed to add favorite", "user_id", userID, "vocabulary_id", vocabularyID, "err", err)
		return err
	}

	return nil
}

// Remove unfavorites a vocabulary item and reports whether anything
// was removed. Removing a favorite that does not exist is a no-op,
// not an error.
func (svc *FavoritesService) Remove(ctx context.Context, userID, vocabularyID int64) (bool, error) {
	removed, err := svc.writer.Delete(ctx, userID, vocabularyID)
	if err != nil {
		logger.Log.Errorw("failed to remove favorite", "user_id", userID, "vocabulary_id", vocabularyID, "err", err)
		return false, err
	}

	return removed, nil
}

// List returns the user's favorited vocabulary items, most recently
// favorited first.
func (svc *FavoritesService) List(ctx context.Context, userID int64) ([]models.VocabularyDB, error) {
	items, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "err", err)
		return nil, err
	}

	return items, nil
}
