package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/middlewares"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

// FavoritesLister defines the interface that the service must implement.
type FavoritesLister interface {
	List(ctx context.Context, userID int64) ([]models.VocabularyDB, error)
}

// FavoriteAdder defines the interface that the service must implement.
type FavoriteAdder interface {
	Add(ctx context.Context, userID, vocabularyID int64) error
}

// FavoriteRemover defines the interface that the service must implement.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID, vocabularyID int64) (bool, error)
}

// AddFavoriteResponse represents a successful add-favorite response
// swagger:model AddFavoriteResponse
type AddFavoriteResponse struct {
	// Success message
	// example: Added to favorites
	Message string `json:"message"`
}

// RemoveFavoriteResponse represents a remove-favorite response
// swagger:model RemoveFavoriteResponse
type RemoveFavoriteResponse struct {
	// Success message
	// example: Removed from favorites
	Message string `json:"message"`

	// Whether a favorite was actually removed
	// example: true
	Removed bool `json:"removed"`
}

// NewListFavoritesHandler returns an HTTP handler for listing the
// authenticated user's favorites.
// @Summary List favorites
// @Description Returns the user's favorited vocabulary items, most recently favorited first
// @Tags favorites
// @Produce json
// @Success 200 {array} models.VocabularyDB "Favorited vocabulary items"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /favorites [get]
// @Security BearerAuth
func NewListFavoritesHandler(svc FavoritesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		items, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

// NewAddFavoriteHandler returns an HTTP handler for favoriting a
// vocabulary item.
// @Summary Add favorite
// @Description Favorites a vocabulary item for the authenticated user. Favoriting the same item twice fails.
// @Tags favorites
// @Produce json
// @Param vocabulary_id path integer true "Vocabulary item id"
// @Success 201 {object} handlers.AddFavoriteResponse "Added to favorites"
// @Failure 400 {object} handlers.ErrorResponse "Already a favorite or invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /favorites/{vocabulary_id} [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		vocabularyID, err := strconv.ParseInt(chi.URLParam(r, "vocabulary_id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid vocabulary id",
			})
			return
		}

		if err := svc.Add(r.Context(), claims.UserID, vocabularyID); err != nil {
			if errors.Is(err, services.ErrAlreadyFavorite) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Failed to add to favorites",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddFavoriteResponse{
			Message: "Added to favorites",
		})
	}
}

// NewRemoveFavoriteHandler returns an HTTP handler for unfavoriting a
// vocabulary item. Removing a favorite that does not exist reports
// removed=false rather than failing.
// @Summary Remove favorite
// @Description Removes a vocabulary item from the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Param vocabulary_id path integer true "Vocabulary item id"
// @Success 200 {object} handlers.RemoveFavoriteResponse "Removal outcome"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /favorites/{vocabulary_id} [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		vocabularyID, err := strconv.ParseInt(chi.URLParam(r, "vocabulary_id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid vocabulary id",
			})
			return
		}

		removed, err := svc.Remove(r.Context(), claims.UserID, vocabularyID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RemoveFavoriteResponse{
			Message: "Removed from favorites",
			Removed: removed,
		})
	}
}
