package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/middlewares"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

// CurrentUserProvider defines the interface that the service must implement.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// CurrentUserResponse represents the authenticated user's identity
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	// User id
	// example: 1
	ID int64 `json:"id"`

	// Username
	// example: anja
	Username string `json:"username"`

	// Email
	// example: anja@example.com
	Email string `json:"email"`
}

// NewCurrentUserHandler returns an HTTP handler for fetching the
// authenticated user.
// @Summary Get current user
// @Description Returns the id, username and email of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.CurrentUserResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /user [get]
// @Security BearerAuth
func NewCurrentUserHandler(svc CurrentUserProvider) http.HandlerFunc {
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

		user, err := svc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Unauthorized",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrentUserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
	}
}
