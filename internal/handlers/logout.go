package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anjabuckley/wortwunder-backend/internal/jwt"
	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// example: Logged out successfully
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logging out.
// @Summary Log out
// @Description Revokes the current session token. Requires an authenticated session.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
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

		if err := svc.Logout(r.Context(), claims); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out successfully",
		})
	}
}
