package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/middlewares"
	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

// StudySessionRecorder defines the interface that the service must implement.
type StudySessionRecorder interface {
	Record(ctx context.Context, userID int64, activityType string) error
}

// StudySessionCounter defines the interface that the service must implement.
type StudySessionCounter interface {
	Count(ctx context.Context, userID int64) (int64, error)
}

// RecordStudySessionRequest represents the JSON body for recording a
// study session
// swagger:model RecordStudySessionRequest
type RecordStudySessionRequest struct {
	// Completed activity label
	// required: true
	// example: flashcards
	ActivityType string `json:"activity_type"`
}

// RecordStudySessionResponse represents a successful record response
// swagger:model RecordStudySessionResponse
type RecordStudySessionResponse struct {
	// Success message
	// example: Study session created successfully
	Message string `json:"message"`
}

// StudySessionCountResponse represents the per-user session count
// swagger:model StudySessionCountResponse
type StudySessionCountResponse struct {
	// Number of recorded study sessions
	// example: 5
	Count int64 `json:"count"`
}

// NewRecordStudySessionHandler returns an HTTP handler for appending
// one study session entry.
// @Summary Record study session
// @Description Appends a study session entry for the authenticated user
// @Tags study-sessions
// @Accept json
// @Produce json
// @Param recordRequest body handlers.RecordStudySessionRequest true "Study session"
// @Success 201 {object} handlers.RecordStudySessionResponse "Session recorded"
// @Failure 400 {object} handlers.ErrorResponse "activity_type is required"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /study-sessions [post]
// @Security BearerAuth
func NewRecordStudySessionHandler(svc StudySessionRecorder) http.HandlerFunc {
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

		var req RecordStudySessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Record(r.Context(), claims.UserID, req.ActivityType); err != nil {
			if errors.Is(err, services.ErrMissingActivityType) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "activity_type is required",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Failed to create study session",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RecordStudySessionResponse{
			Message: "Study session created successfully",
		})
	}
}

// NewCountStudySessionsHandler returns an HTTP handler for the
// authenticated user's study session count.
// @Summary Count study sessions
// @Description Returns how many study sessions the authenticated user has recorded
// @Tags study-sessions
// @Produce json
// @Success 200 {object} handlers.StudySessionCountResponse "Session count"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /study-sessions/count [get]
// @Security BearerAuth
func NewCountStudySessionsHandler(svc StudySessionCounter) http.HandlerFunc {
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

		count, err := svc.Count(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StudySessionCountResponse{
			Count: count,
		})
	}
}
