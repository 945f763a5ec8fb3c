package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

// VocabularyLister defines the interface that the service must implement.
type VocabularyLister interface {
	List(ctx context.Context, level string, wordGroupID *int64) ([]models.VocabularyDB, error)
}

// NewListVocabularyHandler returns an HTTP handler for listing the
// vocabulary catalog. Public: no authentication required.
// @Summary List vocabulary
// @Description Returns vocabulary items ordered by German word. Optional level and word_group_id filters; level "All Levels" means no filter.
// @Tags vocabulary
// @Produce json
// @Param level query string false "CEFR level filter (A1-C2)"
// @Param word_group_id query integer false "Word group filter"
// @Success 200 {array} models.VocabularyDB "Vocabulary items"
// @Failure 400 {object} handlers.ErrorResponse "Invalid word_group_id"
// @Router /vocabulary [get]
func NewListVocabularyHandler(svc VocabularyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		level := r.URL.Query().Get("level")

		var wordGroupID *int64
		if raw := r.URL.Query().Get("word_group_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "invalid word_group_id",
				})
				return
			}
			wordGroupID = &id
		}

		items, err := svc.List(r.Context(), level, wordGroupID)
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
