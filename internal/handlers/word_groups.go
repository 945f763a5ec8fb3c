package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

// WordGroupLister defines the interface that the service must implement.
type WordGroupLister interface {
	ListWordGroups(ctx context.Context) ([]models.WordGroupDB, error)
}

// NewListWordGroupsHandler returns an HTTP handler for listing word
// groups.
// @Summary List word groups
// @Description Returns all word groups ordered by name
// @Tags vocabulary
// @Produce json
// @Success 200 {array} models.WordGroupDB "Word groups"
// @Router /word-groups [get]
func NewListWordGroupsHandler(svc WordGroupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		groups, err := svc.ListWordGroups(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(groups)
	}
}
