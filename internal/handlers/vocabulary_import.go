package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

// VocabularyImporter defines the interface that the service must implement.
type VocabularyImporter interface {
	Import(ctx context.Context, items []services.VocabularyImportItem) (*services.ImportReport, error)
}

// ImportResponse represents the outcome of a bulk vocabulary import
// swagger:model ImportResponse
type ImportResponse struct {
	// Summary message
	// example: Successfully imported 2 vocabulary items
	Message string `json:"message"`

	// Number of items inserted
	// example: 2
	ImportedCount int `json:"imported_count"`

	// Items that were rejected, with reasons
	FailedItems []services.FailedImportItem `json:"failed_items,omitempty"`
}

// NewImportVocabularyHandler returns an HTTP handler for bulk
// vocabulary import. Each item is validated and inserted
// independently; the batch only fails as a whole when nothing was
// imported.
// @Summary Import vocabulary items
// @Description Imports a list of vocabulary items. Partial failures are reported per item alongside the success count.
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param items body []services.VocabularyImportItem true "Vocabulary items"
// @Success 201 {object} handlers.ImportResponse "Import report"
// @Failure 400 {object} handlers.ImportResponse "No item could be imported"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /vocabulary/import [post]
// @Security BearerAuth
func NewImportVocabularyHandler(svc VocabularyImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var items []services.VocabularyImportItem
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Expected a list of vocabulary items",
			})
			return
		}

		report, err := svc.Import(r.Context(), items)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := ImportResponse{
			Message:       fmt.Sprintf("Successfully imported %d vocabulary items", report.ImportedCount),
			ImportedCount: report.ImportedCount,
			FailedItems:   report.FailedItems,
		}

		if report.ImportedCount == 0 && len(report.FailedItems) > 0 {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusCreated)
		}
		json.NewEncoder(w).Encode(resp)
	}
}
