package services

import (
	"context"
	"fmt"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

// allLevels is the level filter sentinel sent by the frontend when no
// level is selected.
const allLevels = "All Levels"

// VocabularyReader defines read-only operations for the vocabulary
// catalog.
type VocabularyReader interface {
	List(ctx context.Context, level *string, wordGroupID *int64) ([]models.VocabularyDB, error)
}

// VocabularyWriter defines write operations for the vocabulary
// catalog.
type VocabularyWriter interface {
	Save(ctx context.Context, item models.VocabularyDB) (int64, error)
}

// WordGroupReader defines read-only operations for word groups.
type WordGroupReader interface {
	List(ctx context.Context) ([]models.WordGroupDB, error)
}

// VocabularyImportItem is one vocabulary item submitted to the bulk
// import endpoint.
type VocabularyImportItem struct {
	GermanWord                 string  `json:"german_word"`
	EnglishTranslation         string  `json:"english_translation"`
	Theme                      string  `json:"theme"`
	CEFRLevel                  string  `json:"cefr_level"`
	WordGroupID                *int64  `json:"word_group_id,omitempty"`
	ExampleSentence            *string `json:"example_sentence,omitempty"`
	ExampleSentenceTranslation *string `json:"example_sentence_translation,omitempty"`
}

// FailedImportItem pairs a rejected import item with the reason it
// was rejected.
type FailedImportItem struct {
	Item  VocabularyImportItem `json:"item"`
	Error string               `json:"error"`
}

// ImportReport summarizes a bulk import: how many items were
// inserted, and which ones failed and why.
type ImportReport struct {
	ImportedCount int                `json:"imported_count"`
	FailedItems   []FailedImportItem `json:"failed_items,omitempty"`
}

// VocabularyService serves the read-only catalog and the bulk import.
type VocabularyService struct {
	reader     VocabularyReader
	writer     VocabularyWriter
	wordGroups WordGroupReader
}

// NewVocabularyService creates a new VocabularyService instance.
func NewVocabularyService(reader VocabularyReader, writer VocabularyWriter, wordGroups WordGroupReader) *VocabularyService {
	return &VocabularyService{
		reader:     reader,
		writer:     writer,
		wordGroups: wordGroups,
	}
}

// List returns vocabulary items ordered by german_word. An empty
// level or the "All Levels" sentinel means no level filter.
func (svc *VocabularyService) List(ctx context.Context, level string, wordGroupID *int64) ([]models.VocabularyDB, error) {
	var levelFilter *string
	if level != "" && level != allLevels {
		levelFilter = &level
	}

	items, err := svc.reader.List(ctx, levelFilter, wordGroupID)
	if err != nil {
		logger.Log.Errorw("failed to list vocabulary", "level", level, "err", err)
		return nil, err
	}

	return items, nil
}

// ListWordGroups returns the word group catalog.
func (svc *VocabularyService) ListWordGroups(ctx context.Context) ([]models.WordGroupDB, error) {
	groups, err := svc.wordGroups.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list word groups", "err", err)
		return nil, err
	}

	return groups, nil
}

// Import validates and inserts each item independently. Failures do
// not abort the batch; they accumulate in the report next to the
// count of items that made it in.
func (svc *VocabularyService) Import(ctx context.Context, items []VocabularyImportItem) (*ImportReport, error) {
	report := &ImportReport{}

	for _, item := range items {
		if item.GermanWord == "" || item.EnglishTranslation == "" || item.Theme == "" || item.CEFRLevel == "" {
			report.FailedItems = append(report.FailedItems, FailedImportItem{
				Item:  item,
				Error: "Missing required fields",
			})
			continue
		}

		_, err := svc.writer.Save(ctx, models.VocabularyDB{
			GermanWord:                 item.GermanWord,
			EnglishTranslation:         item.EnglishTranslation,
			Theme:                      item.Theme,
			CEFRLevel:                  item.CEFRLevel,
			WordGroupID:                item.WordGroupID,
			ExampleSentence:            item.ExampleSentence,
			ExampleSentenceTranslation: item.ExampleSentenceTranslation,
		})
		if err != nil {
			logger.Log.Errorw("failed to import vocabulary item", "german_word", item.GermanWord, "err", err)
			report.FailedItems = append(report.FailedItems, FailedImportItem{
				Item:  item,
				Error: fmt.Sprintf("failed to insert: %v", err),
			})
			continue
		}

		report.ImportedCount++
	}

	return report, nil
}
