package models

// VocabularyDB represents a vocabulary item in the catalog
type VocabularyDB struct {
	ID                         int64   `json:"id" db:"id"`                                                     // Primary key
	GermanWord                 string  `json:"german_word" db:"german_word"`                                   // Unique German word
	EnglishTranslation         string  `json:"english_translation" db:"english_translation"`                   // English translation
	Theme                      string  `json:"theme" db:"theme"`                                               // Topic grouping (Food, Travel, ...)
	CEFRLevel                  string  `json:"cefr_level" db:"cefr_level"`                                     // Proficiency tier A1-C2
	WordGroupID                *int64  `json:"word_group_id" db:"word_group_id"`                               // Optional word group reference
	ExampleSentence            *string `json:"example_sentence,omitempty" db:"example_sentence"`               // Optional example sentence
	ExampleSentenceTranslation *string `json:"example_sentence_translation,omitempty" db:"example_sentence_translation"` // Optional example translation
}
