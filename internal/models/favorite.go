package models

import "time"

// FavoriteDB represents a user's favorite vocabulary item.
// (user_id, vocabulary_id) is unique.
type FavoriteDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	UserID       int64     `json:"user_id" db:"user_id"`           // Owning user
	VocabularyID int64     `json:"vocabulary_id" db:"vocabulary_id"` // Favorited vocabulary item
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Favorited at
}
