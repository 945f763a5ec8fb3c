package models

// WordGroupDB represents a word group record
type WordGroupDB struct {
	ID          int64   `json:"id" db:"id"`                   // Primary key
	Name        string  `json:"name" db:"name"`               // Unique group name
	Description *string `json:"description" db:"description"` // Optional description
}
