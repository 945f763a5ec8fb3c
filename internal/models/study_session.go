package models

import "time"

// StudySessionDB is an append-only log entry for one completed study
// activity.
type StudySessionDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	UserID       int64     `json:"user_id" db:"user_id"`             // Owning user
	ActivityType string    `json:"activity_type" db:"activity_type"` // Free-form activity label
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Recorded at
}
