package models

import (
	"time"

	"github.com/google/uuid"
)

// IngestBatch tracks one bulk SMS-backup upload processed in the background.
type IngestBatch struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Filename       string
	TotalMessages  int
	ProcessedCount int
	PersistedCount int
	RejectedCount  int
	Status         string
	StartedAt      time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}
