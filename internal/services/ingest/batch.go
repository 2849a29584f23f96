package ingest

import (
	"time"

	"sms-expense-backend/internal/models"

	"github.com/google/uuid"
)

// CreateBatch records a new backup upload before background processing starts.
func (s *Service) CreateBatch(filename string, total int) *models.IngestBatch {
	batch := &models.IngestBatch{
		ID:            uuid.New(),
		Filename:      filename,
		TotalMessages: total,
		Status:        "processing",
		StartedAt:     time.Now(),
		CreatedAt:     time.Now(),
	}
	s.db.Create(batch)
	return batch
}

func (s *Service) GetBatch(batchID uuid.UUID) (*models.IngestBatch, error) {
	var batch models.IngestBatch
	if err := s.db.First(&batch, "id = ?", batchID).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// UpdateBatchProgress updates the processed count in a batch
func (s *Service) UpdateBatchProgress(batchID uuid.UUID, processed int) error {
	return s.db.Model(&models.IngestBatch{}).
		Where("id = ?", batchID).
		Update("processed_count", processed).
		Error
}

// MarkBatchCompleted sets the final counters and status.
func (s *Service) MarkBatchCompleted(batchID uuid.UUID, processed, persisted, rejected int) error {
	now := time.Now()
	return s.db.Model(&models.IngestBatch{}).
		Where("id = ?", batchID).
		Updates(map[string]interface{}{
			"processed_count": processed,
			"persisted_count": persisted,
			"rejected_count":  rejected,
			"status":          "completed",
			"completed_at":    now,
		}).Error
}

// ProcessBatch runs the pipeline over every message of a backup upload.
// Persistence failures are logged and skipped; a batch never retries.
func (s *Service) ProcessBatch(batchID uuid.UUID, messages []RawMessage) {
	persisted := 0
	rejected := 0

	for i, msg := range messages {
		outcome, err := s.Process(msg)
		if err != nil {
			s.log.Error().Err(err).Str("sender", msg.Sender).Msg("persistence failure during batch ingest")
			continue
		}
		if outcome.State == StatePersisted {
			persisted++
		} else {
			rejected++
		}

		// Update progress every 100 rows
		if (i+1)%100 == 0 {
			s.UpdateBatchProgress(batchID, i+1)
		}
	}

	if err := s.MarkBatchCompleted(batchID, len(messages), persisted, rejected); err != nil {
		s.log.Error().Err(err).Str("batch_id", batchID.String()).Msg("failed to finalize batch")
	}
}
