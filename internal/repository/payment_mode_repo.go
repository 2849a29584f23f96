package repository

import (
	"errors"

	"sms-expense-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentModeRepository struct {
	db *gorm.DB
}

func NewPaymentModeRepository(db *gorm.DB) *PaymentModeRepository {
	return &PaymentModeRepository{db: db}
}

// Expose DB if needed
func (r *PaymentModeRepository) DB() *gorm.DB {
	return r.db
}

// FindByDisplayName returns the payment mode with exactly this display name,
// or nil when none exists.
func (r *PaymentModeRepository) FindByDisplayName(name string) (*models.PaymentMode, error) {
	var mode models.PaymentMode
	err := r.db.First(&mode, "display_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

// Insert writes a new payment mode, relying on the unique index on
// display_name to absorb concurrent duplicates. Returns false when another
// row with the same display name already won the race; the caller then
// re-reads and uses the existing id.
func (r *PaymentModeRepository) Insert(mode *models.PaymentMode) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(mode)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List returns all payment modes for ledger views.
func (r *PaymentModeRepository) List() ([]models.PaymentMode, error) {
	var modes []models.PaymentMode
	err := r.db.Order("created_at ASC").Find(&modes).Error
	return modes, err
}
