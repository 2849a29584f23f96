package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment mode categories.
const (
	CategoryCard  = "Card"
	CategoryBank  = "Bank"
	CategoryUPI   = "UPI"
	CategoryOther = "Other"
)

// PaymentMode is the deduplicated funding source + instrument entity.
// DisplayName carries the uniqueness guarantee: the resolver must never
// create two rows with the same name, so the constraint lives in the schema.
type PaymentMode struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName    string    `gorm:"uniqueIndex"`
	Category       string    `gorm:"index"`
	LastFourDigits string
	CreatedAt      time.Time
}
