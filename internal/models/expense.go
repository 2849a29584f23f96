package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Fixed values for auto-detected entries.
const (
	CategoryTransfer  = "Transfer"
	ProvenanceSMSAuto = "sms-auto"
)

// Expense is one ledger record produced by the ingestion pipeline.
// Rows are written once and never mutated here; Detection keeps the raw
// extraction context (sender, source, counterparty, raw body) for audit.
type Expense struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);index"`
	Description   string
	Category      string    `gorm:"index"`
	PaymentModeID uuid.UUID `gorm:"type:uuid;index"`
	Provenance    string    `gorm:"index"`
	Detection     datatypes.JSON
	CreatedAt     time.Time
}
