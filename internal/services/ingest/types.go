package ingest

import (
	"time"

	"sms-expense-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawMessage is one inbound notification text. Ephemeral, never persisted.
type RawMessage struct {
	Sender     string
	Body       string
	ReceivedAt time.Time
}

// ParsedExpense is the transient extraction result handed from the parser
// stages to the persistence stages. It is decomposed into a PaymentMode and
// an Expense, never stored as-is.
type ParsedExpense struct {
	Amount         decimal.Decimal
	Counterparty   string
	SourceName     string
	LastFourDigits string
	DetectedAt     time.Time
}

type State string

const (
	StatePersisted State = "persisted"
	StateRejected  State = "rejected"
)

// Rejection reasons. Both are normal negative outcomes, not errors.
const (
	ReasonNotAnExpense = "not_an_expense"
	ReasonNoAmount     = "no_amount"
)

// Outcome is the terminal result of one pipeline run, returned to the caller
// instead of being parked in shared state.
type Outcome struct {
	State         State
	Reason        string
	Expense       *models.Expense
	PaymentModeID uuid.UUID
}
