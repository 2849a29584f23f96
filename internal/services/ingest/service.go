package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sms-expense-backend/internal/models"
	"sms-expense-backend/internal/services/parser"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PaymentModeStore is the persistence contract for payment modes. Insert
// reports created=false when a row with the same display name already exists.
type PaymentModeStore interface {
	FindByDisplayName(name string) (*models.PaymentMode, error)
	Insert(mode *models.PaymentMode) (bool, error)
	List() ([]models.PaymentMode, error)
}

type ExpenseStore interface {
	Insert(expense *models.Expense) error
	List(cursor string, limit int, search string) ([]models.Expense, string, bool, error)
}

type Service struct {
	paymentModes PaymentModeStore
	expenses     ExpenseStore
	db           *gorm.DB
	log          zerolog.Logger
}

func NewService(paymentModes PaymentModeStore, expenses ExpenseStore, db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{
		paymentModes: paymentModes,
		expenses:     expenses,
		db:           db,
		log:          log,
	}
}

// Process runs one message through the full pipeline:
// classify -> extract -> resolve source -> resolve payment mode -> append.
// Classification and missing-amount rejections come back as normal Outcome
// values; only persistence failures surface as errors. Safe under concurrent
// invocation: the one shared race (payment-mode create) is absorbed by the
// display-name unique constraint.
func (s *Service) Process(msg RawMessage) (Outcome, error) {
	if !parser.IsExpense(msg.Body) {
		s.log.Debug().Str("sender", msg.Sender).Msg("rejected: not an expense message")
		return Outcome{State: StateRejected, Reason: ReasonNotAnExpense}, nil
	}

	amount, ok := parser.ExtractAmount(msg.Body)
	if !ok {
		s.log.Debug().Str("sender", msg.Sender).Msg("rejected: no amount found")
		return Outcome{State: StateRejected, Reason: ReasonNoAmount}, nil
	}

	counterparty, _ := parser.ExtractCounterparty(msg.Body)
	lastFour, _ := parser.ExtractLastFour(msg.Body)

	parsed := ParsedExpense{
		Amount:         amount,
		Counterparty:   counterparty,
		SourceName:     parser.ResolveSource(msg.Sender, msg.Body),
		LastFourDigits: lastFour,
		DetectedAt:     msg.ReceivedAt,
	}
	if parsed.DetectedAt.IsZero() {
		parsed.DetectedAt = time.Now()
	}

	modeID, err := s.resolvePaymentMode(parsed.SourceName, parsed.LastFourDigits)
	if err != nil {
		return Outcome{}, err
	}

	expense, err := s.appendExpense(msg, parsed, modeID)
	if err != nil {
		return Outcome{}, err
	}

	s.log.Info().
		Str("amount", parsed.Amount.String()).
		Str("source", parsed.SourceName).
		Str("expense_id", expense.ID.String()).
		Msg("expense persisted")

	return Outcome{State: StatePersisted, Expense: expense, PaymentModeID: modeID}, nil
}

// DisplayName derives the canonical payment-mode name from the funding source
// and instrument suffix. Deterministic, so equal inputs always land on the
// same row.
func DisplayName(sourceName, lastFour string) string {
	switch {
	case sourceName != parser.SourceUnknown && lastFour != "":
		return sourceName + " •••• " + lastFour
	case sourceName != parser.SourceUnknown:
		return sourceName
	case lastFour != "":
		return "•••• " + lastFour
	default:
		return "Unknown"
	}
}

var walletNames = []string{"PAYTM", "PHONEPE", "GOOGLE PAY", "GPAY"}

// CategoryFor classifies a new payment mode. Suffix beats everything (a card
// was mentioned), then bank names, then the known wallets.
func CategoryFor(sourceName, lastFour string) string {
	if lastFour != "" {
		return models.CategoryCard
	}
	upper := strings.ToUpper(sourceName)
	if strings.Contains(upper, "BANK") {
		return models.CategoryBank
	}
	for _, wallet := range walletNames {
		if strings.Contains(upper, wallet) {
			return models.CategoryUPI
		}
	}
	return models.CategoryOther
}

// resolvePaymentMode looks up the payment mode for this source/suffix pair and
// lazily creates it on first sighting. The lookup-then-create race between
// concurrent messages is resolved by insert-then-fallback-to-read: the unique
// index rejects the duplicate and the loser re-reads the winner's row.
func (s *Service) resolvePaymentMode(sourceName, lastFour string) (uuid.UUID, error) {
	name := DisplayName(sourceName, lastFour)

	existing, err := s.paymentModes.FindByDisplayName(name)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	mode := &models.PaymentMode{
		ID:             uuid.New(),
		DisplayName:    name,
		Category:       CategoryFor(sourceName, lastFour),
		LastFourDigits: lastFour,
		CreatedAt:      time.Now(),
	}
	created, err := s.paymentModes.Insert(mode)
	if err != nil {
		return uuid.Nil, err
	}
	if created {
		s.log.Info().Str("payment_mode", name).Str("category", mode.Category).Msg("created payment mode")
		return mode.ID, nil
	}

	// Lost the insert race: a concurrent message created the row first.
	existing, err = s.paymentModes.FindByDisplayName(name)
	if err != nil {
		return uuid.Nil, err
	}
	if existing == nil {
		return uuid.Nil, fmt.Errorf("payment mode %q missing after conflicting insert", name)
	}
	return existing.ID, nil
}

// appendExpense writes the ledger record. A failure here leaves any payment
// mode created above in place; the row is reusable by a later message.
func (s *Service) appendExpense(msg RawMessage, parsed ParsedExpense, modeID uuid.UUID) (*models.Expense, error) {
	receiver := parsed.Counterparty
	if receiver == "" {
		receiver = "Unknown"
	}

	detection := map[string]interface{}{
		"sender":       msg.Sender,
		"source":       parsed.SourceName,
		"counterparty": parsed.Counterparty,
		"last_four":    parsed.LastFourDigits,
		"raw_body":     msg.Body,
		"detected_at":  parsed.DetectedAt.Format(time.RFC3339),
	}
	detectionJSON, _ := json.Marshal(detection)

	expense := &models.Expense{
		ID:            uuid.New(),
		Amount:        parsed.Amount,
		Description:   "Sent to " + receiver,
		Category:      models.CategoryTransfer,
		PaymentModeID: modeID,
		Provenance:    models.ProvenanceSMSAuto,
		Detection:     detectionJSON,
		CreatedAt:     time.Now(),
	}
	if err := s.expenses.Insert(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses exposes the ledger view for downstream consumers.
func (s *Service) ListExpenses(cursor string, limit int, search string) ([]models.Expense, string, bool, error) {
	return s.expenses.List(cursor, limit, search)
}

func (s *Service) ListPaymentModes() ([]models.PaymentMode, error) {
	return s.paymentModes.List()
}
