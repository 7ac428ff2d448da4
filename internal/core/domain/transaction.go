package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus tracks the web-payment lifecycle of a transaction.
type TransactionStatus string

const (
	// StatusCreated: a token was minted, nothing confirmed yet.
	StatusCreated TransactionStatus = "CREATED"
	// StatusStarted: the gateway accepted the redirect setup.
	StatusStarted TransactionStatus = "STARTED"
	// StatusConfirmed: the gateway result was reconciled. Terminal.
	StatusConfirmed TransactionStatus = "CONFIRMED"
)

// TransactionDateLayout is the timestamp format the gateway returns on
// confirmed transactions.
const TransactionDateLayout = "02/01/2006 15:04"

// OrderRef is a polymorphic reference to whatever business entity triggered
// the payment. The pair is stored and passed through, never dereferenced here;
// resolution belongs to the collaborator owning the kind registry.
type OrderRef struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

// Transaction records one payment attempt. Rows are financial audit records:
// they are never deleted, and they survive removal of the wallet they
// reference (the reference is cleared instead).
type Transaction struct {
	Token         string            `json:"token"`
	WalletID      *string           `json:"wallet_id,omitempty"`
	Date          *time.Time        `json:"date,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	TransactionID string            `json:"transaction_id"`
	ResultCode    string            `json:"result_code"`
	Order         *OrderRef         `json:"order,omitempty"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewToken mints a timestamped correlation token for a payment attempt,
// independent of any gateway-assigned identifier.
func NewToken() string {
	return time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString()[:21]
}

// MinorUnits converts a major-unit decimal amount (e.g. 12.34 euros) to the
// smallest currency denomination (1234 cents).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// GatewayConfirmation holds the payment-details fields consumed by Validate.
type GatewayConfirmation struct {
	ResultCode    string
	TransactionID string
	Date          string // gateway format, see TransactionDateLayout
}

// Validate reconciles the gateway confirmation into the transaction: result
// code, gateway transaction id, and confirmation date are set exactly once.
// A transaction that already carries a gateway transaction id is left
// untouched and false is returned, so repeated confirmations are harmless.
func (t *Transaction) Validate(c GatewayConfirmation) (bool, error) {
	if t.TransactionID != "" {
		return false, nil
	}
	ts, err := time.Parse(TransactionDateLayout, c.Date)
	if err != nil {
		return false, fmt.Errorf("parse gateway transaction date %q: %w", c.Date, err)
	}
	t.ResultCode = c.ResultCode
	t.TransactionID = c.TransactionID
	t.Date = &ts
	t.Status = StatusConfirmed
	return true, nil
}

// IsTerminal reports whether the transaction reached its final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusConfirmed
}
