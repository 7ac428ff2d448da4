package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CardType enumerates the card networks accepted by the gateway contract.
type CardType string

const (
	CardTypeCB   CardType = "CB"   // Carte Bleue / VISA / Mastercard
	CardTypeAmex CardType = "AMEX" // American Express
)

// ErrMalformedExpiry reports a card expiry string that does not parse as MMYY.
var ErrMalformedExpiry = errors.New("card expiry is not a valid MMYY date")

// expiryLayout parses MMYY strings (e.g. "0213" for February 2013).
const expiryLayout = "0106"

// Wallet is a reusable card-payment profile, mirrored at the gateway.
// The card number is stored verbatim at this layer; vaulting belongs to the
// storage collaborator.
type Wallet struct {
	WalletID   string    `json:"wallet_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CardNumber string    `json:"card_number"`
	CardType   CardType  `json:"card_type"`
	CardExpiry string    `json:"card_expiry"` // MMYY
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewWalletID mints an opaque wallet identifier.
func NewWalletID() string {
	return uuid.NewString()
}

// ExpiryTime converts an MMYY expiry to the last calendar day of that month.
// The first of the month plus 31 days always lands in the following month;
// truncating back to day one and subtracting a day gives the month end for
// any month length, leap years and year rollover included.
func ExpiryTime(expiry string) (time.Time, error) {
	t, err := time.Parse(expiryLayout, expiry)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedExpiry, expiry)
	}
	next := t.AddDate(0, 0, 31)
	monthStart := time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, time.UTC)
	return monthStart.AddDate(0, 0, -1), nil
}

// IsValid reports whether the card can still accept charges: its expiry month
// must end no earlier than the current month ends.
func (w *Wallet) IsValid(now time.Time) (bool, error) {
	exp, err := ExpiryTime(w.CardExpiry)
	if err != nil {
		return false, err
	}
	cur, err := ExpiryTime(now.Format(expiryLayout))
	if err != nil {
		return false, err
	}
	return !exp.Before(cur), nil
}

// ExpiresThisMonth reports whether the card expires in the current month.
func (w *Wallet) ExpiresThisMonth(now time.Time) bool {
	return w.CardExpiry == now.Format(expiryLayout)
}
