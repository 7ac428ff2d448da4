package ports

import (
	"context"
	"time"

	"card-payment-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Outcome is the caller-facing verdict of a gateway-backed operation.
// Declines and normalized transport failures both surface as Success=false;
// the message tells them apart. Method errors are reserved for local faults
// (validation, storage).
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CardDetails is the raw card input for validation and wallet upserts.
type CardDetails struct {
	Number string
	Type   domain.CardType
	Expiry string // MMYY
	CVX    string
}

// SaveWalletRequest upserts a payment profile. With Create set a missing
// WalletID is minted; without it WalletID must name an existing wallet.
type SaveWalletRequest struct {
	WalletID  string
	FirstName string
	LastName  string
	Card      CardDetails
	Create    bool
}

type SaveWalletResult struct {
	Outcome
	WalletID string `json:"wallet_id"`
}

type WalletPaymentResult struct {
	Outcome
	// TransactionID is the gateway-assigned identifier; may be present on a
	// decline, absent on transport failure.
	TransactionID string `json:"transaction_id,omitempty"`
	// Token correlates the recorded transaction; empty unless a row was
	// created.
	Token string `json:"token,omitempty"`
}

// StartWebPaymentRequest opens a redirect-based payment.
type StartWebPaymentRequest struct {
	Amount decimal.Decimal
	Order  *domain.OrderRef
	Buyer  *Buyer
}

type WebPaymentSession struct {
	Outcome
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// PaymentOrchestrator composes gateway calls into the higher-level payment
// operations and reconciles the results into wallet/transaction state. Each
// operation is one synchronous pass, no retries, no background work.
type PaymentOrchestrator interface {
	// ValidateCard confirms a card is chargeable with a minimal authorization
	// that is immediately reversed.
	ValidateCard(ctx context.Context, card CardDetails) (Outcome, error)
	// SaveWallet mirrors the profile at the gateway and persists the local
	// row only after the gateway reports success.
	SaveWallet(ctx context.Context, req SaveWalletRequest) (SaveWalletResult, error)
	// GetWallet returns the gateway's view of a wallet, which may diverge
	// from the local mirror. The wallet is nil on failure and when the
	// gateway legitimately returns nothing.
	GetWallet(ctx context.Context, walletID string) (*domain.Wallet, Outcome)
	// PayFromWallet executes an immediate authorize-and-capture payment and
	// records the transaction on success.
	PayFromWallet(ctx context.Context, walletID string, amount decimal.Decimal) (WalletPaymentResult, error)
	// StartWebPayment mints a correlation token, records the pending
	// transaction, and opens the gateway's hosted-page session.
	StartWebPayment(ctx context.Context, req StartWebPaymentRequest) (WebPaymentSession, error)
	// ConfirmWebPayment fetches the final payment details for a token and
	// reconciles them into the transaction. Safe to repeat.
	ConfirmWebPayment(ctx context.Context, token string) (Outcome, error)
}

// WalletAdminService manages the local mirror and the transaction ledger.
type WalletAdminService interface {
	GetLocalWallet(ctx context.Context, walletID string) (*domain.Wallet, error)
	// RemoveWallet deletes the local wallet row after detaching its
	// transactions, atomically.
	RemoveWallet(ctx context.Context, walletID string) error
	GetTransaction(ctx context.Context, token string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, walletID string) ([]domain.Transaction, error)
}

// TokenService handles API bearer-token operations.
type TokenService interface {
	Generate(clientID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed bearer-token claims.
type TokenClaims struct {
	ClientID string
}

// WalletCache is a best-effort, TTL-bounded cache of gateway wallet fetches.
type WalletCache interface {
	Get(ctx context.Context, walletID string) (*domain.Wallet, error)
	Set(ctx context.Context, wallet *domain.Wallet, ttl time.Duration) error
}
