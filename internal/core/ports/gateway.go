package ports

import (
	"context"

	"card-payment-service/internal/core/domain"
)

// Gateway actions and canonical result codes, fixed by the provider contract.
const (
	// ActionAuthorize reserves funds without capturing them.
	ActionAuthorize = 100
	// ActionAuthorizeAndValidate authorizes and captures in one call.
	ActionAuthorizeAndValidate = 101

	// PaymentModeCash is the immediate, single-shot payment mode.
	PaymentModeCash = "CPT"

	// PaymentSuccessCode is the gateway's code for a successful payment.
	PaymentSuccessCode = "00000"
	// WalletSuccessCode is the gateway's code for a successful wallet
	// operation, distinct from the payment success code.
	WalletSuccessCode = "02500"

	// OrderDateLayout is the timestamp format the gateway expects on orders.
	OrderDateLayout = "02/01/2006 15:04"
)

// GatewayResult is the status block present on every gateway response.
type GatewayResult struct {
	Code         string
	ShortMessage string
	LongMessage  string
}

// Message combines the short and long descriptions for display, independent
// of success or failure.
func (r GatewayResult) Message() string {
	return r.ShortMessage + ": " + r.LongMessage
}

// Payment carries the monetary part of a gateway request, in minor units.
type Payment struct {
	AmountMinor    int64
	Currency       int // ISO 4217 numeric
	Action         int
	Mode           string
	ContractNumber string
}

// Order identifies the purchase a payment settles.
type Order struct {
	Ref         string
	AmountMinor int64
	Currency    int
	Date        string // OrderDateLayout
}

// Card carries raw card data for direct-payment calls.
type Card struct {
	Number string
	Type   domain.CardType
	Expiry string // MMYY
	CVX    string
}

// Buyer carries optional customer details for web payments.
type Buyer struct {
	FirstName string
	LastName  string
	Email     string
	IP        string
}

type AuthorizationRequest struct {
	Payment Payment
	Order   Order
	Card    Card
}

type AuthorizationResponse struct {
	Result        GatewayResult
	TransactionID string
}

type WalletRequest struct {
	ContractNumber string
	Wallet         domain.Wallet
	CVX            string
}

// WalletOpResponse is returned by wallet create/update/fetch calls. Wallet is
// only populated by fetches, and may be nil even on success when the gateway
// legitimately returns nothing.
type WalletOpResponse struct {
	Result GatewayResult
	Wallet *domain.Wallet
}

type ChargeRequest struct {
	Payment  Payment
	Order    Order
	WalletID string
}

type ChargeResponse struct {
	Result        GatewayResult
	TransactionID string
}

type WebPaymentRequest struct {
	Payment         Payment
	Order           Order
	Buyer           *Buyer // optional; absent buyer info omits those fields
	ReturnURL       string
	CancelURL       string
	NotificationURL string
	Contracts       []string
}

type WebPaymentResponse struct {
	Result      GatewayResult
	RedirectURL string
}

type WebPaymentDetails struct {
	Result          GatewayResult
	TransactionID   string
	TransactionDate string // TransactionDateLayout
}

// GatewayClient performs one remote operation at a time against the payment
// provider. Implementations own transport, sessions and marshaling; callers
// treat any returned error as a transport failure to be normalized, never
// surfaced raw.
type GatewayClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error)
	// ReverseAuthorization cancels an earlier authorization. Fire-and-forget
	// on the gateway side; the transport error is still reported.
	ReverseAuthorization(ctx context.Context, transactionID, comment string) error
	CreateWallet(ctx context.Context, req WalletRequest) (*WalletOpResponse, error)
	UpdateWallet(ctx context.Context, req WalletRequest) (*WalletOpResponse, error)
	FetchWallet(ctx context.Context, contractNumber, walletID string) (*WalletOpResponse, error)
	ChargeWallet(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
	InitiateWebPayment(ctx context.Context, req WebPaymentRequest) (*WebPaymentResponse, error)
	FetchWebPaymentDetails(ctx context.Context, token string) (*WebPaymentDetails, error)
}
