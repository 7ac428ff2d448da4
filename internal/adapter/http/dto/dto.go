package dto

// TokenRequest is the request body for API token issuance.
type TokenRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

// TokenResponse is the response body for successful token issuance.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CardRequest carries raw card data.
type CardRequest struct {
	Number string `json:"number" binding:"required,numeric,min=12,max=19"`
	Type   string `json:"type" binding:"required,oneof=CB AMEX"`
	Expiry string `json:"expiry" binding:"required,cardexpiry"`
	CVX    string `json:"cvx" binding:"required,numeric,min=3,max=4"`
}

// ValidateCardRequest is the request body for card validation.
type ValidateCardRequest struct {
	Card CardRequest `json:"card" binding:"required"`
}

// SaveWalletRequest is the request body for wallet creation and update.
type SaveWalletRequest struct {
	WalletID  string      `json:"wallet_id,omitempty" binding:"omitempty,max=36"`
	FirstName string      `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string      `json:"last_name" binding:"required,min=1,max=100"`
	Card      CardRequest `json:"card" binding:"required"`
}

// SaveWalletResponse is the response body for wallet upserts.
type SaveWalletResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	WalletID string `json:"wallet_id"`
}

// WalletResponse is the response body for wallet reads.
type WalletResponse struct {
	WalletID   string `json:"wallet_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	CardNumber string `json:"card_number"`
	CardType   string `json:"card_type"`
	CardExpiry string `json:"card_expiry"`
}

// GatewayWalletResponse wraps the gateway's view of a wallet with the
// operation verdict.
type GatewayWalletResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Wallet  *WalletResponse `json:"wallet,omitempty"`
}

// PayFromWalletRequest is the request body for an immediate wallet payment.
// Amount is a decimal string ("12.34") to avoid float precision loss.
type PayFromWalletRequest struct {
	Amount string `json:"amount" binding:"required,decimalamount"`
}

// PayFromWalletResponse is the response body for a wallet payment.
type PayFromWalletResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
	Token         string `json:"token,omitempty"`
}

// BuyerRequest carries optional customer details for web payments.
type BuyerRequest struct {
	FirstName string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
	IP        string `json:"ip,omitempty" binding:"omitempty,ip"`
}

// StartWebPaymentRequest is the request body for opening a hosted-page
// payment session.
type StartWebPaymentRequest struct {
	Amount    string        `json:"amount" binding:"required,decimalamount"`
	OrderKind string        `json:"order_kind,omitempty" binding:"omitempty,max=32"`
	OrderID   *int64        `json:"order_id,omitempty"`
	Buyer     *BuyerRequest `json:"buyer,omitempty"`
}

// StartWebPaymentResponse is the response body for a started web payment.
type StartWebPaymentResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// OutcomeResponse is the generic verdict body for gateway-backed operations.
type OutcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TransactionResponse is the response body for transaction reads.
type TransactionResponse struct {
	Token         string  `json:"token"`
	WalletID      *string `json:"wallet_id,omitempty"`
	Date          *string `json:"date,omitempty"`
	Amount        string  `json:"amount"`
	TransactionID string  `json:"transaction_id,omitempty"`
	ResultCode    string  `json:"result_code,omitempty"`
	OrderKind     *string `json:"order_kind,omitempty"`
	OrderID       *int64  `json:"order_id,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// TransactionListResponse wraps a wallet's transaction history.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// HealthResponse reports per-dependency connectivity.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
