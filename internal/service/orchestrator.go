package service

import (
	"context"
	"time"

	"card-payment-service/config"
	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"
	"card-payment-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// validationAmountMinor is the smallest authorization the gateway accepts
	// (1 unit of account, in minor units). Used for card validation only;
	// the authorization is reversed right away.
	validationAmountMinor = 100

	// backendFailureMessage is the only thing callers see on a transport
	// fault; the real cause goes to the log.
	backendFailureMessage = "Payment backend failure, please try again later"

	walletCacheTTL = 5 * time.Minute
)

// PaymentOrchestratorImpl implements ports.PaymentOrchestrator. It holds no
// mutable state of its own; every call builds a fresh gateway request.
type PaymentOrchestratorImpl struct {
	gateway     ports.GatewayClient
	walletRepo  ports.WalletRepository
	txRepo      ports.TransactionRepository
	walletCache ports.WalletCache
	cfg         config.GatewayConfig
	log         zerolog.Logger
}

// NewPaymentOrchestrator creates a PaymentOrchestratorImpl. Gateway settings
// are validated here, once; a bad configuration is fatal, not retryable.
func NewPaymentOrchestrator(
	gateway ports.GatewayClient,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	walletCache ports.WalletCache,
	cfg config.GatewayConfig,
	log zerolog.Logger,
) (*PaymentOrchestratorImpl, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PaymentOrchestratorImpl{
		gateway:     gateway,
		walletRepo:  walletRepo,
		txRepo:      txRepo,
		walletCache: walletCache,
		cfg:         cfg,
		log:         log,
	}, nil
}

// ValidateCard performs a minimal authorization and immediately reverses it,
// so the card is proven chargeable without a lasting charge.
func (s *PaymentOrchestratorImpl) ValidateCard(ctx context.Context, card ports.CardDetails) (ports.Outcome, error) {
	payment, order := s.newPaymentOrder(validationAmountMinor, ports.ActionAuthorize, uuid.NewString())

	res, err := s.gateway.Authorize(ctx, ports.AuthorizationRequest{
		Payment: payment,
		Order:   order,
		Card: ports.Card{
			Number: card.Number,
			Type:   card.Type,
			Expiry: card.Expiry,
			CVX:    card.CVX,
		},
	})
	if err != nil {
		s.log.Error().Err(err).Msg("payment backend failure on card validation")
		return ports.Outcome{Message: backendFailureMessage}, nil
	}

	out := ports.Outcome{
		Success: res.Result.Code == ports.PaymentSuccessCode,
		Message: res.Result.Message(),
	}
	if out.Success {
		// Cleanup: the validation authorization must not turn into a charge.
		if err := s.gateway.ReverseAuthorization(ctx, res.TransactionID, "Card validation cleanup"); err != nil {
			s.log.Warn().
				Err(err).
				Str("gateway_tx_id", res.TransactionID).
				Msg("card validation cleanup reversal failed, authorization may be left live")
		}
	}
	return out, nil
}

// SaveWallet upserts the profile at the gateway and mirrors it locally.
// The local row is only written after the gateway reports success.
func (s *PaymentOrchestratorImpl) SaveWallet(ctx context.Context, req ports.SaveWalletRequest) (ports.SaveWalletResult, error) {
	if req.FirstName == "" || req.LastName == "" {
		return ports.SaveWalletResult{}, apperror.Validation("owner first and last name are required")
	}

	w := domain.Wallet{
		WalletID:   req.WalletID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CardNumber: req.Card.Number,
		CardType:   req.Card.Type,
		CardExpiry: req.Card.Expiry,
	}
	if w.WalletID == "" {
		if !req.Create {
			return ports.SaveWalletResult{}, apperror.Validation("wallet_id is required for updates")
		}
		w.WalletID = domain.NewWalletID()
	}

	valid, err := w.IsValid(time.Now().UTC())
	if err != nil {
		return ports.SaveWalletResult{}, apperror.ErrMalformedExpiry(err)
	}
	if !valid {
		return ports.SaveWalletResult{}, apperror.Validation("card is already expired")
	}

	call := s.gateway.CreateWallet
	if !req.Create {
		call = s.gateway.UpdateWallet
	}
	res, err := call(ctx, ports.WalletRequest{
		ContractNumber: s.cfg.ContractNumber,
		Wallet:         w,
		CVX:            req.Card.CVX,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", w.WalletID).Msg("payment backend failure on wallet upsert")
		return ports.SaveWalletResult{
			Outcome:  ports.Outcome{Message: backendFailureMessage},
			WalletID: w.WalletID,
		}, nil
	}

	out := ports.Outcome{
		Success: res.Result.Code == ports.WalletSuccessCode,
		Message: res.Result.Message(),
	}
	result := ports.SaveWalletResult{Outcome: out, WalletID: w.WalletID}
	if !out.Success {
		return result, nil
	}

	now := time.Now().UTC()
	w.UpdatedAt = now
	if req.Create {
		w.CreatedAt = now
		err = s.walletRepo.Create(ctx, &w)
	} else {
		err = s.walletRepo.Update(ctx, &w)
	}
	if err != nil {
		// Duplicate-key and other storage errors surface unchanged.
		return ports.SaveWalletResult{}, err
	}

	s.log.Info().Str("wallet_id", w.WalletID).Bool("create", req.Create).Msg("wallet saved")
	return result, nil
}

// GetWallet returns the gateway's view of a wallet, consulting the cache
// first. Cache trouble never fails the operation.
func (s *PaymentOrchestratorImpl) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, ports.Outcome) {
	if cached, err := s.walletCache.Get(ctx, walletID); err != nil {
		s.log.Warn().Err(err).Str("wallet_id", walletID).Msg("wallet cache read failed, falling through to gateway")
	} else if cached != nil {
		return cached, ports.Outcome{Success: true, Message: "cached"}
	}

	res, err := s.gateway.FetchWallet(ctx, s.cfg.ContractNumber, walletID)
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID).Msg("payment backend failure on wallet fetch")
		return nil, ports.Outcome{Message: backendFailureMessage}
	}

	out := ports.Outcome{
		Success: res.Result.Code == ports.WalletSuccessCode,
		Message: res.Result.Message(),
	}
	if !out.Success || res.Wallet == nil {
		return nil, out
	}

	if err := s.walletCache.Set(ctx, res.Wallet, walletCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("wallet_id", walletID).Msg("wallet cache write failed")
	}
	return res.Wallet, out
}

// PayFromWallet executes an immediate authorize-and-capture payment from a
// stored wallet. On success a transaction row is recorded with the amount and
// the gateway transaction id; date and result code are reconciled later by
// the confirmation step.
func (s *PaymentOrchestratorImpl) PayFromWallet(ctx context.Context, walletID string, amount decimal.Decimal) (ports.WalletPaymentResult, error) {
	if amount.IsNegative() {
		return ports.WalletPaymentResult{}, apperror.ErrInvalidAmount()
	}

	payment, order := s.newPaymentOrder(domain.MinorUnits(amount), ports.ActionAuthorizeAndValidate, uuid.NewString())
	res, err := s.gateway.ChargeWallet(ctx, ports.ChargeRequest{
		Payment:  payment,
		Order:    order,
		WalletID: walletID,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID).Msg("payment backend failure on wallet payment")
		return ports.WalletPaymentResult{
			Outcome: ports.Outcome{Message: backendFailureMessage},
		}, nil
	}

	out := ports.Outcome{
		Success: res.Result.Code == ports.PaymentSuccessCode,
		Message: res.Result.Message(),
	}
	result := ports.WalletPaymentResult{Outcome: out, TransactionID: res.TransactionID}
	if !out.Success {
		// A decline is a domain answer, not a backend fault.
		s.log.Info().
			Str("wallet_id", walletID).
			Str("result_code", res.Result.Code).
			Msg("wallet payment declined")
		return result, nil
	}

	txn := &domain.Transaction{
		Token:         domain.NewToken(),
		WalletID:      &walletID,
		Amount:        amount,
		TransactionID: res.TransactionID,
		Status:        domain.StatusCreated,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, txn); err != nil {
		return ports.WalletPaymentResult{}, err
	}
	result.Token = txn.Token

	s.log.Info().
		Str("wallet_id", walletID).
		Str("gateway_tx_id", res.TransactionID).
		Str("amount", amount.StringFixed(2)).
		Msg("wallet payment recorded")
	return result, nil
}

// StartWebPayment records the pending transaction first, then asks the
// gateway for a hosted-page session. The token is minted before the redirect
// so the eventual confirmation can be correlated.
func (s *PaymentOrchestratorImpl) StartWebPayment(ctx context.Context, req ports.StartWebPaymentRequest) (ports.WebPaymentSession, error) {
	if req.Amount.IsNegative() {
		return ports.WebPaymentSession{}, apperror.ErrInvalidAmount()
	}

	txn := &domain.Transaction{
		Token:     domain.NewToken(),
		Amount:    req.Amount,
		Order:     req.Order,
		Status:    domain.StatusCreated,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, txn); err != nil {
		return ports.WebPaymentSession{}, err
	}

	payment, order := s.newPaymentOrder(domain.MinorUnits(req.Amount), ports.ActionAuthorizeAndValidate, txn.Token)
	res, err := s.gateway.InitiateWebPayment(ctx, ports.WebPaymentRequest{
		Payment:         payment,
		Order:           order,
		Buyer:           req.Buyer,
		ReturnURL:       s.cfg.ReturnURL,
		CancelURL:       s.cfg.CancelURL,
		NotificationURL: s.cfg.NotificationURL,
		Contracts:       []string{s.cfg.ContractNumber},
	})
	if err != nil {
		s.log.Error().Err(err).Str("token", txn.Token).Msg("payment backend failure on web payment setup")
		return ports.WebPaymentSession{
			Outcome: ports.Outcome{Message: backendFailureMessage},
			Token:   txn.Token,
		}, nil
	}

	out := ports.Outcome{
		Success: res.Result.Code == ports.PaymentSuccessCode,
		Message: res.Result.Message(),
	}
	session := ports.WebPaymentSession{Outcome: out, Token: txn.Token, RedirectURL: res.RedirectURL}
	if !out.Success {
		return session, nil
	}

	txn.Status = domain.StatusStarted
	if err := s.txRepo.Update(ctx, txn); err != nil {
		return ports.WebPaymentSession{}, err
	}

	s.log.Info().Str("token", txn.Token).Str("amount", req.Amount.StringFixed(2)).Msg("web payment started")
	return session, nil
}

// ConfirmWebPayment fetches the final details for a token and reconciles
// them into the transaction. Repeating a confirmation is a no-op once the
// gateway transaction id is recorded.
func (s *PaymentOrchestratorImpl) ConfirmWebPayment(ctx context.Context, token string) (ports.Outcome, error) {
	txn, err := s.txRepo.GetByToken(ctx, token)
	if err != nil {
		return ports.Outcome{}, err
	}
	if txn == nil {
		return ports.Outcome{}, apperror.ErrNotFound("transaction")
	}
	if txn.TransactionID != "" {
		return ports.Outcome{Success: true, Message: "transaction already confirmed"}, nil
	}

	res, err := s.gateway.FetchWebPaymentDetails(ctx, token)
	if err != nil {
		s.log.Error().Err(err).Str("token", token).Msg("payment backend failure on web payment details")
		return ports.Outcome{Message: backendFailureMessage}, nil
	}

	out := ports.Outcome{
		Success: res.Result.Code == ports.PaymentSuccessCode,
		Message: res.Result.Message(),
	}
	if !out.Success {
		return out, nil
	}

	if _, err := txn.Validate(domain.GatewayConfirmation{
		ResultCode:    res.Result.Code,
		TransactionID: res.TransactionID,
		Date:          res.TransactionDate,
	}); err != nil {
		return ports.Outcome{}, apperror.InternalError(err)
	}
	if err := s.txRepo.Update(ctx, txn); err != nil {
		return ports.Outcome{}, err
	}

	s.log.Info().
		Str("token", token).
		Str("gateway_tx_id", txn.TransactionID).
		Str("result_code", txn.ResultCode).
		Msg("web payment confirmed")
	return out, nil
}

// newPaymentOrder builds the payment and order blocks shared by every
// money-moving call.
func (s *PaymentOrchestratorImpl) newPaymentOrder(amountMinor int64, action int, ref string) (ports.Payment, ports.Order) {
	payment := ports.Payment{
		AmountMinor:    amountMinor,
		Currency:       s.cfg.CurrencyCode,
		Action:         action,
		Mode:           ports.PaymentModeCash,
		ContractNumber: s.cfg.ContractNumber,
	}
	order := ports.Order{
		Ref:         ref,
		AmountMinor: amountMinor,
		Currency:    s.cfg.CurrencyCode,
		Date:        time.Now().UTC().Format(ports.OrderDateLayout),
	}
	return payment, order
}
