package service

import (
	"context"
	"errors"
	"testing"

	"card-payment-service/config"
	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"
	"card-payment-service/internal/core/ports/mocks"
	"card-payment-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorTestDeps struct {
	svc        *PaymentOrchestratorImpl
	gateway    *mocks.MockGatewayClient
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	cache      *mocks.MockWalletCache
	ctrl       *gomock.Controller
}

func testGatewayConfig() config.GatewayConfig {
	return config.GatewayConfig{
		API:             config.GatewayAPIDirectPayment,
		Environment:     config.GatewayEnvHomologation,
		MerchantID:      "merchant-1",
		APIKey:          "key-1",
		ContractNumber:  "CONTRACT-42",
		CurrencyCode:    978,
		ReturnURL:       "https://shop.example/return",
		CancelURL:       "https://shop.example/cancel",
		NotificationURL: "https://shop.example/notify",
	}
}

func setupOrchestrator(t *testing.T) *orchestratorTestDeps {
	ctrl := gomock.NewController(t)
	d := &orchestratorTestDeps{
		gateway:    mocks.NewMockGatewayClient(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		cache:      mocks.NewMockWalletCache(ctrl),
		ctrl:       ctrl,
	}
	svc, err := NewPaymentOrchestrator(
		d.gateway, d.walletRepo, d.txRepo, d.cache,
		testGatewayConfig(), zerolog.Nop(),
	)
	require.NoError(t, err)
	d.svc = svc
	return d
}

func successResult(code string) ports.GatewayResult {
	return ports.GatewayResult{Code: code, ShortMessage: "ACCEPTED", LongMessage: "Transaction approved"}
}

func declineResult() ports.GatewayResult {
	return ports.GatewayResult{Code: "01100", ShortMessage: "REFUSED", LongMessage: "Do not honour"}
}

// ==================== Construction Tests ====================

func TestNewPaymentOrchestrator_RejectsBadConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testGatewayConfig()
	cfg.API = "BatchPayment"

	_, err := NewPaymentOrchestrator(
		mocks.NewMockGatewayClient(ctrl),
		mocks.NewMockWalletRepository(ctrl),
		mocks.NewMockTransactionRepository(ctrl),
		mocks.NewMockWalletCache(ctrl),
		cfg, zerolog.Nop(),
	)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CFG_001", appErr.Code)
}

func TestNewPaymentOrchestrator_RejectsKeyWithoutContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testGatewayConfig()
	cfg.ContractNumber = ""

	_, err := NewPaymentOrchestrator(
		mocks.NewMockGatewayClient(ctrl),
		mocks.NewMockWalletRepository(ctrl),
		mocks.NewMockTransactionRepository(ctrl),
		mocks.NewMockWalletCache(ctrl),
		cfg, zerolog.Nop(),
	)
	require.Error(t, err)
}

// ==================== ValidateCard Tests ====================

func TestOrchestrator_ValidateCard_SuccessReversesOnce(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	card := ports.CardDetails{Number: "4111111111111111", Type: domain.CardTypeCB, Expiry: "1230", CVX: "123"}

	d.gateway.EXPECT().Authorize(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.AuthorizationRequest) (*ports.AuthorizationResponse, error) {
			assert.Equal(t, int64(100), req.Payment.AmountMinor)
			assert.Equal(t, ports.ActionAuthorize, req.Payment.Action)
			assert.Equal(t, ports.PaymentModeCash, req.Payment.Mode)
			assert.Equal(t, "CONTRACT-42", req.Payment.ContractNumber)
			assert.Equal(t, 978, req.Payment.Currency)
			assert.Equal(t, card.Number, req.Card.Number)
			assert.NotEmpty(t, req.Order.Ref)
			return &ports.AuthorizationResponse{
				Result:        successResult(ports.PaymentSuccessCode),
				TransactionID: "TX-123",
			}, nil
		})
	// Exactly one cleanup reversal follows a successful validation.
	d.gateway.EXPECT().ReverseAuthorization(ctx, "TX-123", "Card validation cleanup").Return(nil).Times(1)

	out, err := d.svc.ValidateCard(ctx, card)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "ACCEPTED: Transaction approved", out.Message)
}

func TestOrchestrator_ValidateCard_DeclineDoesNotReverse(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().Authorize(ctx, gomock.Any()).Return(&ports.AuthorizationResponse{
		Result: declineResult(),
	}, nil)
	// No ReverseAuthorization expectation: a reversal here fails the test.

	out, err := d.svc.ValidateCard(ctx, ports.CardDetails{Number: "4111111111111111", Expiry: "1230"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "REFUSED: Do not honour", out.Message)
}

func TestOrchestrator_ValidateCard_TransportFailureNormalized(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().Authorize(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

	out, err := d.svc.ValidateCard(ctx, ports.CardDetails{Number: "4111111111111111", Expiry: "1230"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "Payment backend failure, please try again later", out.Message)
}

func TestOrchestrator_ValidateCard_ReversalFailureStillSucceeds(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().Authorize(ctx, gomock.Any()).Return(&ports.AuthorizationResponse{
		Result:        successResult(ports.PaymentSuccessCode),
		TransactionID: "TX-123",
	}, nil)
	d.gateway.EXPECT().ReverseAuthorization(ctx, "TX-123", gomock.Any()).Return(errors.New("timeout"))

	out, err := d.svc.ValidateCard(ctx, ports.CardDetails{Number: "4111111111111111", Expiry: "1230"})
	require.NoError(t, err)
	assert.True(t, out.Success)
}

// ==================== SaveWallet Tests ====================

func TestOrchestrator_SaveWallet_CreateMintsIDAndPersists(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.SaveWalletRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Type: domain.CardTypeCB, Expiry: "1230", CVX: "123"},
		Create:    true,
	}

	var sentWalletID string
	d.gateway.EXPECT().CreateWallet(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, wr ports.WalletRequest) (*ports.WalletOpResponse, error) {
			assert.Equal(t, "CONTRACT-42", wr.ContractNumber)
			assert.Equal(t, "Ada", wr.Wallet.FirstName)
			assert.Equal(t, "4111111111111111", wr.Wallet.CardNumber)
			assert.Equal(t, "123", wr.CVX)
			assert.NotEmpty(t, wr.Wallet.WalletID)
			sentWalletID = wr.Wallet.WalletID
			return &ports.WalletOpResponse{Result: successResult(ports.WalletSuccessCode)}, nil
		})
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			assert.Equal(t, sentWalletID, w.WalletID)
			assert.False(t, w.CreatedAt.IsZero())
			return nil
		})

	res, err := d.svc.SaveWallet(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, sentWalletID, res.WalletID)
}

func TestOrchestrator_SaveWallet_UpdateUsesExistingID(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.SaveWalletRequest{
		WalletID:  "wallet-7",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "1230"},
	}

	d.gateway.EXPECT().UpdateWallet(ctx, gomock.Any()).Return(
		&ports.WalletOpResponse{Result: successResult(ports.WalletSuccessCode)}, nil)
	d.walletRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	res, err := d.svc.SaveWallet(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "wallet-7", res.WalletID)
}

func TestOrchestrator_SaveWallet_RequiresNames(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	_, err := d.svc.SaveWallet(context.Background(), ports.SaveWalletRequest{
		FirstName: "Ada",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "1230"},
		Create:    true,
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_002", appErr.Code)
}

func TestOrchestrator_SaveWallet_MalformedExpiry(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	_, err := d.svc.SaveWallet(context.Background(), ports.SaveWalletRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "13AB"},
		Create:    true,
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_003", appErr.Code)
}

func TestOrchestrator_SaveWallet_ExpiredCardRejected(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	_, err := d.svc.SaveWallet(context.Background(), ports.SaveWalletRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "0113"},
		Create:    true,
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_002", appErr.Code)
}

func TestOrchestrator_SaveWallet_GatewayDeclineSkipsPersist(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().CreateWallet(ctx, gomock.Any()).Return(
		&ports.WalletOpResponse{Result: declineResult()}, nil)
	// No walletRepo expectation: a local write here fails the test.

	res, err := d.svc.SaveWallet(ctx, ports.SaveWalletRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "1230"},
		Create:    true,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestOrchestrator_SaveWallet_DuplicateKeySurfaces(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	dup := apperror.ErrDuplicateKey("wallet", errors.New("23505"))
	d.gateway.EXPECT().CreateWallet(ctx, gomock.Any()).Return(
		&ports.WalletOpResponse{Result: successResult(ports.WalletSuccessCode)}, nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(dup)

	_, err := d.svc.SaveWallet(ctx, ports.SaveWalletRequest{
		WalletID:  "wallet-7",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "1230"},
		Create:    true,
	})
	require.Error(t, err)
	assert.Same(t, dup, err)
}

func TestOrchestrator_SaveWallet_TransportFailureNormalized(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().CreateWallet(ctx, gomock.Any()).Return(nil, errors.New("eof"))

	res, err := d.svc.SaveWallet(ctx, ports.SaveWalletRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Card:      ports.CardDetails{Number: "4111111111111111", Expiry: "1230"},
		Create:    true,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Payment backend failure, please try again later", res.Message)
}

// ==================== GetWallet Tests ====================

func TestOrchestrator_GetWallet_CacheHitSkipsGateway(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := &domain.Wallet{WalletID: "wallet-7", FirstName: "Ada"}
	d.cache.EXPECT().Get(ctx, "wallet-7").Return(cached, nil)

	w, out := d.svc.GetWallet(ctx, "wallet-7")
	assert.True(t, out.Success)
	assert.Same(t, cached, w)
}

func TestOrchestrator_GetWallet_CacheMissFetchesAndCaches(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fetched := &domain.Wallet{WalletID: "wallet-7", FirstName: "Ada", CardExpiry: "1230"}

	d.cache.EXPECT().Get(ctx, "wallet-7").Return(nil, nil)
	d.gateway.EXPECT().FetchWallet(ctx, "CONTRACT-42", "wallet-7").Return(
		&ports.WalletOpResponse{Result: successResult(ports.WalletSuccessCode), Wallet: fetched}, nil)
	d.cache.EXPECT().Set(ctx, fetched, walletCacheTTL).Return(nil)

	w, out := d.svc.GetWallet(ctx, "wallet-7")
	assert.True(t, out.Success)
	assert.Same(t, fetched, w)
}

func TestOrchestrator_GetWallet_CacheErrorFallsThrough(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fetched := &domain.Wallet{WalletID: "wallet-7"}

	d.cache.EXPECT().Get(ctx, "wallet-7").Return(nil, errors.New("redis down"))
	d.gateway.EXPECT().FetchWallet(ctx, "CONTRACT-42", "wallet-7").Return(
		&ports.WalletOpResponse{Result: successResult(ports.WalletSuccessCode), Wallet: fetched}, nil)
	d.cache.EXPECT().Set(ctx, fetched, walletCacheTTL).Return(errors.New("redis down"))

	w, out := d.svc.GetWallet(ctx, "wallet-7")
	assert.True(t, out.Success)
	assert.Same(t, fetched, w)
}

func TestOrchestrator_GetWallet_TransportFailureNormalized(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "wallet-7").Return(nil, nil)
	d.gateway.EXPECT().FetchWallet(ctx, "CONTRACT-42", "wallet-7").Return(nil, errors.New("eof"))

	w, out := d.svc.GetWallet(ctx, "wallet-7")
	assert.Nil(t, w)
	assert.False(t, out.Success)
	assert.Equal(t, "Payment backend failure, please try again later", out.Message)
}

// ==================== PayFromWallet Tests ====================

func TestOrchestrator_PayFromWallet_SuccessRecordsTransaction(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	amount := decimal.RequireFromString("12.34")

	d.gateway.EXPECT().ChargeWallet(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.ChargeRequest) (*ports.ChargeResponse, error) {
			assert.Equal(t, int64(1234), req.Payment.AmountMinor)
			assert.Equal(t, ports.ActionAuthorizeAndValidate, req.Payment.Action)
			assert.Equal(t, "wallet-7", req.WalletID)
			return &ports.ChargeResponse{
				Result:        successResult(ports.PaymentSuccessCode),
				TransactionID: "TX-987",
			}, nil
		})
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			assert.NotEmpty(t, txn.Token)
			require.NotNil(t, txn.WalletID)
			assert.Equal(t, "wallet-7", *txn.WalletID)
			assert.True(t, amount.Equal(txn.Amount))
			assert.Equal(t, "TX-987", txn.TransactionID)
			assert.Equal(t, domain.StatusCreated, txn.Status)
			return nil
		})

	res, err := d.svc.PayFromWallet(ctx, "wallet-7", amount)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "TX-987", res.TransactionID)
	assert.NotEmpty(t, res.Token)
}

func TestOrchestrator_PayFromWallet_DeclineSkipsRecord(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().ChargeWallet(ctx, gomock.Any()).Return(&ports.ChargeResponse{
		Result:        declineResult(),
		TransactionID: "TX-987",
	}, nil)
	// No txRepo expectation: a declined payment leaves no row.

	res, err := d.svc.PayFromWallet(ctx, "wallet-7", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "TX-987", res.TransactionID)
	assert.Empty(t, res.Token)
}

func TestOrchestrator_PayFromWallet_NegativeAmountRejected(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	_, err := d.svc.PayFromWallet(context.Background(), "wallet-7", decimal.NewFromInt(-1))
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_005", appErr.Code)
}

func TestOrchestrator_PayFromWallet_TransportFailureNormalized(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().ChargeWallet(ctx, gomock.Any()).Return(nil, errors.New("eof"))

	res, err := d.svc.PayFromWallet(ctx, "wallet-7", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Payment backend failure, please try again later", res.Message)
}

// ==================== StartWebPayment Tests ====================

func TestOrchestrator_StartWebPayment_SuccessStartsSession(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	amount := decimal.RequireFromString("99.90")
	orderRef := &domain.OrderRef{Kind: "order", ID: 42}

	var mintedToken string
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			assert.NotEmpty(t, txn.Token)
			assert.Nil(t, txn.WalletID)
			assert.Equal(t, domain.StatusCreated, txn.Status)
			assert.Equal(t, orderRef, txn.Order)
			mintedToken = txn.Token
			return nil
		})
	d.gateway.EXPECT().InitiateWebPayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.WebPaymentRequest) (*ports.WebPaymentResponse, error) {
			assert.Equal(t, int64(9990), req.Payment.AmountMinor)
			assert.Equal(t, mintedToken, req.Order.Ref)
			assert.Equal(t, "https://shop.example/return", req.ReturnURL)
			assert.Equal(t, []string{"CONTRACT-42"}, req.Contracts)
			assert.Nil(t, req.Buyer)
			return &ports.WebPaymentResponse{
				Result:      successResult(ports.PaymentSuccessCode),
				RedirectURL: "https://pay.example/session/abc",
			}, nil
		})
	d.txRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			assert.Equal(t, domain.StatusStarted, txn.Status)
			return nil
		})

	session, err := d.svc.StartWebPayment(ctx, ports.StartWebPaymentRequest{Amount: amount, Order: orderRef})
	require.NoError(t, err)
	assert.True(t, session.Success)
	assert.Equal(t, mintedToken, session.Token)
	assert.Equal(t, "https://pay.example/session/abc", session.RedirectURL)
}

func TestOrchestrator_StartWebPayment_GatewayFailureLeavesCreatedRow(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.gateway.EXPECT().InitiateWebPayment(ctx, gomock.Any()).Return(nil, errors.New("eof"))
	// No Update expectation: the row stays in its created state.

	session, err := d.svc.StartWebPayment(ctx, ports.StartWebPaymentRequest{Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.False(t, session.Success)
	assert.NotEmpty(t, session.Token)
}

func TestOrchestrator_StartWebPayment_TokenCollisionSurfaces(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	dup := apperror.ErrDuplicateKey("transaction", errors.New("23505"))
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).Return(dup)

	_, err := d.svc.StartWebPayment(ctx, ports.StartWebPaymentRequest{Amount: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.Same(t, dup, err)
}

// ==================== ConfirmWebPayment Tests ====================

func TestOrchestrator_ConfirmWebPayment_ReconcilesDetails(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := &domain.Transaction{
		Token:  "tok-1",
		Amount: decimal.NewFromInt(10),
		Status: domain.StatusStarted,
	}

	d.txRepo.EXPECT().GetByToken(ctx, "tok-1").Return(txn, nil)
	d.gateway.EXPECT().FetchWebPaymentDetails(ctx, "tok-1").Return(&ports.WebPaymentDetails{
		Result:          successResult(ports.PaymentSuccessCode),
		TransactionID:   "TX-555",
		TransactionDate: "01/02/2024 10:30",
	}, nil)
	d.txRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *domain.Transaction) error {
			assert.Equal(t, "TX-555", updated.TransactionID)
			assert.Equal(t, ports.PaymentSuccessCode, updated.ResultCode)
			assert.Equal(t, domain.StatusConfirmed, updated.Status)
			require.NotNil(t, updated.Date)
			assert.Equal(t, 2024, updated.Date.Year())
			return nil
		})

	out, err := d.svc.ConfirmWebPayment(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestOrchestrator_ConfirmWebPayment_AlreadyConfirmedIsNoOp(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := &domain.Transaction{Token: "tok-1", TransactionID: "TX-555", Status: domain.StatusConfirmed}
	d.txRepo.EXPECT().GetByToken(ctx, "tok-1").Return(txn, nil)
	// No gateway or Update expectation: a repeat confirmation touches nothing.

	out, err := d.svc.ConfirmWebPayment(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "transaction already confirmed", out.Message)
}

func TestOrchestrator_ConfirmWebPayment_UnknownToken(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetByToken(ctx, "tok-missing").Return(nil, nil)

	_, err := d.svc.ConfirmWebPayment(ctx, "tok-missing")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_004", appErr.Code)
}

func TestOrchestrator_ConfirmWebPayment_NotYetPaid(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := &domain.Transaction{Token: "tok-1", Status: domain.StatusStarted}
	d.txRepo.EXPECT().GetByToken(ctx, "tok-1").Return(txn, nil)
	d.gateway.EXPECT().FetchWebPaymentDetails(ctx, "tok-1").Return(&ports.WebPaymentDetails{
		Result: declineResult(),
	}, nil)

	out, err := d.svc.ConfirmWebPayment(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Empty(t, txn.TransactionID)
}

func TestOrchestrator_ConfirmWebPayment_TransportFailureNormalized(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := &domain.Transaction{Token: "tok-1", Status: domain.StatusStarted}
	d.txRepo.EXPECT().GetByToken(ctx, "tok-1").Return(txn, nil)
	d.gateway.EXPECT().FetchWebPaymentDetails(ctx, "tok-1").Return(nil, errors.New("eof"))

	out, err := d.svc.ConfirmWebPayment(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "Payment backend failure, please try again later", out.Message)
}
