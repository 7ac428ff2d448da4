package integration

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"
	"card-payment-service/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[string]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.WalletID]; ok {
		return apperror.ErrDuplicateKey("wallet", errors.New("wallet id already exists"))
	}
	cp := *w
	r.wallets[w.WalletID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.WalletID]; !ok {
		return apperror.ErrNotFound("wallet")
	}
	cp := *w
	r.wallets[w.WalletID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByWalletID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) Delete(ctx context.Context, tx pgx.Tx, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[walletID]; !ok {
		return apperror.ErrNotFound("wallet")
	}
	delete(r.wallets, walletID)
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[string]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[t.Token]; ok {
		return apperror.ErrDuplicateKey("transaction", errors.New("token already exists"))
	}
	cp := *t
	r.transactions[t.Token] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByToken(ctx context.Context, token string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[token]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) Update(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[t.Token]; !ok {
		return apperror.ErrNotFound("transaction")
	}
	cp := *t
	r.transactions[t.Token] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.WalletID != nil && *t.WalletID == walletID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *inMemoryTransactionRepo) ClearWalletRef(ctx context.Context, tx pgx.Tx, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.WalletID != nil && *t.WalletID == walletID {
			t.WalletID = nil
		}
	}
	return nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Stub Gateway ---

// stubGateway is an in-process ports.GatewayClient that approves everything
// by default. Individual behaviors can be overridden per test.
type stubGateway struct {
	mu        sync.Mutex
	nextTxID  int
	reversals []string
	wallets   map[string]domain.Wallet

	// declineNext makes the next payment-style call return a refusal.
	declineNext bool
}

func newStubGateway() *stubGateway {
	return &stubGateway{wallets: make(map[string]domain.Wallet)}
}

func (g *stubGateway) mintTxID() string {
	g.nextTxID++
	return "STUB-TX-" + strconv.Itoa(g.nextTxID)
}

func (g *stubGateway) result() ports.GatewayResult {
	if g.declineNext {
		g.declineNext = false
		return ports.GatewayResult{Code: "01100", ShortMessage: "REFUSED", LongMessage: "Do not honour"}
	}
	return ports.GatewayResult{Code: ports.PaymentSuccessCode, ShortMessage: "ACCEPTED", LongMessage: "Transaction approved"}
}

func (g *stubGateway) walletResult() ports.GatewayResult {
	if g.declineNext {
		g.declineNext = false
		return ports.GatewayResult{Code: "02501", ShortMessage: "REFUSED", LongMessage: "Wallet refused"}
	}
	return ports.GatewayResult{Code: ports.WalletSuccessCode, ShortMessage: "ACCEPTED", LongMessage: "Wallet operation accepted"}
}

func (g *stubGateway) Authorize(ctx context.Context, req ports.AuthorizationRequest) (*ports.AuthorizationResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return &ports.AuthorizationResponse{Result: g.result(), TransactionID: g.mintTxID()}, nil
}

func (g *stubGateway) ReverseAuthorization(ctx context.Context, transactionID, comment string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reversals = append(g.reversals, transactionID)
	return nil
}

func (g *stubGateway) CreateWallet(ctx context.Context, req ports.WalletRequest) (*ports.WalletOpResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	res := g.walletResult()
	if res.Code == ports.WalletSuccessCode {
		g.wallets[req.Wallet.WalletID] = req.Wallet
	}
	return &ports.WalletOpResponse{Result: res}, nil
}

func (g *stubGateway) UpdateWallet(ctx context.Context, req ports.WalletRequest) (*ports.WalletOpResponse, error) {
	return g.CreateWallet(ctx, req)
}

func (g *stubGateway) FetchWallet(ctx context.Context, contractNumber, walletID string) (*ports.WalletOpResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	res := g.walletResult()
	resp := &ports.WalletOpResponse{Result: res}
	if w, ok := g.wallets[walletID]; ok {
		cp := w
		resp.Wallet = &cp
	}
	return resp, nil
}

func (g *stubGateway) ChargeWallet(ctx context.Context, req ports.ChargeRequest) (*ports.ChargeResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return &ports.ChargeResponse{Result: g.result(), TransactionID: g.mintTxID()}, nil
}

func (g *stubGateway) InitiateWebPayment(ctx context.Context, req ports.WebPaymentRequest) (*ports.WebPaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return &ports.WebPaymentResponse{
		Result:      g.result(),
		RedirectURL: "https://stub.gateway/session/" + req.Order.Ref,
	}, nil
}

func (g *stubGateway) FetchWebPaymentDetails(ctx context.Context, token string) (*ports.WebPaymentDetails, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return &ports.WebPaymentDetails{
		Result:          g.result(),
		TransactionID:   g.mintTxID(),
		TransactionDate: "01/02/2024 10:30",
	}, nil
}
