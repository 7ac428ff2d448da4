package ports

import (
	"context"

	"card-payment-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Create fails with a duplicate-key error when the wallet id is taken; the
// constraint is enforced atomically at write time by the database.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	Update(ctx context.Context, wallet *domain.Wallet) error
	GetByWalletID(ctx context.Context, walletID string) (*domain.Wallet, error)
	// Delete removes a wallet row. It runs inside a transaction together with
	// ClearWalletRef so referencing transactions are detached, never dropped.
	Delete(ctx context.Context, tx pgx.Tx, walletID string) error
}

// TransactionRepository defines persistence operations for transactions.
// Rows are append-then-reconcile: Create fails with a duplicate-key error on
// token collision, Update persists the reconciled fields, nothing deletes.
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	GetByToken(ctx context.Context, token string) (*domain.Transaction, error)
	Update(ctx context.Context, txn *domain.Transaction) error
	ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error)
	// ClearWalletRef nulls the wallet reference on all transactions of a
	// wallet about to be removed (on-delete: set null, made explicit).
	ClearWalletRef(ctx context.Context, tx pgx.Tx, walletID string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
