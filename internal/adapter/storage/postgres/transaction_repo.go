package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-payment-service/internal/core/domain"
	"card-payment-service/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a new transaction row.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (token, wallet_id, date, amount, transaction_id, result_code, order_kind, order_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var orderKind *string
	var orderID *int64
	if t.Order != nil {
		orderKind = &t.Order.Kind
		orderID = &t.Order.ID
	}

	_, err := r.pool.Exec(ctx, query,
		t.Token, t.WalletID, t.Date, t.Amount,
		t.TransactionID, t.ResultCode, orderKind, orderID,
		t.Status, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrDuplicateKey("transaction", err)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByToken fetches a transaction by its token.
func (r *TransactionRepo) GetByToken(ctx context.Context, token string) (*domain.Transaction, error) {
	query := `SELECT token, wallet_id, date, amount, transaction_id, result_code, order_kind, order_id, status, created_at
		FROM transactions WHERE token = $1`

	return scanTransaction(r.pool.QueryRow(ctx, query, token))
}

// Update persists the reconciled fields of a transaction.
func (r *TransactionRepo) Update(ctx context.Context, t *domain.Transaction) error {
	query := `UPDATE transactions SET date = $1, transaction_id = $2, result_code = $3, status = $4 WHERE token = $5`

	tag, err := r.pool.Exec(ctx, query,
		t.Date, t.TransactionID, t.ResultCode, t.Status, t.Token,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("transaction")
	}
	return nil
}

// ListByWallet fetches all transactions recorded against a wallet, newest
// first.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	query := `SELECT token, wallet_id, date, amount, transaction_id, result_code, order_kind, order_id, status, created_at
		FROM transactions WHERE wallet_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}

// ClearWalletRef detaches all transactions from a wallet within a database
// transaction.
func (r *TransactionRepo) ClearWalletRef(ctx context.Context, tx pgx.Tx, walletID string) error {
	query := `UPDATE transactions SET wallet_id = NULL WHERE wallet_id = $1`

	if _, err := tx.Exec(ctx, query, walletID); err != nil {
		return fmt.Errorf("clear wallet ref: %w", err)
	}
	return nil
}

// scanTransaction scans a single row into a Transaction, mapping no-rows to
// nil.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t, err := scanTransactionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var orderKind *string
	var orderID *int64
	err := row.Scan(
		&t.Token, &t.WalletID, &t.Date, &t.Amount,
		&t.TransactionID, &t.ResultCode, &orderKind, &orderID,
		&t.Status, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if orderKind != nil && orderID != nil {
		t.Order = &domain.OrderRef{Kind: *orderKind, ID: *orderID}
	}
	return t, nil
}
