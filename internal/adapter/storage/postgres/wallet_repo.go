package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-payment-service/internal/core/domain"
	"card-payment-service/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (wallet_id, first_name, last_name, card_number, card_type, card_expiry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		w.WalletID, w.FirstName, w.LastName, w.CardNumber,
		w.CardType, w.CardExpiry, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrDuplicateKey("wallet", err)
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing wallet.
func (r *WalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET first_name = $1, last_name = $2, card_number = $3, card_type = $4, card_expiry = $5, updated_at = $6
		WHERE wallet_id = $7`

	tag, err := r.pool.Exec(ctx, query,
		w.FirstName, w.LastName, w.CardNumber, w.CardType,
		w.CardExpiry, w.UpdatedAt, w.WalletID,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("wallet")
	}
	return nil
}

// GetByWalletID fetches a wallet by its identifier.
func (r *WalletRepo) GetByWalletID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT wallet_id, first_name, last_name, card_number, card_type, card_expiry, created_at, updated_at
		FROM wallets WHERE wallet_id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&w.WalletID, &w.FirstName, &w.LastName, &w.CardNumber,
		&w.CardType, &w.CardExpiry, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// Delete removes a wallet row within a database transaction.
func (r *WalletRepo) Delete(ctx context.Context, tx pgx.Tx, walletID string) error {
	query := `DELETE FROM wallets WHERE wallet_id = $1`

	tag, err := tx.Exec(ctx, query, walletID)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("wallet")
	}
	return nil
}
