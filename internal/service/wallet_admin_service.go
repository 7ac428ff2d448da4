package service

import (
	"context"
	"fmt"

	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"
	"card-payment-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletAdminServiceImpl implements ports.WalletAdminService over the local
// mirror and the transaction ledger. It never talks to the gateway.
type WalletAdminServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewWalletAdminService creates a WalletAdminServiceImpl.
func NewWalletAdminService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletAdminServiceImpl {
	return &WalletAdminServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// GetLocalWallet returns the locally mirrored wallet, or a not-found error.
func (s *WalletAdminServiceImpl) GetLocalWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetByWalletID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return w, nil
}

// RemoveWallet deletes the local wallet row. Transactions that reference the
// wallet are detached first so the ledger keeps its history; both steps run
// in one database transaction.
func (s *WalletAdminServiceImpl) RemoveWallet(ctx context.Context, walletID string) error {
	existing, err := s.walletRepo.GetByWalletID(ctx, walletID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.ErrNotFound("wallet")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.ClearWalletRef(ctx, dbTx, walletID); err != nil {
		return apperror.InternalError(fmt.Errorf("detach transactions: %w", err))
	}
	if err := s.walletRepo.Delete(ctx, dbTx, walletID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete wallet: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("wallet_id", walletID).Msg("wallet removed, transactions detached")
	return nil
}

// GetTransaction returns a transaction by its token.
func (s *WalletAdminServiceImpl) GetTransaction(ctx context.Context, token string) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return txn, nil
}

// ListTransactions returns all transactions recorded against a wallet, newest
// first.
func (s *WalletAdminServiceImpl) ListTransactions(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	return s.txRepo.ListByWallet(ctx, walletID)
}
