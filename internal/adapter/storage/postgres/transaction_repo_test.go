package postgres

import (
	"context"
	"testing"
	"time"

	"card-payment-service/internal/core/domain"
	"card-payment-service/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction() *domain.Transaction {
	walletID := "wallet-7"
	return &domain.Transaction{
		Token:         "20240201103000-abc",
		WalletID:      &walletID,
		Amount:        decimal.RequireFromString("12.34"),
		TransactionID: "TX-1",
		Status:        domain.StatusCreated,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumns() []string {
	return []string{"token", "wallet_id", "date", "amount", "transaction_id", "result_code", "order_kind", "order_id", "status", "created_at"}
}

func transactionRow(txn *domain.Transaction) *pgxmock.Rows {
	var orderKind *string
	var orderID *int64
	if txn.Order != nil {
		orderKind = &txn.Order.Kind
		orderID = &txn.Order.ID
	}
	return pgxmock.NewRows(transactionColumns()).AddRow(
		txn.Token, txn.WalletID, txn.Date, txn.Amount,
		txn.TransactionID, txn.ResultCode, orderKind, orderID,
		txn.Status, txn.CreatedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction()

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.Token, txn.WalletID, txn.Date, txn.Amount,
			txn.TransactionID, txn.ResultCode, (*string)(nil), (*int64)(nil),
			txn.Status, txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_Create_TokenCollision(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction()

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.Token, txn.WalletID, txn.Date, txn.Amount,
			txn.TransactionID, txn.ResultCode, (*string)(nil), (*int64)(nil),
			txn.Status, txn.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "transactions_pkey"})

	err = repo.Create(context.Background(), txn)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_001", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction()
	txn.Order = &domain.OrderRef{Kind: "order", ID: 42}

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE token").
		WithArgs(txn.Token).
		WillReturnRows(transactionRow(txn))

	result, err := repo.GetByToken(context.Background(), txn.Token)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.Token, result.Token)
	assert.True(t, txn.Amount.Equal(result.Amount))
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(42), result.Order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByToken_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE token").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	result, err := repo.GetByToken(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction()
	when := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)
	txn.Date = &when
	txn.ResultCode = "00000"
	txn.Status = domain.StatusConfirmed

	mock.ExpectExec("UPDATE transactions SET").
		WithArgs(txn.Date, txn.TransactionID, txn.ResultCode, txn.Status, txn.Token).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE wallet_id").
		WithArgs("wallet-7").
		WillReturnRows(transactionRow(txn))

	txns, err := repo.ListByWallet(context.Background(), "wallet-7")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.Token, txns[0].Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ClearWalletRef(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET wallet_id = NULL").
		WithArgs("wallet-7").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.ClearWalletRef(context.Background(), tx, "wallet-7")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
