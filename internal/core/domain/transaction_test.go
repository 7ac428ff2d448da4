package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"12.34", 1234},
		{"1", 100},
		{"0", 0},
		{"0.01", 1},
		{"999999.99", 99999999},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, MinorUnits(d))
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	txn := &Transaction{
		Token:  "tok-1",
		Amount: decimal.RequireFromString("20.00"),
		Status: StatusStarted,
	}

	applied, err := txn.Validate(GatewayConfirmation{
		ResultCode:    "00000",
		TransactionID: "T1",
		Date:          "01/02/2024 10:30",
	})
	require.NoError(t, err)
	assert.True(t, applied)

	assert.Equal(t, "00000", txn.ResultCode)
	assert.Equal(t, "T1", txn.TransactionID)
	assert.Equal(t, StatusConfirmed, txn.Status)
	require.NotNil(t, txn.Date)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC), *txn.Date)
}

func TestTransaction_Validate_Idempotent(t *testing.T) {
	txn := &Transaction{Token: "tok-1", Status: StatusStarted}

	applied, err := txn.Validate(GatewayConfirmation{
		ResultCode: "00000", TransactionID: "T1", Date: "01/02/2024 10:30",
	})
	require.NoError(t, err)
	require.True(t, applied)

	// A second confirmation must not overwrite the reconciled fields.
	applied, err = txn.Validate(GatewayConfirmation{
		ResultCode: "01100", TransactionID: "T2", Date: "02/02/2024 11:45",
	})
	require.NoError(t, err)
	assert.False(t, applied)

	assert.Equal(t, "T1", txn.TransactionID)
	assert.Equal(t, "00000", txn.ResultCode)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC), *txn.Date)
}

func TestTransaction_Validate_BadDate(t *testing.T) {
	txn := &Transaction{Token: "tok-1"}
	applied, err := txn.Validate(GatewayConfirmation{
		ResultCode: "00000", TransactionID: "T1", Date: "2024-02-01T10:30:00Z",
	})
	require.Error(t, err)
	assert.False(t, applied)
	assert.Empty(t, txn.TransactionID, "failed reconciliation must not partially apply")
}

func TestTransaction_IsTerminal(t *testing.T) {
	assert.False(t, (&Transaction{Status: StatusCreated}).IsTerminal())
	assert.False(t, (&Transaction{Status: StatusStarted}).IsTerminal())
	assert.True(t, (&Transaction{Status: StatusConfirmed}).IsTerminal())
}

func TestNewToken_UniqueAndTimestamped(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := NewToken()
		assert.Len(t, tok, 36)
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
