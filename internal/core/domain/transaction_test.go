package domain_test

import (
	"testing"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Signed(t *testing.T) {
	amount := decimal.NewFromInt(250)

	tests := []struct {
		name string
		typ  domain.TransactionType
		want decimal.Decimal
	}{
		{name: "deposit is positive", typ: domain.Deposit, want: amount},
		{name: "withdrawal is negative", typ: domain.Withdrawal, want: amount.Neg()},
		{name: "payment is negative", typ: domain.Payment, want: amount.Neg()},
		{name: "transfer is negative", typ: domain.Transfer, want: amount.Neg()},
		{name: "unrecognized type is neutral", typ: "REFUND", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{Type: tt.typ, Amount: amount}
			got := txn.Signed()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
