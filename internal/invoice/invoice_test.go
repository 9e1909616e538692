package invoice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/invoice"
)

func TestTotal(t *testing.T) {
	type testCase struct {
		name string
		txs  []invoice.Transaction
		want int64
	}

	tests := []testCase{
		{name: "Nil", txs: nil, want: 0},
		{name: "Empty", txs: []invoice.Transaction{}, want: 0},
		{name: "Single", txs: []invoice.Transaction{{Amount: 42}}, want: 42},
		{
			name: "Several",
			txs:  []invoice.Transaction{{Amount: 100}, {Amount: 250}, {Amount: 5}},
			want: 355,
		},
		{
			name: "Refund",
			txs:  []invoice.Transaction{{Amount: 1000}, {Amount: -300}},
			want: 700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.Total(tt.txs))
		})
	}
}

func TestSum(t *testing.T) {
	type testCase struct {
		name    string
		txs     []invoice.Transaction
		want    int64
		wantErr error
	}

	tests := []testCase{
		{name: "Empty", txs: nil, want: 0},
		{
			name: "Refund",
			txs:  []invoice.Transaction{{Amount: 1000}, {Amount: -300}},
			want: 700,
		},
		{
			name: "AtMax",
			txs:  []invoice.Transaction{{Amount: math.MaxInt64 - 1}, {Amount: 1}},
			want: math.MaxInt64,
		},
		{
			name: "AtMin",
			txs:  []invoice.Transaction{{Amount: math.MinInt64 + 1}, {Amount: -1}},
			want: math.MinInt64,
		},
		{
			name: "BackInRange",
			txs:  []invoice.Transaction{{Amount: math.MaxInt64}, {Amount: -10}, {Amount: 10}},
			want: math.MaxInt64,
		},
		{
			name:    "OverflowsUp",
			txs:     []invoice.Transaction{{Amount: math.MaxInt64}, {Amount: 1}},
			wantErr: invoice.ErrTotalOverflow,
		},
		{
			name:    "OverflowsDown",
			txs:     []invoice.Transaction{{Amount: math.MinInt64}, {Amount: -1}},
			wantErr: invoice.ErrTotalOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := invoice.Sum(tt.txs)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, invoice.Total(tt.txs))
		})
	}
}

func TestInvoice_TotalFollowsTransactions(t *testing.T) {
	inv := invoice.Invoice{
		ID:           1,
		Customer:     customer.Customer{ID: 1, Name: "Ana"},
		Transactions: []invoice.Transaction{{Amount: 100}, {Amount: 250}},
	}
	assert.Equal(t, int64(350), inv.Total())

	inv.Transactions = append(inv.Transactions, invoice.Transaction{Amount: 50})
	assert.Equal(t, int64(400), inv.Total())
}

func TestInvoice_Clone(t *testing.T) {
	desc := "vip"
	inv := invoice.Invoice{
		ID:           1,
		Customer:     customer.Customer{ID: 1, Name: "Ana", Description: &desc},
		Transactions: []invoice.Transaction{{ID: 1, Amount: 100}},
	}

	cp := inv.Clone()
	cp.Transactions[0].Amount = 1
	*cp.Customer.Description = "changed"

	assert.Equal(t, int64(100), inv.Transactions[0].Amount)
	assert.Equal(t, "vip", desc)
}
