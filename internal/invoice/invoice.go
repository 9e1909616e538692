package invoice

import (
	"errors"
	"math"
	"slices"

	"github.com/MrJamesThe3rd/billing/internal/customer"
)

// Transaction is a billed line. It only exists inside an Invoice; its ID is
// supplied by the caller and is not checked for uniqueness. Amounts may be
// negative to record refunds and credits.
type Transaction struct {
	ID          int
	Amount      int64
	Description string
}

// Invoice bills a snapshot of a customer for an ordered list of transactions.
type Invoice struct {
	ID           int
	Customer     customer.Customer
	Transactions []Transaction
}

// Total is the sum of the invoice's transaction amounts, computed on every call.
func (inv Invoice) Total() int64 {
	return Total(inv.Transactions)
}

// Clone returns a copy that shares no memory with inv.
func (inv Invoice) Clone() Invoice {
	inv.Customer = inv.Customer.Clone()
	inv.Transactions = slices.Clone(inv.Transactions)

	return inv
}

// ErrTotalOverflow is returned when the amounts do not fit in an int64 sum.
var ErrTotalOverflow = errors.New("invoice total overflows int64")

// Total sums the amounts of txs. An empty list totals zero. Callers holding
// unchecked input use Sum; stored invoices never overflow.
func Total(txs []Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		sum += tx.Amount
	}

	return sum
}

// Sum is Total with overflow detection in both directions.
func Sum(txs []Transaction) (int64, error) {
	var sum int64
	for _, tx := range txs {
		if (tx.Amount > 0 && sum > math.MaxInt64-tx.Amount) ||
			(tx.Amount < 0 && sum < math.MinInt64-tx.Amount) {
			return 0, ErrTotalOverflow
		}

		sum += tx.Amount
	}

	return sum, nil
}
