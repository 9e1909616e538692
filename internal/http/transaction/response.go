package transaction

import "github.com/MrJamesThe3rd/billing/internal/invoice"

type transactionResponse struct {
	ID          int    `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func toResponse(tx invoice.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
	}
}
