package invoice

import (
	"github.com/MrJamesThe3rd/billing/internal/invoice"
)

type customerResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Email       string  `json:"email"`
	Age         int     `json:"age"`
}

type transactionResponse struct {
	ID          int    `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type invoiceResponse struct {
	ID           int                   `json:"id"`
	Customer     customerResponse      `json:"customer"`
	Transactions []transactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	txs := make([]transactionResponse, len(inv.Transactions))
	for i, tx := range inv.Transactions {
		txs[i] = transactionResponse{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Description: tx.Description,
		}
	}

	return invoiceResponse{
		ID: inv.ID,
		Customer: customerResponse{
			ID:          inv.Customer.ID,
			Name:        inv.Customer.Name,
			Description: inv.Customer.Description,
			Email:       inv.Customer.Email,
			Age:         inv.Customer.Age,
		},
		Transactions: txs,
		Total:        inv.Total(),
	}
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
