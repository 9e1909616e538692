package invoice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/http/respond"
	"github.com/MrJamesThe3rd/billing/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

type customerPayload struct {
	ID          *int    `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description"`
	Email       *string `json:"email" validate:"required"`
	Age         *int    `json:"age" validate:"required"`
}

type transactionPayload struct {
	ID          *int    `json:"id" validate:"required"`
	Amount      *int64  `json:"amount" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// A client-supplied total is ignored; the total is always derived.
type createInvoiceRequest struct {
	Customer     *customerPayload     `json:"customer" validate:"required"`
	Transactions []transactionPayload `json:"transactions" validate:"required,dive"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	txs := make([]invoice.Transaction, len(req.Transactions))
	for i, t := range req.Transactions {
		txs[i] = invoice.Transaction{
			ID:          *t.ID,
			Amount:      *t.Amount,
			Description: *t.Description,
		}
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		Customer: customer.Customer{
			ID:          *req.Customer.ID,
			Name:        *req.Customer.Name,
			Description: req.Customer.Description,
			Email:       *req.Customer.Email,
			Age:         *req.Customer.Age,
		},
		Transactions: txs,
	})
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context())
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(invoices))
}
