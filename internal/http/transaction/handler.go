package transaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/billing/internal/http/respond"
	"github.com/MrJamesThe3rd/billing/internal/invoice"
)

// Handler accepts standalone transactions. Transactions are only stored as
// part of an invoice, so a valid transaction is echoed back unchanged.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

type createTransactionRequest struct {
	ID          *int    `json:"id" validate:"required"`
	Amount      *int64  `json:"amount" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	tx := invoice.Transaction{
		ID:          *req.ID,
		Amount:      *req.Amount,
		Description: *req.Description,
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}
