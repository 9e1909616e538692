package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/http/respond"
)

type Handler struct {
	svc *customer.Service
}

func NewHandler(svc *customer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

// Pointers tell an absent field apart from a zero value.
type createCustomerRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description"`
	Email       *string `json:"email" validate:"required"`
	Age         *int    `json:"age" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), customer.CreateParams{
		Name:        *req.Name,
		Description: req.Description,
		Email:       *req.Email,
		Age:         *req.Age,
	})
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(customers))
}
