package greeting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/billing/internal/http/respond"
)

type Handler struct {
	message string
}

func NewHandler(message string) *Handler {
	return &Handler{message: message}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.root)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, messageResponse{Message: h.message})
}
