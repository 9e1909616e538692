package timezone

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/billing/internal/http/respond"
	"github.com/MrJamesThe3rd/billing/internal/timezone"
)

type Handler struct {
	resolver *timezone.Resolver
}

func NewHandler(resolver *timezone.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{iso_code}", h.getTime)
}

type timeResponse struct {
	Time     string `json:"time"`
	ISOCode  string `json:"iso_code"`
	Timezone string `json:"timezone"`
}

func (h *Handler) getTime(w http.ResponseWriter, r *http.Request) {
	use12Hour, err := parseFlag(r.URL.Query().Get("format_12hr"))
	if err != nil {
		respond.BadRequest(w, fmt.Errorf("invalid format_12hr: %w", err))
		return
	}

	res, err := h.resolver.Resolve(chi.URLParam(r, "iso_code"), use12Hour)
	if err != nil {
		switch {
		case errors.Is(err, timezone.ErrUnsupportedCode):
			respond.Error(w, http.StatusBadRequest, "invalid iso code", nil)
		case errors.Is(err, timezone.ErrZoneNotFound):
			slog.Error("timezone lookup failed", "error", err)
			respond.Error(w, http.StatusInternalServerError, "zone not found", nil)
		default:
			respond.Failure(w, r, err)
		}

		return
	}

	respond.JSON(w, http.StatusOK, timeResponse{
		Time:     res.Time,
		ISOCode:  res.ISOCode,
		Timezone: res.Timezone,
	})
}

// parseFlag accepts the usual boolean spellings; an absent flag is false.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "":
		return false, nil
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}

	return strconv.ParseBool(s)
}
