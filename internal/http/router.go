package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/billing/internal/http/customer"
	"github.com/MrJamesThe3rd/billing/internal/http/greeting"
	"github.com/MrJamesThe3rd/billing/internal/http/invoice"
	"github.com/MrJamesThe3rd/billing/internal/http/timezone"
	"github.com/MrJamesThe3rd/billing/internal/http/transaction"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
	// RateLimit is applied to every route when set.
	RateLimit func(http.Handler) http.Handler
}

func New(
	opts Options,
	greetingV1 *greeting.Handler,
	timeV1 *timezone.Handler,
	customersV1 *customer.Handler,
	transactionsV1 *transaction.Handler,
	invoicesV1 *invoice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	if opts.RateLimit != nil {
		router.Use(opts.RateLimit)
	}

	router.Group(greetingV1.Routes)
	router.Route("/get_time", timeV1.Routes)

	router.Route("/customers", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		customersV1.Routes(r)
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		transactionsV1.Routes(r)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		invoicesV1.Routes(r)
	})

	return router
}
