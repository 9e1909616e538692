package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/billing/internal/clock"
	"github.com/MrJamesThe3rd/billing/internal/config"
	"github.com/MrJamesThe3rd/billing/internal/customer"
	customerStore "github.com/MrJamesThe3rd/billing/internal/customer/store"
	billingHttp "github.com/MrJamesThe3rd/billing/internal/http"
	customerHandler "github.com/MrJamesThe3rd/billing/internal/http/customer"
	"github.com/MrJamesThe3rd/billing/internal/http/greeting"
	invoiceHandler "github.com/MrJamesThe3rd/billing/internal/http/invoice"
	"github.com/MrJamesThe3rd/billing/internal/http/ratelimit"
	timeHandler "github.com/MrJamesThe3rd/billing/internal/http/timezone"
	txHandler "github.com/MrJamesThe3rd/billing/internal/http/transaction"
	"github.com/MrJamesThe3rd/billing/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/billing/internal/invoice/store"
	"github.com/MrJamesThe3rd/billing/internal/timezone"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		customerService = customer.NewService(customerStore.New())
		invoiceService  = invoice.NewService(invoiceStore.New())
		resolver        = timezone.NewResolver(clock.System{})
	)

	var (
		greetingH    = greeting.NewHandler(cfg.App.Greeting)
		timeH        = timeHandler.NewHandler(resolver)
		customerH    = customerHandler.NewHandler(customerService)
		transactionH = txHandler.NewHandler()
		invoiceH     = invoiceHandler.NewHandler(invoiceService)
	)

	opts := billingHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	}

	if cfg.RateLimit.RPS > 0 {
		limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartJanitor(ctx, time.Minute)

		opts.RateLimit = limiter.Middleware
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           billingHttp.New(opts, greetingH, timeH, customerH, transactionH, invoiceH),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
