package view

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const storeTimeout = 5 * time.Second

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an integer amount with thousands separators.
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d", amount)
}

// FormatOptional returns "-" for a nil or empty string.
func FormatOptional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}

	return *s
}

// StoreCtx returns a context with a standard timeout for service calls.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
