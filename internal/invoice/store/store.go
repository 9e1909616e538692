package store

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/billing/internal/invoice"
	"github.com/MrJamesThe3rd/billing/internal/memstore"
)

type Store struct {
	invoices *memstore.Store[invoice.Invoice]
}

func New() *Store {
	return &Store{invoices: memstore.New[invoice.Invoice]()}
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	_, err := s.invoices.Append(ctx, func(id int) invoice.Invoice {
		inv.ID = id
		return inv.Clone()
	})
	if err != nil {
		return fmt.Errorf("appending invoice: %w", err)
	}

	return nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	all, err := s.invoices.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading invoices: %w", err)
	}

	out := make([]*invoice.Invoice, len(all))
	for i := range all {
		inv := all[i].Clone()
		out[i] = &inv
	}

	return out, nil
}
