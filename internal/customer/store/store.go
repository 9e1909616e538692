package store

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/memstore"
)

type Store struct {
	customers *memstore.Store[customer.Customer]
}

func New() *Store {
	return &Store{customers: memstore.New[customer.Customer]()}
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	_, err := s.customers.Append(ctx, func(id int) customer.Customer {
		c.ID = id
		return c.Clone()
	})
	if err != nil {
		return fmt.Errorf("appending customer: %w", err)
	}

	return nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	all, err := s.customers.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading customers: %w", err)
	}

	out := make([]*customer.Customer, len(all))
	for i := range all {
		c := all[i].Clone()
		out[i] = &c
	}

	return out, nil
}
