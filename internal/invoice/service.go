package invoice

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	// CreateInvoice stores inv and sets its ID.
	CreateInvoice(ctx context.Context, inv *Invoice) error
	ListInvoices(ctx context.Context) ([]*Invoice, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Customer     customer.Customer
	Transactions []Transaction
}

// Create stores a new invoice. The customer and transactions are copied, so
// later changes to params do not reach the stored invoice.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if err := params.Customer.Validate(); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, verr.Nest("customer")
		}

		return nil, err
	}

	if _, err := Sum(params.Transactions); err != nil {
		return nil, &validation.Error{Violations: validation.Violations{"transactions": "total_overflow"}}
	}

	inv := &Invoice{
		Customer:     params.Customer.Clone(),
		Transactions: slices.Clone(params.Transactions),
	}
	if inv.Transactions == nil {
		inv.Transactions = []Transaction{}
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	invoices, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return invoices, nil
}
