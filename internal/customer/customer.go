package customer

import "github.com/MrJamesThe3rd/billing/internal/validation"

// Customer is a billed party. Customers are immutable once stored.
type Customer struct {
	ID          int
	Name        string
	Description *string
	Email       string
	Age         int
}

// Clone returns a copy that shares no memory with c.
func (c Customer) Clone() Customer {
	if c.Description != nil {
		d := *c.Description
		c.Description = &d
	}

	return c
}

// Validate checks the customer fields that carry rules: a non-empty name and
// a syntactically valid email address.
func (c Customer) Validate() error {
	return validation.Struct(CreateParams{
		Name:        c.Name,
		Description: c.Description,
		Email:       c.Email,
		Age:         c.Age,
	})
}
