package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/customer/store"
)

func TestStore_CreateCustomer_AssignsSequentialIDs(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	first := &customer.Customer{Name: "Ana", Email: "ana@example.com", Age: 31}
	second := &customer.Customer{Name: "Luis", Email: "luis@example.com", Age: 45}

	require.NoError(t, s.CreateCustomer(ctx, first))
	require.NoError(t, s.CreateCustomer(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestStore_ListCustomers_InsertionOrder(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	for _, name := range []string{"Zoe", "Ana", "Mia"} {
		require.NoError(t, s.CreateCustomer(ctx, &customer.Customer{Name: name, Email: "x@example.com"}))
	}

	got, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Zoe", got[0].Name)
	assert.Equal(t, "Ana", got[1].Name)
	assert.Equal(t, "Mia", got[2].Name)
}

func TestStore_ListCustomers_Empty(t *testing.T) {
	got, err := store.New().ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_StoredCustomerIsDetached(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	desc := "wholesale"
	c := &customer.Customer{Name: "Ana", Email: "ana@example.com", Description: &desc}
	require.NoError(t, s.CreateCustomer(ctx, c))

	c.Name = "changed"
	desc = "changed"

	got, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
	require.NotNil(t, got[0].Description)
	assert.Equal(t, "wholesale", *got[0].Description)

	got[0].Name = "also changed"

	again, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again[0].Name)
}
