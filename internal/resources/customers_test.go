package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

func TestCreateCustomerWithSource(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	customer, err := svc.CreateCustomer(account, &CustomerCreateParams{
		Email:  models.String("jenny@example.com"),
		Source: "tok_visa",
	})
	require.NoError(t, err)
	assert.Equal(t, "customer", customer.Object)
	assert.Len(t, customer.InvoicePrefix, 8)
	assert.Equal(t, int64(1), customer.NextInvoiceSequence)

	require.Len(t, customer.Sources.Data, 1)
	card := customer.Sources.Data[0]
	assert.Equal(t, "Visa", card.Brand)
	assert.Equal(t, "4242", card.Last4)
	require.NotNil(t, card.Customer)
	assert.Equal(t, customer.ID, *card.Customer)
	require.NotNil(t, customer.DefaultSource)
	assert.Equal(t, card.ID, *customer.DefaultSource, "first card becomes the default source")
}

func TestCreateCustomerBadSourceRollsBack(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	_, err := svc.CreateCustomer(account, &CustomerCreateParams{
		ID:     "cus_seeded",
		Source: "tok_bogus",
	})
	require.Error(t, err)

	_, err = svc.RetrieveCustomer(account, "cus_seeded", "id")
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status, "failed source creation must not leave the customer behind")
}

func TestCreateCustomerSeededIDConflict(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	_, err := svc.CreateCustomer(account, &CustomerCreateParams{ID: "cus_seeded"})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(account, &CustomerCreateParams{ID: "cus_seeded"})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "resource_already_exists", apiErr.Code)
}

func TestUpdateCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	firstCard := customer.Sources.Data[0]

	updated, err := svc.UpdateCustomer(account, customer.ID, &CustomerUpdateParams{
		Name:   models.String("Jenny Rosen"),
		Source: "tok_mastercard",
	})
	require.NoError(t, err)
	assert.Same(t, customer, updated)
	require.Len(t, customer.Sources.Data, 2)
	require.NotNil(t, customer.DefaultSource)
	assert.NotEqual(t, firstCard.ID, *customer.DefaultSource, "a new source token becomes the default")

	// default_source must name a linked card.
	_, err = svc.UpdateCustomer(account, customer.ID, &CustomerUpdateParams{
		DefaultSource: models.String("card_unknown"),
	})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	_, err = svc.UpdateCustomer(account, customer.ID, &CustomerUpdateParams{
		DefaultSource: models.String(firstCard.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, firstCard.ID, *customer.DefaultSource)
}

func TestDeleteCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")

	deleted, err := svc.DeleteCustomer(account, customer.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.Equal(t, customer.ID, deleted.ID)

	_, err = svc.RetrieveCustomer(account, customer.ID, "id")
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestListCustomersByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	_, err := svc.CreateCustomer(account, &CustomerCreateParams{Email: models.String("a@example.com")})
	require.NoError(t, err)
	wanted, err := svc.CreateCustomer(account, &CustomerCreateParams{Email: models.String("b@example.com")})
	require.NoError(t, err)

	list, err := svc.ListCustomers(account, CustomerListParams{Email: "b@example.com"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, wanted.ID, list.Data[0].ID)
}

func TestCustomerCardLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	first := customer.Sources.Data[0]

	second, err := svc.CreateCustomerCard(account, customer.ID, &CardCreateParams{Source: "tok_amex"})
	require.NoError(t, err)
	assert.Equal(t, "American Express", second.Brand)
	assert.Equal(t, first.ID, *customer.DefaultSource, "adding a card does not change the default")

	got, err := svc.RetrieveCustomerCard(account, customer.ID, second.ID, "id")
	require.NoError(t, err)
	assert.Same(t, second, got)

	list, err := svc.ListCustomerCards(account, customer.ID, store.ListParams{})
	require.NoError(t, err)
	assert.Len(t, list.Data, 2)

	// Deleting the default promotes the oldest remaining card.
	_, err = svc.DeleteCustomerCard(account, customer.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, customer.Sources.Data, 1)
	require.NotNil(t, customer.DefaultSource)
	assert.Equal(t, second.ID, *customer.DefaultSource)

	_, err = svc.DeleteCustomerCard(account, customer.ID, second.ID)
	require.NoError(t, err)
	assert.Nil(t, customer.DefaultSource)
	assert.Empty(t, customer.Sources.Data)

	_, err = svc.DeleteCustomerCard(account, customer.ID, second.ID)
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
