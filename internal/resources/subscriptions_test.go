package resources

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/events"
	"github.com/paysim/paysim/internal/models"
)

func TestCreateSubscriptionYearlyPeriod(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	price := seedRecurringPrice(t, svc, account, "year", 120000)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: price.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, "subscription", sub.Object)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, fixedNow.Unix(), sub.CurrentPeriodStart)
	assert.Equal(t, fixedNow.AddDate(1, 0, 0).Unix(), sub.CurrentPeriodEnd,
		"yearly price yields a one-year period")
	assert.NotEmpty(t, sub.LatestInvoice)

	require.Len(t, sub.Items.Data, 1)
	assert.Equal(t, int64(1), sub.Items.Data[0].Quantity)

	require.Len(t, customer.Subscriptions.Data, 1)
	assert.Same(t, sub, customer.Subscriptions.Data[0], "customer list shares the stored record")
}

func TestCreateSubscriptionLongestIntervalWins(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	monthly := seedRecurringPrice(t, svc, account, "month", 1500)
	yearly := seedRecurringPrice(t, svc, account, "year", 12000)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items: []SubscriptionItemParams{
			{Price: monthly.ID},
			{Price: yearly.ID, Quantity: models.Int64(3)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(1, 0, 0).Unix(), sub.CurrentPeriodEnd)
	assert.Equal(t, int64(3), sub.Items.Data[1].Quantity)
}

func TestCreateSubscriptionValidation(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	price := seedRecurringPrice(t, svc, account, "month", 1500)

	var apiErr *apierr.Error

	_, err := svc.CreateSubscription(account, &SubscriptionCreateParams{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "parameter_missing", apiErr.Code)

	_, err = svc.CreateSubscription(account, &SubscriptionCreateParams{Customer: customer.ID})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "parameter_missing", apiErr.Code)

	_, err = svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: "price_missing"}},
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	_, err = svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: "cus_missing",
		Items:    []SubscriptionItemParams{{Price: price.ID}},
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestCreateSubscriptionFromPlan(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	product, err := svc.CreateProduct(account, &ProductCreateParams{Name: "Gold"})
	require.NoError(t, err)
	plan, err := svc.CreatePlan(account, &PlanCreateParams{
		Amount:   amt(900),
		Currency: "usd",
		Interval: "month",
		Product:  product.ID,
	})
	require.NoError(t, err)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Plan: plan.ID}},
	})
	require.NoError(t, err)
	item := sub.Items.Data[0]
	require.NotNil(t, item.Plan)
	require.NotNil(t, item.Price, "a plan item also carries the price view")
	assert.Equal(t, plan.ID, item.Price.ID)
	assert.Equal(t, "recurring", item.Price.Type)
	assert.Equal(t, "month", item.Price.Recurring.Interval)
	assert.Equal(t, fixedNow.AddDate(0, 1, 0).Unix(), sub.CurrentPeriodEnd)
}

func TestUpdateSubscriptionRederivesPeriodEnd(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	monthly := seedRecurringPrice(t, svc, account, "month", 1500)
	yearly := seedRecurringPrice(t, svc, account, "year", 12000)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: monthly.ID}},
	})
	require.NoError(t, err)
	start := sub.CurrentPeriodStart

	// Switching the item to a yearly price stretches the period, anchored
	// on the unchanged period start.
	_, err = svc.UpdateSubscription(account, sub.ID, &SubscriptionUpdateParams{
		Items: []SubscriptionItemParams{{ID: sub.Items.Data[0].ID, Price: yearly.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, start, sub.CurrentPeriodStart)
	assert.Equal(t, time.Unix(start, 0).AddDate(1, 0, 0).Unix(), sub.CurrentPeriodEnd)
}

func TestUpdateSubscriptionAddsItems(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	monthly := seedRecurringPrice(t, svc, account, "month", 1500)
	yearly := seedRecurringPrice(t, svc, account, "year", 12000)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: monthly.ID}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateSubscription(account, sub.ID, &SubscriptionUpdateParams{
		Items: []SubscriptionItemParams{{Price: yearly.ID, Quantity: models.Int64(2)}},
	})
	require.NoError(t, err)
	require.Len(t, sub.Items.Data, 2)
	assert.Equal(t, int64(2), sub.Items.Data[1].Quantity)
	assert.Equal(t, time.Unix(sub.CurrentPeriodStart, 0).AddDate(1, 0, 0).Unix(), sub.CurrentPeriodEnd)
}

func TestCancelSubscription(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	price := seedRecurringPrice(t, svc, account, "month", 1500)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: price.ID}},
	})
	require.NoError(t, err)

	canceled, err := svc.CancelSubscription(account, sub.ID)
	require.NoError(t, err)
	assert.Same(t, sub, canceled)
	assert.Equal(t, "canceled", sub.Status)
	require.NotNil(t, sub.CanceledAt)
	require.NotNil(t, sub.EndedAt)

	// The record stays retrievable after cancellation.
	got, err := svc.RetrieveSubscription(account, sub.ID, "id")
	require.NoError(t, err)
	assert.Equal(t, "canceled", got.Status)
}

func TestListSubscriptionsFilters(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customerA := seedCustomerWithCard(t, svc, account, "tok_visa")
	customerB := seedCustomerWithCard(t, svc, account, "tok_visa")
	monthly := seedRecurringPrice(t, svc, account, "month", 1500)
	yearly := seedRecurringPrice(t, svc, account, "year", 12000)

	subA, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customerA.ID,
		Items:    []SubscriptionItemParams{{Price: monthly.ID}},
	})
	require.NoError(t, err)
	subB, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customerB.ID,
		Items:    []SubscriptionItemParams{{Price: yearly.ID}},
	})
	require.NoError(t, err)
	_, err = svc.CancelSubscription(account, subB.ID)
	require.NoError(t, err)

	byCustomer, err := svc.ListSubscriptions(account, SubscriptionListParams{Customer: customerA.ID})
	require.NoError(t, err)
	require.Len(t, byCustomer.Data, 1)
	assert.Equal(t, subA.ID, byCustomer.Data[0].ID)

	byPrice, err := svc.ListSubscriptions(account, SubscriptionListParams{Price: yearly.ID})
	require.NoError(t, err)
	require.Len(t, byPrice.Data, 1)
	assert.Equal(t, subB.ID, byPrice.Data[0].ID)

	byStatus, err := svc.ListSubscriptions(account, SubscriptionListParams{Status: "canceled"})
	require.NoError(t, err)
	require.Len(t, byStatus.Data, 1)
	assert.Equal(t, subB.ID, byStatus.Data[0].ID)
}

func TestSubscriptionItemOperations(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	monthly := seedRecurringPrice(t, svc, account, "month", 1500)
	yearly := seedRecurringPrice(t, svc, account, "year", 12000)

	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: monthly.ID}},
	})
	require.NoError(t, err)

	item, err := svc.CreateSubscriptionItem(account, &SubscriptionItemCreateParams{
		Price:        yearly.ID,
		Quantity:     models.Int64(2),
		Subscription: sub.ID,
	})
	require.NoError(t, err)
	require.Len(t, sub.Items.Data, 2)
	assert.Equal(t, time.Unix(sub.CurrentPeriodStart, 0).AddDate(1, 0, 0).Unix(), sub.CurrentPeriodEnd)

	got, err := svc.RetrieveSubscriptionItem(account, item.ID, "id")
	require.NoError(t, err)
	assert.Same(t, item, got)

	updated, err := svc.UpdateSubscriptionItem(account, item.ID, &SubscriptionItemUpdateParams{
		Quantity: models.Int64(5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Quantity)

	list, err := svc.ListSubscriptionItems(account, SubscriptionItemListParams{Subscription: sub.ID})
	require.NoError(t, err)
	assert.Len(t, list.Data, 2)

	_, err = svc.ListSubscriptionItems(account, SubscriptionItemListParams{})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "parameter_missing", apiErr.Code)
}

// subscriptionEvents drives the full webhook path for subscription
// lifecycle events: a registered endpoint, a live HTTP receiver and the
// manual scheduler controlling delivery time.
func TestSubscriptionEvents(t *testing.T) {
	svc, sched := newTestService(t)
	account := svc.DefaultAccount()

	var mu sync.Mutex
	var received []events.Envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.True(t, events.VerifySignature(r.Header.Get(events.SignatureHeader), body, "whsec_testsecret"))
		var envelope events.Envelope
		require.NoError(t, json.Unmarshal(body, &envelope))
		mu.Lock()
		received = append(received, envelope)
		mu.Unlock()
	}))
	defer srv.Close()

	_, err := svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		EnabledEvents: []string{"customer.subscription.*", "invoice.paid"},
		Secret:        "whsec_testsecret",
		URL:           srv.URL,
	})
	require.NoError(t, err)

	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	price := seedRecurringPrice(t, svc, account, "month", 1500)
	sub, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: price.ID, Quantity: models.Int64(2)}},
	})
	require.NoError(t, err)

	types := func() []string {
		mu.Lock()
		defer mu.Unlock()
		out := make([]string, 0, len(received))
		for _, e := range received {
			out = append(out, e.Type)
		}
		return out
	}

	sched.Advance(0)
	assert.Equal(t, []string{"customer.subscription.created"}, types())

	sched.Advance(2 * time.Second)
	assert.Equal(t, []string{"customer.subscription.created"}, types(),
		"invoice.paid waits out its full delay")

	sched.Advance(time.Second)
	require.Equal(t, []string{"customer.subscription.created", "invoice.paid"}, types())

	mu.Lock()
	var invoice map[string]any
	require.NoError(t, json.Unmarshal(received[1].Data.Object, &invoice))
	mu.Unlock()
	assert.Equal(t, sub.LatestInvoice, invoice["id"])
	assert.Equal(t, "paid", invoice["status"])
	assert.Equal(t, float64(3000), invoice["amount_due"], "amount is unit_amount times quantity")
	assert.Equal(t, "subscription_create", invoice["billing_reason"])

	_, err = svc.CancelSubscription(account, sub.ID)
	require.NoError(t, err)
	sched.Advance(0)
	assert.Contains(t, types(), "customer.subscription.deleted")
}

func TestSubscriptionSeededIDConflict(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()
	customer := seedCustomerWithCard(t, svc, account, "tok_visa")
	price := seedRecurringPrice(t, svc, account, "month", 1500)

	_, err := svc.CreateSubscription(account, &SubscriptionCreateParams{
		ID:       "sub_seeded",
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: price.ID}},
	})
	require.NoError(t, err)

	_, err = svc.CreateSubscription(account, &SubscriptionCreateParams{
		ID:       "sub_seeded",
		Customer: customer.ID,
		Items:    []SubscriptionItemParams{{Price: price.ID}},
	})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "resource_already_exists", apiErr.Code)
}
