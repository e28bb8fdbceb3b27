package resources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paysim/paysim/internal/events"
	"github.com/paysim/paysim/internal/models"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *events.ManualScheduler) {
	t.Helper()
	sched := events.NewManualScheduler()
	svc := New(
		WithScheduler(sched),
		WithNow(func() time.Time { return fixedNow }),
	)
	return svc, sched
}

func amt(v int64) *Amount {
	a := Amount(v)
	return &a
}

// seedRecurringPrice creates a product and a recurring price on it.
func seedRecurringPrice(t *testing.T, svc *Service, account, interval string, unitAmount int64) *models.Price {
	t.Helper()
	product, err := svc.CreateProduct(account, &ProductCreateParams{Name: "Pro Plan"})
	require.NoError(t, err)
	price, err := svc.CreatePrice(account, &PriceCreateParams{
		Currency:   "usd",
		Product:    product.ID,
		UnitAmount: amt(unitAmount),
		Recurring:  &RecurringParams{Interval: interval},
	})
	require.NoError(t, err)
	return price
}

// seedCustomerWithCard creates a customer holding one card source.
func seedCustomerWithCard(t *testing.T, svc *Service, account, source string) *models.Customer {
	t.Helper()
	customer, err := svc.CreateCustomer(account, &CustomerCreateParams{
		Email:  models.String("jenny@example.com"),
		Source: source,
	})
	require.NoError(t, err)
	return customer
}
