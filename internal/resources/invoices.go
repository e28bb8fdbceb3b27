package resources

import (
	"fmt"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
)

// UpcomingInvoice synthesizes the next invoice for a subscription.
// Nothing is stored; each call derives a fresh preview from the
// subscription's current items.
func (s *Service) UpcomingInvoice(accountID, subscriptionID string) (*models.Invoice, error) {
	if subscriptionID == "" {
		return nil, apierr.MissingParam("Missing required param: subscription.")
	}
	sub, err := s.RetrieveSubscription(accountID, subscriptionID, "subscription")
	if err != nil {
		return nil, err
	}
	customer, err := s.RetrieveCustomer(accountID, sub.Customer, "customer")
	if err != nil {
		return nil, err
	}
	inv := s.buildInvoice(accountID, customer, sub, false)
	return inv, nil
}

// queueInvoicePaid snapshots the subscription's first invoice in its
// paid state and schedules the invoice.paid event. The snapshot is taken
// now, so later subscription edits do not leak into the delivery.
func (s *Service) queueInvoicePaid(accountID string, sub *models.Subscription) {
	customer, ok := s.customers.Get(accountID, sub.Customer)
	if !ok {
		return
	}
	inv := s.buildInvoice(accountID, customer, sub, true)
	inv.ID = sub.LatestInvoice
	s.dispatcher.PostAfter(invoicePaidDelay, accountID, "invoice.paid", inv)
}

// buildInvoice derives an invoice from a subscription's items: one line
// per item, amount_due equal to the sum of unit_amount times quantity.
func (s *Service) buildInvoice(accountID string, customer *models.Customer, sub *models.Subscription, paid bool) *models.Invoice {
	now := s.now().Unix()
	id := newID("in")

	var total int64
	currency := "usd"
	lines := make([]*models.InvoiceLineItem, 0, len(sub.Items.Data))
	for _, item := range sub.Items.Data {
		if item.Price == nil {
			continue
		}
		amount := item.Price.UnitAmount * item.Quantity
		total += amount
		currency = item.Price.Currency
		taxRates := item.TaxRates
		if taxRates == nil {
			taxRates = []*models.TaxRate{}
		}
		lines = append(lines, &models.InvoiceLineItem{
			ID:              newID("il"),
			Object:          "line_item",
			Amount:          amount,
			Currency:        item.Price.Currency,
			Description:     models.String(fmt.Sprintf("%d × %s", item.Quantity, item.Price.Product)),
			DiscountAmounts: []string{},
			Discountable:    true,
			Discounts:       []string{},
			InvoiceItem:     newID("ii"),
			Metadata:        models.Metadata{},
			Period: models.InvoicePeriod{
				Start: sub.CurrentPeriodStart,
				End:   sub.CurrentPeriodEnd,
			},
			Plan:         item.Plan,
			Price:        item.Price,
			Quantity:     item.Quantity,
			Subscription: sub.ID,
			TaxAmounts:   []string{},
			TaxRates:     taxRates,
			Type:         "subscription",
		})
	}

	accountName := accountID
	accountCountry := "US"
	if account, ok := s.accounts.Get(s.defaultAccount, accountID); ok {
		accountCountry = account.Country
	}
	defaultTaxRates := sub.DefaultTaxRates
	if defaultTaxRates == nil {
		defaultTaxRates = []*models.TaxRate{}
	}

	inv := &models.Invoice{
		ID:                   id,
		Object:               "invoice",
		AccountCountry:       accountCountry,
		AccountName:          accountName,
		AccountTaxIDs:        []string{},
		AmountDue:            total,
		AmountRemaining:      total,
		AutomaticTax:         sub.AutomaticTax,
		BillingReason:        "upcoming",
		CollectionMethod:     sub.CollectionMethod,
		Created:              now,
		Currency:             currency,
		Customer:             customer.ID,
		CustomerAddress:      customer.Address,
		CustomerEmail:        customer.Email,
		CustomerName:         customer.Name,
		CustomerPhone:        customer.Phone,
		CustomerShipping:     customer.Shipping,
		CustomerTaxExempt:    customer.TaxExempt,
		CustomerTaxIDs:       []string{},
		DefaultPaymentMethod: sub.DefaultPaymentMethod,
		DefaultSource:        sub.DefaultSource,
		DefaultTaxRates:      defaultTaxRates,
		Discounts:            []string{},
		Lines:                models.NewList(fmt.Sprintf("/v1/invoices/%s/lines", id), lines, false),
		Metadata:             models.Metadata{},
		PaymentSettings:      models.InvoicePaymentSettings{PaymentMethodTypes: []string{}},
		PeriodStart:          sub.CurrentPeriodStart,
		PeriodEnd:            sub.CurrentPeriodEnd,
		StartingBalance:      customer.Balance,
		Status:               "draft",
		Subscription:         sub,
		Subtotal:             total,
		Total:                total,
		TotalDiscountAmounts: []string{},
		TotalTaxAmounts:      []string{},
		TransferData:         sub.TransferData,
	}
	setCount(inv.Lines, len(lines))

	if paid {
		inv.AmountPaid = total
		inv.AmountRemaining = 0
		inv.AttemptCount = 1
		inv.Attempted = true
		inv.BillingReason = "subscription_create"
		inv.Number = models.String(fmt.Sprintf("%s-%04d", customer.InvoicePrefix, customer.NextInvoiceSequence))
		customer.NextInvoiceSequence++
		inv.Paid = true
		inv.Status = "paid"
		inv.StatusTransitions = models.InvoiceStatusTransitions{
			FinalizedAt: models.Int64(now),
			PaidAt:      models.Int64(now),
		}
	}
	return inv
}
