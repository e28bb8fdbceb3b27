package resources

import (
	"fmt"
	"time"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// SubscriptionItemParams describes one item inside a subscription
// create or update. An id targets an existing item on update.
type SubscriptionItemParams struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
	Plan     string         `json:"plan"`
	Price    string         `json:"price"`
	Quantity *int64         `json:"quantity"`
	TaxRates []string       `json:"tax_rates"`
}

// TransferDataParams routes part of a subscription to a connected
// account.
type TransferDataParams struct {
	AmountPercent *float64 `json:"amount_percent"`
	Destination   string   `json:"destination"`
}

// SubscriptionCreateParams creates a subscription for a customer.
type SubscriptionCreateParams struct {
	ID                    string                   `json:"id"`
	ApplicationFeePercent *float64                 `json:"application_fee_percent"`
	AutomaticTax          *models.AutomaticTax     `json:"automatic_tax"`
	CancelAtPeriodEnd     *bool                    `json:"cancel_at_period_end"`
	CollectionMethod      string                   `json:"collection_method"`
	Customer              string                   `json:"customer"`
	DaysUntilDue          *int64                   `json:"days_until_due"`
	DefaultPaymentMethod  *string                  `json:"default_payment_method"`
	DefaultSource         *string                  `json:"default_source"`
	DefaultTaxRates       []string                 `json:"default_tax_rates"`
	Items                 []SubscriptionItemParams `json:"items"`
	Metadata              map[string]any           `json:"metadata"`
	TransferData          *TransferDataParams      `json:"transfer_data"`
}

// SubscriptionUpdateParams carries the mutable subscription fields.
// Items with ids update existing items; items without ids are added.
type SubscriptionUpdateParams struct {
	AutomaticTax         *models.AutomaticTax     `json:"automatic_tax"`
	CancelAtPeriodEnd    *bool                    `json:"cancel_at_period_end"`
	CollectionMethod     string                   `json:"collection_method"`
	DaysUntilDue         *int64                   `json:"days_until_due"`
	DefaultPaymentMethod *string                  `json:"default_payment_method"`
	DefaultSource        *string                  `json:"default_source"`
	Items                []SubscriptionItemParams `json:"items"`
	Metadata             map[string]any           `json:"metadata"`
}

// SubscriptionItemUpdateParams carries the mutable item fields.
type SubscriptionItemUpdateParams struct {
	Metadata map[string]any `json:"metadata"`
	Price    string         `json:"price"`
	Quantity *int64         `json:"quantity"`
}

// SubscriptionListParams pages subscriptions with optional filters.
type SubscriptionListParams struct {
	store.ListParams
	Customer string
	Price    string
	Status   string
}

// SubscriptionItemListParams pages one subscription's items.
type SubscriptionItemListParams struct {
	store.ListParams
	Subscription string
}

// intervalRank orders billing intervals so the longest one among a
// subscription's items decides the period length.
var intervalRank = map[string]int{"day": 1, "week": 2, "month": 3, "year": 4}

func addInterval(start time.Time, interval string, count int) time.Time {
	if count < 1 {
		count = 1
	}
	switch interval {
	case "day":
		return start.AddDate(0, 0, count)
	case "week":
		return start.AddDate(0, 0, 7*count)
	case "year":
		return start.AddDate(count, 0, 0)
	default:
		return start.AddDate(0, count, 0)
	}
}

// CreateSubscription builds the subscription and its items, posts the
// created event, and schedules the paid invoice event that follows a
// successful first billing.
func (s *Service) CreateSubscription(accountID string, params *SubscriptionCreateParams) (*models.Subscription, error) {
	if params.Customer == "" {
		return nil, apierr.MissingParam("Missing required param: customer.")
	}
	customer, err := s.RetrieveCustomer(accountID, params.Customer, "customer")
	if err != nil {
		return nil, err
	}
	if len(params.Items) == 0 {
		return nil, apierr.MissingParam("Missing required param: items.")
	}
	id := params.ID
	if id == "" {
		id = newID("sub")
	}
	if s.subs.Contains(accountID, id) {
		return nil, apierr.Conflict("subscription")
	}

	defaultTaxRates, err := s.resolveTaxRates(accountID, params.DefaultTaxRates)
	if err != nil {
		return nil, err
	}
	var transferData *models.TransferData
	if td := params.TransferData; td != nil {
		if _, err := s.RetrieveAccount(accountID, td.Destination, "transfer_data[destination]"); err != nil {
			return nil, err
		}
		transferData = &models.TransferData{AmountPercent: td.AmountPercent, Destination: td.Destination}
	}

	now := s.now()
	start := now.Unix()
	collectionMethod := params.CollectionMethod
	if collectionMethod == "" {
		collectionMethod = "charge_automatically"
	}
	automaticTax := models.AutomaticTax{}
	if params.AutomaticTax != nil {
		automaticTax = *params.AutomaticTax
	}
	cancelAtPeriodEnd := false
	if params.CancelAtPeriodEnd != nil {
		cancelAtPeriodEnd = *params.CancelAtPeriodEnd
	}

	sub := &models.Subscription{
		ID:                    id,
		Object:                "subscription",
		ApplicationFeePercent: params.ApplicationFeePercent,
		AutomaticTax:          automaticTax,
		BillingCycleAnchor:    start,
		CancelAtPeriodEnd:     cancelAtPeriodEnd,
		CollectionMethod:      collectionMethod,
		Created:               start,
		CurrentPeriodStart:    start,
		Customer:              customer.ID,
		DaysUntilDue:          params.DaysUntilDue,
		DefaultPaymentMethod:  params.DefaultPaymentMethod,
		DefaultSource:         params.DefaultSource,
		DefaultTaxRates:       defaultTaxRates,
		Items:                 models.EmptyList[*models.SubscriptionItem](fmt.Sprintf("/v1/subscription_items?subscription=%s", id)),
		LatestInvoice:         newID("in"),
		Metadata:              coerceMetadata(params.Metadata),
		StartDate:             start,
		Status:                "active",
		TransferData:          transferData,
	}
	for _, itemParams := range params.Items {
		item, err := s.buildSubscriptionItem(accountID, id, itemParams)
		if err != nil {
			return nil, err
		}
		s.subItems.Put(accountID, item)
		sub.Items.Data = append(sub.Items.Data, item)
	}
	setCount(sub.Items, len(sub.Items.Data))
	sub.CurrentPeriodEnd = s.periodEnd(now, sub).Unix()

	s.subs.Put(accountID, sub)
	customer.Subscriptions.Data = append(customer.Subscriptions.Data, sub)
	setCount(customer.Subscriptions, len(customer.Subscriptions.Data))

	s.dispatcher.Post(accountID, "customer.subscription.created", sub)
	s.queueInvoicePaid(accountID, sub)
	return sub, nil
}

// buildSubscriptionItem resolves the price (or legacy plan) and builds
// the item record.
func (s *Service) buildSubscriptionItem(accountID, subID string, params SubscriptionItemParams) (*models.SubscriptionItem, error) {
	if params.Price == "" && params.Plan == "" {
		return nil, apierr.MissingParam("Missing required param: items[][price].")
	}
	quantity := int64(1)
	if params.Quantity != nil {
		quantity = *params.Quantity
	}
	taxRates, err := s.resolveTaxRates(accountID, params.TaxRates)
	if err != nil {
		return nil, err
	}
	item := &models.SubscriptionItem{
		ID:           newID("si"),
		Object:       "subscription_item",
		Created:      s.now().Unix(),
		Metadata:     coerceMetadata(params.Metadata),
		Quantity:     quantity,
		Subscription: subID,
		TaxRates:     taxRates,
	}
	if params.Price != "" {
		price, err := s.RetrievePrice(accountID, params.Price, "price")
		if err != nil {
			return nil, err
		}
		item.Price = price
	} else {
		plan, err := s.RetrievePlan(accountID, params.Plan, "plan")
		if err != nil {
			return nil, err
		}
		item.Plan = plan
		item.Price = priceFromPlan(plan)
	}
	return item, nil
}

// priceFromPlan presents a legacy plan in the price shape carried on
// subscription items.
func priceFromPlan(plan *models.Plan) *models.Price {
	return &models.Price{
		ID:            plan.ID,
		Object:        "price",
		Active:        plan.Active,
		BillingScheme: plan.BillingScheme,
		Created:       plan.Created,
		Currency:      plan.Currency,
		Metadata:      plan.Metadata,
		Nickname:      plan.Nickname,
		Product:       plan.Product,
		Recurring: &models.Recurring{
			Interval:      plan.Interval,
			IntervalCount: plan.IntervalCount,
			UsageType:     plan.UsageType,
		},
		TaxBehavior:       "unspecified",
		Type:              "recurring",
		UnitAmount:        plan.Amount,
		UnitAmountDecimal: plan.AmountDecimal,
	}
}

// periodEnd derives current_period_end from the longest recurring
// interval among the subscription's item prices.
func (s *Service) periodEnd(start time.Time, sub *models.Subscription) time.Time {
	interval, count := "month", 1
	best := 0
	for _, item := range sub.Items.Data {
		if item.Price == nil || item.Price.Recurring == nil {
			continue
		}
		r := item.Price.Recurring
		if rank := intervalRank[r.Interval]; rank > best {
			best = rank
			interval = r.Interval
			count = r.IntervalCount
		}
	}
	return addInterval(start, interval, count)
}

func (s *Service) resolveTaxRates(accountID string, ids []string) ([]*models.TaxRate, error) {
	if len(ids) == 0 {
		return []*models.TaxRate{}, nil
	}
	rates := make([]*models.TaxRate, 0, len(ids))
	for _, id := range ids {
		rate, err := s.RetrieveTaxRate(accountID, id, "tax_rates")
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// RetrieveSubscription returns the shared stored record.
func (s *Service) RetrieveSubscription(accountID, id, param string) (*models.Subscription, error) {
	sub, ok := s.subs.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("subscription", id, param)
	}
	return sub, nil
}

// UpdateSubscription mutates the stored record in place, re-deriving
// the period end from the current period start when items change.
func (s *Service) UpdateSubscription(accountID, id string, params *SubscriptionUpdateParams) (*models.Subscription, error) {
	sub, err := s.RetrieveSubscription(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.AutomaticTax != nil {
		sub.AutomaticTax = *params.AutomaticTax
	}
	if params.CancelAtPeriodEnd != nil {
		sub.CancelAtPeriodEnd = *params.CancelAtPeriodEnd
	}
	if params.CollectionMethod != "" {
		sub.CollectionMethod = params.CollectionMethod
	}
	if params.DaysUntilDue != nil {
		sub.DaysUntilDue = params.DaysUntilDue
	}
	if params.DefaultPaymentMethod != nil {
		sub.DefaultPaymentMethod = params.DefaultPaymentMethod
	}
	if params.DefaultSource != nil {
		sub.DefaultSource = params.DefaultSource
	}
	if params.Metadata != nil {
		sub.Metadata = coerceMetadata(params.Metadata)
	}

	for _, itemParams := range params.Items {
		if itemParams.ID == "" {
			item, err := s.buildSubscriptionItem(accountID, sub.ID, itemParams)
			if err != nil {
				return nil, err
			}
			s.subItems.Put(accountID, item)
			sub.Items.Data = append(sub.Items.Data, item)
			continue
		}
		if err := s.applyItemUpdate(accountID, sub, itemParams); err != nil {
			return nil, err
		}
	}
	setCount(sub.Items, len(sub.Items.Data))
	if len(params.Items) > 0 {
		sub.CurrentPeriodEnd = s.periodEnd(time.Unix(sub.CurrentPeriodStart, 0), sub).Unix()
	}

	s.dispatcher.Post(accountID, "customer.subscription.updated", sub)
	s.queueInvoicePaid(accountID, sub)
	return sub, nil
}

func (s *Service) applyItemUpdate(accountID string, sub *models.Subscription, params SubscriptionItemParams) error {
	item, ok := s.subItems.Get(accountID, params.ID)
	if !ok || item.Subscription != sub.ID {
		return apierr.NotFound("subscription_item", params.ID, "items")
	}
	if params.Price != "" {
		price, err := s.RetrievePrice(accountID, params.Price, "price")
		if err != nil {
			return err
		}
		item.Price = price
		item.Plan = nil
	}
	if params.Quantity != nil {
		item.Quantity = *params.Quantity
	}
	if params.Metadata != nil {
		item.Metadata = coerceMetadata(params.Metadata)
	}
	return nil
}

// CancelSubscription marks the subscription canceled and posts the
// deleted event. The record stays retrievable.
func (s *Service) CancelSubscription(accountID, id string) (*models.Subscription, error) {
	sub, err := s.RetrieveSubscription(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	now := s.now().Unix()
	sub.Status = "canceled"
	sub.CanceledAt = models.Int64(now)
	sub.EndedAt = models.Int64(now)
	s.dispatcher.Post(accountID, "customer.subscription.deleted", sub)
	return sub, nil
}

// ListSubscriptions pages subscriptions in creation order.
func (s *Service) ListSubscriptions(accountID string, params SubscriptionListParams) (*models.List[*models.Subscription], error) {
	records := s.subs.GetAll(accountID)
	if params.Customer != "" || params.Price != "" || params.Status != "" {
		filtered := make([]*models.Subscription, 0, len(records))
		for _, sub := range records {
			if params.Customer != "" && sub.Customer != params.Customer {
				continue
			}
			if params.Status != "" && sub.Status != params.Status {
				continue
			}
			if params.Price != "" && !subscriptionHasPrice(sub, params.Price) {
				continue
			}
			filtered = append(filtered, sub)
		}
		records = filtered
	}
	page, hasMore, err := store.ApplyListOptions(records, params.ListParams, resolver(s.subs, accountID, "subscription"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/subscriptions", page, hasMore), nil
}

func subscriptionHasPrice(sub *models.Subscription, priceID string) bool {
	for _, item := range sub.Items.Data {
		if item.Price != nil && item.Price.ID == priceID {
			return true
		}
	}
	return false
}

// SubscriptionItemCreateParams adds an item to an existing subscription.
type SubscriptionItemCreateParams struct {
	Metadata     map[string]any `json:"metadata"`
	Plan         string         `json:"plan"`
	Price        string         `json:"price"`
	Quantity     *int64         `json:"quantity"`
	Subscription string         `json:"subscription"`
	TaxRates     []string       `json:"tax_rates"`
}

// CreateSubscriptionItem appends an item to a subscription and
// re-derives its period end.
func (s *Service) CreateSubscriptionItem(accountID string, params *SubscriptionItemCreateParams) (*models.SubscriptionItem, error) {
	if params.Subscription == "" {
		return nil, apierr.MissingParam("Missing required param: subscription.")
	}
	sub, err := s.RetrieveSubscription(accountID, params.Subscription, "subscription")
	if err != nil {
		return nil, err
	}
	item, err := s.buildSubscriptionItem(accountID, sub.ID, SubscriptionItemParams{
		Metadata: params.Metadata,
		Plan:     params.Plan,
		Price:    params.Price,
		Quantity: params.Quantity,
		TaxRates: params.TaxRates,
	})
	if err != nil {
		return nil, err
	}
	s.subItems.Put(accountID, item)
	sub.Items.Data = append(sub.Items.Data, item)
	setCount(sub.Items, len(sub.Items.Data))
	sub.CurrentPeriodEnd = s.periodEnd(time.Unix(sub.CurrentPeriodStart, 0), sub).Unix()
	s.dispatcher.Post(accountID, "customer.subscription.updated", sub)
	return item, nil
}

// RetrieveSubscriptionItem returns the stored item.
func (s *Service) RetrieveSubscriptionItem(accountID, id, param string) (*models.SubscriptionItem, error) {
	item, ok := s.subItems.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("subscription_item", id, param)
	}
	return item, nil
}

// UpdateSubscriptionItem mutates one item and re-derives the parent
// subscription's period end from its unchanged period start.
func (s *Service) UpdateSubscriptionItem(accountID, id string, params *SubscriptionItemUpdateParams) (*models.SubscriptionItem, error) {
	item, err := s.RetrieveSubscriptionItem(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	sub, err := s.RetrieveSubscription(accountID, item.Subscription, "subscription")
	if err != nil {
		return nil, err
	}
	if err := s.applyItemUpdate(accountID, sub, SubscriptionItemParams{
		ID:       id,
		Metadata: params.Metadata,
		Price:    params.Price,
		Quantity: params.Quantity,
	}); err != nil {
		return nil, err
	}
	sub.CurrentPeriodEnd = s.periodEnd(time.Unix(sub.CurrentPeriodStart, 0), sub).Unix()
	s.dispatcher.Post(accountID, "customer.subscription.updated", sub)
	return item, nil
}

// ListSubscriptionItems pages one subscription's items.
func (s *Service) ListSubscriptionItems(accountID string, params SubscriptionItemListParams) (*models.List[*models.SubscriptionItem], error) {
	if params.Subscription == "" {
		return nil, apierr.MissingParam("Missing required param: subscription.")
	}
	sub, err := s.RetrieveSubscription(accountID, params.Subscription, "subscription")
	if err != nil {
		return nil, err
	}
	page, hasMore, err := store.ApplyListOptions(sub.Items.Data, params.ListParams, resolver(s.subItems, accountID, "subscription_item"))
	if err != nil {
		return nil, err
	}
	return models.NewList(sub.Items.URL, page, hasMore), nil
}
