package resources

import (
	"fmt"
	"strconv"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// RecurringParams sets a price's billing interval.
type RecurringParams struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
	UsageType     string `json:"usage_type"`
}

// PriceCreateParams creates a one-time or recurring price for a product.
type PriceCreateParams struct {
	ID          string           `json:"id"`
	Active      *bool            `json:"active"`
	Currency    string           `json:"currency"`
	LookupKey   *string          `json:"lookup_key"`
	Metadata    map[string]any   `json:"metadata"`
	Nickname    *string          `json:"nickname"`
	Product     string           `json:"product"`
	Recurring   *RecurringParams `json:"recurring"`
	TaxBehavior string           `json:"tax_behavior"`
	UnitAmount  *Amount          `json:"unit_amount"`
}

// PriceUpdateParams carries the mutable price fields.
type PriceUpdateParams struct {
	Active      *bool          `json:"active"`
	LookupKey   *string        `json:"lookup_key"`
	Metadata    map[string]any `json:"metadata"`
	Nickname    *string        `json:"nickname"`
	TaxBehavior *string        `json:"tax_behavior"`
}

// PriceListParams pages prices with optional product and type filters.
type PriceListParams struct {
	store.ListParams
	Product string
	Type    string
}

// CreatePrice stores a price. Supplying recurring makes it a recurring
// price; otherwise it is one_time.
func (s *Service) CreatePrice(accountID string, params *PriceCreateParams) (*models.Price, error) {
	if params.Currency == "" {
		return nil, apierr.MissingParam("Missing required param: currency.")
	}
	if params.UnitAmount == nil {
		return nil, apierr.MissingParam("Missing required param: unit_amount.")
	}
	if params.Product == "" {
		return nil, apierr.MissingParam("Missing required param: product.")
	}
	if err := verifyCurrency(params.Currency); err != nil {
		return nil, err
	}
	if _, err := s.RetrieveProduct(accountID, params.Product, "product"); err != nil {
		return nil, err
	}
	id := params.ID
	if id == "" {
		id = newID("price")
	}
	if s.prices.Contains(accountID, id) {
		return nil, apierr.Conflict("price")
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	taxBehavior := params.TaxBehavior
	if taxBehavior == "" {
		taxBehavior = "unspecified"
	}
	amount := int64(*params.UnitAmount)
	price := &models.Price{
		ID:                id,
		Object:            "price",
		Active:            active,
		BillingScheme:     "per_unit",
		Created:           s.now().Unix(),
		Currency:          params.Currency,
		LookupKey:         params.LookupKey,
		Metadata:          coerceMetadata(params.Metadata),
		Nickname:          params.Nickname,
		Product:           params.Product,
		TaxBehavior:       taxBehavior,
		Type:              "one_time",
		UnitAmount:        amount,
		UnitAmountDecimal: strconv.FormatInt(amount, 10),
	}
	if r := params.Recurring; r != nil {
		if !validIntervals[r.Interval] {
			return nil, apierr.Validation("", fmt.Sprintf("Invalid interval: must be one of day, week, month, or year, got %s", r.Interval), "recurring[interval]")
		}
		count := r.IntervalCount
		if count < 1 {
			count = 1
		}
		usageType := r.UsageType
		if usageType == "" {
			usageType = "licensed"
		}
		price.Recurring = &models.Recurring{
			Interval:      r.Interval,
			IntervalCount: count,
			UsageType:     usageType,
		}
		price.Type = "recurring"
	}
	s.prices.Put(accountID, price)
	return price, nil
}

// RetrievePrice returns the stored price.
func (s *Service) RetrievePrice(accountID, id, param string) (*models.Price, error) {
	price, ok := s.prices.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("price", id, param)
	}
	return price, nil
}

// UpdatePrice mutates the stored record in place.
func (s *Service) UpdatePrice(accountID, id string, params *PriceUpdateParams) (*models.Price, error) {
	price, err := s.RetrievePrice(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.Active != nil {
		price.Active = *params.Active
	}
	if params.LookupKey != nil {
		price.LookupKey = params.LookupKey
	}
	if params.Metadata != nil {
		price.Metadata = coerceMetadata(params.Metadata)
	}
	if params.Nickname != nil {
		price.Nickname = params.Nickname
	}
	if params.TaxBehavior != nil {
		price.TaxBehavior = *params.TaxBehavior
	}
	return price, nil
}

// ListPrices pages the account's prices in creation order.
func (s *Service) ListPrices(accountID string, params PriceListParams) (*models.List[*models.Price], error) {
	records := s.prices.GetAll(accountID)
	if params.Product != "" || params.Type != "" {
		filtered := make([]*models.Price, 0, len(records))
		for _, p := range records {
			if params.Product != "" && p.Product != params.Product {
				continue
			}
			if params.Type != "" && p.Type != params.Type {
				continue
			}
			filtered = append(filtered, p)
		}
		records = filtered
	}
	page, hasMore, err := store.ApplyListOptions(records, params.ListParams, resolver(s.prices, accountID, "price"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/prices", page, hasMore), nil
}
