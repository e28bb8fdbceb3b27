package resources

import (
	"fmt"
	"strconv"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

var validIntervals = map[string]bool{"day": true, "week": true, "month": true, "year": true}

// PlanCreateParams creates a legacy billing plan against a product.
type PlanCreateParams struct {
	ID              string         `json:"id"`
	Active          *bool          `json:"active"`
	Amount          *Amount        `json:"amount"`
	Currency        string         `json:"currency"`
	Interval        string         `json:"interval"`
	IntervalCount   *int           `json:"interval_count"`
	Metadata        map[string]any `json:"metadata"`
	Nickname        *string        `json:"nickname"`
	Product         string         `json:"product"`
	TrialPeriodDays *int64         `json:"trial_period_days"`
	UsageType       string         `json:"usage_type"`
}

// CreatePlan validates the interval and product linkage and stores the
// plan.
func (s *Service) CreatePlan(accountID string, params *PlanCreateParams) (*models.Plan, error) {
	if params.Amount == nil {
		return nil, apierr.MissingParam("Missing required param: amount.")
	}
	if params.Currency == "" {
		return nil, apierr.MissingParam("Missing required param: currency.")
	}
	if params.Interval == "" {
		return nil, apierr.MissingParam("Missing required param: interval.")
	}
	if params.Product == "" {
		return nil, apierr.MissingParam("Missing required param: product.")
	}
	if err := verifyCurrency(params.Currency); err != nil {
		return nil, err
	}
	if !validIntervals[params.Interval] {
		return nil, apierr.Validation("", fmt.Sprintf("Invalid interval: must be one of day, week, month, or year, got %s", params.Interval), "interval")
	}
	if _, err := s.RetrieveProduct(accountID, params.Product, "product"); err != nil {
		return nil, err
	}
	id := params.ID
	if id == "" {
		id = newID("plan")
	}
	if s.plans.Contains(accountID, id) {
		return nil, apierr.Conflict("plan")
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	intervalCount := 1
	if params.IntervalCount != nil {
		intervalCount = *params.IntervalCount
	}
	usageType := params.UsageType
	if usageType == "" {
		usageType = "licensed"
	}
	amount := int64(*params.Amount)
	plan := &models.Plan{
		ID:              id,
		Object:          "plan",
		Active:          active,
		Amount:          amount,
		AmountDecimal:   strconv.FormatInt(amount, 10),
		BillingScheme:   "per_unit",
		Created:         s.now().Unix(),
		Currency:        params.Currency,
		Interval:        params.Interval,
		IntervalCount:   intervalCount,
		Metadata:        coerceMetadata(params.Metadata),
		Nickname:        params.Nickname,
		Product:         params.Product,
		TrialPeriodDays: params.TrialPeriodDays,
		UsageType:       usageType,
	}
	s.plans.Put(accountID, plan)
	return plan, nil
}

// RetrievePlan returns the stored plan.
func (s *Service) RetrievePlan(accountID, id, param string) (*models.Plan, error) {
	plan, ok := s.plans.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("plan", id, param)
	}
	return plan, nil
}

// DeletePlan removes the plan.
func (s *Service) DeletePlan(accountID, id string) (*Deleted, error) {
	if _, err := s.RetrievePlan(accountID, id, "id"); err != nil {
		return nil, err
	}
	s.plans.Remove(accountID, id)
	return &Deleted{ID: id, Object: "plan", Deleted: true}, nil
}

// ListPlans pages the account's plans in creation order.
func (s *Service) ListPlans(accountID string, params store.ListParams) (*models.List[*models.Plan], error) {
	page, hasMore, err := store.ApplyListOptions(s.plans.GetAll(accountID), params, resolver(s.plans, accountID, "plan"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/plans", page, hasMore), nil
}
