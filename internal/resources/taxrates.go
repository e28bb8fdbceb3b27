package resources

import (
	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// TaxRateCreateParams creates a named percentage tax rate.
type TaxRateCreateParams struct {
	ID           string         `json:"id"`
	Active       *bool          `json:"active"`
	Country      *string        `json:"country"`
	Description  *string        `json:"description"`
	DisplayName  string         `json:"display_name"`
	Inclusive    *bool          `json:"inclusive"`
	Jurisdiction *string        `json:"jurisdiction"`
	Metadata     map[string]any `json:"metadata"`
	Percentage   *float64       `json:"percentage"`
	State        *string        `json:"state"`
	TaxType      *string        `json:"tax_type"`
}

// TaxRateUpdateParams carries the mutable tax rate fields.
type TaxRateUpdateParams struct {
	Active       *bool          `json:"active"`
	Description  *string        `json:"description"`
	DisplayName  *string        `json:"display_name"`
	Jurisdiction *string        `json:"jurisdiction"`
	Metadata     map[string]any `json:"metadata"`
}

// CreateTaxRate stores a tax rate.
func (s *Service) CreateTaxRate(accountID string, params *TaxRateCreateParams) (*models.TaxRate, error) {
	if params.DisplayName == "" {
		return nil, apierr.MissingParam("Missing required param: display_name.")
	}
	if params.Inclusive == nil {
		return nil, apierr.MissingParam("Missing required param: inclusive.")
	}
	if params.Percentage == nil {
		return nil, apierr.MissingParam("Missing required param: percentage.")
	}
	id := params.ID
	if id == "" {
		id = newID("txr")
	}
	if s.taxRates.Contains(accountID, id) {
		return nil, apierr.Conflict("tax_rate")
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	rate := &models.TaxRate{
		ID:           id,
		Object:       "tax_rate",
		Active:       active,
		Country:      params.Country,
		Created:      s.now().Unix(),
		Description:  params.Description,
		DisplayName:  params.DisplayName,
		Inclusive:    *params.Inclusive,
		Jurisdiction: params.Jurisdiction,
		Metadata:     coerceMetadata(params.Metadata),
		Percentage:   *params.Percentage,
		State:        params.State,
		TaxType:      params.TaxType,
	}
	s.taxRates.Put(accountID, rate)
	return rate, nil
}

// RetrieveTaxRate returns the stored tax rate.
func (s *Service) RetrieveTaxRate(accountID, id, param string) (*models.TaxRate, error) {
	rate, ok := s.taxRates.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("tax_rate", id, param)
	}
	return rate, nil
}

// UpdateTaxRate mutates the stored record in place.
func (s *Service) UpdateTaxRate(accountID, id string, params *TaxRateUpdateParams) (*models.TaxRate, error) {
	rate, err := s.RetrieveTaxRate(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.Active != nil {
		rate.Active = *params.Active
	}
	if params.Description != nil {
		rate.Description = params.Description
	}
	if params.DisplayName != nil {
		rate.DisplayName = *params.DisplayName
	}
	if params.Jurisdiction != nil {
		rate.Jurisdiction = params.Jurisdiction
	}
	if params.Metadata != nil {
		rate.Metadata = coerceMetadata(params.Metadata)
	}
	return rate, nil
}

// ListTaxRates pages the account's tax rates in creation order.
func (s *Service) ListTaxRates(accountID string, params store.ListParams) (*models.List[*models.TaxRate], error) {
	page, hasMore, err := store.ApplyListOptions(s.taxRates.GetAll(accountID), params, resolver(s.taxRates, accountID, "tax_rate"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/tax_rates", page, hasMore), nil
}
