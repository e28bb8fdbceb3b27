package resources

import (
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"

	apierr "github.com/paysim/paysim/internal/errors"
)

// AccountCreateParams creates a connected account. An explicit id seeds
// a deterministic account for tests.
type AccountCreateParams struct {
	ID              string  `json:"id"`
	Country         string  `json:"country"`
	DefaultCurrency string  `json:"default_currency"`
	Email           *string `json:"email"`
	Type            string  `json:"type"`
}

func (s *Service) newAccount(id string, params *AccountCreateParams) *models.Account {
	country := params.Country
	if country == "" {
		country = "US"
	}
	currency := params.DefaultCurrency
	if currency == "" {
		currency = "usd"
	}
	typ := params.Type
	if typ == "" {
		typ = "standard"
	}
	return &models.Account{
		ID:               id,
		Object:           "account",
		Capabilities:     map[string]any{},
		ChargesEnabled:   true,
		Country:          country,
		Created:          s.now().Unix(),
		DefaultCurrency:  currency,
		DetailsSubmitted: true,
		Email:            params.Email,
		PayoutsEnabled:   true,
		Type:             typ,
	}
}

// CreateAccount registers a connected account under the caller's scope.
func (s *Service) CreateAccount(accountID string, params *AccountCreateParams) (*models.Account, error) {
	id := params.ID
	if id == "" {
		id = newID("acct")
	}
	if s.accounts.Contains(accountID, id) {
		return nil, apierr.Conflict("account")
	}
	account := s.newAccount(id, params)
	s.accounts.Put(accountID, account)
	return account, nil
}

// RetrieveAccount looks an account up in the given scope. It doubles as
// the connected-account access check for the Stripe-Account header.
func (s *Service) RetrieveAccount(scope, id, param string) (*models.Account, error) {
	account, ok := s.accounts.Get(scope, id)
	if !ok {
		return nil, apierr.NotFound("account", id, param)
	}
	return account, nil
}

// ListAccounts pages through the scope's connected accounts.
func (s *Service) ListAccounts(scope string, params store.ListParams) (*models.List[*models.Account], error) {
	page, hasMore, err := store.ApplyListOptions(s.accounts.GetAll(scope), params, resolver(s.accounts, scope, "account"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/accounts", page, hasMore), nil
}

// DeleteAccount removes a connected account.
func (s *Service) DeleteAccount(scope, id string) (*Deleted, error) {
	if _, err := s.RetrieveAccount(scope, id, "id"); err != nil {
		return nil, err
	}
	s.accounts.Remove(scope, id)
	return &Deleted{ID: id, Object: "account", Deleted: true}, nil
}
