package resources

import (
	"fmt"
	"strings"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
	"github.com/paysim/paysim/internal/token"
)

// CustomerCreateParams creates a customer, optionally attaching an
// initial card source from a token.
type CustomerCreateParams struct {
	ID          string           `json:"id"`
	Balance     *Amount          `json:"balance"`
	Description *string          `json:"description"`
	Email       *string          `json:"email"`
	Metadata    map[string]any   `json:"metadata"`
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	Shipping    *models.Shipping `json:"shipping"`
	Source      string           `json:"source"`
}

// CustomerUpdateParams carries the mutable customer fields.
type CustomerUpdateParams struct {
	Balance       *Amount          `json:"balance"`
	DefaultSource *string          `json:"default_source"`
	Description   *string          `json:"description"`
	Email         *string          `json:"email"`
	Metadata      map[string]any   `json:"metadata"`
	Name          *string          `json:"name"`
	Phone         *string          `json:"phone"`
	Shipping      *models.Shipping `json:"shipping"`
	Source        string           `json:"source"`
}

// CardCreateParams attaches a tokenized card to a customer.
type CardCreateParams struct {
	Source string `json:"source"`
}

// CustomerListParams pages customers with an optional email filter.
type CustomerListParams struct {
	store.ListParams
	Email string
}

// CreateCustomer stores a customer. The embedded sources and
// subscriptions lists are live views shared with the per-kind stores.
func (s *Service) CreateCustomer(accountID string, params *CustomerCreateParams) (*models.Customer, error) {
	id := params.ID
	if id == "" {
		id = newID("cus")
	}
	if s.customers.Contains(accountID, id) {
		return nil, apierr.Conflict("customer")
	}

	var balance int64
	if params.Balance != nil {
		balance = int64(*params.Balance)
	}
	customer := &models.Customer{
		ID:                  id,
		Object:              "customer",
		Balance:             balance,
		Created:             s.now().Unix(),
		Description:         params.Description,
		Email:               params.Email,
		InvoicePrefix:       strings.ToUpper(fingerprint()[:8]),
		Metadata:            coerceMetadata(params.Metadata),
		NextInvoiceSequence: 1,
		PreferredLocales:    []string{},
		Shipping:            params.Shipping,
		Name:                params.Name,
		Phone:               params.Phone,
		Sources:             models.EmptyList[*models.Card](fmt.Sprintf("/v1/customers/%s/sources", id)),
		Subscriptions:       models.EmptyList[*models.Subscription](fmt.Sprintf("/v1/customers/%s/subscriptions", id)),
		TaxExempt:           "none",
	}
	setCount(customer.Sources, 0)
	setCount(customer.Subscriptions, 0)
	s.customers.Put(accountID, customer)

	if params.Source != "" {
		if _, err := s.CreateCustomerCard(accountID, id, &CardCreateParams{Source: params.Source}); err != nil {
			s.customers.Remove(accountID, id)
			return nil, err
		}
	}
	return customer, nil
}

// RetrieveCustomer returns the shared stored record.
func (s *Service) RetrieveCustomer(accountID, id, param string) (*models.Customer, error) {
	customer, ok := s.customers.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("customer", id, param)
	}
	return customer, nil
}

// UpdateCustomer mutates the stored record in place. A new source token
// becomes the default source.
func (s *Service) UpdateCustomer(accountID, id string, params *CustomerUpdateParams) (*models.Customer, error) {
	customer, err := s.RetrieveCustomer(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.Balance != nil {
		customer.Balance = int64(*params.Balance)
	}
	if params.Description != nil {
		customer.Description = params.Description
	}
	if params.Email != nil {
		customer.Email = params.Email
	}
	if params.Metadata != nil {
		customer.Metadata = coerceMetadata(params.Metadata)
	}
	if params.Name != nil {
		customer.Name = params.Name
	}
	if params.Phone != nil {
		customer.Phone = params.Phone
	}
	if params.Shipping != nil {
		customer.Shipping = params.Shipping
	}
	if params.Source != "" {
		card, err := s.CreateCustomerCard(accountID, id, &CardCreateParams{Source: params.Source})
		if err != nil {
			return nil, err
		}
		customer.DefaultSource = models.String(card.ID)
	}
	if params.DefaultSource != nil {
		if _, err := s.RetrieveCustomerCard(accountID, id, *params.DefaultSource, "default_source"); err != nil {
			return nil, err
		}
		customer.DefaultSource = params.DefaultSource
	}
	return customer, nil
}

// DeleteCustomer removes the customer. Charges and subscriptions that
// reference it keep their ids; only the customer record goes away.
func (s *Service) DeleteCustomer(accountID, id string) (*Deleted, error) {
	if _, err := s.RetrieveCustomer(accountID, id, "id"); err != nil {
		return nil, err
	}
	s.customers.Remove(accountID, id)
	return &Deleted{ID: id, Object: "customer", Deleted: true}, nil
}

// ListCustomers pages the account's customers in creation order.
func (s *Service) ListCustomers(accountID string, params CustomerListParams) (*models.List[*models.Customer], error) {
	records := s.customers.GetAll(accountID)
	if params.Email != "" {
		filtered := make([]*models.Customer, 0, len(records))
		for _, c := range records {
			if c.Email != nil && *c.Email == params.Email {
				filtered = append(filtered, c)
			}
		}
		records = filtered
	}
	page, hasMore, err := store.ApplyListOptions(records, params.ListParams, resolver(s.customers, accountID, "customer"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/customers", page, hasMore), nil
}

// CreateCustomerCard attaches the card a source token stands for. The
// first card becomes the customer's default source.
func (s *Service) CreateCustomerCard(accountID, customerID string, params *CardCreateParams) (*models.Card, error) {
	customer, err := s.RetrieveCustomer(accountID, customerID, "customer")
	if err != nil {
		return nil, err
	}
	if params.Source == "" {
		return nil, apierr.MissingParam("Missing required param: source.")
	}
	tok := token.Effective(params.Source)
	card, err := s.cardFromToken(accountID, tok)
	if err != nil {
		return nil, err
	}
	card.Customer = models.String(customer.ID)
	customer.Sources.Data = append(customer.Sources.Data, card)
	setCount(customer.Sources, len(customer.Sources.Data))
	if customer.DefaultSource == nil {
		customer.DefaultSource = models.String(card.ID)
	}
	return card, nil
}

// RetrieveCustomerCard finds a card among the customer's sources.
func (s *Service) RetrieveCustomerCard(accountID, customerID, cardID, param string) (*models.Card, error) {
	customer, err := s.RetrieveCustomer(accountID, customerID, "customer")
	if err != nil {
		return nil, err
	}
	for _, card := range customer.Sources.Data {
		if card.ID == cardID {
			return card, nil
		}
	}
	return nil, apierr.NotFound("source", cardID, param)
}

// ListCustomerCards pages a customer's sources.
func (s *Service) ListCustomerCards(accountID, customerID string, params store.ListParams) (*models.List[*models.Card], error) {
	customer, err := s.RetrieveCustomer(accountID, customerID, "customer")
	if err != nil {
		return nil, err
	}
	page, hasMore, err := store.ApplyListOptions(customer.Sources.Data, params, resolver(s.cards, accountID, "source"))
	if err != nil {
		return nil, err
	}
	return models.NewList(customer.Sources.URL, page, hasMore), nil
}

// DeleteCustomerCard detaches a card. If it was the default source the
// oldest remaining card takes over.
func (s *Service) DeleteCustomerCard(accountID, customerID, cardID string) (*Deleted, error) {
	customer, err := s.RetrieveCustomer(accountID, customerID, "customer")
	if err != nil {
		return nil, err
	}
	found := false
	for i, card := range customer.Sources.Data {
		if card.ID == cardID {
			customer.Sources.Data = append(customer.Sources.Data[:i], customer.Sources.Data[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, apierr.NotFound("source", cardID, "id")
	}
	setCount(customer.Sources, len(customer.Sources.Data))
	if customer.DefaultSource != nil && *customer.DefaultSource == cardID {
		customer.DefaultSource = nil
		if len(customer.Sources.Data) > 0 {
			customer.DefaultSource = models.String(customer.Sources.Data[0].ID)
		}
	}
	s.cards.Remove(accountID, cardID)
	return &Deleted{ID: cardID, Object: "card", Deleted: true}, nil
}
