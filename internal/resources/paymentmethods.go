package resources

import (
	"fmt"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
	"github.com/paysim/paysim/internal/token"
)

// PaymentMethodCardParams is the card sub-object accepted at creation.
// A token takes precedence over raw card numbers.
type PaymentMethodCardParams struct {
	CVC      string `json:"cvc"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	Number   string `json:"number"`
	Token    string `json:"token"`
}

// PaymentMethodCreateParams creates a card payment method.
type PaymentMethodCreateParams struct {
	BillingDetails *models.BillingDetails   `json:"billing_details"`
	Card           *PaymentMethodCardParams `json:"card"`
	Metadata       map[string]any           `json:"metadata"`
	Type           string                   `json:"type"`
}

// PaymentMethodAttachParams names the customer to attach to.
type PaymentMethodAttachParams struct {
	Customer string `json:"customer"`
}

// PaymentMethodListParams pages payment methods for one customer.
type PaymentMethodListParams struct {
	store.ListParams
	Customer string
	Type     string
}

// CreatePaymentMethod stores a detached payment method. Card details
// default to a generic test card when not supplied.
func (s *Service) CreatePaymentMethod(accountID string, params *PaymentMethodCreateParams) (*models.PaymentMethod, error) {
	if params.Type == "" {
		return nil, apierr.MissingParam("Missing required param: type.")
	}
	if params.Type != "card" {
		return nil, apierr.Validation("", fmt.Sprintf("Invalid type: must be card, got %s", params.Type), "type")
	}

	card := models.PaymentMethodCard{
		Brand:             "visa",
		Country:           "IE",
		ExpMonth:          12,
		ExpYear:           2034,
		Fingerprint:       fingerprint(),
		Funding:           "credit",
		Last4:             "3220",
		Networks:          models.PaymentMethodCardNetworks{Available: []string{"visa"}},
		ThreeDSecureUsage: models.ThreeDSecureUsage{Supported: true},
	}
	if p := params.Card; p != nil {
		if p.Token != "" {
			outcome, ok := token.Lookup(token.Effective(p.Token))
			if !ok || outcome.Precharge != nil {
				return nil, apierr.Validation("", fmt.Sprintf("Unrecognized card token: %s", p.Token), "card[token]")
			}
			card.Brand = token.NetworkForBrand(outcome.Card.Brand)
			card.Country = outcome.Card.Country
			card.Last4 = outcome.Card.Last4
			card.Networks.Available = []string{card.Brand}
		} else if p.Number != "" {
			if len(p.Number) >= 4 {
				card.Last4 = p.Number[len(p.Number)-4:]
			}
			if p.ExpMonth != 0 {
				card.ExpMonth = p.ExpMonth
			}
			if p.ExpYear != 0 {
				card.ExpYear = p.ExpYear
			}
		}
	}

	billing := models.BillingDetails{}
	if params.BillingDetails != nil {
		billing = *params.BillingDetails
	}
	pm := &models.PaymentMethod{
		ID:             newID("pm"),
		Object:         "payment_method",
		BillingDetails: billing,
		Card:           &card,
		Created:        s.now().Unix(),
		Metadata:       coerceMetadata(params.Metadata),
		Type:           "card",
	}
	s.pms.Put(accountID, pm)
	return pm, nil
}

// RetrievePaymentMethod returns the stored payment method.
func (s *Service) RetrievePaymentMethod(accountID, id, param string) (*models.PaymentMethod, error) {
	pm, ok := s.pms.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("payment_method", id, param)
	}
	return pm, nil
}

// AttachPaymentMethod binds a detached payment method to a customer.
func (s *Service) AttachPaymentMethod(accountID, id string, params *PaymentMethodAttachParams) (*models.PaymentMethod, error) {
	pm, err := s.RetrievePaymentMethod(accountID, id, "payment_method")
	if err != nil {
		return nil, err
	}
	if params.Customer == "" {
		return nil, apierr.MissingParam("Missing required param: customer.")
	}
	customer, err := s.RetrieveCustomer(accountID, params.Customer, "customer")
	if err != nil {
		return nil, err
	}
	if pm.Customer != nil {
		return nil, apierr.Validation("",
			fmt.Sprintf("The payment method you provided has already been attached to a customer: %s", id), "payment_method")
	}
	pm.Customer = models.String(customer.ID)
	return pm, nil
}

// DetachPaymentMethod unbinds a payment method from its customer.
func (s *Service) DetachPaymentMethod(accountID, id string) (*models.PaymentMethod, error) {
	pm, err := s.RetrievePaymentMethod(accountID, id, "payment_method")
	if err != nil {
		return nil, err
	}
	if pm.Customer == nil {
		return nil, apierr.Validation("",
			fmt.Sprintf("The payment method you provided is not attached to a customer: %s", id), "payment_method")
	}
	pm.Customer = nil
	return pm, nil
}

// ListPaymentMethods pages one customer's payment methods of one type.
func (s *Service) ListPaymentMethods(accountID string, params PaymentMethodListParams) (*models.List[*models.PaymentMethod], error) {
	if params.Customer == "" {
		return nil, apierr.MissingParam("Missing required param: customer.")
	}
	if params.Type == "" {
		return nil, apierr.MissingParam("Missing required param: type.")
	}
	records := s.pms.GetAll(accountID)
	filtered := make([]*models.PaymentMethod, 0, len(records))
	for _, pm := range records {
		if pm.Type != params.Type {
			continue
		}
		if pm.Customer == nil || *pm.Customer != params.Customer {
			continue
		}
		filtered = append(filtered, pm)
	}
	page, hasMore, err := store.ApplyListOptions(filtered, params.ListParams, resolver(s.pms, accountID, "payment_method"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/payment_methods", page, hasMore), nil
}
