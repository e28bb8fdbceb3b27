package resources

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/metrics"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
	"github.com/paysim/paysim/internal/token"
)

// Smallest chargeable amount per currency, in minor units. Currencies
// not listed here have no floor beyond the positive-integer check.
var minChargeAmount = map[string]int64{
	"usd": 50, "aud": 50, "brl": 50, "cad": 50, "chf": 50, "dkk": 250,
	"eur": 50, "hkd": 400, "jpy": 50, "mxn": 10, "nok": 300, "nzd": 50,
	"sek": 300, "sgd": 50,
}

const maxChargeAmount = 99999999

// ChargeCreateParams creates a charge from either a raw source token or
// a customer's stored card.
type ChargeCreateParams struct {
	Amount                    *Amount          `json:"amount"`
	Capture                   FlexBool         `json:"capture"`
	Currency                  string           `json:"currency"`
	Customer                  string           `json:"customer"`
	Description               *string          `json:"description"`
	Metadata                  map[string]any   `json:"metadata"`
	OnBehalfOf                *string          `json:"on_behalf_of"`
	ReceiptEmail              *string          `json:"receipt_email"`
	Shipping                  *models.Shipping `json:"shipping"`
	Source                    string           `json:"source"`
	StatementDescriptor       *string          `json:"statement_descriptor"`
	StatementDescriptorSuffix *string          `json:"statement_descriptor_suffix"`
	TransferGroup             *string          `json:"transfer_group"`
}

// ChargeUpdateParams carries the mutable charge fields.
type ChargeUpdateParams struct {
	Description   *string           `json:"description"`
	FraudDetails  map[string]string `json:"fraud_details"`
	Metadata      map[string]any    `json:"metadata"`
	ReceiptEmail  *string           `json:"receipt_email"`
	Shipping      *models.Shipping  `json:"shipping"`
	TransferGroup *string           `json:"transfer_group"`
}

// ChargeCaptureParams captures a previously uncaptured charge, possibly
// for less than the authorized amount.
type ChargeCaptureParams struct {
	Amount *Amount `json:"amount"`
}

// ChargeListParams pages charges, optionally narrowed to one customer.
type ChargeListParams struct {
	store.ListParams
	Customer string
}

// CreateCharge runs the full charge pipeline: transport-level token
// gates, parameter validation, source resolution, optimistic record
// construction and finally the token's outcome.
func (s *Service) CreateCharge(accountID string, params *ChargeCreateParams) (*models.Charge, error) {
	if err := prechargeGate(params.Source); err != nil {
		return nil, err
	}
	if params.Amount == nil {
		return nil, apierr.MissingParam("Missing required param: amount.")
	}
	if params.Currency == "" {
		return nil, apierr.MissingParam("Missing required param: currency.")
	}
	amount := int64(*params.Amount)
	if amount < 1 {
		return nil, apierr.Validation("parameter_invalid_integer", "Invalid positive integer", "amount")
	}
	if amount > maxChargeAmount {
		return nil, apierr.Validation("amount_too_large", "Amount must be no more than $999,999.99", "amount")
	}
	if err := verifyCurrency(params.Currency); err != nil {
		return nil, err
	}
	if minimum, ok := minChargeAmount[params.Currency]; ok && amount < minimum {
		return nil, apierr.Validation("amount_too_small", "Amount must be at least 50 cents", "amount")
	}

	var card *models.Card
	var sourceToken string
	switch {
	case params.Customer != "":
		customer, err := s.RetrieveCustomer(accountID, params.Customer, "customer")
		if err != nil {
			return nil, err
		}
		card, err = customerChargeSource(customer, params.Source)
		if err != nil {
			return nil, err
		}
		sourceToken = s.cardToken(card.ID)
		if err := prechargeGate(sourceToken); err != nil {
			return nil, err
		}
	case params.Source != "":
		sourceToken = token.Effective(params.Source)
		if err := prechargeGate(sourceToken); err != nil {
			return nil, err
		}
		var err error
		card, err = s.cardFromToken(accountID, sourceToken)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apierr.MissingParam("Must provide source or customer.")
	}

	outcome, _ := token.Lookup(sourceToken)
	charge := s.buildCharge(accountID, params, amount, card)
	if params.Customer != "" {
		charge.Customer = models.String(params.Customer)
	}
	if !outcome.Ephemeral {
		s.charges.Put(accountID, charge)
	}
	return s.settleCharge(accountID, charge, outcome)
}

// prechargeGate raises the transport-level errors some tokens stand for.
// Those never leave a record behind.
func prechargeGate(tok string) error {
	if tok == "" {
		return nil
	}
	if outcome, ok := token.Lookup(tok); ok && outcome.Precharge != nil {
		return outcome.Precharge()
	}
	return nil
}

// customerChargeSource picks the card a customer charge draws on: the
// explicitly named source, else the default source.
func customerChargeSource(customer *models.Customer, sourceID string) (*models.Card, error) {
	if sourceID != "" {
		for _, card := range customer.Sources.Data {
			if card.ID == sourceID {
				return card, nil
			}
		}
		return nil, &apierr.Error{
			Status:  http.StatusNotFound,
			Type:    "invalid_request_error",
			Code:    "missing",
			Param:   "source",
			Message: fmt.Sprintf("Customer %s does not have a linked source with ID %s.", customer.ID, sourceID),
			DocURL:  "https://stripe.com/docs/error-codes/missing",
		}
	}
	if customer.DefaultSource != nil {
		for _, card := range customer.Sources.Data {
			if card.ID == *customer.DefaultSource {
				return card, nil
			}
		}
	}
	return nil, &apierr.Error{
		Status:  http.StatusNotFound,
		Type:    "card_error",
		Code:    "missing",
		Param:   "card",
		Message: "Cannot charge a customer that has no active card",
		DocURL:  "https://stripe.com/docs/error-codes/missing",
	}
}

// buildCharge constructs the optimistic (succeeded) charge record; the
// token outcome may rewrite it before the caller sees it.
func (s *Service) buildCharge(accountID string, params *ChargeCreateParams, amount int64, card *models.Card) *models.Charge {
	now := s.now()
	id := newID("ch")
	captured := true
	if params.Capture.Present {
		captured = params.Capture.Value
	}

	network := token.NetworkForBrand(card.Brand)
	charge := &models.Charge{
		ID:           id,
		Object:       "charge",
		Amount:       amount,
		Captured:     captured,
		Created:      now.Unix(),
		Currency:     params.Currency,
		Description:  params.Description,
		FraudDetails: map[string]string{},
		Metadata:     coerceMetadata(params.Metadata),
		OnBehalfOf:   params.OnBehalfOf,
		Outcome: &models.ChargeOutcome{
			NetworkStatus: "approved_by_network",
			RiskLevel:     "normal",
			RiskScore:     5,
			SellerMessage: "Payment complete.",
			Type:          "authorized",
		},
		Paid:          true,
		PaymentMethod: card.ID,
		PaymentMethodDetails: &models.PaymentMethodDetails{
			Card: models.PaymentMethodDetailsCard{
				Brand:       network,
				Country:     card.Country,
				ExpMonth:    card.ExpMonth,
				ExpYear:     card.ExpYear,
				Fingerprint: card.Fingerprint,
				Funding:     card.Funding,
				Last4:       card.Last4,
				Network:     network,
			},
			Type: "card",
		},
		ReceiptEmail:              params.ReceiptEmail,
		ReceiptURL:                fmt.Sprintf("https://pay.stripe.com/receipts/%s/%s/rcpt_%s", accountID, id, fingerprint()),
		Refunds:                   models.EmptyList[*models.Refund](fmt.Sprintf("/v1/charges/%s/refunds", id)),
		Shipping:                  params.Shipping,
		Source:                    card,
		StatementDescriptor:       params.StatementDescriptor,
		StatementDescriptorSuffix: params.StatementDescriptorSuffix,
		Status:                    "succeeded",
		TransferGroup:             params.TransferGroup,
	}
	setCount(charge.Refunds, 0)
	if captured {
		charge.AmountCaptured = amount
		charge.BalanceTransaction = models.String(newID("txn"))
	}
	return charge
}

// settleCharge applies the token's outcome to the stored record. A
// decline leaves the failed charge stored and returns the 402; a dispute
// is opened asynchronously against the successful charge.
func (s *Service) settleCharge(accountID string, charge *models.Charge, outcome token.Outcome) (*models.Charge, error) {
	if d := outcome.Decline; d != nil {
		charge.AmountCaptured = 0
		charge.BalanceTransaction = nil
		charge.Captured = false
		charge.FailureCode = models.String(d.FailureCode)
		charge.FailureMessage = models.String(d.FailureMessage)
		charge.Outcome = &models.ChargeOutcome{
			NetworkStatus: d.NetworkStatus,
			Reason:        models.String(d.Reason),
			RiskLevel:     d.RiskLevel,
			RiskScore:     d.RiskScore,
			SellerMessage: d.SellerMessage,
			Type:          d.OutcomeType,
		}
		charge.Paid = false
		charge.Status = "failed"
		metrics.ChargesCreatedTotal.WithLabelValues("failed").Inc()
		s.dispatcher.Post(accountID, "charge.failed", charge)
		log.Debug().Str("charge", charge.ID).Str("code", d.FailureCode).Msg("Charge declined")
		return nil, apierr.CardDeclined(charge.ID, d.FailureCode, d.DeclineCode, d.FailureMessage, d.ErrorParam)
	}

	if r := outcome.Review; r != nil {
		charge.Outcome = &models.ChargeOutcome{
			NetworkStatus: "approved_by_network",
			Reason:        models.String(r.Reason),
			RiskLevel:     r.RiskLevel,
			RiskScore:     r.RiskScore,
			Rule:          models.String(r.Rule),
			SellerMessage: r.SellerMessage,
			Type:          r.OutcomeType,
		}
	}
	if dp := outcome.Dispute; dp != nil {
		spec := *dp
		s.sched.Schedule(disputeCreateDelay, func() {
			s.openDispute(accountID, charge, spec)
		})
	}
	metrics.ChargesCreatedTotal.WithLabelValues("succeeded").Inc()
	s.dispatcher.Post(accountID, "charge.succeeded", charge)
	return charge, nil
}

// RetrieveCharge returns the shared stored record.
func (s *Service) RetrieveCharge(accountID, id, param string) (*models.Charge, error) {
	charge, ok := s.charges.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("charge", id, param)
	}
	return charge, nil
}

// UpdateCharge mutates the stored record in place.
func (s *Service) UpdateCharge(accountID, id string, params *ChargeUpdateParams) (*models.Charge, error) {
	charge, err := s.RetrieveCharge(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.Description != nil {
		charge.Description = params.Description
	}
	if params.FraudDetails != nil {
		charge.FraudDetails = params.FraudDetails
	}
	if params.Metadata != nil {
		charge.Metadata = coerceMetadata(params.Metadata)
	}
	if params.ReceiptEmail != nil {
		charge.ReceiptEmail = params.ReceiptEmail
	}
	if params.Shipping != nil {
		charge.Shipping = params.Shipping
	}
	if params.TransferGroup != nil {
		charge.TransferGroup = params.TransferGroup
	}
	return charge, nil
}

// CaptureCharge captures an authorized charge. Capturing less than the
// authorized amount refunds the remainder automatically, keeping
// amount_captured plus amount_refunded equal to the original amount.
func (s *Service) CaptureCharge(accountID, id string, params *ChargeCaptureParams) (*models.Charge, error) {
	charge, err := s.RetrieveCharge(accountID, id, "charge")
	if err != nil {
		return nil, err
	}
	if charge.Captured {
		return nil, apierr.Validation("charge_already_captured",
			fmt.Sprintf("Charge %s has already been captured.", id), "charge")
	}
	amount := charge.Amount
	if params != nil && params.Amount != nil {
		amount = int64(*params.Amount)
	}
	if amount < 1 {
		return nil, apierr.Validation("parameter_invalid_integer", "Invalid positive integer", "amount")
	}
	if params != nil && params.Amount != nil {
		if minimum, ok := minChargeAmount[charge.Currency]; ok && amount < minimum {
			return nil, apierr.Validation("amount_too_small", "Amount must be at least 50 cents", "amount")
		}
	}
	if amount > charge.Amount {
		return nil, apierr.Validation("",
			fmt.Sprintf("Capture amount cannot be greater than the authorized amount of %d.", charge.Amount), "amount")
	}
	if amount < charge.Amount {
		if _, err := s.createRefund(accountID, charge, charge.Amount-amount, models.Metadata{}, nil); err != nil {
			return nil, err
		}
	}
	charge.AmountCaptured += amount
	charge.Captured = true
	charge.BalanceTransaction = models.String(newID("txn"))
	s.dispatcher.Post(accountID, "charge.captured", charge)
	return charge, nil
}

// ListCharges pages the account's charges in creation order.
func (s *Service) ListCharges(accountID string, params ChargeListParams) (*models.List[*models.Charge], error) {
	records := s.charges.GetAll(accountID)
	if params.Customer != "" {
		filtered := make([]*models.Charge, 0, len(records))
		for _, c := range records {
			if c.Customer != nil && *c.Customer == params.Customer {
				filtered = append(filtered, c)
			}
		}
		records = filtered
	}
	page, hasMore, err := store.ApplyListOptions(records, params.ListParams, resolver(s.charges, accountID, "charge"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/charges", page, hasMore), nil
}
