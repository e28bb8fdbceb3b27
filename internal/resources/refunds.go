package resources

import (
	"fmt"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// RefundCreateParams returns some or all of a charge's funds.
type RefundCreateParams struct {
	Amount   *Amount        `json:"amount"`
	Charge   string         `json:"charge"`
	Metadata map[string]any `json:"metadata"`
	Reason   *string        `json:"reason"`
}

// RefundListParams pages refunds, optionally for a single charge.
type RefundListParams struct {
	store.ListParams
	Charge string
}

// CreateRefund validates the request against the charge's unrefunded
// remainder and applies it.
func (s *Service) CreateRefund(accountID string, params *RefundCreateParams) (*models.Refund, error) {
	if params.Charge == "" {
		return nil, apierr.MissingParam("Missing required param: charge.")
	}
	charge, err := s.RetrieveCharge(accountID, params.Charge, "charge")
	if err != nil {
		return nil, err
	}
	if charge.Refunded {
		return nil, apierr.Validation("charge_already_refunded",
			fmt.Sprintf("Charge %s has already been refunded.", charge.ID), "charge")
	}

	remaining := charge.Amount - charge.AmountRefunded
	amount := remaining
	if params.Amount != nil {
		amount = int64(*params.Amount)
	}
	if amount < 1 {
		return nil, apierr.Validation("parameter_invalid_integer", "Invalid positive integer", "amount")
	}
	if amount > remaining {
		return nil, apierr.Validation("amount_too_large",
			fmt.Sprintf("Refund amount (%d) is greater than unrefunded amount on charge (%d)", amount, remaining), "amount")
	}
	return s.createRefund(accountID, charge, amount, coerceMetadata(params.Metadata), params.Reason)
}

// createRefund applies an already-validated refund and back-links it
// onto the shared charge record.
func (s *Service) createRefund(accountID string, charge *models.Charge, amount int64, metadata models.Metadata, reason *string) (*models.Refund, error) {
	refund := &models.Refund{
		ID:                 newID("re"),
		Object:             "refund",
		Amount:             amount,
		BalanceTransaction: newID("txn"),
		Charge:             charge.ID,
		Created:            s.now().Unix(),
		Currency:           charge.Currency,
		Metadata:           metadata,
		Reason:             reason,
		Status:             "succeeded",
	}
	s.refunds.Put(accountID, refund)

	charge.AmountRefunded += amount
	if charge.AmountRefunded >= charge.Amount {
		charge.Refunded = true
	}
	charge.Refunds.Data = append(charge.Refunds.Data, refund)
	setCount(charge.Refunds, len(charge.Refunds.Data))
	s.dispatcher.Post(accountID, "charge.refunded", charge)
	return refund, nil
}

// RetrieveRefund returns the stored refund.
func (s *Service) RetrieveRefund(accountID, id, param string) (*models.Refund, error) {
	refund, ok := s.refunds.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("refund", id, param)
	}
	return refund, nil
}

// ListRefunds pages the account's refunds in creation order.
func (s *Service) ListRefunds(accountID string, params RefundListParams) (*models.List[*models.Refund], error) {
	records := s.refunds.GetAll(accountID)
	if params.Charge != "" {
		filtered := make([]*models.Refund, 0, len(records))
		for _, r := range records {
			if r.Charge == params.Charge {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	page, hasMore, err := store.ApplyListOptions(records, params.ListParams, resolver(s.refunds, accountID, "refund"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/refunds", page, hasMore), nil
}
