package resources

import (
	"github.com/rs/zerolog/log"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
	"github.com/paysim/paysim/internal/token"
)

// openDispute runs on the scheduler shortly after a dispute-token charge
// succeeds. It stores the dispute and back-links it onto the shared
// charge record.
func (s *Service) openDispute(accountID string, charge *models.Charge, spec token.DisputeSpec) {
	now := s.now()
	status := "needs_response"
	if spec.Inquiry {
		status = "warning_needs_response"
	}
	dispute := &models.Dispute{
		ID:                  newID("dp"),
		Object:              "dispute",
		Amount:              charge.Amount,
		BalanceTransactions: []string{},
		Charge:              charge.ID,
		Created:             now.Unix(),
		Currency:            charge.Currency,
		EvidenceDetails: models.DisputeEvidenceDetails{
			DueBy: now.AddDate(0, 0, 7).Unix(),
		},
		IsChargeRefundable: spec.Inquiry,
		Metadata:           models.Metadata{},
		Reason:             spec.Reason,
		Status:             status,
	}
	s.disputes.Put(accountID, dispute)
	charge.Dispute = models.String(dispute.ID)
	charge.Disputed = true

	log.Debug().Str("charge", charge.ID).Str("dispute", dispute.ID).Str("reason", spec.Reason).Msg("Dispute opened")
	s.dispatcher.Post(accountID, "charge.dispute.created", dispute)
}

// RetrieveDispute returns the stored dispute.
func (s *Service) RetrieveDispute(accountID, id, param string) (*models.Dispute, error) {
	dispute, ok := s.disputes.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("dispute", id, param)
	}
	return dispute, nil
}

// DisputeListParams pages disputes, optionally for a single charge.
type DisputeListParams struct {
	store.ListParams
	Charge string
}

// ListDisputes pages the account's disputes in creation order.
func (s *Service) ListDisputes(accountID string, params DisputeListParams) (*models.List[*models.Dispute], error) {
	records := s.disputes.GetAll(accountID)
	if params.Charge != "" {
		filtered := make([]*models.Dispute, 0, len(records))
		for _, d := range records {
			if d.Charge == params.Charge {
				filtered = append(filtered, d)
			}
		}
		records = filtered
	}
	page, hasMore, err := store.ApplyListOptions(records, params.ListParams, resolver(s.disputes, accountID, "dispute"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/disputes", page, hasMore), nil
}
