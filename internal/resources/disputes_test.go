package resources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "github.com/paysim/paysim/internal/errors"
)

func TestDisputeTokenOpensDispute(t *testing.T) {
	svc, sched := newTestService(t)
	account := svc.DefaultAccount()

	charge, err := svc.CreateCharge(account, &ChargeCreateParams{
		Amount:   amt(5000),
		Currency: "usd",
		Source:   "tok_createDispute",
	})
	require.NoError(t, err)
	assert.Equal(t, "succeeded", charge.Status)
	assert.False(t, charge.Disputed, "the dispute arrives asynchronously")

	sched.Advance(disputeCreateDelay)

	assert.True(t, charge.Disputed)
	require.NotNil(t, charge.Dispute)

	dispute, err := svc.RetrieveDispute(account, *charge.Dispute, "id")
	require.NoError(t, err)
	assert.Equal(t, "dispute", dispute.Object)
	assert.Equal(t, charge.ID, dispute.Charge)
	assert.Equal(t, charge.Amount, dispute.Amount)
	assert.Equal(t, "general", dispute.Reason)
	assert.Equal(t, "needs_response", dispute.Status)
	assert.False(t, dispute.IsChargeRefundable)
	assert.Equal(t, fixedNow.AddDate(0, 0, 7).Unix(), dispute.EvidenceDetails.DueBy)
}

func TestDisputeInquiry(t *testing.T) {
	svc, sched := newTestService(t)
	account := svc.DefaultAccount()

	charge, err := svc.CreateCharge(account, &ChargeCreateParams{
		Amount:   amt(5000),
		Currency: "usd",
		Source:   "tok_createDisputeInquiry",
	})
	require.NoError(t, err)
	sched.Advance(time.Second)

	require.NotNil(t, charge.Dispute)
	dispute, err := svc.RetrieveDispute(account, *charge.Dispute, "id")
	require.NoError(t, err)
	assert.Equal(t, "warning_needs_response", dispute.Status)
	assert.True(t, dispute.IsChargeRefundable)
}

func TestDisputeProductNotReceived(t *testing.T) {
	svc, sched := newTestService(t)
	account := svc.DefaultAccount()

	charge, err := svc.CreateCharge(account, &ChargeCreateParams{
		Amount:   amt(5000),
		Currency: "usd",
		Source:   "tok_createDisputeProductNotReceived",
	})
	require.NoError(t, err)
	sched.Advance(time.Second)

	dispute, err := svc.RetrieveDispute(account, *charge.Dispute, "id")
	require.NoError(t, err)
	assert.Equal(t, "product_not_received", dispute.Reason)
}

func TestListDisputesByCharge(t *testing.T) {
	svc, sched := newTestService(t)
	account := svc.DefaultAccount()

	first, err := svc.CreateCharge(account, &ChargeCreateParams{
		Amount: amt(5000), Currency: "usd", Source: "tok_createDispute",
	})
	require.NoError(t, err)
	_, err = svc.CreateCharge(account, &ChargeCreateParams{
		Amount: amt(7000), Currency: "usd", Source: "tok_createDispute",
	})
	require.NoError(t, err)
	sched.Advance(time.Second)

	all, err := svc.ListDisputes(account, DisputeListParams{})
	require.NoError(t, err)
	assert.Len(t, all.Data, 2)

	scoped, err := svc.ListDisputes(account, DisputeListParams{Charge: first.ID})
	require.NoError(t, err)
	require.Len(t, scoped.Data, 1)
	assert.Equal(t, first.ID, scoped.Data[0].Charge)

	_, err = svc.RetrieveDispute(account, "dp_missing", "id")
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
