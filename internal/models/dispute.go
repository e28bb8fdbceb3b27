package models

// DisputeEvidenceDetails tracks evidence submission state.
type DisputeEvidenceDetails struct {
	DueBy           int64 `json:"due_by"`
	HasEvidence     bool  `json:"has_evidence"`
	PastDue         bool  `json:"past_due"`
	SubmissionCount int   `json:"submission_count"`
}

// Dispute is created asynchronously after a charge made with one of the
// dispute tokens, and back-linked onto the charge.
type Dispute struct {
	ID                  string                 `json:"id"`
	Object              string                 `json:"object"`
	Amount              int64                  `json:"amount"`
	BalanceTransactions []string               `json:"balance_transactions"`
	Charge              string                 `json:"charge"`
	Created             int64                  `json:"created"`
	Currency            string                 `json:"currency"`
	EvidenceDetails     DisputeEvidenceDetails `json:"evidence_details"`
	IsChargeRefundable  bool                   `json:"is_charge_refundable"`
	Livemode            bool                   `json:"livemode"`
	Metadata            Metadata               `json:"metadata"`
	PaymentIntent       *string                `json:"payment_intent"`
	Reason              string                 `json:"reason"`
	Status              string                 `json:"status"`
}

func (d *Dispute) ObjectID() string { return d.ID }

// Refund returns captured funds to the payer. Partial captures create one
// automatically for the uncaptured remainder.
type Refund struct {
	ID                 string   `json:"id"`
	Object             string   `json:"object"`
	Amount             int64    `json:"amount"`
	BalanceTransaction string   `json:"balance_transaction"`
	Charge             string   `json:"charge"`
	Created            int64    `json:"created"`
	Currency           string   `json:"currency"`
	Metadata           Metadata `json:"metadata"`
	PaymentIntent      *string  `json:"payment_intent"`
	Reason             *string  `json:"reason"`
	ReceiptNumber      *string  `json:"receipt_number"`
	SourceTransferReversal *string `json:"source_transfer_reversal"`
	Status             string   `json:"status"`
	TransferReversal   *string  `json:"transfer_reversal"`
}

func (r *Refund) ObjectID() string { return r.ID }
