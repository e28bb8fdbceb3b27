package models

// ChargeOutcome is the structured outcome sub-object on a charge. Rule is
// only present when a fraud rule fired.
type ChargeOutcome struct {
	NetworkStatus string  `json:"network_status"`
	Reason        *string `json:"reason"`
	RiskLevel     string  `json:"risk_level"`
	RiskScore     int     `json:"risk_score"`
	Rule          *string `json:"rule,omitempty"`
	SellerMessage string  `json:"seller_message"`
	Type          string  `json:"type"`
}

// PaymentMethodCardChecks reports card verification checks.
type PaymentMethodCardChecks struct {
	AddressLine1Check      *string `json:"address_line1_check"`
	AddressPostalCodeCheck *string `json:"address_postal_code_check"`
	CVCCheck               *string `json:"cvc_check"`
}

// PaymentMethodDetailsCard is the card sub-object on a charge's
// payment_method_details.
type PaymentMethodDetailsCard struct {
	Brand         string                  `json:"brand"`
	Checks        PaymentMethodCardChecks `json:"checks"`
	Country       string                  `json:"country"`
	ExpMonth      int                     `json:"exp_month"`
	ExpYear       int                     `json:"exp_year"`
	Fingerprint   string                  `json:"fingerprint"`
	Funding       string                  `json:"funding"`
	Installments  *string                 `json:"installments"`
	Last4         string                  `json:"last4"`
	Mandate       *string                 `json:"mandate"`
	Network       string                  `json:"network"`
	ThreeDSecure  *string                 `json:"three_d_secure"`
	Wallet        *string                 `json:"wallet"`
}

// PaymentMethodDetails describes how a charge was paid.
type PaymentMethodDetails struct {
	Card PaymentMethodDetailsCard `json:"card"`
	Type string                   `json:"type"`
}

// Charge is a single payment attempt. Failed charges stay stored with
// status "failed"; successful charges may later be captured, refunded or
// disputed.
type Charge struct {
	ID                            string                `json:"id"`
	Object                        string                `json:"object"`
	Amount                        int64                 `json:"amount"`
	AmountCaptured                int64                 `json:"amount_captured"`
	AmountRefunded                int64                 `json:"amount_refunded"`
	Application                   *string               `json:"application"`
	ApplicationFee                *string               `json:"application_fee"`
	ApplicationFeeAmount          *int64                `json:"application_fee_amount"`
	BalanceTransaction            *string               `json:"balance_transaction"`
	BillingDetails                BillingDetails        `json:"billing_details"`
	CalculatedStatementDescriptor *string               `json:"calculated_statement_descriptor"`
	Captured                      bool                  `json:"captured"`
	Created                       int64                 `json:"created"`
	Currency                      string                `json:"currency"`
	Customer                      *string               `json:"customer"`
	Description                   *string               `json:"description"`
	Destination                   *string               `json:"destination"`
	Dispute                       *string               `json:"dispute"`
	Disputed                      bool                  `json:"disputed"`
	FailureBalanceTransaction     *string               `json:"failure_balance_transaction"`
	FailureCode                   *string               `json:"failure_code"`
	FailureMessage                *string               `json:"failure_message"`
	FraudDetails                  map[string]string     `json:"fraud_details"`
	Invoice                       *string               `json:"invoice"`
	Livemode                      bool                  `json:"livemode"`
	Metadata                      Metadata              `json:"metadata"`
	OnBehalfOf                    *string               `json:"on_behalf_of"`
	Order                         *string               `json:"order"`
	Outcome                       *ChargeOutcome        `json:"outcome"`
	Paid                          bool                  `json:"paid"`
	PaymentIntent                 *string               `json:"payment_intent"`
	PaymentMethod                 string                `json:"payment_method"`
	PaymentMethodDetails          *PaymentMethodDetails `json:"payment_method_details"`
	ReceiptEmail                  *string               `json:"receipt_email"`
	ReceiptNumber                 *string               `json:"receipt_number"`
	ReceiptURL                    string                `json:"receipt_url"`
	Refunded                      bool                  `json:"refunded"`
	Refunds                       *List[*Refund]        `json:"refunds"`
	Review                        *string               `json:"review"`
	Shipping                      *Shipping             `json:"shipping"`
	Source                        *Card                 `json:"source"`
	SourceTransfer                *string               `json:"source_transfer"`
	StatementDescriptor           *string               `json:"statement_descriptor"`
	StatementDescriptorSuffix     *string               `json:"statement_descriptor_suffix"`
	Status                        string                `json:"status"`
	TransferData                  *TransferData         `json:"transfer_data"`
	TransferGroup                 *string               `json:"transfer_group"`
}

func (c *Charge) ObjectID() string { return c.ID }
