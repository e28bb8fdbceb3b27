package models

// InvoiceStatusTransitions records invoice lifecycle timestamps.
type InvoiceStatusTransitions struct {
	FinalizedAt          *int64 `json:"finalized_at"`
	MarkedUncollectibleAt *int64 `json:"marked_uncollectible_at"`
	PaidAt               *int64 `json:"paid_at"`
	VoidedAt             *int64 `json:"voided_at"`
}

// InvoicePaymentSettings mirrors the payment_settings sub-object.
type InvoicePaymentSettings struct {
	PaymentMethodOptions *string  `json:"payment_method_options"`
	PaymentMethodTypes   []string `json:"payment_method_types"`
}

// InvoicePeriod is a start/end pair on invoice line items.
type InvoicePeriod struct {
	End   int64 `json:"end"`
	Start int64 `json:"start"`
}

// InvoiceLineItem is one line of an upcoming invoice, derived from a
// subscription item.
type InvoiceLineItem struct {
	ID               string         `json:"id"`
	Object           string         `json:"object"`
	Amount           int64          `json:"amount"`
	Currency         string         `json:"currency"`
	Description      *string        `json:"description"`
	DiscountAmounts  []string       `json:"discount_amounts"`
	Discountable     bool           `json:"discountable"`
	Discounts        []string       `json:"discounts"`
	InvoiceItem      string         `json:"invoice_item"`
	Livemode         bool           `json:"livemode"`
	Metadata         Metadata       `json:"metadata"`
	Period           InvoicePeriod  `json:"period"`
	Plan             *Plan          `json:"plan"`
	Price            *Price         `json:"price"`
	Proration        bool           `json:"proration"`
	Quantity         int64          `json:"quantity"`
	Subscription     string         `json:"subscription"`
	TaxAmounts       []string       `json:"tax_amounts"`
	TaxRates         []*TaxRate     `json:"tax_rates"`
	Type             string         `json:"type"`
}

// Invoice is synthesized for /v1/invoices/upcoming and for the delayed
// invoice.paid event; invoices are never stored.
type Invoice struct {
	ID                           string                    `json:"id"`
	Object                       string                    `json:"object"`
	AccountCountry               string                    `json:"account_country"`
	AccountName                  string                    `json:"account_name"`
	AccountTaxIDs                []string                  `json:"account_tax_ids"`
	AmountDue                    int64                     `json:"amount_due"`
	AmountPaid                   int64                     `json:"amount_paid"`
	AmountRemaining              int64                     `json:"amount_remaining"`
	Application                  *string                   `json:"application"`
	ApplicationFeeAmount         *int64                    `json:"application_fee_amount"`
	AttemptCount                 int                       `json:"attempt_count"`
	Attempted                    bool                      `json:"attempted"`
	AutoAdvance                  bool                      `json:"auto_advance"`
	AutomaticTax                 AutomaticTax              `json:"automatic_tax"`
	BillingReason                string                    `json:"billing_reason"`
	Charge                       *string                   `json:"charge"`
	CollectionMethod             string                    `json:"collection_method"`
	Created                      int64                     `json:"created"`
	Currency                     string                    `json:"currency"`
	CustomFields                 *string                   `json:"custom_fields"`
	Customer                     string                    `json:"customer"`
	CustomerAddress              *Address                  `json:"customer_address"`
	CustomerEmail                *string                   `json:"customer_email"`
	CustomerName                 *string                   `json:"customer_name"`
	CustomerPhone                *string                   `json:"customer_phone"`
	CustomerShipping             *Shipping                 `json:"customer_shipping"`
	CustomerTaxExempt            string                    `json:"customer_tax_exempt"`
	CustomerTaxIDs               []string                  `json:"customer_tax_ids"`
	DefaultPaymentMethod         *string                   `json:"default_payment_method"`
	DefaultSource                *string                   `json:"default_source"`
	DefaultTaxRates              []*TaxRate                `json:"default_tax_rates"`
	Description                  *string                   `json:"description"`
	Discount                     *string                   `json:"discount"`
	Discounts                    []string                  `json:"discounts"`
	DueDate                      *int64                    `json:"due_date"`
	EndingBalance                *int64                    `json:"ending_balance"`
	Footer                       *string                   `json:"footer"`
	LastFinalizationError        *string                   `json:"last_finalization_error"`
	Lines                        *List[*InvoiceLineItem]   `json:"lines"`
	Livemode                     bool                      `json:"livemode"`
	Metadata                     Metadata                  `json:"metadata"`
	NextPaymentAttempt           *int64                    `json:"next_payment_attempt"`
	Number                       *string                   `json:"number"`
	OnBehalfOf                   *string                   `json:"on_behalf_of"`
	Paid                         bool                      `json:"paid"`
	PaidOutOfBand                bool                      `json:"paid_out_of_band"`
	PaymentIntent                *string                   `json:"payment_intent"`
	PaymentSettings              InvoicePaymentSettings    `json:"payment_settings"`
	PeriodEnd                    int64                     `json:"period_end"`
	PeriodStart                  int64                     `json:"period_start"`
	PostPaymentCreditNotesAmount int64                     `json:"post_payment_credit_notes_amount"`
	PrePaymentCreditNotesAmount  int64                     `json:"pre_payment_credit_notes_amount"`
	Quote                        *string                   `json:"quote"`
	ReceiptNumber                *string                   `json:"receipt_number"`
	StartingBalance              int64                     `json:"starting_balance"`
	StatementDescriptor          *string                   `json:"statement_descriptor"`
	Status                       string                    `json:"status"`
	StatusTransitions            InvoiceStatusTransitions  `json:"status_transitions"`
	Subscription                 *Subscription             `json:"subscription"`
	Subtotal                     int64                     `json:"subtotal"`
	Tax                          *int64                    `json:"tax"`
	TestClock                    *string                   `json:"test_clock"`
	Total                        int64                     `json:"total"`
	TotalDiscountAmounts         []string                  `json:"total_discount_amounts"`
	TotalTaxAmounts              []string                  `json:"total_tax_amounts"`
	TransferData                 *TransferData             `json:"transfer_data"`
	WebhooksDeliveredAt          *int64                    `json:"webhooks_delivered_at"`
}
