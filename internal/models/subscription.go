package models

// AutomaticTax is the automatic_tax sub-object on subscriptions and
// invoices.
type AutomaticTax struct {
	Enabled bool    `json:"enabled"`
	Status  *string `json:"status,omitempty"`
}

// BillingThresholds caps usage before a cycle is forced.
type BillingThresholds struct {
	AmountGTE               *int64 `json:"amount_gte"`
	ResetBillingCycleAnchor *bool  `json:"reset_billing_cycle_anchor"`
}

// Subscription bills a customer for a set of priced items on a recurring
// interval. current_period_end is derived from the longest recurring
// interval among the items' prices.
type Subscription struct {
	ID                            string                     `json:"id"`
	Object                        string                     `json:"object"`
	Application                   string                     `json:"application"`
	ApplicationFeePercent         *float64                   `json:"application_fee_percent"`
	AutomaticTax                  AutomaticTax               `json:"automatic_tax"`
	BillingCycleAnchor            int64                      `json:"billing_cycle_anchor"`
	BillingThresholds             *BillingThresholds         `json:"billing_thresholds"`
	CancelAt                      *int64                     `json:"cancel_at"`
	CancelAtPeriodEnd             bool                       `json:"cancel_at_period_end"`
	CanceledAt                    *int64                     `json:"canceled_at"`
	CollectionMethod              string                     `json:"collection_method"`
	Created                       int64                      `json:"created"`
	CurrentPeriodEnd              int64                      `json:"current_period_end"`
	CurrentPeriodStart            int64                      `json:"current_period_start"`
	Customer                      string                     `json:"customer"`
	DaysUntilDue                  *int64                     `json:"days_until_due"`
	DefaultPaymentMethod          *string                    `json:"default_payment_method"`
	DefaultSource                 *string                    `json:"default_source"`
	DefaultTaxRates               []*TaxRate                 `json:"default_tax_rates"`
	Discount                      *string                    `json:"discount"`
	EndedAt                       *int64                     `json:"ended_at"`
	Items                         *List[*SubscriptionItem]   `json:"items"`
	LatestInvoice                 string                     `json:"latest_invoice"`
	Livemode                      bool                       `json:"livemode"`
	Metadata                      Metadata                   `json:"metadata"`
	NextPendingInvoiceItemInvoice *int64                     `json:"next_pending_invoice_item_invoice"`
	PauseCollection               *string                    `json:"pause_collection"`
	PaymentSettings               *string                    `json:"payment_settings"`
	PendingInvoiceItemInterval    *string                    `json:"pending_invoice_item_interval"`
	PendingSetupIntent            *string                    `json:"pending_setup_intent"`
	PendingUpdate                 *string                    `json:"pending_update"`
	Schedule                      *string                    `json:"schedule"`
	StartDate                     int64                      `json:"start_date"`
	Status                        string                     `json:"status"`
	TestClock                     *string                    `json:"test_clock"`
	TransferData                  *TransferData              `json:"transfer_data"`
	TrialEnd                      *int64                     `json:"trial_end"`
	TrialStart                    *int64                     `json:"trial_start"`
}

func (s *Subscription) ObjectID() string { return s.ID }

// SubscriptionItem links one price and quantity into a subscription.
type SubscriptionItem struct {
	ID                string             `json:"id"`
	Object            string             `json:"object"`
	BillingThresholds *BillingThresholds `json:"billing_thresholds"`
	Created           int64              `json:"created"`
	Metadata          Metadata           `json:"metadata"`
	Plan              *Plan              `json:"plan"`
	Price             *Price             `json:"price"`
	Quantity          int64              `json:"quantity"`
	Subscription      string             `json:"subscription"`
	TaxRates          []*TaxRate         `json:"tax_rates"`
}

func (s *SubscriptionItem) ObjectID() string { return s.ID }
