package models

// Recurring describes a price's billing interval.
type Recurring struct {
	AggregateUsage *string `json:"aggregate_usage"`
	Interval       string  `json:"interval"`
	IntervalCount  int     `json:"interval_count"`
	UsageType      string  `json:"usage_type"`
}

// Price attaches an amount and interval to a product.
type Price struct {
	ID                string     `json:"id"`
	Object            string     `json:"object"`
	Active            bool       `json:"active"`
	BillingScheme     string     `json:"billing_scheme"`
	Created           int64      `json:"created"`
	Currency          string     `json:"currency"`
	Livemode          bool       `json:"livemode"`
	LookupKey         *string    `json:"lookup_key"`
	Metadata          Metadata   `json:"metadata"`
	Nickname          *string    `json:"nickname"`
	Product           string     `json:"product"`
	Recurring         *Recurring `json:"recurring"`
	TaxBehavior       string     `json:"tax_behavior"`
	TiersMode         *string    `json:"tiers_mode"`
	TransformQuantity *string    `json:"transform_quantity"`
	Type              string     `json:"type"`
	UnitAmount        int64      `json:"unit_amount"`
	UnitAmountDecimal string     `json:"unit_amount_decimal"`
}

func (p *Price) ObjectID() string { return p.ID }

// Plan is the legacy per-product billing shape, kept for API parity.
type Plan struct {
	ID              string   `json:"id"`
	Object          string   `json:"object"`
	Active          bool     `json:"active"`
	AggregateUsage  *string  `json:"aggregate_usage"`
	Amount          int64    `json:"amount"`
	AmountDecimal   string   `json:"amount_decimal"`
	BillingScheme   string   `json:"billing_scheme"`
	Created         int64    `json:"created"`
	Currency        string   `json:"currency"`
	Interval        string   `json:"interval"`
	IntervalCount   int      `json:"interval_count"`
	Livemode        bool     `json:"livemode"`
	Metadata        Metadata `json:"metadata"`
	Nickname        *string  `json:"nickname"`
	Product         string   `json:"product"`
	TiersMode       *string  `json:"tiers_mode"`
	TransformUsage  *string  `json:"transform_usage"`
	TrialPeriodDays *int64   `json:"trial_period_days"`
	UsageType       string   `json:"usage_type"`
}

func (p *Plan) ObjectID() string { return p.ID }
