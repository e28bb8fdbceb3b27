package models

// InvoiceSettings is the invoice_settings sub-object on a customer.
type InvoiceSettings struct {
	CustomFields         *string `json:"custom_fields"`
	DefaultPaymentMethod *string `json:"default_payment_method"`
	Footer               *string `json:"footer"`
}

// Customer owns cards (sources) and subscriptions. The embedded lists
// share records with the per-kind stores; mutating a stored card mutates
// the customer's copy too, by contract.
type Customer struct {
	ID                  string                `json:"id"`
	Object              string                `json:"object"`
	Address             *Address              `json:"address"`
	Balance             int64                 `json:"balance"`
	Created             int64                 `json:"created"`
	Currency            *string               `json:"currency"`
	DefaultSource       *string               `json:"default_source"`
	Delinquent          bool                  `json:"delinquent"`
	Description         *string               `json:"description"`
	Discount            *string               `json:"discount"`
	Email               *string               `json:"email"`
	InvoicePrefix       string                `json:"invoice_prefix"`
	InvoiceSettings     InvoiceSettings       `json:"invoice_settings"`
	Livemode            bool                  `json:"livemode"`
	Metadata            Metadata              `json:"metadata"`
	Name                *string               `json:"name"`
	NextInvoiceSequence int                   `json:"next_invoice_sequence"`
	Phone               *string               `json:"phone"`
	PreferredLocales    []string              `json:"preferred_locales"`
	Shipping            *Shipping             `json:"shipping"`
	Sources             *List[*Card]          `json:"sources"`
	Subscriptions       *List[*Subscription]  `json:"subscriptions"`
	TaxExempt           string                `json:"tax_exempt"`
}

func (c *Customer) ObjectID() string { return c.ID }
