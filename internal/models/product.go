package models

// Product is something sellable; prices and plans reference it.
type Product struct {
	ID                  string    `json:"id"`
	Object              string    `json:"object"`
	Active              bool      `json:"active"`
	Attributes          []string  `json:"attributes"`
	Caption             *string   `json:"caption,omitempty"`
	Created             int64     `json:"created"`
	DeactivateOn        []string  `json:"deactivate_on,omitempty"`
	Description         *string   `json:"description"`
	Images              []string  `json:"images"`
	Livemode            bool      `json:"livemode"`
	Metadata            Metadata  `json:"metadata"`
	Name                string    `json:"name"`
	PackageDimensions   *string   `json:"package_dimensions,omitempty"`
	Shippable           *bool     `json:"shippable,omitempty"`
	StatementDescriptor *string   `json:"statement_descriptor"`
	TaxCode             *string   `json:"tax_code"`
	Type                string    `json:"type"`
	UnitLabel           *string   `json:"unit_label"`
	Updated             int64     `json:"updated"`
	URL                 *string   `json:"url,omitempty"`
}

func (p *Product) ObjectID() string { return p.ID }

// TaxRate is a named percentage applied to subscriptions and items.
type TaxRate struct {
	ID          string   `json:"id"`
	Object      string   `json:"object"`
	Active      bool     `json:"active"`
	Country     *string  `json:"country"`
	Created     int64    `json:"created"`
	Description *string  `json:"description"`
	DisplayName string   `json:"display_name"`
	Inclusive   bool     `json:"inclusive"`
	Jurisdiction *string `json:"jurisdiction"`
	Livemode    bool     `json:"livemode"`
	Metadata    Metadata `json:"metadata"`
	Percentage  float64  `json:"percentage"`
	State       *string  `json:"state"`
	TaxType     *string  `json:"tax_type"`
}

func (t *TaxRate) ObjectID() string { return t.ID }
