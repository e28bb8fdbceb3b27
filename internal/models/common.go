// Package models defines the wire shapes for every simulated resource.
// Field names, nullability and nesting follow the upstream payment API's
// documented object shapes; fields the simulator does not model are still
// emitted with their documented default or null value.
package models

// Metadata is the string-to-string bag carried by most resources.
type Metadata map[string]string

// Address is the postal address sub-object shared by several resources.
type Address struct {
	City       *string `json:"city"`
	Country    *string `json:"country"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	PostalCode *string `json:"postal_code"`
	State      *string `json:"state"`
}

// BillingDetails is the billing sub-object on charges and payment methods.
type BillingDetails struct {
	Address Address `json:"address"`
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
}

// Shipping describes a charge's shipping information.
type Shipping struct {
	Address        *Address `json:"address"`
	Carrier        *string  `json:"carrier"`
	Name           *string  `json:"name"`
	Phone          *string  `json:"phone"`
	TrackingNumber *string  `json:"tracking_number"`
}

// TransferData is the transfer sub-object on charges and subscriptions.
type TransferData struct {
	AmountPercent *float64 `json:"amount_percent,omitempty"`
	Amount        *int64   `json:"amount,omitempty"`
	Destination   any      `json:"destination"`
}

// String returns a pointer to s. Convenience for nullable wire fields.
func String(s string) *string { return &s }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }

// Float64 returns a pointer to f.
func Float64(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
