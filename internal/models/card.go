package models

// Card is a tokenized card attached to a customer or used directly as a
// charge source.
type Card struct {
	ID                 string   `json:"id"`
	Object             string   `json:"object"`
	AddressCity        *string  `json:"address_city"`
	AddressCountry     *string  `json:"address_country"`
	AddressLine1       *string  `json:"address_line1"`
	AddressLine1Check  *string  `json:"address_line1_check"`
	AddressLine2       *string  `json:"address_line2"`
	AddressState       *string  `json:"address_state"`
	AddressZip         *string  `json:"address_zip"`
	AddressZipCheck    *string  `json:"address_zip_check"`
	Brand              string   `json:"brand"`
	Country            string   `json:"country"`
	Customer           *string  `json:"customer"`
	CVCCheck           *string  `json:"cvc_check"`
	DynamicLast4       *string  `json:"dynamic_last4"`
	ExpMonth           int      `json:"exp_month"`
	ExpYear            int      `json:"exp_year"`
	Fingerprint        string   `json:"fingerprint"`
	Funding            string   `json:"funding"`
	Last4              string   `json:"last4"`
	Metadata           Metadata `json:"metadata"`
	Name               *string  `json:"name"`
	TokenizationMethod *string  `json:"tokenization_method"`
}

func (c *Card) ObjectID() string { return c.ID }
