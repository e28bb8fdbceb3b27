package models

// Account is the tenant boundary. The platform account owns every
// connected account; connected-account access is validated against the
// platform scope before any nested operation proceeds.
type Account struct {
	ID               string         `json:"id"`
	Object           string         `json:"object"`
	BusinessProfile  *string        `json:"business_profile"`
	Capabilities     map[string]any `json:"capabilities"`
	ChargesEnabled   bool           `json:"charges_enabled"`
	Country          string         `json:"country"`
	Created          int64          `json:"created"`
	DefaultCurrency  string         `json:"default_currency"`
	DetailsSubmitted bool           `json:"details_submitted"`
	Email            *string        `json:"email"`
	PayoutsEnabled   bool           `json:"payouts_enabled"`
	Settings         *string        `json:"settings"`
	Type             string         `json:"type"`
}

func (a *Account) ObjectID() string { return a.ID }

// WebhookEndpoint registers a delivery target for events. The secret can
// be seeded at creation so tests can verify signatures deterministically.
type WebhookEndpoint struct {
	ID            string   `json:"id"`
	Object        string   `json:"object"`
	APIVersion    *string  `json:"api_version"`
	Application   *string  `json:"application"`
	Created       int64    `json:"created"`
	Description   *string  `json:"description"`
	EnabledEvents []string `json:"enabled_events"`
	Livemode      bool     `json:"livemode"`
	Metadata      Metadata `json:"metadata"`
	Secret        string   `json:"secret"`
	Status        string   `json:"status"`
	URL           string   `json:"url"`
}

func (w *WebhookEndpoint) ObjectID() string { return w.ID }
