package models

// PaymentMethodCardNetworks lists the networks a card can run on.
type PaymentMethodCardNetworks struct {
	Available []string `json:"available"`
	Preferred *string  `json:"preferred"`
}

// ThreeDSecureUsage reports 3DS support on a payment method card.
type ThreeDSecureUsage struct {
	Supported bool `json:"supported"`
}

// PaymentMethodCard is the card sub-object of a payment method.
type PaymentMethodCard struct {
	Brand             string                    `json:"brand"`
	Checks            PaymentMethodCardChecks   `json:"checks"`
	Country           string                    `json:"country"`
	ExpMonth          int                       `json:"exp_month"`
	ExpYear           int                       `json:"exp_year"`
	Fingerprint       string                    `json:"fingerprint"`
	Funding           string                    `json:"funding"`
	Last4             string                    `json:"last4"`
	Networks          PaymentMethodCardNetworks `json:"networks"`
	ThreeDSecureUsage ThreeDSecureUsage         `json:"three_d_secure_usage"`
	Wallet            *string                   `json:"wallet"`
}

// PaymentMethod is the modern card container that can be attached to and
// detached from customers.
type PaymentMethod struct {
	ID             string             `json:"id"`
	Object         string             `json:"object"`
	BillingDetails BillingDetails     `json:"billing_details"`
	Card           *PaymentMethodCard `json:"card"`
	Created        int64              `json:"created"`
	Customer       *string            `json:"customer"`
	Livemode       bool               `json:"livemode"`
	Metadata       Metadata           `json:"metadata"`
	Type           string             `json:"type"`
}

func (p *PaymentMethod) ObjectID() string { return p.ID }
