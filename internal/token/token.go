// Package token maps the opaque test tokens onto simulated card and
// charge behavior. The mapping is a data table rather than control flow,
// so adding a token is a table entry, not a new switch arm.
package token

import (
	apierr "github.com/paysim/paysim/internal/errors"
)

// CardSpec is the deterministic card synthesized for a token.
type CardSpec struct {
	Brand   string
	Last4   string
	Country string
}

// DeclineSpec turns an optimistic charge into a stored failure and
// describes the 402 raised afterwards.
type DeclineSpec struct {
	FailureCode    string
	FailureMessage string
	DeclineCode    string
	ErrorParam     string
	NetworkStatus  string
	Reason         string
	RiskLevel      string
	RiskScore      int
	SellerMessage  string
	OutcomeType    string
}

// ReviewSpec overrides the charge outcome without failing the charge.
type ReviewSpec struct {
	Reason        string
	RiskLevel     string
	RiskScore     int
	Rule          string
	SellerMessage string
	OutcomeType   string
}

// DisputeSpec schedules an asynchronous dispute against a successful
// charge.
type DisputeSpec struct {
	Reason  string
	Inquiry bool
}

// Outcome is everything a token implies. Exactly one of Precharge,
// Decline, Review or Dispute may be set; none means a plain success.
type Outcome struct {
	Card      CardSpec
	Precharge func() *apierr.Error
	Decline   *DeclineSpec
	Review    *ReviewSpec
	Dispute   *DisputeSpec
	Ephemeral bool
}

var outcomes = map[string]Outcome{
	// Transport-level gates; no record is ever created for these.
	"tok_429": {Precharge: apierr.RateLimited},
	"tok_500": {Precharge: apierr.ServerFault},

	// Plain successes.
	"tok_visa":               {Card: CardSpec{Brand: "Visa", Last4: "4242", Country: "US"}},
	"tok_visa_debit":         {Card: CardSpec{Brand: "Visa", Last4: "5556", Country: "US"}},
	"tok_mastercard":         {Card: CardSpec{Brand: "MasterCard", Last4: "4444", Country: "US"}},
	"tok_mastercard_debit":   {Card: CardSpec{Brand: "MasterCard", Last4: "3222", Country: "US"}},
	"tok_mastercard_prepaid": {Card: CardSpec{Brand: "MasterCard", Last4: "5100", Country: "US"}},
	"tok_amex":               {Card: CardSpec{Brand: "American Express", Last4: "8431", Country: "US"}},
	"tok_ca":                 {Card: CardSpec{Brand: "Visa", Last4: "0000", Country: "CA"}},

	// Succeeds but never persisted.
	"tok_forget": {
		Card:      CardSpec{Brand: "Visa", Last4: "1982", Country: "US"},
		Ephemeral: true,
	},

	// Succeeds with an elevated-risk manual review outcome.
	"tok_riskLevelElevated": {
		Card: CardSpec{Brand: "Visa", Last4: "9235", Country: "US"},
		Review: &ReviewSpec{
			Reason:        "elevated_risk_level",
			RiskLevel:     "elevated",
			RiskScore:     74,
			Rule:          "manual_review_if_elevated_risk",
			SellerMessage: "Stripe evaluated this payment as having elevated risk, and placed it in your manual review queue.",
			OutcomeType:   "manual_review",
		},
	},

	// Declines. The charge is stored failed, then the 402 is raised.
	"tok_chargeCustomerFail": {
		Card: CardSpec{Brand: "Visa", Last4: "0341", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "card_declined",
			FailureMessage: "Your card was declined.",
			DeclineCode:    "generic_decline",
			NetworkStatus:  "declined_by_network",
			Reason:         "generic_decline",
			RiskLevel:      "normal",
			RiskScore:      4,
			SellerMessage:  "The bank did not return any further details with this decline.",
			OutcomeType:    "issuer_declined",
		},
	},
	"tok_chargeDeclined": {
		Card: CardSpec{Brand: "Visa", Last4: "0002", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "card_declined",
			FailureMessage: "Your card was declined.",
			DeclineCode:    "generic_decline",
			NetworkStatus:  "declined_by_network",
			Reason:         "generic_decline",
			RiskLevel:      "normal",
			RiskScore:      63,
			SellerMessage:  "The bank did not return any further details with this decline.",
			OutcomeType:    "issuer_declined",
		},
	},
	"tok_chargeDeclinedInsufficientFunds": {
		Card: CardSpec{Brand: "Visa", Last4: "9995", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "card_declined",
			FailureMessage: "Your card has insufficient funds.",
			DeclineCode:    "insufficient_funds",
			NetworkStatus:  "declined_by_network",
			Reason:         "generic_decline",
			RiskLevel:      "normal",
			RiskScore:      63,
			SellerMessage:  "The bank did not return any further details with this decline.",
			OutcomeType:    "issuer_declined",
		},
	},
	"tok_chargeDeclinedFraudulent": {
		Card: CardSpec{Brand: "Visa", Last4: "0019", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "card_declined",
			FailureMessage: "Your card was declined.",
			DeclineCode:    "fraudulent",
			NetworkStatus:  "not_sent_to_network",
			Reason:         "merchant_blacklist",
			RiskLevel:      "highest",
			RiskScore:      79,
			SellerMessage:  "Stripe blocked this payment.",
			OutcomeType:    "blocked",
		},
	},
	"tok_chargeDeclinedIncorrectCvc": {
		Card: CardSpec{Brand: "Visa", Last4: "0127", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "incorrect_cvc",
			FailureMessage: "Your card's security code is incorrect.",
			ErrorParam:     "cvc",
			NetworkStatus:  "declined_by_network",
			Reason:         "incorrect_cvc",
			RiskLevel:      "normal",
			RiskScore:      63,
			SellerMessage:  "The bank returned the decline code `incorrect_cvc`.",
			OutcomeType:    "issuer_declined",
		},
	},
	"tok_chargeDeclinedExpiredCard": {
		Card: CardSpec{Brand: "Visa", Last4: "0069", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "expired_card",
			FailureMessage: "Your card has expired.",
			ErrorParam:     "exp_month",
			NetworkStatus:  "declined_by_network",
			Reason:         "expired_card",
			RiskLevel:      "normal",
			RiskScore:      63,
			SellerMessage:  "The bank returned the decline code `expired_card`.",
			OutcomeType:    "issuer_declined",
		},
	},
	"tok_chargeDeclinedProcessingError": {
		Card: CardSpec{Brand: "Visa", Last4: "0119", Country: "US"},
		Decline: &DeclineSpec{
			FailureCode:    "processing_error",
			FailureMessage: "An error occurred while processing your card. Try again in a little bit.",
			NetworkStatus:  "declined_by_network",
			Reason:         "processing_error",
			RiskLevel:      "normal",
			RiskScore:      47,
			SellerMessage:  "The bank returned the decline code `processing_error`.",
			OutcomeType:    "issuer_declined",
		},
	},

	// Successful charges that trigger an asynchronous dispute.
	"tok_createDispute": {
		Card:    CardSpec{Brand: "Visa", Last4: "0259", Country: "US"},
		Dispute: &DisputeSpec{Reason: "general"},
	},
	"tok_createDisputeProductNotReceived": {
		Card:    CardSpec{Brand: "Visa", Last4: "2685", Country: "US"},
		Dispute: &DisputeSpec{Reason: "product_not_received"},
	},
	"tok_createDisputeInquiry": {
		Card:    CardSpec{Brand: "Visa", Last4: "1976", Country: "US"},
		Dispute: &DisputeSpec{Reason: "general", Inquiry: true},
	},
}

// Lookup returns the outcome for a single (non-chain) token.
func Lookup(tok string) (Outcome, bool) {
	o, ok := outcomes[tok]
	return o, ok
}

// brandNetwork maps the card-facing brand names onto the lowercase
// network identifiers used inside charge payment_method_details.
var brandNetwork = map[string]string{
	"Visa":             "visa",
	"American Express": "amex",
	"MasterCard":       "mastercard",
	"Discover":         "discover",
	"JCB":              "jcb",
	"Diners Club":      "diners",
	"Unknown":          "unknown",
}

// NetworkForBrand returns the lowercase network name for a card brand.
func NetworkForBrand(brand string) string {
	if n, ok := brandNetwork[brand]; ok {
		return n
	}
	return "unknown"
}
