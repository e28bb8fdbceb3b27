package resources

import (
	"fmt"
	"strings"

	apierr "github.com/paysim/paysim/internal/errors"
)

// supportedCurrencies is the subset of ISO 4217 codes the simulator
// accepts, sorted for the rejection message.
var supportedCurrencies = []string{
	"aed", "aud", "bgn", "brl", "cad", "chf", "czk", "dkk", "eur", "gbp",
	"hkd", "huf", "inr", "jpy", "mxn", "myr", "nok", "nzd", "pln", "ron",
	"sek", "sgd", "thb", "try", "usd", "zar",
}

var currencySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		set[c] = struct{}{}
	}
	return set
}()

func verifyCurrency(code string) *apierr.Error {
	if _, ok := currencySet[code]; !ok {
		return apierr.Validation("", fmt.Sprintf(
			"Invalid currency: %s. Stripe currently supports these currencies: %s",
			code, strings.Join(supportedCurrencies, ", ")), "currency")
	}
	return nil
}
