package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChain(t *testing.T) {
	assert.False(t, IsChain("tok_visa"))
	assert.True(t, IsChain("tok_visa|tok_chargeDeclined"))
	assert.True(t, IsChain("|"))
}

func TestEffective(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single token passes through", "tok_visa", "tok_visa"},
		{"last element wins", "tok_visa|tok_chargeDeclined", "tok_chargeDeclined"},
		{"three elements", "tok_visa|tok_mastercard|tok_amex", "tok_amex"},
		{"trailing empty segment skipped", "tok_visa|tok_chargeDeclined|", "tok_chargeDeclined"},
		{"whitespace segment skipped", "tok_visa|  ", "tok_visa"},
		{"unknown effective token preserved", "tok_visa|tok_bogus", "tok_bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Effective(tt.in))
		})
	}
}
