package resources

import (
	"fmt"
	"strings"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/token"
)

// cardFromToken synthesizes the deterministic card a source token stands
// for. tok must already be chain-reduced. Ephemeral tokens produce a
// card that is never indexed, so nothing about the charge survives.
func (s *Service) cardFromToken(accountID, tok string) (*models.Card, error) {
	outcome, ok := token.Lookup(tok)
	if !ok || outcome.Precharge != nil {
		return nil, apierr.Validation("", fmt.Sprintf("Unrecognized source token: %s", tok), "source")
	}

	funding := "credit"
	switch {
	case strings.Contains(tok, "_debit"):
		funding = "debit"
	case strings.Contains(tok, "_prepaid"):
		funding = "prepaid"
	}

	now := s.now()
	card := &models.Card{
		ID:          newID("card"),
		Object:      "card",
		Brand:       outcome.Card.Brand,
		Country:     outcome.Card.Country,
		ExpMonth:    int(now.Month()),
		ExpYear:     now.Year() + 1,
		Fingerprint: fingerprint(),
		Funding:     funding,
		Last4:       outcome.Card.Last4,
		Metadata:    models.Metadata{},
	}
	if !outcome.Ephemeral {
		s.cards.Put(accountID, card)
		s.rememberCardToken(card.ID, tok)
	}
	return card, nil
}
