package resources

import (
	apierr "github.com/paysim/paysim/internal/errors"
)

// ResolveExpansion looks up the object behind an expandable id field.
// The transport layer decides which fields are expandable per route;
// this only knows how to chase each field kind.
func (s *Service) ResolveExpansion(accountID, field, id string) (any, error) {
	switch field {
	case "customer":
		return s.RetrieveCustomer(accountID, id, field)
	case "dispute":
		return s.RetrieveDispute(accountID, id, field)
	case "default_source":
		card, ok := s.cards.Get(accountID, id)
		if !ok {
			return nil, apierr.NotFound("source", id, field)
		}
		return card, nil
	case "latest_invoice":
		// Invoices are never stored, so the id cannot be chased.
		return nil, nil
	}
	return nil, nil
}
