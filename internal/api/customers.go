package api

import (
	"net/http"

	"github.com/paysim/paysim/internal/resources"
)

// customerExpandable names the customer fields stored as bare ids.
var customerExpandable = []string{"default_source"}

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.CustomerCreateParams
	expand, err := decodeBody(r, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	customer, err := s.svc.CreateCustomer(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, customer, customerExpandable, expand)
}

func (s *Server) handleCustomerRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	customer, err := s.svc.RetrieveCustomer(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, customer, customerExpandable, expandParams(r))
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.CustomerUpdateParams
	expand, err := decodeBody(r, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	customer, err := s.svc.UpdateCustomer(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, customer, customerExpandable, expand)
}

func (s *Server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := s.svc.DeleteCustomer(accountID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

func (s *Server) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	base, err := listParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.svc.ListCustomers(accountID, resources.CustomerListParams{
		ListParams: base,
		Email:      r.URL.Query().Get("email"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpandedList(w, http.StatusOK, accountID, list, customerExpandable, expandParams(r))
}

func (s *Server) handleCustomerCardCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.CardCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	card, err := s.svc.CreateCustomerCard(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleCustomerCardRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	card, err := s.svc.RetrieveCustomerCard(accountID, r.PathValue("id"), r.PathValue("sourceID"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleCustomerCardList(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	params, err := listParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.svc.ListCustomerCards(accountID, r.PathValue("id"), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCustomerCardDelete(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := s.svc.DeleteCustomerCard(accountID, r.PathValue("id"), r.PathValue("sourceID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
