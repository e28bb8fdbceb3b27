package api

import (
	"net/http"

	"github.com/paysim/paysim/internal/resources"
)

// subscriptionExpandable names the subscription fields stored as bare
// ids. latest_invoice is accepted but never resolves, since invoices
// are not stored.
var subscriptionExpandable = []string{"customer", "latest_invoice"}

func (s *Server) handleSubscriptionCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.SubscriptionCreateParams
	expand, err := decodeBody(r, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	sub, err := s.svc.CreateSubscription(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, sub, subscriptionExpandable, expand)
}

func (s *Server) handleSubscriptionRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sub, err := s.svc.RetrieveSubscription(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, sub, subscriptionExpandable, expandParams(r))
}

func (s *Server) handleSubscriptionUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.SubscriptionUpdateParams
	expand, err := decodeBody(r, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	sub, err := s.svc.UpdateSubscription(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, sub, subscriptionExpandable, expand)
}

func (s *Server) handleSubscriptionCancel(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sub, err := s.svc.CancelSubscription(accountID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) handleSubscriptionList(w http.ResponseWriter, r *http.Request) {
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
	q := r.URL.Query()
	list, err := s.svc.ListSubscriptions(accountID, resources.SubscriptionListParams{
		ListParams: base,
		Customer:   q.Get("customer"),
		Price:      q.Get("price"),
		Status:     q.Get("status"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpandedList(w, http.StatusOK, accountID, list, subscriptionExpandable, expandParams(r))
}

func (s *Server) handleSubscriptionItemCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.SubscriptionItemCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	item, err := s.svc.CreateSubscriptionItem(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleSubscriptionItemRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := s.svc.RetrieveSubscriptionItem(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleSubscriptionItemUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.SubscriptionItemUpdateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	item, err := s.svc.UpdateSubscriptionItem(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleSubscriptionItemList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListSubscriptionItems(accountID, resources.SubscriptionItemListParams{
		ListParams:   base,
		Subscription: r.URL.Query().Get("subscription"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
