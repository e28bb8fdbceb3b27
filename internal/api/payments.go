package api

import (
	"net/http"

	"github.com/paysim/paysim/internal/resources"
)

func (s *Server) handleRefundCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.RefundCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	refund, err := s.svc.CreateRefund(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refund)
}

func (s *Server) handleRefundRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	refund, err := s.svc.RetrieveRefund(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refund)
}

func (s *Server) handleRefundList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListRefunds(accountID, resources.RefundListParams{
		ListParams: base,
		Charge:     r.URL.Query().Get("charge"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDisputeRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	dispute, err := s.svc.RetrieveDispute(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dispute)
}

func (s *Server) handleDisputeList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListDisputes(accountID, resources.DisputeListParams{
		ListParams: base,
		Charge:     r.URL.Query().Get("charge"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleInvoiceUpcoming(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	invoice, err := s.svc.UpcomingInvoice(accountID, r.URL.Query().Get("subscription"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (s *Server) handlePaymentMethodCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.PaymentMethodCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	pm, err := s.svc.CreatePaymentMethod(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pm)
}

func (s *Server) handlePaymentMethodRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pm, err := s.svc.RetrievePaymentMethod(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pm)
}

func (s *Server) handlePaymentMethodAttach(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.PaymentMethodAttachParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	pm, err := s.svc.AttachPaymentMethod(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pm)
}

func (s *Server) handlePaymentMethodDetach(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pm, err := s.svc.DetachPaymentMethod(accountID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pm)
}

func (s *Server) handlePaymentMethodList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListPaymentMethods(accountID, resources.PaymentMethodListParams{
		ListParams: base,
		Customer:   q.Get("customer"),
		Type:       q.Get("type"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
