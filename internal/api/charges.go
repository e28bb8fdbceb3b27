package api

import (
	"net/http"

	"github.com/paysim/paysim/internal/resources"
)

// chargeExpandable are the charge fields stored as bare ids that a
// caller may expand.
var chargeExpandable = []string{"customer", "dispute"}

func (s *Server) handleChargeCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.ChargeCreateParams
	expand, err := decodeBody(r, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	charge, err := s.svc.CreateCharge(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, charge, chargeExpandable, expand)
}

func (s *Server) handleChargeRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	charge, err := s.svc.RetrieveCharge(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, charge, chargeExpandable, expandParams(r))
}

func (s *Server) handleChargeUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.ChargeUpdateParams
	expand, err := decodeBody(r, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	charge, err := s.svc.UpdateCharge(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpanded(w, http.StatusOK, accountID, charge, chargeExpandable, expand)
}

func (s *Server) handleChargeCapture(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.ChargeCaptureParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	charge, err := s.svc.CaptureCharge(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, charge)
}

func (s *Server) handleChargeList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListCharges(accountID, resources.ChargeListParams{
		ListParams: base,
		Customer:   r.URL.Query().Get("customer"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.respondExpandedList(w, http.StatusOK, accountID, list, chargeExpandable, expandParams(r))
}
