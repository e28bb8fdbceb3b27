package api

import (
	"net/http"

	"github.com/paysim/paysim/internal/resources"
)

func (s *Server) handleAccountCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.AccountCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	account, err := s.svc.CreateAccount(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleAccountRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := s.svc.RetrieveAccount(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleAccountList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListAccounts(accountID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAccountDelete(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := s.svc.DeleteAccount(accountID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
