package api

import (
	"net/http"

	"github.com/paysim/paysim/internal/resources"
)

func (s *Server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.ProductCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	product, err := s.svc.CreateProduct(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleProductRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	product, err := s.svc.RetrieveProduct(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.ProductUpdateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	product, err := s.svc.UpdateProduct(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := s.svc.DeleteProduct(accountID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
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
	active, err := boolFilter(r, "active")
	if err != nil {
		writeError(w, err)
		return
	}
	shippable, err := boolFilter(r, "shippable")
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	list, err := s.svc.ListProducts(accountID, resources.ProductListParams{
		ListParams: base,
		Active:     active,
		IDs:        append(q["ids[]"], q["ids"]...),
		Shippable:  shippable,
		Type:       q.Get("type"),
		URL:        q.Get("url"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePlanCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.PlanCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	plan, err := s.svc.CreatePlan(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handlePlanRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	plan, err := s.svc.RetrievePlan(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handlePlanDelete(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := s.svc.DeletePlan(accountID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

func (s *Server) handlePlanList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListPlans(accountID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePriceCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.PriceCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	price, err := s.svc.CreatePrice(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

func (s *Server) handlePriceRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	price, err := s.svc.RetrievePrice(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

func (s *Server) handlePriceUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.PriceUpdateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	price, err := s.svc.UpdatePrice(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

func (s *Server) handlePriceList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListPrices(accountID, resources.PriceListParams{
		ListParams: base,
		Product:    q.Get("product"),
		Type:       q.Get("type"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleTaxRateCreate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.TaxRateCreateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	rate, err := s.svc.CreateTaxRate(accountID, &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (s *Server) handleTaxRateRetrieve(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rate, err := s.svc.RetrieveTaxRate(accountID, r.PathValue("id"), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (s *Server) handleTaxRateUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, err := s.account(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var params resources.TaxRateUpdateParams
	if _, err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}
	rate, err := s.svc.UpdateTaxRate(accountID, r.PathValue("id"), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (s *Server) handleTaxRateList(w http.ResponseWriter, r *http.Request) {
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
	list, err := s.svc.ListTaxRates(accountID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
