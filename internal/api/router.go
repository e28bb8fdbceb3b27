// Package api exposes the simulated payment API over HTTP. Routing,
// request decoding, the error envelope and object expansion live here;
// all behavior belongs to the resources service.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/metrics"
	"github.com/paysim/paysim/internal/resources"
)

// Server binds the resources service to HTTP routes.
type Server struct {
	svc *resources.Service
}

// NewServer wraps a resources service.
func NewServer(svc *resources.Service) *Server {
	return &Server{svc: svc}
}

// Routes builds the full route table.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/accounts", s.handleAccountCreate)
	mux.HandleFunc("GET /v1/accounts", s.handleAccountList)
	mux.HandleFunc("GET /v1/accounts/{id}", s.handleAccountRetrieve)
	mux.HandleFunc("DELETE /v1/accounts/{id}", s.handleAccountDelete)

	mux.HandleFunc("POST /v1/charges", s.handleChargeCreate)
	mux.HandleFunc("GET /v1/charges", s.handleChargeList)
	mux.HandleFunc("GET /v1/charges/{id}", s.handleChargeRetrieve)
	mux.HandleFunc("POST /v1/charges/{id}", s.handleChargeUpdate)
	mux.HandleFunc("POST /v1/charges/{id}/capture", s.handleChargeCapture)

	mux.HandleFunc("POST /v1/customers", s.handleCustomerCreate)
	mux.HandleFunc("GET /v1/customers", s.handleCustomerList)
	mux.HandleFunc("GET /v1/customers/{id}", s.handleCustomerRetrieve)
	mux.HandleFunc("POST /v1/customers/{id}", s.handleCustomerUpdate)
	mux.HandleFunc("DELETE /v1/customers/{id}", s.handleCustomerDelete)
	mux.HandleFunc("POST /v1/customers/{id}/sources", s.handleCustomerCardCreate)
	mux.HandleFunc("GET /v1/customers/{id}/sources", s.handleCustomerCardList)
	mux.HandleFunc("GET /v1/customers/{id}/sources/{sourceID}", s.handleCustomerCardRetrieve)
	mux.HandleFunc("DELETE /v1/customers/{id}/sources/{sourceID}", s.handleCustomerCardDelete)

	mux.HandleFunc("GET /v1/disputes", s.handleDisputeList)
	mux.HandleFunc("GET /v1/disputes/{id}", s.handleDisputeRetrieve)

	mux.HandleFunc("POST /v1/refunds", s.handleRefundCreate)
	mux.HandleFunc("GET /v1/refunds", s.handleRefundList)
	mux.HandleFunc("GET /v1/refunds/{id}", s.handleRefundRetrieve)

	mux.HandleFunc("GET /v1/invoices/upcoming", s.handleInvoiceUpcoming)

	mux.HandleFunc("POST /v1/payment_methods", s.handlePaymentMethodCreate)
	mux.HandleFunc("GET /v1/payment_methods", s.handlePaymentMethodList)
	mux.HandleFunc("GET /v1/payment_methods/{id}", s.handlePaymentMethodRetrieve)
	mux.HandleFunc("POST /v1/payment_methods/{id}/attach", s.handlePaymentMethodAttach)
	mux.HandleFunc("POST /v1/payment_methods/{id}/detach", s.handlePaymentMethodDetach)

	mux.HandleFunc("POST /v1/products", s.handleProductCreate)
	mux.HandleFunc("GET /v1/products", s.handleProductList)
	mux.HandleFunc("GET /v1/products/{id}", s.handleProductRetrieve)
	mux.HandleFunc("POST /v1/products/{id}", s.handleProductUpdate)
	mux.HandleFunc("DELETE /v1/products/{id}", s.handleProductDelete)

	mux.HandleFunc("POST /v1/plans", s.handlePlanCreate)
	mux.HandleFunc("GET /v1/plans", s.handlePlanList)
	mux.HandleFunc("GET /v1/plans/{id}", s.handlePlanRetrieve)
	mux.HandleFunc("DELETE /v1/plans/{id}", s.handlePlanDelete)

	mux.HandleFunc("POST /v1/prices", s.handlePriceCreate)
	mux.HandleFunc("GET /v1/prices", s.handlePriceList)
	mux.HandleFunc("GET /v1/prices/{id}", s.handlePriceRetrieve)
	mux.HandleFunc("POST /v1/prices/{id}", s.handlePriceUpdate)

	mux.HandleFunc("POST /v1/tax_rates", s.handleTaxRateCreate)
	mux.HandleFunc("GET /v1/tax_rates", s.handleTaxRateList)
	mux.HandleFunc("GET /v1/tax_rates/{id}", s.handleTaxRateRetrieve)
	mux.HandleFunc("POST /v1/tax_rates/{id}", s.handleTaxRateUpdate)

	mux.HandleFunc("POST /v1/subscriptions", s.handleSubscriptionCreate)
	mux.HandleFunc("GET /v1/subscriptions", s.handleSubscriptionList)
	mux.HandleFunc("GET /v1/subscriptions/{id}", s.handleSubscriptionRetrieve)
	mux.HandleFunc("POST /v1/subscriptions/{id}", s.handleSubscriptionUpdate)
	mux.HandleFunc("DELETE /v1/subscriptions/{id}", s.handleSubscriptionCancel)

	mux.HandleFunc("POST /v1/subscription_items", s.handleSubscriptionItemCreate)
	mux.HandleFunc("GET /v1/subscription_items", s.handleSubscriptionItemList)
	mux.HandleFunc("GET /v1/subscription_items/{id}", s.handleSubscriptionItemRetrieve)
	mux.HandleFunc("POST /v1/subscription_items/{id}", s.handleSubscriptionItemUpdate)

	mux.HandleFunc("POST /v1/webhook_endpoints", s.handleWebhookEndpointCreate)
	mux.HandleFunc("GET /v1/webhook_endpoints", s.handleWebhookEndpointList)
	mux.HandleFunc("GET /v1/webhook_endpoints/{id}", s.handleWebhookEndpointRetrieve)
	mux.HandleFunc("POST /v1/webhook_endpoints/{id}", s.handleWebhookEndpointUpdate)
	mux.HandleFunc("DELETE /v1/webhook_endpoints/{id}", s.handleWebhookEndpointDelete)

	mux.HandleFunc("/", s.handleUnmatched)

	return requestLogger(mux)
}

func (s *Server) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	writeError(w, &apierr.Error{
		Status: http.StatusNotFound,
		Type:   "invalid_request_error",
		Message: fmt.Sprintf(
			"Unrecognized request URL (%s: %s). Please see https://stripe.com/docs or we can help at https://support.stripe.com/.",
			r.Method, r.URL.Path),
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
