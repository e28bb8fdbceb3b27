package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/store"
)

// accountHeader selects the connected account a request acts on.
const accountHeader = "Stripe-Account"

// account resolves the request's account scope. A connected-account
// header is validated against the platform scope before use.
func (s *Server) account(r *http.Request) (string, error) {
	hdr := r.Header.Get(accountHeader)
	if hdr == "" {
		return s.svc.DefaultAccount(), nil
	}
	if _, err := s.svc.RetrieveAccount(s.svc.DefaultAccount(), hdr, "account"); err != nil {
		return "", err
	}
	return hdr, nil
}

// decodeBody unmarshals the JSON body into dst and returns any
// expansion paths it carried. An empty body is an empty request.
func decodeBody(r *http.Request, dst any) ([]string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, apierr.Validation("", "Could not read request body.", "")
	}
	defer r.Body.Close()

	if len(bytes.TrimSpace(body)) == 0 {
		return expandParams(r), nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, apierr.Validation("", "Invalid request body: "+err.Error(), "")
	}
	var envelope struct {
		Expand []string `json:"expand"`
	}
	_ = json.Unmarshal(body, &envelope)
	return append(envelope.Expand, expandParams(r)...), nil
}

// expandParams reads expansion paths from the query string.
func expandParams(r *http.Request) []string {
	q := r.URL.Query()
	return append(q["expand[]"], q["expand"]...)
}

// listParams reads the shared cursor pagination query parameters.
func listParams(r *http.Request) (store.ListParams, error) {
	q := r.URL.Query()
	params := store.ListParams{
		StartingAfter: q.Get("starting_after"),
		EndingBefore:  q.Get("ending_before"),
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return params, apierr.Validation("parameter_invalid_integer", "Invalid integer: "+v, "limit")
		}
		params.Limit = limit
	}
	return params, nil
}

// boolFilter reads an optional true/false query parameter.
func boolFilter(r *http.Request, name string) (*bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil, apierr.Validation("parameter_invalid_boolean", "Invalid boolean: "+v, name)
	}
	return &parsed, nil
}
