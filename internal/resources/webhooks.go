package resources

import (
	"strings"

	"github.com/google/uuid"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/events"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// WebhookEndpointCreateParams registers a webhook endpoint. Seeding id
// and secret makes signature verification deterministic in tests.
type WebhookEndpointCreateParams struct {
	ID            string         `json:"id"`
	APIVersion    *string        `json:"api_version"`
	Description   *string        `json:"description"`
	EnabledEvents []string       `json:"enabled_events"`
	Metadata      map[string]any `json:"metadata"`
	Secret        string         `json:"secret"`
	URL           string         `json:"url"`
}

// WebhookEndpointUpdateParams carries the mutable endpoint fields.
type WebhookEndpointUpdateParams struct {
	Description   *string        `json:"description"`
	Disabled      *bool          `json:"disabled"`
	EnabledEvents []string       `json:"enabled_events"`
	Metadata      map[string]any `json:"metadata"`
	URL           *string        `json:"url"`
}

// CreateWebhookEndpoint registers an endpoint for the account's events.
func (s *Service) CreateWebhookEndpoint(accountID string, params *WebhookEndpointCreateParams) (*models.WebhookEndpoint, error) {
	if params.URL == "" {
		return nil, apierr.MissingParam("Missing required param: url.")
	}
	if len(params.EnabledEvents) == 0 {
		return nil, apierr.MissingParam("Missing required param: enabled_events.")
	}
	id := params.ID
	if id == "" {
		id = newID("we")
	}
	if s.webhooks.Contains(accountID, id) {
		return nil, apierr.Conflict("webhook_endpoint")
	}
	secret := params.Secret
	if secret == "" {
		secret = "whsec_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	endpoint := &models.WebhookEndpoint{
		ID:            id,
		Object:        "webhook_endpoint",
		APIVersion:    params.APIVersion,
		Created:       s.now().Unix(),
		Description:   params.Description,
		EnabledEvents: params.EnabledEvents,
		Metadata:      coerceMetadata(params.Metadata),
		Secret:        secret,
		Status:        "enabled",
		URL:           params.URL,
	}
	s.webhooks.Put(accountID, endpoint)
	return endpoint, nil
}

// RetrieveWebhookEndpoint returns the stored endpoint.
func (s *Service) RetrieveWebhookEndpoint(accountID, id, param string) (*models.WebhookEndpoint, error) {
	endpoint, ok := s.webhooks.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("webhook_endpoint", id, param)
	}
	return endpoint, nil
}

// UpdateWebhookEndpoint mutates the stored record in place.
func (s *Service) UpdateWebhookEndpoint(accountID, id string, params *WebhookEndpointUpdateParams) (*models.WebhookEndpoint, error) {
	endpoint, err := s.RetrieveWebhookEndpoint(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.Description != nil {
		endpoint.Description = params.Description
	}
	if params.Disabled != nil {
		if *params.Disabled {
			endpoint.Status = "disabled"
		} else {
			endpoint.Status = "enabled"
		}
	}
	if params.EnabledEvents != nil {
		endpoint.EnabledEvents = params.EnabledEvents
	}
	if params.Metadata != nil {
		endpoint.Metadata = coerceMetadata(params.Metadata)
	}
	if params.URL != nil {
		endpoint.URL = *params.URL
	}
	return endpoint, nil
}

// DeleteWebhookEndpoint removes the endpoint.
func (s *Service) DeleteWebhookEndpoint(accountID, id string) (*Deleted, error) {
	if _, err := s.RetrieveWebhookEndpoint(accountID, id, "id"); err != nil {
		return nil, err
	}
	s.webhooks.Remove(accountID, id)
	return &Deleted{ID: id, Object: "webhook_endpoint", Deleted: true}, nil
}

// ListWebhookEndpoints pages the account's endpoints.
func (s *Service) ListWebhookEndpoints(accountID string, params store.ListParams) (*models.List[*models.WebhookEndpoint], error) {
	page, hasMore, err := store.ApplyListOptions(s.webhooks.GetAll(accountID), params, resolver(s.webhooks, accountID, "webhook_endpoint"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/webhook_endpoints", page, hasMore), nil
}

// Endpoints implements events.EndpointSource over the registered,
// enabled webhook endpoints.
func (s *Service) Endpoints(accountID string) []events.Endpoint {
	var out []events.Endpoint
	for _, w := range s.webhooks.GetAll(accountID) {
		if w.Status != "enabled" {
			continue
		}
		out = append(out, events.Endpoint{
			ID:            w.ID,
			URL:           w.URL,
			Secret:        w.Secret,
			EnabledEvents: w.EnabledEvents,
		})
	}
	return out
}
