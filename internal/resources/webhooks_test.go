package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

func TestCreateWebhookEndpoint(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	endpoint, err := svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		EnabledEvents: []string{"charge.succeeded"},
		URL:           "http://localhost:9999/webhook",
	})
	require.NoError(t, err)
	assert.Equal(t, "webhook_endpoint", endpoint.Object)
	assert.Equal(t, "enabled", endpoint.Status)
	assert.True(t, strings.HasPrefix(endpoint.Secret, "whsec_"))

	var apiErr *apierr.Error
	_, err = svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		EnabledEvents: []string{"*"},
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "parameter_missing", apiErr.Code)

	_, err = svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		URL: "http://localhost:9999/webhook",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "parameter_missing", apiErr.Code)
}

func TestWebhookEndpointSeededSecret(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	endpoint, err := svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		ID:            "we_seeded",
		EnabledEvents: []string{"*"},
		Secret:        "whsec_deterministic",
		URL:           "http://localhost:9999/webhook",
	})
	require.NoError(t, err)
	assert.Equal(t, "we_seeded", endpoint.ID)
	assert.Equal(t, "whsec_deterministic", endpoint.Secret)

	_, err = svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		ID:            "we_seeded",
		EnabledEvents: []string{"*"},
		URL:           "http://localhost:9999/other",
	})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "resource_already_exists", apiErr.Code)
}

func TestWebhookEndpointLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	endpoint, err := svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		EnabledEvents: []string{"charge.succeeded"},
		URL:           "http://localhost:9999/webhook",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateWebhookEndpoint(account, endpoint.ID, &WebhookEndpointUpdateParams{
		Disabled:      models.Bool(true),
		EnabledEvents: []string{"*"},
		URL:           models.String("http://localhost:9999/v2"),
	})
	require.NoError(t, err)
	assert.Same(t, endpoint, updated)
	assert.Equal(t, "disabled", endpoint.Status)
	assert.Equal(t, []string{"*"}, endpoint.EnabledEvents)
	assert.Equal(t, "http://localhost:9999/v2", endpoint.URL)

	list, err := svc.ListWebhookEndpoints(account, store.ListParams{})
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)

	deleted, err := svc.DeleteWebhookEndpoint(account, endpoint.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	_, err = svc.RetrieveWebhookEndpoint(account, endpoint.ID, "id")
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestEndpointsSkipsDisabled(t *testing.T) {
	svc, _ := newTestService(t)
	account := svc.DefaultAccount()

	enabled, err := svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		EnabledEvents: []string{"*"},
		URL:           "http://localhost:9999/a",
	})
	require.NoError(t, err)
	disabled, err := svc.CreateWebhookEndpoint(account, &WebhookEndpointCreateParams{
		EnabledEvents: []string{"*"},
		URL:           "http://localhost:9999/b",
	})
	require.NoError(t, err)
	_, err = svc.UpdateWebhookEndpoint(account, disabled.ID, &WebhookEndpointUpdateParams{
		Disabled: models.Bool(true),
	})
	require.NoError(t, err)

	endpoints := svc.Endpoints(account)
	require.Len(t, endpoints, 1)
	assert.Equal(t, enabled.ID, endpoints[0].ID)
}
