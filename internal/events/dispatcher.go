package events

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/paysim/paysim/internal/metrics"
)

const apiVersion = "2020-08-27"

// Envelope wraps a resource payload for webhook delivery. Envelopes are
// ephemeral: built fresh per delivery, never stored.
type Envelope struct {
	ID              string          `json:"id"`
	Object          string          `json:"object"`
	APIVersion      string          `json:"api_version"`
	Created         int64           `json:"created"`
	Data            EnvelopeData    `json:"data"`
	Livemode        bool            `json:"livemode"`
	PendingWebhooks int             `json:"pending_webhooks"`
	Request         EnvelopeRequest `json:"request"`
	Type            string          `json:"type"`
}

// EnvelopeData holds the serialized triggering resource.
type EnvelopeData struct {
	Object json.RawMessage `json:"object"`
}

// EnvelopeRequest identifies the (simulated) originating request.
type EnvelopeRequest struct {
	ID             string `json:"id"`
	IdempotencyKey string `json:"idempotency_key"`
}

// Endpoint is the delivery view of a registered webhook endpoint.
type Endpoint struct {
	ID            string
	URL           string
	Secret        string
	EnabledEvents []string
}

// EndpointSource lists the webhook endpoints registered for an account.
type EndpointSource interface {
	Endpoints(accountID string) []Endpoint
}

// Dispatcher fans events out to an account's matching endpoints. Posting
// is fire-and-forget: it never blocks the caller and delivery failures
// are logged, not retried and not surfaced.
type Dispatcher struct {
	source EndpointSource
	client *http.Client
	sched  Scheduler
	now    func() time.Time
}

// Option tweaks a Dispatcher.
type Option func(*Dispatcher)

// WithClient replaces the outbound HTTP client.
func WithClient(c *http.Client) Option {
	return func(d *Dispatcher) { d.client = c }
}

// WithScheduler replaces the delayed-task scheduler.
func WithScheduler(s Scheduler) Option {
	return func(d *Dispatcher) { d.sched = s }
}

// WithNow replaces the time source used for envelope timestamps.
func WithNow(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher builds a dispatcher over the given endpoint registry.
func NewDispatcher(source EndpointSource, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		source: source,
		client: &http.Client{Timeout: 30 * time.Second},
		sched:  TimerScheduler{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Post serializes the payload now and delivers it asynchronously. The
// payload is captured at call time, so later mutations of the resource do
// not change what subscribers see.
func (d *Dispatcher) Post(accountID, eventType string, payload any) {
	d.PostAfter(0, accountID, eventType, payload)
}

// PostAfter is Post with a delivery delay. The delayed event fires
// exactly once and carries the resource state from schedule time.
func (d *Dispatcher) PostAfter(delay time.Duration, accountID, eventType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("eventType", eventType).Msg("Failed to serialize event payload")
		return
	}
	d.sched.Schedule(delay, func() {
		d.fanOut(accountID, eventType, raw)
	})
}

func (d *Dispatcher) fanOut(accountID, eventType string, object json.RawMessage) {
	var g errgroup.Group
	for _, endpoint := range d.source.Endpoints(accountID) {
		if !Matches(endpoint.EnabledEvents, eventType) {
			continue
		}
		g.Go(func() error {
			d.deliver(accountID, endpoint, eventType, object)
			return nil
		})
	}
	_ = g.Wait()
}

func (d *Dispatcher) deliver(accountID string, endpoint Endpoint, eventType string, object json.RawMessage) {
	now := d.now()
	envelope := Envelope{
		ID:         "evt_" + ulid.Make().String(),
		Object:     "event",
		APIVersion: apiVersion,
		Created:    now.Unix(),
		Data:       EnvelopeData{Object: object},
		Request: EnvelopeRequest{
			ID:             "req_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14],
			IdempotencyKey: "stripe-node-retry-" + uuid.NewString(),
		},
		Type: eventType,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		log.Error().Err(err).Str("eventType", eventType).Msg("Failed to serialize event envelope")
		return
	}

	req, err := http.NewRequest(http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("url", endpoint.URL).Msg("Failed to build webhook request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, Signature(now, body, endpoint.Secret))

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		log.Error().
			Err(err).
			Str("account", accountID).
			Str("endpoint", endpoint.ID).
			Str("eventType", eventType).
			Msg("Webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		metrics.WebhookDeliveriesTotal.WithLabelValues("rejected").Inc()
		log.Warn().
			Str("account", accountID).
			Str("endpoint", endpoint.ID).
			Str("eventType", eventType).
			Int("status", resp.StatusCode).
			Msg("Webhook receiver returned non-success status")
		return
	}
	metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
	log.Debug().
		Str("account", accountID).
		Str("endpoint", endpoint.ID).
		Str("eventType", eventType).
		Msg("Webhook delivered")
}

// Matches reports whether an endpoint's enabled-event set covers the
// event type. "*" subscribes to everything; patterns may use wildcards
// within a segment, e.g. "customer.subscription.*".
func Matches(enabledEvents []string, eventType string) bool {
	for _, pattern := range enabledEvents {
		if pattern == "*" || wildcard.Match(pattern, eventType) {
			return true
		}
	}
	return false
}
