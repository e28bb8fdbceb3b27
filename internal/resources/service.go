// Package resources implements the simulated payment resources and their
// operations over the in-memory store. All state is owned here: one typed
// store per resource kind, the card-token side table, and the event
// dispatcher that fans resource lifecycle events out to webhook
// endpoints.
package resources

import (
	"net/http"
	"sync"
	"time"

	"github.com/paysim/paysim/internal/events"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// DefaultAccountID identifies the platform operator's own account.
const DefaultAccountID = "acct_default"

// Delays for the simulator's asynchronous follow-ups.
const (
	disputeCreateDelay = 500 * time.Millisecond
	invoicePaidDelay   = 3 * time.Second
)

// Service owns every resource collection and implements all operations.
// Stores hand out shared record instances; operations mutate records in
// place and those mutations are visible to every later reader. That is
// the simulation contract, not an accident.
type Service struct {
	defaultAccount string

	accounts  *store.Data[*models.Account]
	cards     *store.Data[*models.Card]
	charges   *store.Data[*models.Charge]
	customers *store.Data[*models.Customer]
	disputes  *store.Data[*models.Dispute]
	pms       *store.Data[*models.PaymentMethod]
	plans     *store.Data[*models.Plan]
	prices    *store.Data[*models.Price]
	products  *store.Data[*models.Product]
	refunds   *store.Data[*models.Refund]
	subs      *store.Data[*models.Subscription]
	subItems  *store.Data[*models.SubscriptionItem]
	taxRates  *store.Data[*models.TaxRate]
	webhooks  *store.Data[*models.WebhookEndpoint]

	dispatcher    *events.Dispatcher
	sched         events.Scheduler
	now           func() time.Time
	webhookClient *http.Client

	extrasMu   sync.Mutex
	cardTokens map[string]string // card id -> originating source token
}

// Option configures a Service.
type Option func(*Service)

// WithScheduler replaces the delayed-task scheduler, shared by the
// dispatcher and the service's own follow-ups.
func WithScheduler(s events.Scheduler) Option {
	return func(svc *Service) { svc.sched = s }
}

// WithNow replaces the time source.
func WithNow(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

// WithWebhookClient replaces the outbound webhook HTTP client.
func WithWebhookClient(c *http.Client) Option {
	return func(svc *Service) { svc.webhookClient = c }
}

// WithDefaultAccount changes the platform account id.
func WithDefaultAccount(id string) Option {
	return func(svc *Service) { svc.defaultAccount = id }
}

// New builds a Service with the platform account seeded.
func New(opts ...Option) *Service {
	s := &Service{
		defaultAccount: DefaultAccountID,
		accounts:       store.NewData[*models.Account](),
		cards:          store.NewData[*models.Card](),
		charges:        store.NewData[*models.Charge](),
		customers:      store.NewData[*models.Customer](),
		disputes:       store.NewData[*models.Dispute](),
		pms:            store.NewData[*models.PaymentMethod](),
		plans:          store.NewData[*models.Plan](),
		prices:         store.NewData[*models.Price](),
		products:       store.NewData[*models.Product](),
		refunds:        store.NewData[*models.Refund](),
		subs:           store.NewData[*models.Subscription](),
		subItems:       store.NewData[*models.SubscriptionItem](),
		taxRates:       store.NewData[*models.TaxRate](),
		webhooks:       store.NewData[*models.WebhookEndpoint](),
		sched:          events.TimerScheduler{},
		now:            time.Now,
		cardTokens:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	dispatcherOpts := []events.Option{
		events.WithScheduler(s.sched),
		events.WithNow(s.now),
	}
	if s.webhookClient != nil {
		dispatcherOpts = append(dispatcherOpts, events.WithClient(s.webhookClient))
	}
	s.dispatcher = events.NewDispatcher(s, dispatcherOpts...)

	s.accounts.Put(s.defaultAccount, s.newAccount(s.defaultAccount, &AccountCreateParams{}))
	return s
}

// DefaultAccount returns the platform account id.
func (s *Service) DefaultAccount() string {
	return s.defaultAccount
}

func (s *Service) rememberCardToken(cardID, tok string) {
	s.extrasMu.Lock()
	defer s.extrasMu.Unlock()
	s.cardTokens[cardID] = tok
}

func (s *Service) cardToken(cardID string) string {
	s.extrasMu.Lock()
	defer s.extrasMu.Unlock()
	return s.cardTokens[cardID]
}
