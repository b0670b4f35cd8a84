package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrProviderUnavailable means no wallet provider was detected.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrAuthorizationFailed means the provider rejected or failed the account request.
	ErrAuthorizationFailed = errors.New("wallet authorization failed")
	// ErrConnectInFlight means a connect was requested while another is pending.
	ErrConnectInFlight = errors.New("wallet connect already in flight")
	// ErrClosed means the connector was closed.
	ErrClosed = errors.New("wallet connector closed")
)

// Connector owns the connection state and performs the authorization handshake.
//
// Every failure is folded into State.Err; returned errors exist so callers can
// tell outcomes apart without parsing the user-facing message.
type Connector struct {
	host Host
	log  *slog.Logger

	mu     sync.Mutex
	state  State
	gen    uint64
	closed bool
}

// Option configures a Connector.
type Option func(*Connector)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Connector) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a disconnected Connector. A nil host behaves as if no provider is installed.
func New(host Host, opts ...Option) *Connector {
	c := &Connector{
		host: host,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Attempt is a single in-flight authorization request.
type Attempt struct {
	ID       string
	provider Provider
	token    uint64
}

// Result is the outcome of an Attempt, applied with Connector.Resolve.
type Result struct {
	AttemptID string
	Accounts  []string
	Err       error

	token uint64
}

// Begin starts a connect attempt. On success the state is Connecting and the
// returned Attempt must be run and resolved. When no provider is available the
// error message is set and ErrProviderUnavailable is returned.
func (c *Connector) Begin() (*Attempt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if c.state.IsConnecting {
		c.log.Debug("connect ignored, request already in flight")
		return nil, ErrConnectInFlight
	}

	p, ok := c.lookupProvider()
	if !ok {
		c.state.Err = MsgInstallProvider
		c.log.Info("wallet provider not detected")
		return nil, ErrProviderUnavailable
	}

	c.gen++
	c.state.IsConnecting = true
	c.state.Err = ""
	a := &Attempt{ID: uuid.NewString(), provider: p, token: c.gen}
	c.log.Info("wallet connect started", "attempt", a.ID)
	return a, nil
}

func (c *Connector) lookupProvider() (Provider, bool) {
	if c.host == nil {
		return nil, false
	}
	p, ok := c.host.Provider()
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// Run performs the provider request. It touches no connector state and is safe
// to call from any goroutine. A panicking provider is reported as a failure.
func (a *Attempt) Run(ctx context.Context) (res Result) {
	res = Result{AttemptID: a.ID, token: a.token}
	defer func() {
		if r := recover(); r != nil {
			res.Accounts = nil
			res.Err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	accounts, err := a.provider.Request(ctx, RequestArgs{Method: MethodRequestAccounts})
	if err != nil {
		res.Err = err
		return res
	}
	res.Accounts = append([]string(nil), accounts...)
	return res
}

// Resolve applies a Result. It reports false, without writing, when the result
// belongs to a stale attempt or the connector was closed.
func (c *Connector) Resolve(res Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || res.token != c.gen || !c.state.IsConnecting {
		c.log.Debug("discarding stale wallet result", "attempt", res.AttemptID)
		return false
	}

	c.state.IsConnecting = false
	if res.Err != nil {
		c.state.Err = MsgConnectFailed
		c.log.Info("wallet connect failed", "attempt", res.AttemptID)
		return true
	}
	c.state.Accounts = res.Accounts
	c.state.Err = ""
	c.log.Info("wallet connect resolved", "attempt", res.AttemptID, "accounts", len(res.Accounts))
	return true
}

// Connect runs a full attempt and blocks until the provider answers.
func (c *Connector) Connect(ctx context.Context) error {
	a, err := c.Begin()
	if err != nil {
		return err
	}
	res := a.Run(ctx)
	if !c.Resolve(res) {
		return ErrClosed
	}
	if res.Err != nil {
		return fmt.Errorf("%w: %w", ErrAuthorizationFailed, res.Err)
	}
	return nil
}

// Disconnect clears accounts and error. It does not touch an in-flight request
// and does not revoke authorization with the provider.
func (c *Connector) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Accounts = nil
	c.state.Err = ""
	c.log.Info("wallet disconnected")
}

// Close tears the connector down. Results arriving afterwards are discarded.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.gen++
}
