// Package provider detects and builds the wallet provider available to the app.
package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jask/walletbar/internal/provider/httprpc"
	"github.com/jask/walletbar/internal/provider/wsrpc"
	"github.com/jask/walletbar/internal/wallet"
)

// Transport kinds.
const (
	TransportNone   = "none"
	TransportStatic = "static"
	TransportHTTP   = "http"
	TransportWS     = "ws"
)

// Transports lists every accepted transport kind.
var Transports = []string{TransportNone, TransportStatic, TransportHTTP, TransportWS}

// EnvURL overrides Settings.URL when present in the environment at lookup time.
const EnvURL = "WALLETBAR_PROVIDER_URL"

// Settings describes how to reach the wallet.
type Settings struct {
	Transport string
	URL       string
	Timeout   time.Duration
	Accounts  []string // static transport only
	Reject    bool     // static transport only: fail every request
}

// Host implements wallet.Host. Every lookup builds a new provider value, so
// changes to the environment are observed on the next connect.
type Host struct {
	settings Settings
	lookup   func(string) (string, bool)
	log      *slog.Logger
}

func NewHost(s Settings, log *slog.Logger) *Host {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Host{settings: s, lookup: os.LookupEnv, log: log}
}

// Provider implements wallet.Host.
func (h *Host) Provider() (wallet.Provider, bool) {
	s := h.settings
	// empty values are ignored, matching viper's AutomaticEnv
	if v, ok := h.lookup(EnvURL); ok && strings.TrimSpace(v) != "" {
		s.URL = strings.TrimSpace(v)
	}

	switch strings.ToLower(strings.TrimSpace(s.Transport)) {
	case TransportStatic:
		if s.Reject {
			return Failing(), true
		}
		return NewStatic(s.Accounts...), true
	case TransportHTTP:
		if s.URL == "" {
			return nil, false
		}
		return httprpc.New(s.URL, s.Timeout, h.log), true
	case TransportWS:
		if s.URL == "" {
			return nil, false
		}
		return wsrpc.New(s.URL, s.Timeout, h.log), true
	default:
		return nil, false
	}
}

// ErrRejected is what a failing Static provider returns.
var ErrRejected = errors.New("user rejected the request")

// Static answers every request with a fixed account list.
type Static struct {
	accounts []string
	err      error
}

func NewStatic(accounts ...string) *Static {
	return &Static{accounts: append([]string(nil), accounts...)}
}

// Failing returns a Static provider that always rejects.
func Failing() *Static {
	return &Static{err: ErrRejected}
}

func (s *Static) Request(ctx context.Context, args wallet.RequestArgs) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return append([]string(nil), s.accounts...), nil
}
