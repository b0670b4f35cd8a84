// Package httprpc implements the wallet provider over HTTP JSON-RPC.
package httprpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jask/walletbar/internal/provider/jsonrpc"
	"github.com/jask/walletbar/internal/wallet"
)

// Provider posts JSON-RPC requests to a wallet bridge endpoint.
type Provider struct {
	url    string
	client *resty.Client
	log    *slog.Logger
}

// New returns a Provider for url. A zero timeout leaves requests bounded only by ctx.
func New(url string, timeout time.Duration, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Provider{url: url, client: client, log: log}
}

// Request implements wallet.Provider.
func (p *Provider) Request(ctx context.Context, args wallet.RequestArgs) ([]string, error) {
	req := jsonrpc.NewRequest(args.Method)
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(p.url)
	if err != nil {
		p.log.Debug("wallet rpc transport error", "method", args.Method, "error", err)
		return nil, fmt.Errorf("post %s: %w", args.Method, err)
	}
	if resp.IsError() {
		p.log.Debug("wallet rpc http error", "method", args.Method, "status", resp.StatusCode())
		return nil, fmt.Errorf("post %s: unexpected status %d", args.Method, resp.StatusCode())
	}

	var out jsonrpc.Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", args.Method, err)
	}
	if !out.Matches(req.ID) {
		return nil, fmt.Errorf("%s: response id mismatch", args.Method)
	}
	accounts, err := out.Accounts()
	if err != nil {
		p.log.Debug("wallet rpc rejected", "method", args.Method, "error", err)
		return nil, err
	}
	return accounts, nil
}
