// Package wsrpc implements the wallet provider over a WebSocket JSON-RPC bridge.
//
// A connection is dialed per request and closed once the matching response
// arrives, so the provider holds no long-lived session.
package wsrpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/jask/walletbar/internal/provider/jsonrpc"
	"github.com/jask/walletbar/internal/wallet"
)

// Provider speaks JSON-RPC over WebSocket.
type Provider struct {
	url     string
	timeout time.Duration
	log     *slog.Logger
}

func New(url string, timeout time.Duration, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Provider{url: url, timeout: timeout, log: log}
}

// Request implements wallet.Provider.
func (p *Provider) Request(ctx context.Context, args wallet.RequestArgs) ([]string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ws, _, err := websocket.Dial(ctx, p.url, nil)
	if err != nil {
		p.log.Debug("wallet bridge dial failed", "url", p.url, "error", err)
		return nil, fmt.Errorf("dial wallet bridge: %w", err)
	}
	defer ws.CloseNow()

	req := jsonrpc.NewRequest(args.Method)
	if err := wsjson.Write(ctx, ws, req); err != nil {
		return nil, fmt.Errorf("write %s: %w", args.Method, err)
	}

	for {
		var resp jsonrpc.Response
		if err := wsjson.Read(ctx, ws, &resp); err != nil {
			p.log.Debug("wallet bridge read failed", "method", args.Method, "error", err)
			return nil, fmt.Errorf("read %s: %w", args.Method, err)
		}
		// a null-id error answers the only outstanding request
		nullIDErr := resp.Error != nil && resp.Unaddressed()
		if !resp.Matches(req.ID) && !nullIDErr {
			// notifications such as accountsChanged share the socket
			continue
		}
		accounts, err := resp.Accounts()
		if err != nil {
			p.log.Debug("wallet bridge rejected", "method", args.Method, "error", err)
			return nil, err
		}
		_ = ws.Close(websocket.StatusNormalClosure, "")
		return accounts, nil
	}
}
