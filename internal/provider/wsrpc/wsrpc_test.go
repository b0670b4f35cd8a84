package wsrpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/require"

	"github.com/jask/walletbar/internal/provider/jsonrpc"
	"github.com/jask/walletbar/internal/wallet"
)

func bridge(t *testing.T, handle func(ctx context.Context, ws *websocket.Conn, req jsonrpc.Request)) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer ws.CloseNow()
		var req jsonrpc.Request
		if err := wsjson.Read(r.Context(), ws, &req); err != nil {
			return
		}
		handle(r.Context(), ws, req)
		// wait for the client to hang up
		_, _, _ = ws.Read(r.Context())
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestRequestSkipsNotifications(t *testing.T) {
	t.Parallel()

	url := bridge(t, func(ctx context.Context, ws *websocket.Conn, req jsonrpc.Request) {
		_ = wsjson.Write(ctx, ws, map[string]any{"jsonrpc": "2.0", "method": "accountsChanged", "params": []string{"0x0"}})
		_ = wsjson.Write(ctx, ws, map[string]any{"jsonrpc": "2.0", "id": "other", "result": []string{"0xbad"}})
		_ = wsjson.Write(ctx, ws, map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": []string{"0xgood"}})
	})

	accounts, err := New(url, 2*time.Second, nil).Request(context.Background(), wallet.RequestArgs{Method: wallet.MethodRequestAccounts})
	require.NoError(t, err)
	require.Equal(t, []string{"0xgood"}, accounts)
}

func TestRequestRejected(t *testing.T) {
	t.Parallel()

	url := bridge(t, func(ctx context.Context, ws *websocket.Conn, req jsonrpc.Request) {
		_ = wsjson.Write(ctx, ws, map[string]any{"jsonrpc": "2.0", "id": req.ID, "error": map[string]any{"code": 4001, "message": "rejected"}})
	})

	_, err := New(url, 2*time.Second, nil).Request(context.Background(), wallet.RequestArgs{Method: wallet.MethodRequestAccounts})
	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
}

func TestRequestNullIDErrorAnswers(t *testing.T) {
	t.Parallel()

	url := bridge(t, func(ctx context.Context, ws *websocket.Conn, req jsonrpc.Request) {
		_ = wsjson.Write(ctx, ws, map[string]any{"jsonrpc": "2.0", "id": nil, "error": map[string]any{"code": -32700, "message": "parse error"}})
	})

	start := time.Now()
	_, err := New(url, 5*time.Second, nil).Request(context.Background(), wallet.RequestArgs{Method: wallet.MethodRequestAccounts})
	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, -32700, rpcErr.Code)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestRequestNullAccountFails(t *testing.T) {
	t.Parallel()

	url := bridge(t, func(ctx context.Context, ws *websocket.Conn, req jsonrpc.Request) {
		_ = wsjson.Write(ctx, ws, map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": []any{nil}})
	})

	_, err := New(url, 2*time.Second, nil).Request(context.Background(), wallet.RequestArgs{Method: wallet.MethodRequestAccounts})
	require.Error(t, err)
}

func TestRequestTimesOut(t *testing.T) {
	t.Parallel()

	url := bridge(t, func(ctx context.Context, ws *websocket.Conn, req jsonrpc.Request) {})

	start := time.Now()
	_, err := New(url, 100*time.Millisecond, nil).Request(context.Background(), wallet.RequestArgs{Method: wallet.MethodRequestAccounts})
	require.Error(t, err)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestDialFailure(t *testing.T) {
	t.Parallel()

	_, err := New("ws://127.0.0.1:1", time.Second, nil).Request(context.Background(), wallet.RequestArgs{Method: wallet.MethodRequestAccounts})
	require.ErrorContains(t, err, "dial wallet bridge")
}
