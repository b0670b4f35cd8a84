package wallet

import "context"

// MethodRequestAccounts asks the wallet to authorize and return account addresses.
const MethodRequestAccounts = "eth_requestAccounts"

// RequestArgs is the argument object passed to a Provider.
type RequestArgs struct {
	Method string `json:"method"`
}

// Provider is a wallet capability supplied by the hosting environment.
type Provider interface {
	Request(ctx context.Context, args RequestArgs) ([]string, error)
}

// Host reports the provider currently available in the environment.
// It is consulted on every connect; a false result or a nil provider means no wallet is installed.
type Host interface {
	Provider() (Provider, bool)
}

// HostFunc adapts a function to Host.
type HostFunc func() (Provider, bool)

func (f HostFunc) Provider() (Provider, bool) { return f() }

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, args RequestArgs) ([]string, error)

func (f ProviderFunc) Request(ctx context.Context, args RequestArgs) ([]string, error) {
	return f(ctx, args)
}
