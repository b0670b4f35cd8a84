// Package jsonrpc holds the JSON-RPC 2.0 envelopes spoken by wallet bridges.
package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const Version = "2.0"

// ErrNoResult is returned when a response carries neither result nor error.
var ErrNoResult = errors.New("jsonrpc: empty response")

type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// NewRequest builds a request with a fresh id and no params.
func NewRequest(method string) Request {
	return Request{JSONRPC: Version, ID: uuid.NewString(), Method: method, Params: []any{}}
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"` // set on notifications
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object. Wallets use code 4001 for a user rejection.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Matches reports whether the response answers the request with the given id.
func (r Response) Matches(id string) bool {
	if len(r.ID) == 0 {
		return false
	}
	var got string
	if err := json.Unmarshal(r.ID, &got); err != nil {
		return false
	}
	return got == id
}

// Unaddressed reports whether the response carries a null or missing id.
// Bridges use it for errors raised before the request id was parsed.
func (r Response) Unaddressed() bool {
	id := strings.TrimSpace(string(r.ID))
	return id == "" || id == "null"
}

// Accounts extracts a list of account identifiers from the response.
func (r Response) Accounts() ([]string, error) {
	if r.Error != nil {
		return nil, r.Error
	}
	if len(r.Result) == 0 {
		return nil, ErrNoResult
	}
	return DecodeAccounts(r.Result)
}

// DecodeAccounts decodes a result that must be an array of strings.
func DecodeAccounts(raw json.RawMessage) ([]string, error) {
	var items []*string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	if items == nil {
		return nil, nil
	}
	accounts := make([]string, 0, len(items))
	for i, a := range items {
		if a == nil {
			return nil, fmt.Errorf("decode accounts: element %d is null", i)
		}
		accounts = append(accounts, *a)
	}
	return accounts, nil
}
