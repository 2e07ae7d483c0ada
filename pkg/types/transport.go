package types

import (
	"context"
	"encoding/json"
)

// Transport defines the JSON-RPC transport used to talk to a language server
type Transport interface {
	Start() error
	Stop() error
	SendRequest(ctx context.Context, method string, params any) (json.RawMessage, error)
	SendNotification(ctx context.Context, method string, params any) error
}
