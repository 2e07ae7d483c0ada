package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/sourcegraph/jsonrpc2"
)

const (
	receiveTimeout = 10 * time.Second
)

var _ types.Transport = &JsonRpcTransport{}

// JsonRpcTransport handles JSON-RPC communication with a language server
type JsonRpcTransport struct {
	stream  io.ReadWriteCloser
	timeout time.Duration
	conn    *jsonrpc2.Conn
	mu      sync.RWMutex
}

// NewJsonRpcTransport creates a new JSON-RPC transport over a language server's stdio
func NewJsonRpcTransport(writer io.WriteCloser, reader io.ReadCloser) *JsonRpcTransport {
	return NewStreamTransport(&stdioReadWriteCloser{reader: reader, writer: writer})
}

// NewStreamTransport creates a new JSON-RPC transport over an existing stream
func NewStreamTransport(stream io.ReadWriteCloser) *JsonRpcTransport {
	return &JsonRpcTransport{
		stream:  stream,
		timeout: receiveTimeout,
	}
}

// SetTimeout changes how long a request waits for its response
func (t *JsonRpcTransport) SetTimeout(timeout time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timeout = timeout
}

func (t *JsonRpcTransport) requestTimeout() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.timeout
}

func (t *JsonRpcTransport) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn != nil {
		return fmt.Errorf("transport already started")
	}

	slog.Debug("Starting JSON-RPC transport")
	stream := jsonrpc2.NewBufferedStream(t.stream, jsonrpc2.VSCodeObjectCodec{})
	t.conn = jsonrpc2.NewConn(context.Background(), stream, jsonrpc2.HandlerWithError(handleServerMessage))
	return nil
}

func (t *JsonRpcTransport) Stop() error {
	conn := t.connection()
	if conn == nil || t.isClosed() {
		return nil
	}

	slog.Debug("Stopping JSON-RPC transport")
	if err := conn.Close(); err != nil && !errors.Is(err, jsonrpc2.ErrClosed) {
		return fmt.Errorf("failed to close JSON-RPC connection: %w", err)
	}
	return nil
}

func (t *JsonRpcTransport) connection() *jsonrpc2.Conn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.conn
}

func (t *JsonRpcTransport) isClosed() bool {
	conn := t.connection()
	if conn == nil {
		return true
	}

	select {
	case <-conn.DisconnectNotify():
		return true
	default:
		return false
	}
}

// SendRequest sends a JSON-RPC request and waits for the response
func (t *JsonRpcTransport) SendRequest(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if t.isClosed() {
		return nil, fmt.Errorf("cannot send request: transport is closed")
	}

	startTime := time.Now()
	slog.Debug("Sending JSON-RPC request", "method", method)

	timeout := t.requestTimeout()
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var result json.RawMessage
	if err := t.connection().Call(callCtx, method, params, &result); err != nil {
		duration := time.Since(startTime)
		if ctx.Err() != nil {
			// The caller gave up first; its deadline or cancellation is what fired.
			slog.Debug("JSON-RPC request abandoned by caller",
				"method", method,
				"duration_ms", duration.Milliseconds(),
				"error", ctx.Err())
			return nil, fmt.Errorf("failed to call %s: %w", method, ctx.Err())
		}
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			slog.Error("Timeout waiting for JSON-RPC response",
				"method", method,
				"timeout_ms", timeout.Milliseconds(),
				"duration_ms", duration.Milliseconds())
			return nil, fmt.Errorf("timeout waiting for response to method %s", method)
		}
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	slog.Debug("Received JSON-RPC response",
		"method", method,
		"duration_ms", time.Since(startTime).Milliseconds())
	return result, nil
}

// SendNotification sends a JSON-RPC notification (no response expected)
func (t *JsonRpcTransport) SendNotification(ctx context.Context, method string, params any) error {
	if t.isClosed() {
		return fmt.Errorf("cannot send notification: transport is closed")
	}

	slog.Debug("Sending JSON-RPC notification", "method", method)
	if err := t.connection().Notify(ctx, method, params); err != nil {
		return fmt.Errorf("failed to write JSON-RPC notification: %w", err)
	}
	return nil
}

// handleServerMessage answers the requests a language server sends to its client.
// Everything here is acknowledged with an empty result.
func handleServerMessage(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case "window/logMessage", "window/showMessage":
		var params struct {
			Type    int    `json:"type"`
			Message string `json:"message"`
		}
		if req.Params != nil {
			_ = json.Unmarshal(*req.Params, &params)
		}
		slog.Debug("Language server message", "method", req.Method, "type", params.Type, "message", params.Message)
		return nil, nil
	case "workspace/configuration":
		var params struct {
			Items []json.RawMessage `json:"items"`
		}
		if req.Params != nil {
			if err := json.Unmarshal(*req.Params, &params); err != nil {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
			}
		}
		return make([]any, len(params.Items)), nil
	case "window/workDoneProgress/create", "client/registerCapability", "client/unregisterCapability":
		return nil, nil
	}

	if req.Notif {
		return nil, nil
	}
	slog.Debug("Unhandled language server request", "method", req.Method)
	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not handled: " + req.Method}
}

type stdioReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error)  { return s.reader.Read(p) }
func (s *stdioReadWriteCloser) Write(p []byte) (int, error) { return s.writer.Write(p) }
func (s *stdioReadWriteCloser) Close() error {
	_ = s.reader.Close()
	return s.writer.Close()
}
