package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/stellar/go/support/errors"
)

const (
	// Version is the only JSON-RPC version spoken by the node.
	Version = "2.0"
	// DefaultID is used for every request unless the client has an IDGenerator.
	DefaultID uint32 = 1
)

type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

// Envelope is an outbound request that can be dispatched by Client.Call.
type Envelope interface {
	Name() string
	SetID(id uint32)
	Encode() ([]byte, error)
}

// Request is a JSON-RPC 2.0 request envelope. Params is omitted when nil;
// a non-nil pointer to an empty map is sent as {}.
type Request[P any] struct {
	Version string `json:"jsonrpc"`
	ID      uint32 `json:"id"`
	Method  string `json:"method"`
	Params  *P     `json:"params,omitempty"`
}

// Request shapes used by the node API
type (
	NoParamsRequest    = Request[struct{}]
	PositionalRequest  = Request[[]string]
	MapRequest         = Request[map[string]string]
	ArrayOfMapsRequest = Request[[]map[string]string]
	MapOfArraysRequest = Request[map[string][]string]
)

// NewRequest returns a request without params.
func NewRequest(method string) NoParamsRequest {
	return NoParamsRequest{Version: Version, ID: DefaultID, Method: method}
}

// NewRequestWithParams returns a request whose params key is always present.
func NewRequestWithParams[P any](method string, params P) Request[P] {
	return Request[P]{Version: Version, ID: DefaultID, Method: method, Params: &params}
}

func (r *Request[P]) Name() string { return r.Method }

func (r *Request[P]) SetID(id uint32) { r.ID = id }

func (r *Request[P]) Encode() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize JSON")
	}
	return b, nil
}

// Response is a JSON-RPC 2.0 response envelope with a method specific result.
type Response[T any] struct {
	Version string         `json:"jsonrpc"`
	ID      uint32         `json:"id"`
	Result  *T             `json:"result,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// Err returns the remote error, if any, as an error value.
func (r *Response[T]) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// ResponseError as sent by the node, e.g.
// {"code":-32000,"message":"problem decoding transaction: invalid input checksum","data":null}
type ResponseError struct {
	Code    int32   `json:"code"`
	Message string  `json:"message"`
	Data    *string `json:"data,omitempty"`
}

func (e *ResponseError) Error() string {
	if e.Data != nil && *e.Data != "" {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, *e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// IDGenerator hands out monotonically increasing request ids for a single
// connection. Reset it when the connection is replaced.
type IDGenerator struct {
	last atomic.Uint32
}

func (g *IDGenerator) Next() uint32 {
	return g.last.Add(1)
}

func (g *IDGenerator) Reset() {
	g.last.Store(0)
}
