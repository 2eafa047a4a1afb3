package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const JsonRpcVersion = "2.0"

type RpcRequest struct {
	ID      uint64 `json:"id"`
	JsonRpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type RpcResponse struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

type RPCError struct {
	Code    int             `json:"code,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

const defaultErrorMessage = `rpc error`

func (e *RPCError) Error() string {
	if e.Message == "" {
		return defaultErrorMessage
	}
	return e.Message
}

// String keeps the code for logs; Error() is the remote message only.
func (e *RPCError) String() string {
	return fmt.Sprintf("RPC code(%d) error: %s", e.Code, e.Error())
}

// HasResult reports whether result holds a truthy JSON value.
// Absent, null, false, "" and any numeric zero (0, -0, 0.0, 0e0) are treated
// as no result.
func (r *RpcResponse) HasResult() bool {
	result := string(bytes.TrimSpace(r.Result))
	switch result {
	case "", "null", "false", `""`:
		return false
	}

	if c := result[0]; c == '-' || (c >= '0' && c <= '9') {
		if number, err := strconv.ParseFloat(result, 64); err == nil && number == 0 {
			return false
		}
	}

	return true
}
