package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lidofinance/web3-provider/internal/pkg/ethereum/entity"
	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

const (
	transportHandler = `handler`
	transportFetch   = `fetch`
)

// HostRpcCallMethod is the host method that performs an RPC call on our behalf.
const HostRpcCallMethod = `rpcCall`

// Transport moves one envelope to the endpoint and returns the parsed response.
type Transport interface {
	RoundTrip(ctx context.Context, rpcURL string, req entity.RpcRequest) (*entity.RpcResponse, error)
}

type TransportFunc func(ctx context.Context, rpcURL string, req entity.RpcRequest) (*entity.RpcResponse, error)

func (f TransportFunc) RoundTrip(ctx context.Context, rpcURL string, req entity.RpcRequest) (*entity.RpcResponse, error) {
	return f(ctx, rpcURL, req)
}

type httpTransport struct {
	httpClient *http.Client
}

func (t *httpTransport) RoundTrip(ctx context.Context, rpcURL string, rpcRequest entity.RpcRequest) (*entity.RpcResponse, error) {
	payload, err := json.Marshal(rpcRequest)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rpcURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	var p entity.RpcResponse
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal response (status %s): %w", resp.Status, err)
	}

	return &p, nil
}

type rpcCallParams struct {
	RpcURL  string            `json:"rpcUrl"`
	Payload entity.RpcRequest `json:"payload"`
}

// DispatcherTransport lets the host application make the HTTP call, which is
// how callers avoid content policies that block direct fetches.
func DispatcherTransport(dispatcher provider.Dispatcher) Transport {
	return TransportFunc(func(ctx context.Context, rpcURL string, req entity.RpcRequest) (*entity.RpcResponse, error) {
		raw, err := dispatcher.Request(ctx, provider.RequestArguments{
			Method: HostRpcCallMethod,
			Params: rpcCallParams{RpcURL: rpcURL, Payload: req},
		})
		if err != nil {
			return nil, err
		}

		var p entity.RpcResponse
		if len(raw) == 0 {
			return &p, nil
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("could not unmarshal host response: %w", err)
		}

		return &p, nil
	})
}
