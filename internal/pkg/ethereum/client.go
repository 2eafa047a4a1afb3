package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lidofinance/web3-provider/internal/connectors/metrics"
	"github.com/lidofinance/web3-provider/internal/pkg/ethereum/entity"
)

// Methods
const (
	BlockNumber      = "eth_blockNumber"
	GetBlockByNumber = "eth_getBlockByNumber"
	GetLogs          = "eth_getLogs"
)

var (
	ErrEmptyMethod   = errors.New("empty method")
	ErrEmptyResponse = errors.New("empty response")
)

type Client struct {
	rpcURL        string
	transport     Transport
	transportMode string
	ids           IDGenerator
	log           *slog.Logger
	metrics       *metrics.Store
}

type Option func(c *Client)

// WithTransport routes every call through t instead of a direct HTTP POST.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
		c.transportMode = transportHandler
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport = &httpTransport{httpClient: httpClient}
		c.transportMode = transportFetch
	}
}

func WithIDGenerator(ids IDGenerator) Option {
	return func(c *Client) {
		c.ids = ids
	}
}

func NewClient(rpcURL string, log *slog.Logger, metricsStore *metrics.Store, options ...Option) *Client {
	c := &Client{
		rpcURL:        rpcURL,
		transport:     &httpTransport{httpClient: http.DefaultClient},
		transportMode: transportFetch,
		ids:           NewCounter(),
		log:           log,
		metrics:       metricsStore,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) URL() string {
	return c.rpcURL
}

// Call sends one JSON-RPC request and returns the raw result.
//
// A response carrying an error and no usable result fails with *entity.RPCError.
// A response with neither result nor error yields (nil, nil).
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if method == "" {
		return nil, ErrEmptyMethod
	}
	if params == nil {
		params = []any{}
	}

	rpcRequest := entity.RpcRequest{
		ID:      c.ids.NextID(),
		JsonRpc: entity.JsonRpcVersion,
		Method:  method,
		Params:  params,
	}

	c.log.Debug("rpc call", slog.String("method", method), slog.String("transport", c.transportMode))

	start := time.Now()
	resp, err := c.transport.RoundTrip(ctx, c.rpcURL, rpcRequest)
	c.metrics.RpcDuration.With(prometheus.Labels{metrics.Method: method}).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.RpcCalls.With(prometheus.Labels{metrics.Method: method, metrics.Status: metrics.StatusFail}).Inc()
		return nil, err
	}

	if resp == nil {
		c.metrics.RpcCalls.With(prometheus.Labels{metrics.Method: method, metrics.Status: metrics.StatusOk}).Inc()
		return nil, nil
	}

	if resp.Error != nil && !resp.HasResult() {
		c.metrics.RpcCalls.With(prometheus.Labels{metrics.Method: method, metrics.Status: metrics.StatusFail}).Inc()
		c.log.Debug("rpc error", slog.String("method", method), slog.String("error", resp.Error.String()))
		return nil, resp.Error
	}

	c.metrics.RpcCalls.With(prometheus.Labels{metrics.Method: method, metrics.Status: metrics.StatusOk}).Inc()
	return resp.Result, nil
}

// CallResult executes a call and decodes its result into result.
func (c *Client) CallResult(ctx context.Context, result any, method string, params ...any) error {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}

	if len(raw) == 0 || string(raw) == "null" {
		return fmt.Errorf("%s result is nil: %w", method, ErrEmptyResponse)
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("could not unmarshal %s result: %w", method, err)
	}

	return nil
}

func (c *Client) GetBlockNumber(ctx context.Context) (uint64, error) {
	var number hexutil.Uint64
	if err := c.CallResult(ctx, &number, BlockNumber); err != nil {
		return 0, err
	}
	return uint64(number), nil
}

// GetBlockByNumber always asks for the non-verbose block (hashes only).
func (c *Client) GetBlockByNumber(ctx context.Context, number uint64) (*entity.EthBlock, error) {
	var block entity.EthBlock
	if err := c.CallResult(ctx, &block, GetBlockByNumber, hexutil.EncodeUint64(number), false); err != nil {
		return nil, err
	}
	return &block, nil
}

func (c *Client) GetFilterLogs(ctx context.Context, filter any) ([]entity.Log, error) {
	var logs []entity.Log
	if err := c.CallResult(ctx, &logs, GetLogs, filter); err != nil {
		return nil, err
	}
	return logs, nil
}
