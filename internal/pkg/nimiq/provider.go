package nimiq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/lidofinance/web3-provider/internal/connectors/metrics"
	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

const Network = `nimiq`

var ErrInvalidMessage = errors.New("sign message must be a string or SignMessage")

// Provider exposes Nimiq wallet operations on top of a host dispatcher.
// It caches the discovered account list until Disconnect.
type Provider struct {
	dispatcher provider.Dispatcher
	emitter    provider.Emitter
	log        *slog.Logger
	metrics    *metrics.Store

	mu         sync.RWMutex
	accounts   []string
	generation uint64
	discovery  singleflight.Group
}

func NewProvider(dispatcher provider.Dispatcher, emitter provider.Emitter, log *slog.Logger, metricsStore *metrics.Store) *Provider {
	return &Provider{
		dispatcher: dispatcher,
		emitter:    emitter,
		log:        log.With(slog.String("network", Network)),
		metrics:    metricsStore,
	}
}

func (p *Provider) GetNetwork() string {
	return Network
}

func (p *Provider) Connected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.accounts) > 0
}

// Connect discovers accounts; once they are cached it is a no-op.
func (p *Provider) Connect(ctx context.Context) ([]string, error) {
	return p.ListAccounts(ctx)
}

func (p *Provider) Disconnect(ctx context.Context) {
	p.mu.Lock()
	p.accounts = nil
	p.generation++
	p.mu.Unlock()

	p.metrics.ProviderConnected.With(prometheus.Labels{metrics.Network: Network}).Set(0)
	p.emit(ctx, provider.EventDisconnect)
}

// ListAccounts returns the cached accounts or asks the host for them.
// Concurrent misses share one dispatch; each caller still stops waiting
// when its own ctx is done.
func (p *Provider) ListAccounts(ctx context.Context) ([]string, error) {
	if cached := p.cachedAccounts(); cached != nil {
		return cached, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := p.discovery.DoChan(MethodListAccounts, func() (any, error) {
		if cached := p.cachedAccounts(); cached != nil {
			return cached, nil
		}

		generation := p.currentGeneration()

		var accounts []string
		if err := p.dispatch(shared, MethodListAccounts, nil, &accounts); err != nil {
			return nil, err
		}

		p.storeAccounts(shared, generation, accounts)
		return accounts, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return append([]string(nil), res.Val.([]string)...), nil
	}
}

// Sign accepts a raw string or a SignMessage; both reach the host as {message, isHex}.
func (p *Provider) Sign(ctx context.Context, message any) (*SignedMessage, error) {
	var params SignMessage
	switch m := message.(type) {
	case string:
		params = SignMessage{Message: m}
	case SignMessage:
		params = m
	case *SignMessage:
		if m == nil {
			return nil, ErrInvalidMessage
		}
		params = *m
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidMessage, message)
	}

	var signed SignedMessage
	if err := p.dispatch(ctx, MethodSign, params, &signed); err != nil {
		return nil, err
	}

	return &signed, nil
}

func (p *Provider) IsConsensusEstablished(ctx context.Context) (bool, error) {
	var established bool
	if err := p.dispatch(ctx, MethodIsConsensusEstablished, nil, &established); err != nil {
		return false, err
	}
	return established, nil
}

func (p *Provider) GetBlockNumber(ctx context.Context) (uint64, error) {
	var number uint64
	if err := p.dispatch(ctx, MethodGetBlockNumber, nil, &number); err != nil {
		return 0, err
	}
	return number, nil
}

func (p *Provider) SendBasicTransaction(ctx context.Context, tx BasicTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendBasicTransaction, tx)
}

func (p *Provider) SendBasicTransactionWithData(ctx context.Context, tx BasicTransactionWithData) (json.RawMessage, error) {
	return p.send(ctx, MethodSendBasicTransactionWithData, tx)
}

func (p *Provider) SendNewStakerTransaction(ctx context.Context, tx NewStakerTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendNewStakerTransaction, tx)
}

func (p *Provider) SendStakeTransaction(ctx context.Context, tx StakeTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendStakeTransaction, tx)
}

func (p *Provider) SendSetActiveStakeTransaction(ctx context.Context, tx SetActiveStakeTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendSetActiveStakeTransaction, tx)
}

func (p *Provider) SendUpdateStakerTransaction(ctx context.Context, tx UpdateStakerTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendUpdateStakerTransaction, tx)
}

func (p *Provider) SendRetireStakeTransaction(ctx context.Context, tx RetireStakeTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendRetireStakeTransaction, tx)
}

func (p *Provider) SendRemoveStakeTransaction(ctx context.Context, tx RemoveStakeTransaction) (json.RawMessage, error) {
	return p.send(ctx, MethodSendRemoveStakeTransaction, tx)
}

// Request is the generic entry point: public method names are normalized
// through Methods and unknown names fail before anything is dispatched.
// Account discovery and signing go through ListAccounts and Sign.
func (p *Provider) Request(ctx context.Context, args provider.RequestArguments) (json.RawMessage, error) {
	method, ok := Normalize(args.Method)
	if !ok {
		return nil, provider.UnsupportedMethod(args.Method)
	}

	switch method {
	case MethodListAccounts:
		accounts, err := p.ListAccounts(ctx)
		if err != nil {
			return nil, err
		}
		if accounts == nil {
			accounts = []string{}
		}
		return json.Marshal(accounts)
	case MethodSign:
		message, err := signMessageFromParams(args.Params)
		if err != nil {
			return nil, err
		}
		signed, err := p.Sign(ctx, message)
		if err != nil {
			return nil, err
		}
		return json.Marshal(signed)
	}

	var result json.RawMessage
	if err := p.dispatch(ctx, method, args.Params, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Provider) send(ctx context.Context, method string, tx any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := p.dispatch(ctx, method, tx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Provider) dispatch(ctx context.Context, method string, params any, result any) error {
	raw, err := p.dispatcher.Request(ctx, provider.RequestArguments{Method: method, Params: params})
	if err == nil {
		err = provider.Decode(raw, result)
	}

	status := metrics.StatusOk
	if err != nil {
		status = metrics.StatusFail
		p.log.Debug("dispatch failed", slog.String("method", method), slog.Any("error", err))
	}
	p.metrics.Dispatches.With(prometheus.Labels{
		metrics.Network: Network,
		metrics.Method:  method,
		metrics.Status:  status,
	}).Inc()

	return err
}

func (p *Provider) cachedAccounts() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.accounts) == 0 {
		return nil
	}
	return append([]string(nil), p.accounts...)
}

func (p *Provider) currentGeneration() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.generation
}

// storeAccounts emits connect on the first non-empty discovery, then caches.
// Results of a lookup that started before the last Disconnect are dropped.
func (p *Provider) storeAccounts(ctx context.Context, generation uint64, accounts []string) {
	if len(accounts) == 0 {
		return
	}

	p.mu.RLock()
	stale := generation != p.generation
	connected := len(p.accounts) > 0
	p.mu.RUnlock()

	if stale {
		p.log.Debug("dropping accounts discovered before disconnect")
		return
	}

	if !connected {
		p.metrics.ProviderConnected.With(prometheus.Labels{metrics.Network: Network}).Set(1)
		p.emit(ctx, provider.EventConnect, append([]string(nil), accounts...))
	}

	p.mu.Lock()
	if generation == p.generation {
		p.accounts = append([]string(nil), accounts...)
	}
	p.mu.Unlock()
}

// signMessageFromParams accepts a bare string, {message, isHex} or a
// one-element array holding either.
func signMessageFromParams(params any) (any, error) {
	if list, ok := params.([]any); ok && len(list) == 1 {
		params = list[0]
	}

	switch v := params.(type) {
	case string, SignMessage, *SignMessage:
		return v, nil
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}

		var message SignMessage
		if err := json.Unmarshal(raw, &message); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
		return message, nil
	}

	return nil, fmt.Errorf("%w: got %T", ErrInvalidMessage, params)
}

func (p *Provider) emit(ctx context.Context, event string, args ...any) {
	p.metrics.EmittedEvents.With(prometheus.Labels{metrics.Network: Network, metrics.Event: event}).Inc()
	if p.emitter == nil {
		return
	}
	p.emitter.Emit(ctx, event, args...)
}
