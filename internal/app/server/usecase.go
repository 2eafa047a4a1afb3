package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lidofinance/web3-provider/internal/connectors/metrics"
	"github.com/lidofinance/web3-provider/internal/env"
	"github.com/lidofinance/web3-provider/internal/pkg/bridge"
	"github.com/lidofinance/web3-provider/internal/pkg/ethereum"
	"github.com/lidofinance/web3-provider/internal/pkg/nimiq"
	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

const ethereumNetwork = `ethereum`

type Services struct {
	Ethereum *ethereum.Client
	Nimiq    *nimiq.Provider
}

func NewServices(cfg *env.AppConfig, log *slog.Logger, metricsStore *metrics.Store, natsClient *nats.Conn) Services {
	transport := &http.Transport{
		MaxIdleConns:          30,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	httpClient := &http.Client{
		Transport: transport,
	}

	rpcOption := ethereum.WithHTTPClient(httpClient)
	if cfg.RpcViaBridge {
		rpcOption = ethereum.WithTransport(ethereum.DispatcherTransport(
			bridge.NewDispatcher(natsClient, cfg.BridgeSubject, ethereumNetwork, cfg.BridgeTimeout, log),
		))
	}

	nimiqDispatcher := bridge.NewDispatcher(natsClient, cfg.BridgeSubject, nimiq.Network, cfg.BridgeTimeout, log)
	nimiqEvents := provider.Emitters{
		bridge.NewPublisher(natsClient, cfg.BridgeEventsSubject, nimiq.Network, log),
		eventLog(log, nimiq.Network),
	}

	return Services{
		Ethereum: ethereum.NewClient(cfg.JsonRpcURL, log, metricsStore, rpcOption),
		Nimiq:    nimiq.NewProvider(nimiqDispatcher, nimiqEvents, log, metricsStore),
	}
}

func eventLog(log *slog.Logger, network string) *provider.Observers {
	observers := provider.NewObservers()

	observers.On(provider.EventConnect, func(_ context.Context, args ...any) {
		log.Info("provider connected", slog.String("network", network), slog.Any("accounts", args))
	})
	observers.On(provider.EventDisconnect, func(_ context.Context, _ ...any) {
		log.Info("provider disconnected", slog.String("network", network))
	})

	return observers
}
