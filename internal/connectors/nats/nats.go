package nats

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"

	"github.com/lidofinance/web3-provider/internal/env"
)

var (
	natsClient        *nats.Conn
	onceDefaultClient sync.Once
)

const (
	connectAttempts = 5
	connectDelay    = 500 * time.Millisecond
)

func New(cfg *env.AppConfig, log *slog.Logger) (*nats.Conn, error) {
	var err error

	onceDefaultClient.Do(func() {
		natsClient, err = retry.DoWithData(
			func() (*nats.Conn, error) {
				return nats.Connect(cfg.NatsDefaultURL,
					nats.Name(cfg.Name),
					nats.ReconnectWait(2*time.Second),
					nats.DisconnectErrHandler(func(_ *nats.Conn, disconnectErr error) {
						log.Warn("Nats client got disconnected", slog.Any("error", disconnectErr))
					}),
					nats.ReconnectHandler(func(nc *nats.Conn) {
						log.Info(fmt.Sprintf("Nats client got reconnected to %v", nc.ConnectedUrl()))
					}),
					nats.ClosedHandler(func(_ *nats.Conn) {
						log.Info("Nats connection closed")
					}))
			},
			retry.Attempts(connectAttempts),
			retry.Delay(connectDelay),
			retry.DelayType(retry.BackOffDelay),
			retry.OnRetry(func(n uint, retryErr error) {
				log.Warn(fmt.Sprintf("could not connect to nats, attempt %d", n+1), slog.Any("error", retryErr))
			}),
		)
	})

	return natsClient, err
}
