package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

// Requester is the part of *nats.Conn the dispatcher needs.
type Requester interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

// Message is the body sent to the host application.
type Message struct {
	RequestID string `json:"requestId"`
	Network   string `json:"network"`
	Method    string `json:"method"`
	Params    any    `json:"params,omitempty"`
}

type Dispatcher struct {
	conn    Requester
	subject string
	network string
	timeout time.Duration
	log     *slog.Logger
}

// NewDispatcher sends requests for network to <subject>.<network>.
func NewDispatcher(conn Requester, subject, network string, timeout time.Duration, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		conn:    conn,
		subject: fmt.Sprintf(`%s.%s`, subject, network),
		network: network,
		timeout: timeout,
		log:     log,
	}
}

func (d *Dispatcher) Subject() string {
	return d.subject
}

// Request forwards args to the host and returns the raw reply body.
// The configured timeout only applies when ctx carries no deadline.
func (d *Dispatcher) Request(ctx context.Context, args provider.RequestArguments) (json.RawMessage, error) {
	msg := Message{
		RequestID: uuid.NewString(),
		Network:   d.network,
		Method:    args.Method,
		Params:    args.Params,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("could not marshal %s request: %w", args.Method, err)
	}

	if _, ok := ctx.Deadline(); !ok && d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	reply, err := d.conn.RequestWithContext(ctx, d.subject, payload)
	if err != nil {
		d.log.Warn("host request failed",
			slog.String("subject", d.subject),
			slog.String("method", args.Method),
			slog.String("request_id", msg.RequestID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("host request %s: %w", args.Method, err)
	}

	return json.RawMessage(reply.Data), nil
}
