package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subj string, data []byte) error
}

type Event struct {
	Event   string `json:"event"`
	Network string `json:"network"`
	Args    []any  `json:"args"`
}

// Publisher forwards provider events to <subject>.<network>.<event>.
type Publisher struct {
	conn    Conn
	subject string
	network string
	log     *slog.Logger
}

func NewPublisher(conn Conn, subject, network string, log *slog.Logger) *Publisher {
	return &Publisher{
		conn:    conn,
		subject: subject,
		network: network,
		log:     log,
	}
}

func (p *Publisher) Subject(event string) string {
	return fmt.Sprintf(`%s.%s.%s`, p.subject, p.network, event)
}

// Emit never fails the caller; publish errors are only logged.
func (p *Publisher) Emit(_ context.Context, event string, args ...any) {
	if args == nil {
		args = []any{}
	}

	payload, err := json.Marshal(Event{Event: event, Network: p.network, Args: args})
	if err != nil {
		p.log.Error(fmt.Sprintf(`could not marshal %s event: %v`, event, err))
		return
	}

	if err := p.conn.Publish(p.Subject(event), payload); err != nil {
		p.log.Error(fmt.Sprintf(`could not publish %s event: %v`, event, err))
	}
}
