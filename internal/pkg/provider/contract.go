package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	EventConnect    = `connect`
	EventDisconnect = `disconnect`
)

var ErrUnsupportedMethod = errors.New("unsupported method")

// RequestArguments is the generic request shape every network adapter funnels into.
type RequestArguments struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// Dispatcher forwards a request to the host application and returns its raw result.
type Dispatcher interface {
	Request(ctx context.Context, args RequestArguments) (json.RawMessage, error)
}

// Emitter delivers provider notifications (connect, disconnect) to observers.
type Emitter interface {
	Emit(ctx context.Context, event string, args ...any)
}

type HandlerFunc func(ctx context.Context, args RequestArguments) (json.RawMessage, error)

func (f HandlerFunc) Request(ctx context.Context, args RequestArguments) (json.RawMessage, error) {
	return f(ctx, args)
}

func UnsupportedMethod(method string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
}
