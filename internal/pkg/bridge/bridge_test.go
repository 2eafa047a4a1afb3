package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

type requesterMock struct {
	subject     string
	data        []byte
	hasDeadline bool
	reply       []byte
	err         error
}

func (m *requesterMock) RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error) {
	m.subject = subj
	m.data = data
	_, m.hasDeadline = ctx.Deadline()
	if m.err != nil {
		return nil, m.err
	}
	return &nats.Msg{Subject: subj, Data: m.reply}, nil
}

type connMock struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (m *connMock) Publish(subj string, data []byte) error {
	m.subjects = append(m.subjects, subj)
	m.payloads = append(m.payloads, data)
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_Request(t *testing.T) {
	conn := &requesterMock{reply: []byte(`["NQ07"]`)}
	d := NewDispatcher(conn, "wallet.host", "nimiq", time.Second, discardLogger())

	got, err := d.Request(context.Background(), provider.RequestArguments{Method: "listAccounts"})
	require.NoError(t, err)

	assert.JSONEq(t, `["NQ07"]`, string(got))
	assert.Equal(t, "wallet.host.nimiq", conn.subject)
	assert.Equal(t, "wallet.host.nimiq", d.Subject())
	assert.True(t, conn.hasDeadline)

	var msg Message
	require.NoError(t, json.Unmarshal(conn.data, &msg))
	assert.Equal(t, "nimiq", msg.Network)
	assert.Equal(t, "listAccounts", msg.Method)
	assert.Nil(t, msg.Params)

	_, err = uuid.Parse(msg.RequestID)
	assert.NoError(t, err)
}

func TestDispatcher_Request_KeepsCallerDeadline(t *testing.T) {
	conn := &requesterMock{reply: []byte(`true`)}
	d := NewDispatcher(conn, "wallet.host", "nimiq", 0, discardLogger())

	_, err := d.Request(context.Background(), provider.RequestArguments{Method: "isConsensusEstablished"})
	require.NoError(t, err)
	assert.False(t, conn.hasDeadline)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err = d.Request(ctx, provider.RequestArguments{Method: "isConsensusEstablished"})
	require.NoError(t, err)
	assert.True(t, conn.hasDeadline)
}

func TestDispatcher_Request_Params(t *testing.T) {
	conn := &requesterMock{reply: []byte(`"hash"`)}
	d := NewDispatcher(conn, "wallet.host", "nimiq", time.Second, discardLogger())

	_, err := d.Request(context.Background(), provider.RequestArguments{
		Method: "sendBasicTransaction",
		Params: map[string]any{"recipient": "NQ07", "value": 1},
	})
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(conn.data, &body))
	assert.JSONEq(t, `{"recipient":"NQ07","value":1}`, string(body["params"]))
}

func TestDispatcher_Request_Error(t *testing.T) {
	conn := &requesterMock{err: nats.ErrNoResponders}
	d := NewDispatcher(conn, "wallet.host", "nimiq", time.Second, discardLogger())

	_, err := d.Request(context.Background(), provider.RequestArguments{Method: "sign"})
	require.ErrorIs(t, err, nats.ErrNoResponders)
	assert.Contains(t, err.Error(), "sign")
}

func TestPublisher_Emit(t *testing.T) {
	conn := &connMock{}
	p := NewPublisher(conn, "wallet.events", "nimiq", discardLogger())

	p.Emit(context.Background(), provider.EventConnect, []string{"NQ07"})
	p.Emit(context.Background(), provider.EventDisconnect)

	require.Len(t, conn.subjects, 2)
	assert.Equal(t, "wallet.events.nimiq.connect", conn.subjects[0])
	assert.Equal(t, "wallet.events.nimiq.disconnect", conn.subjects[1])
	assert.JSONEq(t, `{"event":"connect","network":"nimiq","args":[["NQ07"]]}`, string(conn.payloads[0]))
	assert.JSONEq(t, `{"event":"disconnect","network":"nimiq","args":[]}`, string(conn.payloads[1]))
}

func TestPublisher_Emit_Error(t *testing.T) {
	conn := &connMock{err: errors.New("connection closed")}
	p := NewPublisher(conn, "wallet.events", "nimiq", discardLogger())

	assert.NotPanics(t, func() {
		p.Emit(context.Background(), provider.EventDisconnect)
	})
	assert.Len(t, conn.subjects, 1)
}
