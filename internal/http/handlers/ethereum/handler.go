package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lidofinance/web3-provider/internal/http/handlers/reply"
	"github.com/lidofinance/web3-provider/internal/pkg/ethereum"
	"github.com/lidofinance/web3-provider/internal/pkg/ethereum/entity"
)

type Caller interface {
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type handler struct {
	log    *slog.Logger
	client Caller
}

func New(log *slog.Logger, client Caller) *handler {
	return &handler{
		log:    log,
		client: client,
	}
}

type Request struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params []any           `json:"params"`
}

// Handler answers with a JSON-RPC envelope. Node errors stay inside the
// envelope, transport failures become 502.
func (h *handler) Handler(w http.ResponseWriter, r *http.Request) {
	var req Request
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		reply.BadStatus(w, http.StatusBadRequest, err)
		return
	}

	id := req.ID
	if len(id) == 0 {
		id = json.RawMessage(`null`)
	}

	result, err := h.client.Call(r.Context(), req.Method, req.Params...)
	if err != nil {
		var rpcErr *entity.RPCError
		switch {
		case errors.As(err, &rpcErr):
			reply.JSON(w, http.StatusOK, entity.RpcResponse{JSONRPC: entity.JsonRpcVersion, ID: id, Error: rpcErr})
		case errors.Is(err, ethereum.ErrEmptyMethod):
			reply.BadStatus(w, http.StatusBadRequest, err)
		default:
			h.log.Warn("rpc call failed", slog.String("method", req.Method), slog.Any("error", err))
			reply.Error(w, err)
		}
		return
	}

	if len(result) == 0 {
		result = json.RawMessage(`null`)
	}

	reply.JSON(w, http.StatusOK, entity.RpcResponse{JSONRPC: entity.JsonRpcVersion, ID: id, Result: result})
}
