package nimiq

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lidofinance/web3-provider/internal/http/handlers/reply"
	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

var errEmptyMethod = errors.New("method is required")

type Provider interface {
	GetNetwork() string
	Connected() bool
	ListAccounts(ctx context.Context) ([]string, error)
	Disconnect(ctx context.Context)
	Request(ctx context.Context, args provider.RequestArguments) (json.RawMessage, error)
}

type handler struct {
	log      *slog.Logger
	provider Provider
}

func New(log *slog.Logger, p Provider) *handler {
	return &handler{
		log:      log,
		provider: p,
	}
}

type NetworkResponse struct {
	Network string `json:"network"`
}

type AccountsResponse struct {
	Accounts []string `json:"accounts"`
}

type ConnectedResponse struct {
	Connected bool `json:"connected"`
}

type RequestResponse struct {
	Result json.RawMessage `json:"result"`
}

func (h *handler) Request(w http.ResponseWriter, r *http.Request) {
	var args provider.RequestArguments
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil {
		reply.BadStatus(w, http.StatusBadRequest, err)
		return
	}

	if args.Method == "" {
		reply.BadStatus(w, http.StatusBadRequest, errEmptyMethod)
		return
	}

	result, err := h.provider.Request(r.Context(), args)
	if err != nil {
		h.log.Warn("nimiq request failed", slog.String("method", args.Method), slog.Any("error", err))
		reply.Error(w, err)
		return
	}

	if len(result) == 0 {
		result = json.RawMessage(`null`)
	}

	reply.JSON(w, http.StatusOK, RequestResponse{Result: result})
}

func (h *handler) Network(w http.ResponseWriter, _ *http.Request) {
	reply.JSON(w, http.StatusOK, NetworkResponse{Network: h.provider.GetNetwork()})
}

func (h *handler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.provider.ListAccounts(r.Context())
	if err != nil {
		h.log.Warn("could not list accounts", slog.Any("error", err))
		reply.Error(w, err)
		return
	}

	if accounts == nil {
		accounts = []string{}
	}

	reply.JSON(w, http.StatusOK, AccountsResponse{Accounts: accounts})
}

func (h *handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.provider.Disconnect(r.Context())
	reply.JSON(w, http.StatusOK, ConnectedResponse{Connected: h.provider.Connected()})
}

func (h *handler) Connected(w http.ResponseWriter, _ *http.Request) {
	reply.JSON(w, http.StatusOK, ConnectedResponse{Connected: h.provider.Connected()})
}
