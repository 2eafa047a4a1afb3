package reply

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lidofinance/web3-provider/internal/pkg/provider"
)

type ErrorBody struct {
	Error ErrorMessage `json:"error"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {error:{message}}. Unsupported methods are the caller's fault,
// everything else is reported as an upstream failure.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, provider.ErrUnsupportedMethod) {
		status = http.StatusBadRequest
	}

	BadStatus(w, status, err)
}

func BadStatus(w http.ResponseWriter, status int, err error) {
	JSON(w, status, ErrorBody{Error: ErrorMessage{Message: err.Error()}})
}
