package health

import (
	"net/http"
)

type handler struct{}

func New() *handler {
	return &handler{}
}

func (h *handler) Handler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK"))
}
