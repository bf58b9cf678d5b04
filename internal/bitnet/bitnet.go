// Package bitnet implements the BitNet stub: every GET, on any path, returns
// the same service descriptor.
package bitnet

import (
	"net/http"

	"github.com/darbotlabs/lanton-stubs/internal/stub"
)

// Fixed descriptor values
const (
	ServiceName = "BitNet"
	Version     = "1.0.0"
	Status      = "running"
)

// Endpoints returns the endpoints advertised in the descriptor
func Endpoints() []string {
	return []string{"/status", "/data", "/connect"}
}

// Descriptor is the body of every GET response
type Descriptor struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
	Timestamp string   `json:"timestamp"`
}

// Handler serves the BitNet stub
type Handler struct {
	clock *stub.Clock
}

// NewHandler creates a BitNet handler
func NewHandler(clock *stub.Clock) *Handler {
	return &Handler{clock: clock}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		_ = stub.WriteJSON(w, http.StatusOK, h.descriptor())
	default:
		stub.NotImplemented(w, r)
	}
}

func (h *Handler) descriptor() Descriptor {
	return Descriptor{
		Service:   ServiceName,
		Version:   Version,
		Status:    Status,
		Endpoints: Endpoints(),
		Timestamp: h.clock.Timestamp(),
	}
}
