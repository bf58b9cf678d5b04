// Package omniparser implements the OmniParser stub. GET returns a service
// descriptor; POST reports whether the body parsed as a JSON object.
// Malformed bodies still get a 200, with parsed set to false.
package omniparser

import (
	"io"
	"net/http"

	"github.com/darbotlabs/lanton-stubs/internal/stub"
)

// Fixed response values
const (
	ServiceName   = "OmniParser"
	Version       = "0.9.2"
	Status        = "ready"
	ParsedOutput  = "Successfully parsed your input"
	FailedMessage = "Failed to parse input"
)

// MaxBodyBytes bounds the POST body read
const MaxBodyBytes = 1 << 20

// Capabilities returns the input formats advertised in the descriptor
func Capabilities() []string {
	return []string{"text", "json", "xml", "markdown"}
}

// Descriptor is the body of every GET response
type Descriptor struct {
	Service      string   `json:"service"`
	Version      string   `json:"version"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
	Timestamp    string   `json:"timestamp"`
}

// ParsedResponse answers a POST whose body parsed
type ParsedResponse struct {
	Service   string      `json:"service"`
	Parsed    bool        `json:"parsed"`
	InputType interface{} `json:"input_type"`
	Output    string      `json:"output"`
	Timestamp string      `json:"timestamp"`
}

// FailedResponse answers a POST whose body did not parse
type FailedResponse struct {
	Service   string `json:"service"`
	Parsed    bool   `json:"parsed"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// Handler serves the OmniParser stub
type Handler struct {
	clock *stub.Clock
}

// NewHandler creates an OmniParser handler
func NewHandler(clock *stub.Clock) *Handler {
	return &Handler{clock: clock}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		_ = stub.WriteJSON(w, http.StatusOK, Descriptor{
			Service:      ServiceName,
			Version:      Version,
			Status:       Status,
			Capabilities: Capabilities(),
			Timestamp:    h.clock.Timestamp(),
		})
	case http.MethodPost:
		h.parse(w, r)
	default:
		stub.NotImplemented(w, r)
	}
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	result := Parse(readBody(w, r))
	if !result.OK {
		_ = stub.WriteJSON(w, http.StatusOK, FailedResponse{
			Service:   ServiceName,
			Parsed:    false,
			Error:     FailedMessage,
			Timestamp: h.clock.Timestamp(),
		})
		return
	}

	_ = stub.WriteJSON(w, http.StatusOK, ParsedResponse{
		Service:   ServiceName,
		Parsed:    true,
		InputType: result.InputType(),
		Output:    ParsedOutput,
		Timestamp: h.clock.Timestamp(),
	})
}

// readBody returns up to Content-Length bytes of the body. A read failure or
// an oversized body yields nil, which Parse rejects.
func readBody(w http.ResponseWriter, r *http.Request) []byte {
	limit := int64(MaxBodyBytes)
	if r.ContentLength >= 0 && r.ContentLength < limit {
		limit = r.ContentLength
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil
	}
	return body
}
