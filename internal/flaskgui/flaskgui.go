// Package flaskgui implements the Flask GUI stub: an HTML status page on "/"
// and a JSON status document on "/api/status".
package flaskgui

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/darbotlabs/lanton-stubs/internal/config"
)

// Fixed status values
const (
	ServiceName = "Flask GUI"
	Status      = "running"
)

// StatusResponse is the body of GET /api/status
type StatusResponse struct {
	Port    string `json:"port"`
	Service string `json:"service"`
	Status  string `json:"status"`
}

// NewHandler routes the Flask GUI endpoints. Unknown paths get 404 and other
// methods on known paths get 405.
func NewHandler(cfg config.Stub) http.Handler {
	h := &handler{port: cfg.PortLabel}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /api/status", h.status)
	return mux
}

type handler struct {
	port string
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page{Port: h.port}); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// status writes the document the way a debug-mode Flask app does: two-space
// indent and a trailing newline.
func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(StatusResponse{
		Port:    h.port,
		Service: ServiceName,
		Status:  Status,
	})
}
