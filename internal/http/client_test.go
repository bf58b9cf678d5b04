package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected method GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/status" {
			t.Errorf("Expected path /api/status, got %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != "stubctl-test" {
			t.Errorf("Expected User-Agent stubctl-test, got %s", r.Header.Get("User-Agent"))
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"running"}`))
	}))
	defer server.Close()

	client := NewClient(
		WithTimeout(5*time.Second),
		WithHeader("User-Agent", "stubctl-test"),
		WithBaseURL(server.URL),
	)

	resp, err := client.Get(context.Background(), "/api/status")
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if resp.MediaType() != "application/json" {
		t.Errorf("Expected media type application/json, got %s", resp.MediaType())
	}
	if resp.BodyString() != `{"status":"running"}` {
		t.Errorf("Unexpected body %s", resp.BodyString())
	}
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected method POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	resp, err := client.Post(context.Background(), "/", "application/json", []byte(`{"type":"json"}`))
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	if resp.BodyString() != `{"type":"json"}` {
		t.Errorf("Expected echoed body, got %s", resp.BodyString())
	}
}

func TestClient_WithOptions(t *testing.T) {
	client := NewClient(
		WithTimeout(3*time.Second),
		WithBaseURL("http://localhost:8000"),
		WithHeader("X-Test", "value"),
	)

	if client.httpClient.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", client.httpClient.Timeout)
	}
	if client.baseURL != "http://localhost:8000" {
		t.Errorf("Unexpected baseURL %s", client.baseURL)
	}
	if client.headers["X-Test"] != "value" {
		t.Errorf("Expected header X-Test: value, got %s", client.headers["X-Test"])
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base     string
		path     string
		expected string
	}{
		{"http://localhost:8000", "/", "http://localhost:8000/"},
		{"http://localhost:8000", "", "http://localhost:8000/"},
		{"http://localhost:8000", "/status", "http://localhost:8000/status"},
		{"http://localhost:5000/", "/api/status", "http://localhost:5000/api/status"},
		{"http://host/prefix", "status?x=1", "http://host/prefix/status?x=1"},
	}

	for _, tt := range tests {
		got, err := resolve(tt.base, tt.path)
		if err != nil {
			t.Fatalf("resolve(%q, %q) error: %v", tt.base, tt.path, err)
		}
		if got != tt.expected {
			t.Errorf("resolve(%q, %q) = %s, want %s", tt.base, tt.path, got, tt.expected)
		}
	}
}
