package stub

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darbotlabs/lanton-stubs/internal/config"
)

func loopbackConfig(port int) config.Stub {
	return config.Stub{Name: "Test", Host: "127.0.0.1", Port: port}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	var out bytes.Buffer
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})
	srv := NewServer(loopbackConfig(0), "Test server", handler, WithOutput(&out))
	assert.Equal(t, "Test server", srv.Label())

	ln, err := srv.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/anything")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "hello", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	port := ln.Addr().(*net.TCPAddr).Port
	assert.Contains(t, out.String(), "Test server started at port ")
	assert.Contains(t, out.String(), "PID: ")
	assert.Contains(t, out.String(), "Test server shutting down\n")
	assert.Contains(t, out.String(), "started at port "+strconv.Itoa(port))
}

func TestServer_StartupFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port
	srv := NewServer(loopbackConfig(port), "Test server", http.NotFoundHandler(), WithOutput(io.Discard))

	err = srv.Run(context.Background())
	require.Error(t, err)

	var startErr *StartupError
	require.True(t, errors.As(err, &startErr))
	assert.Equal(t, "Test", startErr.Service)
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(port), startErr.Addr)

	var opErr *net.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, opErr.Error(), err.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), startErr.Addr))
}
