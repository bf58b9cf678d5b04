package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/darbotlabs/lanton-stubs/internal/config"
	"github.com/darbotlabs/lanton-stubs/internal/output"
	"github.com/darbotlabs/lanton-stubs/internal/stub"
)

// handlerFunc builds a stub's handler from its resolved configuration
type handlerFunc func(cfg config.Stub, clock *stub.Clock) http.Handler

// serveStub resolves the configuration, then runs the stub until SIGINT or
// SIGTERM. label names the process in lifecycle messages.
func serveStub(cmd *cobra.Command, label string, cfg config.Stub, cfgErr error, newHandler handlerFunc) error {
	out := cmd.OutOrStdout()

	if cfgErr != nil {
		fmt.Fprintf(out, "Error starting %s: %v\n", label, cfgErr)
		return &reportedError{err: &stub.StartupError{Service: label, Err: cfgErr}}
	}

	logger := output.NewRequestLogger(out, cfg.Name, output.ColorDisabled(out, false))
	handler := stub.LogRequests(logger, newHandler(cfg, stub.NewClock()))
	srv := stub.NewServer(cfg, label, handler, stub.WithOutput(out))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		var startErr *stub.StartupError
		if errors.As(err, &startErr) {
			fmt.Fprintf(out, "Error starting %s: %v\n", srv.Label(), err)
		} else {
			fmt.Fprintf(out, "%s failed: %v\n", srv.Label(), err)
		}
		return &reportedError{err: err}
	}
	return nil
}
