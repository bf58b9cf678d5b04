package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/darbotlabs/lanton-stubs/internal/config"
	"github.com/darbotlabs/lanton-stubs/internal/flaskgui"
	"github.com/darbotlabs/lanton-stubs/internal/stub"
)

// NewFlaskGUICmd creates the flaskgui root command. The port comes from
// FLASK_PORT only.
func NewFlaskGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flaskgui",
		Short: "Mock Flask GUI server",
		Long: `Mock Flask GUI server for LANton integration tests.

Serves an HTML status page on / and a JSON status document on /api/status.
The port is read from ` + config.EnvFlaskPort + ` (default 5000).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FlaskGUI(config.OSLookup)
			return serveStub(cmd, "Flask GUI server", cfg, err, func(cfg config.Stub, _ *stub.Clock) http.Handler {
				return flaskgui.NewHandler(cfg)
			})
		},
	}
}
