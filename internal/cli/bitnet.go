package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/darbotlabs/lanton-stubs/internal/bitnet"
	"github.com/darbotlabs/lanton-stubs/internal/config"
	"github.com/darbotlabs/lanton-stubs/internal/stub"
)

// NewBitNetCmd creates the bitnet root command
func NewBitNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitnet",
		Short: "Mock BitNet server",
		Long: `Mock BitNet server for LANton integration tests.

Every GET request, on any path, returns the BitNet service descriptor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			cfg, err := config.BitNet(port)
			return serveStub(cmd, "BitNet server", cfg, err, func(_ config.Stub, clock *stub.Clock) http.Handler {
				return bitnet.NewHandler(clock)
			})
		},
	}

	cmd.Flags().Int("port", config.DefaultBitNetPort, "Port to run the server on")
	return cmd
}
