package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/darbotlabs/lanton-stubs/internal/config"
	"github.com/darbotlabs/lanton-stubs/internal/omniparser"
	"github.com/darbotlabs/lanton-stubs/internal/stub"
)

// NewOmniParserCmd creates the omniparser root command
func NewOmniParserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "omniparser",
		Short: "Mock OmniParser agent",
		Long: `Mock OmniParser agent for LANton integration tests.

GET returns the OmniParser service descriptor. POST reports whether the
request body parsed as a JSON object.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			cfg, err := config.OmniParser(port, config.OSLookup)
			return serveStub(cmd, "OmniParser agent", cfg, err, func(_ config.Stub, clock *stub.Clock) http.Handler {
				return omniparser.NewHandler(clock)
			})
		},
	}

	cmd.Flags().Int("port", config.DefaultOmniParserPort,
		"Port to run the server on (can also be set with "+config.EnvOmniParserPort+" env var)")
	return cmd
}
