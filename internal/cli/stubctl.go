package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/darbotlabs/lanton-stubs/internal/config"
	"github.com/darbotlabs/lanton-stubs/internal/output"
	"github.com/darbotlabs/lanton-stubs/internal/probe"
)

// NewStubctlCmd creates the stubctl root command
func NewStubctlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stubctl",
		Short:   "Probe LANton stub services",
		Version: version,
		Long: `stubctl checks running BitNet, OmniParser and Flask GUI stubs against
their response contracts. Integration suites use it to wait for a stub to
come up and to verify what it returns.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP("output", "o", "text", "Report format (text, json, yaml)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newProbeCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newWaitCmd())
	return cmd
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe URL",
		Short: "Probe a single stub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			count, _ := cmd.Flags().GetInt("count")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			target, err := singleTarget(kind, args[0], count)
			if err != nil {
				return err
			}

			report := probe.Probe(cmd.Context(), target, timeout)
			return writeReports(cmd, []*probe.Report{report})
		},
	}

	cmd.Flags().StringP("kind", "k", "", "Stub kind ("+strings.Join(config.Kinds, ", ")+")")
	cmd.Flags().IntP("count", "n", 1, "Number of GET requests to send")
	cmd.Flags().DurationP("timeout", "t", 5*time.Second, "Per-request timeout")
	cmd.MarkFlagRequired("kind")
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe every stub listed in a targets file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("targets")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			targets, err := config.LoadTargets(path)
			if err != nil {
				return err
			}

			reports := make([]*probe.Report, 0, len(targets.Targets))
			for _, target := range targets.Targets {
				reports = append(reports, probe.Probe(cmd.Context(), target, timeout))
			}
			return writeReports(cmd, reports)
		},
	}

	cmd.Flags().StringP("targets", "f", "", "Targets file (YAML or JSON)")
	cmd.Flags().DurationP("timeout", "t", 5*time.Second, "Per-request timeout")
	cmd.MarkFlagRequired("targets")
	return cmd
}

func newWaitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait URL",
		Short: "Wait until a stub passes its probe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			interval, _ := cmd.Flags().GetDuration("interval")
			requestTimeout, _ := cmd.Flags().GetDuration("request-timeout")

			target, err := singleTarget(kind, args[0], 1)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			report, waitErr := probe.Wait(ctx, target, interval, requestTimeout)
			if err := writeReports(cmd, []*probe.Report{report}); err != nil {
				return err
			}
			return waitErr
		},
	}

	cmd.Flags().StringP("kind", "k", "", "Stub kind ("+strings.Join(config.Kinds, ", ")+")")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Overall time to wait")
	cmd.Flags().Duration("interval", 250*time.Millisecond, "Delay between probes")
	cmd.Flags().Duration("request-timeout", 2*time.Second, "Per-request timeout")
	cmd.MarkFlagRequired("kind")
	return cmd
}

func singleTarget(kind, rawURL string, count int) (config.Target, error) {
	target := config.Target{
		Name:  strings.ToLower(kind),
		Kind:  strings.ToLower(kind),
		URL:   ensureScheme(rawURL),
		Count: count,
	}

	if errs := config.ValidateTargets(&config.Targets{Targets: []config.Target{target}}); len(errs) > 0 {
		return config.Target{}, errs[0]
	}
	return target, nil
}

// ensureScheme adds http:// when rawURL has no scheme
func ensureScheme(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "http://" + rawURL
	}
	return rawURL
}

// writeReports prints reports and fails if any report did not pass
func writeReports(cmd *cobra.Command, reports []*probe.Report) error {
	formatFlag, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := output.WriteReports(out, format, reports, output.ColorDisabled(out, noColor)); err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return &reportedError{err: fmt.Errorf("%d of %d targets failed", failed, len(reports))}
	}
	return nil
}
