package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/darbotlabs/lanton-stubs/internal/probe"
)

// OutputFormat represents the available report formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat validates a --output flag value
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", s)
	}
}

// WriteReports renders reports to w in the given format
func WriteReports(w io.Writer, format OutputFormat, reports []*probe.Report, noColor bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, RenderText(reports, noColor))
		return err
	}
}

// RenderText renders reports for a terminal
func RenderText(reports []*probe.Report, noColor bool) string {
	scheme := SchemeFor(noColor)
	var buf strings.Builder

	for _, r := range reports {
		icon := SuccessIcon(noColor)
		if !r.Passed() {
			icon = ErrorIcon(noColor)
		}
		buf.WriteString(fmt.Sprintf("%s %s %s %s\n",
			icon,
			scheme.Label.Sprint(r.Target),
			scheme.Muted.Sprintf("(%s)", r.Kind),
			r.URL))

		for _, c := range r.Checks {
			if c.Passed {
				buf.WriteString(fmt.Sprintf("  %s %s\n", SuccessIcon(noColor), c.Name))
				continue
			}
			buf.WriteString(fmt.Sprintf("  %s %s: %s\n", ErrorIcon(noColor), c.Name, scheme.Error.Sprint(c.Detail)))
		}

		if r.Requests > 0 {
			buf.WriteString(fmt.Sprintf("  %d requests, latency min %.2fms p50 %.2fms p99 %.2fms max %.2fms\n",
				r.Requests, r.Latency.Min, r.Latency.P50, r.Latency.P99, r.Latency.Max))
		}
	}

	return buf.String()
}
