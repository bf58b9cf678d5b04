package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/darbotlabs/lanton-stubs/internal/config"
)

// Wait probes target every interval until a probe passes or ctx is done.
// The last report is returned either way.
func Wait(ctx context.Context, target config.Target, interval, timeout time.Duration) (*Report, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		report := Probe(ctx, target, timeout)
		if report.Passed() {
			return report, nil
		}

		select {
		case <-ctx.Done():
			return report, fmt.Errorf("waiting for %s: %w", target.URL, ctx.Err())
		case <-ticker.C:
		}
	}
}
