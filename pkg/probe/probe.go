// Package probe runs startup checks before the server accepts traffic.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// checkTimeout bounds a single check even under a long-lived parent context.
const checkTimeout = 5 * time.Second

// CheckFunc performs one health check, returning nil on success.
type CheckFunc func(ctx context.Context) error

// Probe is a single named startup check.
type Probe struct {
	Name     string
	Check    CheckFunc
	Critical bool // a failure here prevents startup
}

// Result holds the outcome of one probe.
type Result struct {
	Probe    Probe
	Error    error
	Duration time.Duration
}

// Run executes the probes sequentially and collects their results.
func Run(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, len(probes))

	for i, p := range probes {
		start := time.Now()

		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := p.Check(checkCtx)
		cancel()

		results[i] = Result{
			Probe:    p,
			Error:    err,
			Duration: time.Since(start),
		}
	}

	return results
}

// Analyze logs a summary of the results and returns a combined error
// if any critical probe failed.
func Analyze(results []Result) error {
	var critical []error

	slog.Info("Startup Checks Summary")

	for _, r := range results {
		status := "PASS"
		if r.Error != nil {
			status = "FAIL"
		}

		msg := fmt.Sprintf("[%s] %-20s (%v)", status, r.Probe.Name, r.Duration.Round(time.Millisecond))

		if r.Error != nil {
			slog.Error(msg, "error", r.Error)
			if r.Probe.Critical {
				critical = append(critical, fmt.Errorf("%s: %w", r.Probe.Name, r.Error))
			}
		} else {
			slog.Info(msg)
		}
	}

	if len(critical) > 0 {
		return errors.Join(critical...)
	}

	return nil
}
