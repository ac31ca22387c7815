// Package monitor implements dead man's switches for the hook lifecycle.
package monitor

import (
	"context"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_monitor.go -package=mocks . Monitor

// Monitor is an abstract dead man's switch.
type Monitor interface {
	// DescribeService gives the name of the service.
	DescribeService() string

	// Start pings the monitor with "the process started".
	Start(ctx context.Context, ppfmt pp.PP) bool

	// Success pings the monitor with "the hook event succeeded".
	Success(ctx context.Context, ppfmt pp.PP) bool

	// Failure pings the monitor with "the hook event failed".
	Failure(ctx context.Context, ppfmt pp.PP) bool

	// ExitStatus reports the exit status of the process.
	ExitStatus(ctx context.Context, ppfmt pp.PP, code int) bool
}

// StartAll calls [Monitor.Start] for each monitor in the group.
func StartAll(ctx context.Context, ppfmt pp.PP, ms []Monitor) bool {
	ok := true
	for _, m := range ms {
		if !m.Start(ctx, ppfmt) {
			ok = false
		}
	}
	return ok
}

// SuccessAll calls [Monitor.Success] for each monitor in the group.
func SuccessAll(ctx context.Context, ppfmt pp.PP, ms []Monitor) bool {
	ok := true
	for _, m := range ms {
		if !m.Success(ctx, ppfmt) {
			ok = false
		}
	}
	return ok
}

// FailureAll calls [Monitor.Failure] for each monitor in the group.
func FailureAll(ctx context.Context, ppfmt pp.PP, ms []Monitor) bool {
	ok := true
	for _, m := range ms {
		if !m.Failure(ctx, ppfmt) {
			ok = false
		}
	}
	return ok
}

// ExitStatusAll calls [Monitor.ExitStatus] for each monitor in the group.
func ExitStatusAll(ctx context.Context, ppfmt pp.PP, ms []Monitor, code int) bool {
	ok := true
	for _, m := range ms {
		if !m.ExitStatus(ctx, ppfmt, code) {
			ok = false
		}
	}
	return ok
}
