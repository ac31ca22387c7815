package hook

import (
	"context"
	"fmt"
	"os"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/monitor"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/notifier"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/solver"
)

// A Hook reacts to the lifecycle events of an ACME client.
type Hook struct {
	Solver    solver.Solver
	Monitors  []monitor.Monitor
	Notifiers []notifier.Notifier
}

func localHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "(unknown host)"
	}
	return name
}

func parseDomain(ppfmt pp.PP, arg string) (domain.Domain, bool) {
	d, err := domain.New(arg)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Domain %q was not fully parsed: %v", arg, err)
		return nil, false
	}
	return d, true
}

func (h Hook) deployChallenge(ctx context.Context, ppfmt pp.PP, args []string) bool {
	if len(args) < 3 {
		ppfmt.Noticef(pp.EmojiUserError,
			"deploy_challenge expects DOMAIN TOKEN_FILENAME TOKEN; got %d argument(s)", len(args))
		return false
	}

	d, ok := parseDomain(ppfmt, args[0])
	if !ok {
		return false
	}

	return h.Solver.Deploy(ctx, ppfmt, d, args[2])
}

func (h Hook) cleanChallenge(ctx context.Context, ppfmt pp.PP, args []string) bool {
	if len(args) < 1 {
		ppfmt.Noticef(pp.EmojiUserError,
			"clean_challenge expects DOMAIN TOKEN_FILENAME TOKEN; got %d argument(s)", len(args))
		return false
	}

	d, ok := parseDomain(ppfmt, args[0])
	if !ok {
		return false
	}

	return h.Solver.Clean(ctx, ppfmt, d)
}

func (h Hook) notify(ctx context.Context, ppfmt pp.PP, msg string) {
	// losing a notification must not fail the event that triggered it
	notifier.SendAll(ctx, ppfmt, h.Notifiers, msg)
}

func (h Hook) invalidChallenge(ctx context.Context, ppfmt pp.PP, args []string) bool {
	var dom, resp string
	if len(args) > 0 {
		dom = args[0]
	}
	if len(args) > 1 {
		resp = args[1]
	}

	ppfmt.Noticef(pp.EmojiError, "Challenge validation for %s failed: %s", dom, resp)
	h.notify(ctx, ppfmt,
		fmt.Sprintf("Challenge validation for %s failed on %s. Response from the validation server: %s",
			dom, localHostname(), resp))
	monitor.FailureAll(ctx, ppfmt, h.Monitors)
	return true
}

func (h Hook) requestFailure(ctx context.Context, ppfmt pp.PP, args []string) bool {
	var status, reason, reqType string
	if len(args) > 0 {
		status = args[0]
	}
	if len(args) > 1 {
		reason = args[1]
	}
	if len(args) > 2 {
		reqType = args[2]
	}

	ppfmt.Noticef(pp.EmojiError, "HTTP request (%s) failed with status %s: %s", reqType, status, reason)
	h.notify(ctx, ppfmt,
		fmt.Sprintf("An ACME request (%s) on %s failed with status %s: %s",
			reqType, localHostname(), status, reason))
	monitor.FailureAll(ctx, ppfmt, h.Monitors)
	return true
}

// Run reacts to a single event. The returned value decides the exit status of
// the process: false means a failed deployment or cleanup that the ACME client
// must see. Reporting that exit status to the monitors is the caller's business.
func (h Hook) Run(ctx context.Context, ppfmt pp.PP, event Event, args []string) bool {
	switch event {
	case EventDeployChallenge:
		return h.deployChallenge(ctx, ppfmt, args)

	case EventCleanChallenge:
		return h.cleanChallenge(ctx, ppfmt, args)

	case EventInvalidChallenge:
		return h.invalidChallenge(ctx, ppfmt, args)

	case EventRequestFailure:
		return h.requestFailure(ctx, ppfmt, args)

	case EventStartupHook:
		monitor.StartAll(ctx, ppfmt, h.Monitors)
		return true

	case EventExitHook:
		monitor.SuccessAll(ctx, ppfmt, h.Monitors)
		return true

	case EventDeployCert, EventUnchangedCert, EventGenerateCSR:
		// placeholders for integrators; the certificate itself is the ACME client's business
		return true

	default:
		return true
	}
}
