// Package main is the entry point of the ACME DNS-01 challenge hook.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/config"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/hook"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/monitor"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/solver"
)

// Version is the version of the hook that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "Cloudflare ACME hook"
	}
	return fmt.Sprintf("Cloudflare ACME hook (%s)", Version)
}

func initConfig(ppfmt pp.PP) (*config.Config, solver.Solver, bool) {
	c := config.Default()

	if !c.ReadEnv(ppfmt) {
		return c, nil, false
	}

	c.Print(ppfmt)

	h, ok := c.Auth.New(ppfmt)
	if !ok {
		return c, nil, false
	}

	return c, solver.New(h, c.TTL), true
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	// The event name decides everything, including whether to make any noise:
	// ACME clients invoke the hook for event names it does not handle, and
	// those invocations must succeed silently.
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: hook EVENT [ARGS...]")
		return 1
	}
	event, known := hook.ParseEvent(args[0])
	if !known {
		return 0
	}

	// stdout belongs to the ACME client (the generate_csr contract);
	// everything the hook says goes to stderr
	ppfmt := pp.New(os.Stderr)
	if !config.ReadEmoji(ppfmt, "EMOJI", &ppfmt) || !config.ReadQuiet(ppfmt, "QUIET", &ppfmt) {
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	ppfmt.Infof(pp.EmojiStar, "%s: %s", formatName(), event)

	c, s, ok := initConfig(ppfmt)
	if !ok {
		return 1
	}

	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	h := hook.Hook{Solver: s, Monitors: c.Monitors, Notifiers: c.Notifiers}
	if !h.Run(ctx, ppfmt, event, args[1:]) {
		monitor.ExitStatusAll(ctx, ppfmt, c.Monitors, 1)
		return 1
	}
	return 0
}
