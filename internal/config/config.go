// Package config reads and parses configurations.
package config

import (
	"fmt"
	"time"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/api"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/monitor"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/notifier"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// Config holds the configuration of the hook.
type Config struct {
	Auth      api.Auth
	TTL       api.TTL
	Timeout   time.Duration
	Monitors  []monitor.Monitor
	Notifiers []notifier.Notifier
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Auth:      nil,
		TTL:       api.TTL(60),
		Timeout:   30 * time.Second,
		Monitors:  nil,
		Notifiers: nil,
	}
}

// ReadEnv calls the relevant readers to read all relevant environment variables
// except the output-related ones (QUIET and EMOJI).
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadAuth(ppfmt, &c.Auth) ||
		!ReadTTL(ppfmt, "TTL", &c.TTL) ||
		!ReadNonnegDuration(ppfmt, "TIMEOUT", &c.Timeout) ||
		!ReadAndAppendHealthchecksURL(ppfmt, "HEALTHCHECKS", &c.Monitors) ||
		!ReadAndAppendShoutrrrURL(ppfmt, "NOTIFIER", &c.Notifiers) {
		return false
	}

	return true
}

const itemTitleWidth = 16

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Challenge records:")
	item("TTL:", "%s", c.TTL.Describe())

	section("Timeouts:")
	item("API calls:", "%v", c.Timeout)

	if len(c.Monitors) > 0 {
		section("Monitors:")
		for _, m := range c.Monitors {
			item(m.DescribeService()+":", "%s", "(URL redacted)")
		}
	}

	if len(c.Notifiers) > 0 {
		section("Notifiers:")
		notifier.DescribeAll(func(service, params string) {
			item(service+":", "%s", params)
		}, c.Notifiers)
	}
}
