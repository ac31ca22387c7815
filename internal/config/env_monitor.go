package config

import (
	"github.com/hikarikumo/cloudflare-acme-hook/internal/monitor"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// ReadAndAppendHealthchecksURL reads the base URL of a Healthchecks endpoint.
func ReadAndAppendHealthchecksURL(ppfmt pp.PP, key string, field *[]monitor.Monitor) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	h, ok := monitor.NewHealthChecks(ppfmt, val)
	if !ok {
		return false
	}

	*field = append(*field, h)
	return true
}
