package config

import (
	"github.com/hikarikumo/cloudflare-acme-hook/internal/notifier"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// ReadAndAppendShoutrrrURL reads shoutrrr URLs separated by newlines.
func ReadAndAppendShoutrrrURL(ppfmt pp.PP, key string, field *[]notifier.Notifier) bool {
	vals := GetenvAsList(key, "\n")
	if len(vals) == 0 {
		return true
	}

	s, ok := notifier.NewShoutrrr(ppfmt, vals)
	if !ok {
		return false
	}

	*field = append(*field, s)
	return true
}
