// Package notifier implements push notifications to operators.
package notifier

import (
	"context"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks . Notifier

// Notifier is an abstract service for push notifications.
type Notifier interface {
	// Describe a notifier in a human-readable format by calling callback with service names and params.
	Describe(callback func(service, params string))

	// Send out a message.
	Send(ctx context.Context, ppfmt pp.PP, msg string) bool
}

// DescribeAll calls [Notifier.Describe] for each notifier in the group with the callback.
func DescribeAll(callback func(service, params string), ns []Notifier) {
	for _, n := range ns {
		n.Describe(callback)
	}
}

// SendAll calls [Notifier.Send] for each notifier in the group.
func SendAll(ctx context.Context, ppfmt pp.PP, ns []Notifier, msg string) bool {
	ok := true
	for _, n := range ns {
		if !n.Send(ctx, ppfmt, msg) {
			ok = false
		}
	}
	return ok
}
