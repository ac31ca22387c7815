// Package solver deploys and cleans ACME DNS-01 challenge records.
package solver

import (
	"context"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_solver.go -package=mocks . Solver

// A Solver publishes and withdraws challenge records proving domain control.
type Solver interface {
	// Deploy publishes the challenge token as a TXT record for the domain.
	Deploy(ctx context.Context, ppfmt pp.PP, domain domain.Domain, token string) bool

	// Clean removes all challenge records for domains within the zone owning the domain.
	Clean(ctx context.Context, ppfmt pp.PP, domain domain.Domain) bool
}
