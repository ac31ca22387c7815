package solver

import (
	"context"
	"strings"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/api"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// challengeLabel marks the records this hook manages. The filter is a substring
// match, not a label match, mirroring the provider-side search semantics;
// sibling challenge records in the same zone are deliberately swept together.
const challengeLabel = "_acme-challenge."

type solver struct {
	handle api.Handle
	ttl    api.TTL
}

// New creates a new [Solver] on top of an [api.Handle].
func New(handle api.Handle, ttl api.TTL) Solver {
	return solver{handle: handle, ttl: ttl}
}

// Deploy creates the TXT record _acme-challenge.<domain> holding the token.
// It returns once the provider acknowledges the creation; waiting for
// propagation is the caller's business.
func (s solver) Deploy(ctx context.Context, ppfmt pp.PP, d domain.Domain, token string) bool {
	zone, ok := s.handle.ZoneOfDomain(ctx, ppfmt, d)
	if !ok {
		return false
	}

	name := d.ChallengeNameASCII()

	id, ok := s.handle.CreateRecord(ctx, ppfmt, zone, name, token, s.ttl)
	if !ok {
		return false
	}

	ppfmt.Infof(pp.EmojiDeployRecord,
		"Deployed a challenge record %s in the zone %s (ID: %s)", name, zone.Name, id)
	return true
}

// Clean deletes every TXT record in the owning zone whose name contains the
// challenge label. Each deletion is attempted independently; a failure to
// delete one record does not block the others.
func (s solver) Clean(ctx context.Context, ppfmt pp.PP, d domain.Domain) bool {
	zone, ok := s.handle.ZoneOfDomain(ctx, ppfmt, d)
	if !ok {
		return false
	}

	rs, ok := s.handle.ListRecords(ctx, ppfmt, zone)
	if !ok {
		return false
	}

	allOk := true
	cleaned := 0
	for _, r := range rs {
		if !strings.Contains(r.Name, challengeLabel) {
			continue
		}

		if !s.handle.DeleteRecord(ctx, ppfmt, zone, r.ID) {
			allOk = false
			continue
		}

		ppfmt.Infof(pp.EmojiClearRecord,
			"Cleared the challenge record %s in the zone %s (ID: %s)", r.Name, zone.Name, r.ID)
		cleaned++
	}

	if cleaned == 0 && allOk {
		ppfmt.Infof(pp.EmojiClearRecord, "No challenge records to clear in the zone %s", zone.Name)
	}

	return allOk
}
