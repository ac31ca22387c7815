package api

import (
	"context"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// ListZones returns all zones on the account, mapping zone names to zone IDs.
// ListZonesContext handles the pagination itself.
func (h CloudflareHandle) ListZones(ctx context.Context, ppfmt pp.PP) (map[string]ID, bool) {
	res, err := h.cf.ListZonesContext(ctx)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to list the zones on the account: %v", err)
		hintTokenPermission(ppfmt, err)
		return nil, false
	}

	zones := map[string]ID{}
	for _, zone := range res.Result {
		// The list of possible statuses was at https://api.cloudflare.com/#zone-list-zones
		// but the documentation is missing now.
		switch zone.Status {
		case "active": // fully working
		case
			"deactivated",  // violating term of service, etc.
			"initializing", // the setup was just started?
			"moved",        // domain registrar not pointing to Cloudflare
			"pending":      // the setup was not completed
			ppfmt.Infof(pp.EmojiWarning,
				"DNS zone %s is %q in your Cloudflare account; challenge records might not be served",
				zone.Name, zone.Status)
		case "deleted": // archived, pending/moved for too long
			ppfmt.Infof(pp.EmojiWarning,
				"DNS zone %s is %q in your Cloudflare account and thus skipped", zone.Name, zone.Status)
			continue
		}

		if _, dup := zones[zone.Name]; dup {
			ppfmt.Noticef(pp.EmojiImpossible,
				"Found multiple zones named %s on the account; using the first one", zone.Name)
			continue
		}
		zones[zone.Name] = ID(zone.ID)
	}

	return zones, true
}

// FindZone returns the zone whose name is the longest suffix of the domain,
// walking label by label from the full domain name down to the root.
// It is pure; fetching the zone set is the caller's business.
func FindZone(d domain.Domain, zones map[string]ID) (Zone, bool) {
	var found Zone
	ok := false

	d.Zones(func(zoneName string) bool {
		if id, has := zones[zoneName]; has {
			found = Zone{Name: zoneName, ID: id}
			ok = true
			return false
		}
		return true
	})

	return found, ok
}

// ZoneOfDomain finds the zone owning a particular domain.
func (h CloudflareHandle) ZoneOfDomain(ctx context.Context, ppfmt pp.PP, d domain.Domain) (Zone, bool) {
	zones, ok := h.ListZones(ctx, ppfmt)
	if !ok {
		return Zone{}, false
	}

	zone, found := FindZone(d, zones)
	if !found {
		ppfmt.Noticef(pp.EmojiError, "Failed to find the zone of %s", d.Describe())
		return Zone{}, false
	}

	return zone, true
}
