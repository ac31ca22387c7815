package api

import (
	"context"

	"github.com/cloudflare/cloudflare-go"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

const recordPageSize = 100

// ListRecords lists all TXT records in a zone by calling cloudflare.ListDNSRecords.
func (h CloudflareHandle) ListRecords(ctx context.Context, ppfmt pp.PP, zone Zone) ([]Record, bool) {
	var rs []Record

	//nolint:exhaustruct // Other fields are intentionally unspecified
	params := cloudflare.ListDNSRecordsParams{
		Type: "TXT",
		ResultInfo: cloudflare.ResultInfo{ //nolint:exhaustruct
			PerPage: recordPageSize,
			Page:    1,
		},
	}

	for {
		raw, rinfo, err := h.cf.ListDNSRecords(ctx, cloudflare.ZoneIdentifier(string(zone.ID)), params)
		if err != nil {
			ppfmt.Noticef(pp.EmojiError, "Failed to retrieve the TXT records in the zone %s: %v", zone.Name, err)
			hintTokenPermission(ppfmt, err)
			return nil, false
		}

		for _, r := range raw {
			rs = append(rs, Record{
				ID:      ID(r.ID),
				Name:    r.Name,
				Type:    r.Type,
				Content: r.Content,
				TTL:     TTL(r.TTL),
			})
		}

		if rinfo == nil || rinfo.Page >= rinfo.TotalPages {
			return rs, true
		}
		params.ResultInfo.Page = rinfo.Page + 1
	}
}

// CreateRecord creates a TXT record by calling cloudflare.CreateDNSRecord.
func (h CloudflareHandle) CreateRecord(ctx context.Context, ppfmt pp.PP,
	zone Zone, name string, content string, ttl TTL,
) (ID, bool) {
	//nolint:exhaustruct // Other fields are intentionally omitted
	params := cloudflare.CreateDNSRecordParams{
		Name:    name,
		Type:    "TXT",
		Content: content,
		TTL:     ttl.Int(),
	}

	res, err := h.cf.CreateDNSRecord(ctx, cloudflare.ZoneIdentifier(string(zone.ID)), params)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to add a new TXT record of %s: %v", name, err)
		hintTokenPermission(ppfmt, err)
		return "", false
	}

	return ID(res.ID), true
}

// DeleteRecord removes a record by calling cloudflare.DeleteDNSRecord.
func (h CloudflareHandle) DeleteRecord(ctx context.Context, ppfmt pp.PP, zone Zone, id ID) bool {
	if err := h.cf.DeleteDNSRecord(ctx, cloudflare.ZoneIdentifier(string(zone.ID)), string(id)); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to delete a TXT record in the zone %s (ID: %s): %v",
			zone.Name, id, err)
		hintTokenPermission(ppfmt, err)
		return false
	}

	return true
}
