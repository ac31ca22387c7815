// Package api implements the DNS provider API.
package api

import (
	"context"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_handle.go -package=mocks . Handle

// ID is a new type representing identifiers to avoid programming mistakes.
type ID string

// String calls the built-in conversion to a string.
func (id ID) String() string { return string(id) }

// A Zone is a named zone together with its provider-assigned identifier.
type Zone struct {
	Name string
	ID   ID
}

// A Record is a DNS record in a zone.
type Record struct {
	ID      ID
	Name    string
	Type    string
	Content string
	TTL     TTL
}

// A Handle represents a login to the DNS provider.
type Handle interface {
	// ListZones lists all zones on the account, mapping zone names to zone IDs.
	ListZones(ctx context.Context, ppfmt pp.PP) (map[string]ID, bool)

	// ZoneOfDomain finds the zone owning a particular domain.
	// The zone list is fetched anew on every call; nothing is cached.
	ZoneOfDomain(ctx context.Context, ppfmt pp.PP, domain domain.Domain) (Zone, bool)

	// ListRecords lists all TXT records in a zone.
	ListRecords(ctx context.Context, ppfmt pp.PP, zone Zone) ([]Record, bool)

	// CreateRecord creates a TXT record in a zone.
	CreateRecord(ctx context.Context, ppfmt pp.PP, zone Zone, name string, content string, ttl TTL) (ID, bool)

	// DeleteRecord deletes a record in a zone.
	DeleteRecord(ctx context.Context, ppfmt pp.PP, zone Zone, id ID) bool
}

// An Auth contains authentication data to connect to the DNS provider.
type Auth interface {
	// New uses the authentication data to create a [Handle].
	New(ppfmt pp.PP) (Handle, bool)
}
