// Package domain parses DNS domain names.
package domain

// A Domain represents a domain name a challenge can be deployed for.
type Domain interface {
	// DNSNameASCII gives a name suitable for accessing the Cloudflare API.
	DNSNameASCII() string

	// ChallengeNameASCII gives the name of the TXT record holding the
	// ACME challenge token for this domain.
	ChallengeNameASCII() string

	// Describe gives the most human-readable domain name that is still unambiguous.
	Describe() string

	// Zones iterates over possible zone names, from the most specific to the root.
	Zones(yield func(zoneNameASCII string) bool)
}
