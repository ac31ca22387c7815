package domain

// Wildcard is a fully qualified zone name in its ASCII form, representing the wildcard domain name
// under the zone. For example, Wildcard("example.org") represents "*.example.org".
type Wildcard string

// DNSNameASCII returns the ASCII form of the wildcard domain.
func (w Wildcard) DNSNameASCII() string {
	if string(w) == "" {
		return "*"
	}

	return "*." + string(w)
}

// ChallengeNameASCII prepends the ACME challenge label to the base name;
// the challenge record of "*.example.org" lives at "_acme-challenge.example.org".
func (w Wildcard) ChallengeNameASCII() string { return "_acme-challenge." + string(w) }

// Describe gives a human-readable representation of the wildcard domain.
func (w Wildcard) Describe() string {
	if string(w) == "" {
		return "*"
	}

	return "*." + safelyToUnicode(string(w))
}

// Zones starts from b.c for the wildcard domain *.b.c.
func (w Wildcard) Zones(yield func(zoneNameASCII string) bool) {
	FQDN(w).Zones(yield)
}
