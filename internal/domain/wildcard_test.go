package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
)

func TestWildcardDNSNameASCII(t *testing.T) {
	t.Parallel()

	require.Equal(t, "*", domain.Wildcard("").DNSNameASCII())
	require.Equal(t, "*.example.org", domain.Wildcard("example.org").DNSNameASCII())
}

func TestWildcardChallengeNameASCII(t *testing.T) {
	t.Parallel()

	require.Equal(t, "_acme-challenge.example.org", domain.Wildcard("example.org").ChallengeNameASCII())
}

func TestWildcardDescribe(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]struct {
		input    string
		expected string
	}{
		{"", "*"},
		{"fass.de", "*.fass.de"},
		{"xn--fa-hia.de", "*.faß.de"},
		{"xn--a.com", "*.xn--a.com"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, domain.Wildcard(tc.input).Describe())
		})
	}
}

func TestWildcardZones(t *testing.T) {
	t.Parallel()
	type r = string
	for _, tc := range [...]struct {
		input    string
		expected []r
	}{
		{"b.c", []r{"b.c", "c"}},
		{"foo.baa.com", []r{"foo.baa.com", "baa.com", "com"}},
	} {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			var rs []r
			domain.Wildcard(tc.input).Zones(func(zone string) bool {
				rs = append(rs, zone)
				return true
			})
			require.Equal(t, tc.expected, rs)
		})
	}
}
