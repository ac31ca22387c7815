package domain_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
)

func TestFQDNDNSNameASCII(t *testing.T) {
	t.Parallel()

	require.NoError(t, quick.Check(
		func(s string) bool {
			return domain.FQDN(s).DNSNameASCII() == s
		},
		nil,
	))
}

func TestFQDNChallengeNameASCII(t *testing.T) {
	t.Parallel()

	require.Equal(t, "_acme-challenge.a.b.c", domain.FQDN("a.b.c").ChallengeNameASCII())
}

func TestFQDNDescribe(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]struct {
		input    string
		expected string
	}{
		// The following examples were adapted from https://unicode.org/cldr/utility/idna.jsp
		{"fass.de", "fass.de"},
		{"xn--fa-hia.de", "faß.de"},
		{"xn--yzg.com", "₹.com"},
		{"xn--a.com", "xn--a.com"},
		{"xn--bb-eka.at", "öbb.at"},
		{"xn--wgv71a.co.jp", "日本.co.jp"},
		// some other test cases
		{"a.com....", "a.com...."},
		{"a.com", "a.com"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, domain.FQDN(tc.input).Describe())
		})
	}
}

func TestFQDNZones(t *testing.T) {
	t.Parallel()
	type r = string
	for _, tc := range [...]struct {
		input    string
		expected []r
	}{
		{"a.b.c", []r{"a.b.c", "b.c", "c"}},
		{"a.b.foo.baa.com", []r{"a.b.foo.baa.com", "b.foo.baa.com", "foo.baa.com", "baa.com", "com"}},
		{"single", []r{"single"}},
		{"...", []r{"...", "..", ".", ""}},
		{".aaa..", []r{".aaa..", "aaa..", ".", ""}},
	} {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			var rs []r
			domain.FQDN(tc.input).Zones(func(zone string) bool {
				rs = append(rs, zone)
				return true
			})
			require.Equal(t, tc.expected, rs)
		})
	}
}

func TestFQDNZonesEarlyStop(t *testing.T) {
	t.Parallel()

	var rs []string
	domain.FQDN("a.b.c").Zones(func(zone string) bool {
		rs = append(rs, zone)
		return false
	})
	require.Equal(t, []string{"a.b.c"}, rs)
}
