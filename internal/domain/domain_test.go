package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
)

func TestNew(t *testing.T) {
	t.Parallel()
	type f = domain.FQDN
	type w = domain.Wildcard
	for _, tc := range [...]struct {
		input     string
		expected  domain.Domain
		ok        bool
		errString string
	}{
		// The following examples were adapted from https://unicode.org/cldr/utility/idna.jsp
		{"fass.de", f("fass.de"), true, ""},
		{"faß.de", f("xn--fa-hia.de"), true, ""},
		{"fäß.de", f("xn--f-qfao.de"), true, ""},
		{"xn--fa-hia.de", f("xn--fa-hia.de"), true, ""},
		{"₹.com", f("xn--yzg.com"), true, ""},
		{".com", f("xn--a.com"), false, "idna: disallowed rune U+0080"},
		{"öbb.at", f("xn--bb-eka.at"), true, ""},
		{"ÖBB.at", f("xn--bb-eka.at"), true, ""},
		// plain names and FQDN-ish inputs
		{"example.com", f("example.com"), true, ""},
		{"example.com.", f("example.com"), true, ""},
		{"EXAMPLE.COM", f("example.com"), true, ""},
		{"single", f("single"), true, ""},
		{"", f(""), false, "empty domain name"},
		// wildcards
		{"*.example.com", w("example.com"), true, ""},
		{"*.fass.de", w("fass.de"), true, ""},
		{"*.faß.de", w("xn--fa-hia.de"), true, ""},
	} {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			d, err := domain.New(tc.input)
			require.Equal(t, tc.expected, d)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.errString)
			}
		})
	}
}
