package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/config"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/mocks"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/monitor"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

//nolint:paralleltest // environment vars are global
func TestReadAndAppendHealthchecksURL(t *testing.T) {
	key := keyPrefix + "HEALTHCHECKS"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		ok            bool
		appended      bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"unset": {false, "", true, false, nil},
		"empty": {true, "", true, false, nil},
		"valid": {true, "https://hc-ping.com/id", true, true, nil},
		"illformed": {
			true, "http://hc-ping.com\x7f", false, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "Failed to parse the Healthchecks URL %q: %v", gomock.Any(), gomock.Any())
			},
		},
		"not-absolute": {
			true, "this is not a URL", false, false,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Noticef(pp.EmojiUserError, "The URL %q does not look like a valid Healthchecks URL", "this%20is%20not%20a%20URL"),
					m.EXPECT().Noticef(pp.EmojiUserError, `A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`),
				)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			var ms []monitor.Monitor
			ok := config.ReadAndAppendHealthchecksURL(mockPP, key, &ms)
			require.Equal(t, tc.ok, ok)
			if tc.appended {
				require.Len(t, ms, 1)
			} else {
				require.Empty(t, ms)
			}
		})
	}
}
