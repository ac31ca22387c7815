package hook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/domain"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/hook"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/mocks"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/monitor"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/notifier"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

func TestRunDeployChallenge(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		args         []string
		ok           bool
		prepareMocks func(*mocks.MockPP, *mocks.MockSolver, *mocks.MockMonitor)
	}{
		"ok": {
			[]string{"example.org", "token-file", "token-value"},
			true,
			func(_ *mocks.MockPP, s *mocks.MockSolver, _ *mocks.MockMonitor) {
				s.EXPECT().
					Deploy(gomock.Any(), gomock.Any(), domain.FQDN("example.org"), "token-value").
					Return(true)
			},
		},
		"wildcard": {
			[]string{"*.example.org", "token-file", "token-value"},
			true,
			func(_ *mocks.MockPP, s *mocks.MockSolver, _ *mocks.MockMonitor) {
				s.EXPECT().
					Deploy(gomock.Any(), gomock.Any(), domain.Wildcard("example.org"), "token-value").
					Return(true)
			},
		},
		"deploy-fails": {
			[]string{"example.org", "token-file", "token-value"},
			false,
			func(_ *mocks.MockPP, s *mocks.MockSolver, _ *mocks.MockMonitor) {
				s.EXPECT().
					Deploy(gomock.Any(), gomock.Any(), domain.FQDN("example.org"), "token-value").
					Return(false)
			},
		},
		"too-few-args": {
			[]string{"example.org"},
			false,
			func(p *mocks.MockPP, _ *mocks.MockSolver, _ *mocks.MockMonitor) {
				p.EXPECT().Noticef(pp.EmojiUserError,
					"deploy_challenge expects DOMAIN TOKEN_FILENAME TOKEN; got %d argument(s)", 1)
			},
		},
		"bad-domain": {
			[]string{"", "token-file", "token-value"},
			false,
			func(p *mocks.MockPP, _ *mocks.MockSolver, _ *mocks.MockMonitor) {
				p.EXPECT().Noticef(pp.EmojiUserError, "Domain %q was not fully parsed: %v", "", gomock.Any())
			},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockSolver := mocks.NewMockSolver(mockCtrl)
			mockMonitor := mocks.NewMockMonitor(mockCtrl)
			tc.prepareMocks(mockPP, mockSolver, mockMonitor)

			h := hook.Hook{
				Solver:   mockSolver,
				Monitors: []monitor.Monitor{mockMonitor},
			}
			ok := h.Run(context.Background(), mockPP, hook.EventDeployChallenge, tc.args)
			require.Equal(t, tc.ok, ok)
		})
	}
}

func TestRunCleanChallenge(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		args         []string
		ok           bool
		prepareMocks func(*mocks.MockPP, *mocks.MockSolver, *mocks.MockMonitor)
	}{
		"ok": {
			[]string{"example.org", "token-file", "token-value"},
			true,
			func(_ *mocks.MockPP, s *mocks.MockSolver, _ *mocks.MockMonitor) {
				s.EXPECT().
					Clean(gomock.Any(), gomock.Any(), domain.FQDN("example.org")).
					Return(true)
			},
		},
		"clean-fails": {
			[]string{"example.org", "token-file", "token-value"},
			false,
			func(_ *mocks.MockPP, s *mocks.MockSolver, _ *mocks.MockMonitor) {
				s.EXPECT().
					Clean(gomock.Any(), gomock.Any(), domain.FQDN("example.org")).
					Return(false)
			},
		},
		"no-args": {
			nil,
			false,
			func(p *mocks.MockPP, _ *mocks.MockSolver, _ *mocks.MockMonitor) {
				p.EXPECT().Noticef(pp.EmojiUserError,
					"clean_challenge expects DOMAIN TOKEN_FILENAME TOKEN; got %d argument(s)", 0)
			},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockSolver := mocks.NewMockSolver(mockCtrl)
			mockMonitor := mocks.NewMockMonitor(mockCtrl)
			tc.prepareMocks(mockPP, mockSolver, mockMonitor)

			h := hook.Hook{
				Solver:   mockSolver,
				Monitors: []monitor.Monitor{mockMonitor},
			}
			ok := h.Run(context.Background(), mockPP, hook.EventCleanChallenge, tc.args)
			require.Equal(t, tc.ok, ok)
		})
	}
}

func TestRunInvalidChallenge(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockSolver := mocks.NewMockSolver(mockCtrl)
	mockMonitor := mocks.NewMockMonitor(mockCtrl)
	mockNotifier := mocks.NewMockNotifier(mockCtrl)

	mockPP.EXPECT().Noticef(pp.EmojiError,
		"Challenge validation for %s failed: %s", "example.org", "no TXT found")
	mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	mockMonitor.EXPECT().Failure(gomock.Any(), gomock.Any()).Return(true)

	h := hook.Hook{
		Solver:    mockSolver,
		Monitors:  []monitor.Monitor{mockMonitor},
		Notifiers: []notifier.Notifier{mockNotifier},
	}
	require.True(t, h.Run(context.Background(), mockPP, hook.EventInvalidChallenge,
		[]string{"example.org", "no TXT found"}))
}

func TestRunInvalidChallengeNotificationFailure(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockMonitor := mocks.NewMockMonitor(mockCtrl)
	mockNotifier := mocks.NewMockNotifier(mockCtrl)

	mockPP.EXPECT().Noticef(pp.EmojiError,
		"Challenge validation for %s failed: %s", "example.org", "timeout")
	mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	mockMonitor.EXPECT().Failure(gomock.Any(), gomock.Any()).Return(true)

	h := hook.Hook{
		Monitors:  []monitor.Monitor{mockMonitor},
		Notifiers: []notifier.Notifier{mockNotifier},
	}

	// a lost notification must not fail the event
	require.True(t, h.Run(context.Background(), mockPP, hook.EventInvalidChallenge,
		[]string{"example.org", "timeout"}))
}

func TestRunRequestFailure(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockMonitor := mocks.NewMockMonitor(mockCtrl)
	mockNotifier := mocks.NewMockNotifier(mockCtrl)

	mockPP.EXPECT().Noticef(pp.EmojiError,
		"HTTP request (%s) failed with status %s: %s", "new-authz", "400", "bad nonce")
	mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	mockMonitor.EXPECT().Failure(gomock.Any(), gomock.Any()).Return(true)

	h := hook.Hook{
		Monitors:  []monitor.Monitor{mockMonitor},
		Notifiers: []notifier.Notifier{mockNotifier},
	}
	require.True(t, h.Run(context.Background(), mockPP, hook.EventRequestFailure,
		[]string{"400", "bad nonce", "new-authz"}))
}

func TestRunLifecycle(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		event        hook.Event
		prepareMocks func(*mocks.MockMonitor)
	}{
		"startup": {
			hook.EventStartupHook,
			func(m *mocks.MockMonitor) {
				m.EXPECT().Start(gomock.Any(), gomock.Any()).Return(true)
			},
		},
		"exit": {
			hook.EventExitHook,
			func(m *mocks.MockMonitor) {
				m.EXPECT().Success(gomock.Any(), gomock.Any()).Return(true)
			},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockMonitor := mocks.NewMockMonitor(mockCtrl)
			tc.prepareMocks(mockMonitor)

			h := hook.Hook{Monitors: []monitor.Monitor{mockMonitor}}
			require.True(t, h.Run(context.Background(), mockPP, tc.event, nil))
		})
	}
}

func TestRunNoOps(t *testing.T) {
	t.Parallel()

	for name, event := range map[string]hook.Event{
		"deploy-cert":    hook.EventDeployCert,
		"unchanged-cert": hook.EventUnchangedCert,
		"generate-csr":   hook.EventGenerateCSR,
	} {
		event := event
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockMonitor := mocks.NewMockMonitor(mockCtrl)

			h := hook.Hook{Monitors: []monitor.Monitor{mockMonitor}}
			require.True(t, h.Run(context.Background(), mockPP, event, []string{"arg"}))
		})
	}
}
