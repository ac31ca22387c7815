package notifier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/mocks"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/notifier"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

func TestShoutrrrDescribe(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	n, ok := notifier.NewShoutrrr(mockPP, []string{"generic://localhost/"})
	require.True(t, ok)
	n.Describe(func(service, _params string) {
		require.Equal(t, "generic", service)
	})
}

func TestShoutrrrInvalidURL(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiUserError, "Could not create shoutrrr client: %v", gomock.Any())

	n, ok := notifier.NewShoutrrr(mockPP, []string{"this is not a shoutrrr url"})
	require.False(t, ok)
	require.Nil(t, n)
}

func TestShoutrrrSend(t *testing.T) {
	t.Parallel()

	pinged := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.Equal(t, http.MethodPost, r.Method) {
			panic(http.ErrAbortHandler)
		}
		pinged++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Infof(pp.EmojiNotification, "Sent shoutrrr message")

	n, ok := notifier.NewShoutrrr(mockPP, []string{"generic+" + server.URL})
	require.True(t, ok)
	require.True(t, n.Send(context.Background(), mockPP, "hello"))
	require.Equal(t, 1, pinged)
}

func TestSendAll(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	n1 := mocks.NewMockNotifier(mockCtrl)
	n2 := mocks.NewMockNotifier(mockCtrl)
	ctx := context.Background()

	n1.EXPECT().Send(ctx, mockPP, "msg").Return(true)
	n2.EXPECT().Send(ctx, mockPP, "msg").Return(false)

	require.False(t, notifier.SendAll(ctx, mockPP, []notifier.Notifier{n1, n2}, "msg"))
	require.True(t, notifier.SendAll(ctx, mockPP, nil, "msg"))
}
