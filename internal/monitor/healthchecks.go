package monitor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// HealthChecks pings a Healthchecks endpoint (https://healthchecks.io).
type HealthChecks struct {
	BaseURL         string
	RedactedBaseURL string
	Timeout         time.Duration
	MaxRetries      int
}

var _ Monitor = (*HealthChecks)(nil)

const (
	// HealthChecksDefaultTimeout is the default timeout for a Healthchecks ping.
	HealthChecksDefaultTimeout = 10 * time.Second

	// HealthChecksDefaultMaxRetries is the default number of retries for a Healthchecks ping.
	HealthChecksDefaultMaxRetries = 4
)

// NewHealthChecks creates a new Healthchecks monitor.
func NewHealthChecks(ppfmt pp.PP, rawURL string) (*HealthChecks, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the Healthchecks URL %q: %v", rawURL, err)
		return nil, false
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "" && u.Fragment == "" && !u.ForceQuery && u.RawQuery == "") {
		ppfmt.Noticef(pp.EmojiUserError, "The URL %q does not look like a valid Healthchecks URL", u.Redacted())
		ppfmt.Noticef(pp.EmojiUserError, `A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`)
		return nil, false
	}

	return &HealthChecks{
		BaseURL:         u.String(),
		RedactedBaseURL: u.Redacted(),
		Timeout:         HealthChecksDefaultTimeout,
		MaxRetries:      HealthChecksDefaultMaxRetries,
	}, true
}

// DescribeService gives the name of the service.
func (h *HealthChecks) DescribeService() string {
	return "Healthchecks"
}

// DescribeBaseURL gives the endpoint with the credential part masked out.
func (h *HealthChecks) DescribeBaseURL() string {
	return h.RedactedBaseURL
}

func (h *HealthChecks) ping(ctx context.Context, ppfmt pp.PP, endpoint string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	c := retryablehttp.NewClient()
	c.RetryMax = h.MaxRetries
	c.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, h.BaseURL+endpoint, nil)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible,
			"Failed to prepare HTTP(S) request to %q: %v", h.RedactedBaseURL+endpoint, err)
		return false
	}

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError,
			"Failed to send HTTP(S) request to %q: %v", h.RedactedBaseURL+endpoint, err)
		return false
	}
	resp.Body.Close()

	ppfmt.Infof(pp.EmojiPing, "Pinged %q", h.RedactedBaseURL+endpoint)
	return true
}

// Start pings the /start endpoint.
func (h *HealthChecks) Start(ctx context.Context, ppfmt pp.PP) bool {
	return h.ping(ctx, ppfmt, "/start")
}

// Success pings the root endpoint.
func (h *HealthChecks) Success(ctx context.Context, ppfmt pp.PP) bool {
	return h.ping(ctx, ppfmt, "")
}

// Failure pings the /fail endpoint.
func (h *HealthChecks) Failure(ctx context.Context, ppfmt pp.PP) bool {
	return h.ping(ctx, ppfmt, "/fail")
}

// ExitStatus reports the exit status (as if the hook were a cron job).
func (h *HealthChecks) ExitStatus(ctx context.Context, ppfmt pp.PP, code int) bool {
	if code < 0 || code > 255 {
		ppfmt.Noticef(pp.EmojiImpossible, "Exit code (%d) not within the range 0-255", code)
		return false
	}

	return h.ping(ctx, ppfmt, fmt.Sprintf("/%d", code))
}
