package traceix

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL overrides the default Traceix service base URL, e.g. to point
// the SDK at a staging deployment. A trailing slash is stripped.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom resty client. This allows full control over
// transport, TLS, proxies, etc. When set, WithTimeout has no effect.
func WithHTTPClient(hc *resty.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the request timeout for all operations.
// Non-positive durations are ignored.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for internal diagnostics, in particular the
// cause of requests that collapse into a nil Result. The default is a no-op
// logger.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}
