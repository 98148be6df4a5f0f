package memora

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/utils/safe"
)

// DefaultUserAgent is sent when no user agent is configured
const DefaultUserAgent = "memora"

// Client calls the memory agent service. It holds no per-call state, so a
// single Client may be shared by concurrent callers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	userAgent  string
	timeouts   map[Operation]time.Duration
	trace      *safe.Writer
}

// Option is a functional option for client configuration
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its own Timeout, if
// any, applies on top of the per-operation budgets.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIKey sets a key sent as a bearer token. The client never inspects it.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTraceWriter sets where verbose request/response traces go. Defaults to
// os.Stderr.
func WithTraceWriter(w io.Writer) Option {
	return func(c *Client) {
		c.trace = safe.NewWriter(w)
	}
}

// WithTimeout overrides the budget of one operation
func WithTimeout(op Operation, d time.Duration) Option {
	return func(c *Client) {
		c.timeouts[op] = d
	}
}

// New creates a client for the service rooted at baseURL. A path prefix in
// baseURL is kept; a trailing slash is dropped.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid API URL", goerr.V(URLKey, baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("API URL scheme must be http or https", goerr.V(URLKey, baseURL))
	}
	if u.Host == "" {
		return nil, goerr.New("API URL must include a host", goerr.V(URLKey, baseURL))
	}
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
		timeouts:   make(map[Operation]time.Duration),
		trace:      safe.NewWriter(os.Stderr),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c, nil
}

// BaseURL returns the normalized service root
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) timeout(op Operation) time.Duration {
	if d, ok := c.timeouts[op]; ok && d > 0 {
		return d
	}
	return op.Timeout()
}

// resolve joins the base URL with path segments, percent-encoding each
// segment, and appends the encoded query when present.
func (c *Client) resolve(segments []string, query url.Values) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String()
}

func apiPath(segments ...string) []string {
	return append([]string{"api", "v1"}, segments...)
}
