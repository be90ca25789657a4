package adobeconnect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"

	"github.com/alnah/go-adobeconnect/internal/apierr"
	"github.com/alnah/go-adobeconnect/internal/log"
)

// Client configuration defaults.
const (
	apiPath = "/api/xml"

	defaultMaxRetries  = 3
	defaultBaseDelay   = 500 * time.Millisecond
	defaultMaxDelay    = 10 * time.Second
	defaultHTTPTimeout = 30 * time.Second

	// Response size limit; Adobe Connect replies are small XML documents.
	maxResponseSize = 4 * 1024 * 1024

	// sessionCookie is the cookie carrying the session token.
	sessionCookie = "BREEZESESSION"
)

// Sentinel errors for client configuration and input.
var (
	// ErrMissingURL indicates the server URL was not provided.
	ErrMissingURL = errors.New("server URL is required")

	// ErrInvalidRequest indicates request fields that fail local validation.
	ErrInvalidRequest = errors.New("invalid request")
)

// httpDoer abstracts the HTTP client for testing.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Adobe Connect XML API.
// It is safe for concurrent use; all calls share one session.
type Client struct {
	baseURL    string
	login      string
	password   string
	accountID  string
	httpClient httpDoer
	logger     log.Logger
	parser     *StatusParser

	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration

	mu      sync.Mutex
	session string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c httpDoer) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) ClientOption {
	return func(cl *Client) {
		cl.logger = l
	}
}

// WithAccountID sets the account id sent on login (hosted accounts).
func WithAccountID(id string) ClientOption {
	return func(cl *Client) {
		cl.accountID = id
	}
}

// WithMaxRetries sets the maximum number of retries for transient failures.
func WithMaxRetries(n int) ClientOption {
	return func(cl *Client) {
		if n >= 0 {
			cl.maxRetries = n
		}
	}
}

// WithRetryDelays sets the base and max delays for exponential backoff.
func WithRetryDelays(base, max time.Duration) ClientOption {
	return func(cl *Client) {
		if base > 0 {
			cl.baseDelay = base
		}
		if max > 0 {
			cl.maxDelay = max
		}
	}
}

// WithSession reuses an existing session token instead of logging in.
func WithSession(token string) ClientOption {
	return func(cl *Client) {
		cl.session = token
	}
}

// NewClient creates a Client for the server at baseURL.
// login and password may be empty when only unauthenticated calls are made
// or a session is supplied with WithSession.
func NewClient(baseURL, login, password string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingURL
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, ErrMissingURL)
	}

	c := &Client{
		baseURL:    baseURL,
		login:      login,
		password:   password,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
		maxDelay:   defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = log.OrNop(c.logger).With(log.String("component", "adobeconnect"))
	c.parser = NewStatusParser(c.logger)
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return c, nil
}

// Session returns the current session token, empty when logged out.
func (c *Client) Session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// response is a parsed reply plus the cookies that came with it.
type response struct {
	doc     *etree.Document
	cookies []*http.Cookie
}

// send performs one API request with retry on transient transport errors.
// The status of the reply is not inspected.
func (c *Client) send(ctx context.Context, action, session string, params url.Values) (response, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("action", action)
	if session != "" {
		q.Set("session", session)
	}
	endpoint := c.baseURL + apiPath + "?" + q.Encode()

	cfg := apierr.RetryConfig{
		MaxRetries: c.maxRetries,
		BaseDelay:  c.baseDelay,
		MaxDelay:   c.maxDelay,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			c.logger.Log(ctx, log.LevelWarn, "api call failed, retrying",
				log.String("action", action), log.Int("attempt", attempt),
				log.String("wait", wait.String()), log.Err(err))
		},
	}

	return apierr.RetryWithBackoff(ctx, cfg, func() (response, error) {
		c.logger.Log(ctx, log.LevelDebug, "api call", log.String("action", action))
		resp, err := c.do(ctx, endpoint)
		if err != nil {
			return response{}, apierr.Classify(err)
		}
		return resp, nil
	}, apierr.IsRetryable)
}

// do executes a single GET and parses the body.
func (c *Client) do(ctx context.Context, endpoint string) (_ response, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return response{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return response{}, apierr.NewStatusError(resp.StatusCode, body)
	}

	doc, err := ParseDocument(bytes.NewReader(body))
	if err != nil {
		return response{}, err
	}
	c.parser.Dump(ctx, doc)

	return response{doc: doc, cookies: resp.Cookies()}, nil
}

// call performs an API request and decodes its status. Vendor failures come
// back as *Errors. When authenticated is true a session is obtained first,
// and a no-login rejection triggers one re-login and replay.
func (c *Client) call(ctx context.Context, action string, params url.Values, authenticated bool) (*etree.Document, error) {
	session := c.Session()
	if authenticated {
		var err error
		if session, err = c.ensureSession(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.send(ctx, action, session, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	errs := &Errors{}
	if decodeStatus(resp.doc, errs) {
		return resp.doc, nil
	}

	if authenticated && errs.sessionExpired() && c.canLogin() {
		c.logger.Log(ctx, log.LevelInfo, "session expired, logging in again", log.String("action", action))
		c.invalidate(session)
		if session, err = c.ensureSession(ctx); err != nil {
			return nil, err
		}
		if resp, err = c.send(ctx, action, session, params); err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		errs = &Errors{}
		if decodeStatus(resp.doc, errs) {
			return resp.doc, nil
		}
	}

	c.logger.Log(ctx, log.LevelWarn, "api call failed",
		log.String("action", action), log.Any("codes", errs.codeNames()),
		log.String("errors", errs.Error()))
	return nil, errs
}

func (c *Client) canLogin() bool {
	return c.login != ""
}

// invalidate clears the session if it is still the given token.
func (c *Client) invalidate(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == token {
		c.session = ""
	}
}

// ensureSession returns the current session, logging in when there is none.
func (c *Client) ensureSession(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != "" {
		return c.session, nil
	}
	if !c.canLogin() {
		return "", ErrNotLoggedIn
	}
	return c.loginLocked(ctx)
}

// Login authenticates and stores the session. It replaces any current session.
func (c *Client) Login(ctx context.Context) error {
	if !c.canLogin() {
		return fmt.Errorf("no login configured: %w", ErrNotLoggedIn)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = ""
	_, err := c.loginLocked(ctx)
	return err
}

// loginLocked obtains a pre-login cookie from common-info, then logs in with
// it. The caller holds c.mu.
func (c *Client) loginLocked(ctx context.Context) (string, error) {
	pre, err := c.send(ctx, "common-info", "", nil)
	if err != nil {
		return "", fmt.Errorf("common-info: %w", err)
	}
	var token string
	if info, ok := parseCommonInfo(pre.doc); ok {
		token = info.Cookie
	}
	if token == "" {
		token = cookieValue(pre.cookies)
	}

	params := url.Values{}
	params.Set("login", c.login)
	params.Set("password", c.password)
	if c.accountID != "" {
		params.Set("account-id", c.accountID)
	}

	resp, err := c.send(ctx, "login", token, params)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	errs := &Errors{}
	if !decodeStatus(resp.doc, errs) {
		c.logger.Log(ctx, log.LevelWarn, "login rejected",
			log.String("login", c.login), log.String("errors", errs.Error()))
		return "", fmt.Errorf("login as %s: %w", c.login, errs)
	}

	if v := cookieValue(resp.cookies); v != "" {
		token = v
	}
	if token == "" {
		return "", fmt.Errorf("login as %s: no session issued: %w", c.login, ErrNotLoggedIn)
	}

	c.session = token
	c.logger.Log(ctx, log.LevelInfo, "logged in", log.String("login", c.login))
	return token, nil
}

func cookieValue(cookies []*http.Cookie) string {
	for _, ck := range cookies {
		if ck.Name == sessionCookie {
			return ck.Value
		}
	}
	return ""
}

// Logout ends the session on the server. It is a no-op without a session.
func (c *Client) Logout(ctx context.Context) error {
	session := c.Session()
	if session == "" {
		return nil
	}
	if _, err := c.call(ctx, "logout", nil, false); err != nil {
		return err
	}
	c.invalidate(session)
	return nil
}

// CommonInfo returns server information. It does not require a session.
func (c *Client) CommonInfo(ctx context.Context) (CommonInfo, error) {
	doc, err := c.call(ctx, "common-info", nil, false)
	if err != nil {
		return CommonInfo{}, err
	}
	info, ok := parseCommonInfo(doc)
	if !ok {
		return CommonInfo{}, fmt.Errorf("common-info: no common element: %w", ErrMalformedResponse)
	}
	return info, nil
}
