// Package payapi provides the authenticated HTTP core for the upstream
// payments API: OAuth2 client-credentials token caching, the 401-triggered
// one-shot retry, failure classification, and normalization of upstream
// response shapes into one canonical envelope.
package payapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/payflowhq/payflow-mcp/internal/logging"
)

// DefaultTimeout applies when no request timeout is configured.
const DefaultTimeout = 30 * time.Second

// Credentials for the OAuth2 client-credentials grant. Immutable after
// client construction.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Options configure a Client. Values are owned and validated by the config
// layer; the client accepts them as-is.
type Options struct {
	BaseURL     string
	TokenURL    string
	Credentials Credentials
	Timeout     time.Duration
	Logger      logging.Logger

	// HTTPClient overrides the default transport (tests).
	HTTPClient *http.Client
}

// Client issues authenticated requests against one configured account.
// Each Client owns its own token cache; clients for different accounts
// share nothing.
type Client struct {
	baseURL  string
	tokenURL string
	creds    Credentials
	http     *http.Client
	tokens   *tokenCache
	logger   logging.Logger
}

// NewClient creates a Client for one account.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		tokenURL: opts.TokenURL,
		creds:    opts.Credentials,
		http:     httpClient,
		tokens:   newTokenCache(),
		logger:   logger,
	}
}

// Request issues an authenticated call and returns the decoded JSON body.
//
// A 401 response triggers exactly one refresh-and-retry cycle: the cached
// token is invalidated, a fresh one is fetched, and the call is reissued
// once. A 401 on the retried call is terminal. All other non-2xx statuses
// map to the classified error taxonomy and are never retried here.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	token, err := c.tokens.Token(ctx, c.fetchToken)
	if err != nil {
		return nil, err
	}

	// One idempotency key per logical request, so the 401 retry reuses it.
	var idemKey string
	if method != http.MethodGet && method != http.MethodDelete {
		idemKey = uuid.NewString()
	}

	result, unauthorized, err := c.do(ctx, method, path, query, body, token, idemKey)
	if !unauthorized {
		return result, err
	}

	c.logger.Debug("retrying after 401", "method", method, "path", path)
	c.tokens.Invalidate()
	token, err = c.tokens.Token(ctx, c.fetchToken)
	if err != nil {
		return nil, err
	}

	result, unauthorized, err = c.do(ctx, method, path, query, body, token, idemKey)
	if unauthorized {
		return nil, errAuth("authentication failed after token refresh")
	}
	return result, err
}

// do performs a single HTTP exchange. A 401 is reported via the bool so the
// caller decides whether a retry is still permitted.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, token, idemKey string) (any, bool, error) {
	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return nil, false, err
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idemKey != "" {
		req.Header.Set("Idempotency-Key", idemKey)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, transportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body)
		return nil, true, nil

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, false, errNetwork(err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, false, nil
		}
		var parsed any
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, false, errParse(err)
		}
		return parsed, false, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, false, errNotFound(path)

	case resp.StatusCode == http.StatusConflict:
		return nil, false, errConflict(upstreamMessage(resp.Body, "conflicting request"))

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, false, errRateLimit(parseRetryAfter(resp.Header.Get("Retry-After")))

	case resp.StatusCode >= 500:
		return nil, false, errServer(resp.StatusCode)

	default:
		msg := upstreamMessage(resp.Body, fmt.Sprintf("request failed (HTTP %d)", resp.StatusCode))
		return nil, false, errAPI(resp.StatusCode, msg)
	}
}

// fetchToken performs the OAuth2 client-credentials exchange. A non-2xx
// response or malformed body is an auth failure; nothing is ever cached on
// failure. The token value is never logged.
func (c *Client) fetchToken(ctx context.Context) (*oauth2.Token, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("fetching access token")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &Error{
			Code:       CodeAuth,
			Message:    fmt.Sprintf("token endpoint returned HTTP %d", resp.StatusCode),
			HTTPStatus: resp.StatusCode,
		}
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, &Error{Code: CodeAuth, Message: "malformed token response", Cause: err}
	}
	if tokenResp.AccessToken == "" {
		return nil, errAuth("token endpoint returned no access token")
	}

	tok := &oauth2.Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
	}
	if tokenResp.ExpiresIn > 0 {
		tok.Expiry = c.tokens.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}
	return tok, nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// transportError classifies a transport-level failure. Caller cancellation
// passes through unmodified so it propagates as such.
func transportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return errTimeout(err)
	}
	return errNetwork(err)
}

// upstreamMessage extracts an error/message field from an upstream error
// body, falling back to the given default.
func upstreamMessage(body io.Reader, fallback string) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return fallback
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}

func parseRetryAfter(header string) int {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}
