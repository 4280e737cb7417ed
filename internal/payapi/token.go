package payapi

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// expirySafetyMargin is subtracted from a token's advertised expiry so a
// token nearing expiry is never used for a request that could outlive it.
const expirySafetyMargin = 60 * time.Second

// fetchFunc performs the OAuth2 client-credentials exchange and returns a
// token with Expiry set from the advertised expires_in.
type fetchFunc func(ctx context.Context) (*oauth2.Token, error)

// tokenCache holds the single cached bearer token for one Client and
// coalesces concurrent refreshes into one upstream exchange.
//
// Each Client owns exactly one tokenCache; tokens are never shared across
// Client instances.
type tokenCache struct {
	mu    sync.Mutex
	token *oauth2.Token
	group singleflight.Group

	now func() time.Time // injectable for tests
}

func newTokenCache() *tokenCache {
	return &tokenCache{now: time.Now}
}

func (c *tokenCache) valid(t *oauth2.Token) bool {
	return t != nil && t.AccessToken != "" &&
		c.now().Before(t.Expiry.Add(-expirySafetyMargin))
}

// Token returns a valid access token, invoking fetch if no usable token is
// cached. Callers that arrive while a fetch is outstanding share its result
// rather than starting their own exchange. On fetch failure nothing is
// cached and all waiters receive the error.
func (c *tokenCache) Token(ctx context.Context, fetch fetchFunc) (string, error) {
	c.mu.Lock()
	if c.valid(c.token) {
		tok := c.token.AccessToken
		c.mu.Unlock()
		return tok, nil
	}
	c.mu.Unlock()

	ch := c.group.DoChan("token", func() (any, error) {
		// Detach from the initiating caller: its cancellation must not
		// fail the other callers sharing this fetch.
		tok, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.token = tok
		c.mu.Unlock()
		return tok.AccessToken, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		// The caller stops waiting; the shared fetch keeps running and
		// may still populate the cache for others.
		return "", ctx.Err()
	}
}

// Invalidate discards the cached token immediately. An in-flight fetch is
// not cancelled; it completes and populates the cache.
func (c *tokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}
