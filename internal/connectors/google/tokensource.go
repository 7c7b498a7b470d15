package google

import (
	"sync"

	"golang.org/x/oauth2"
)

// TokenSaver persists a token, typically to the local token cache.
type TokenSaver func(*oauth2.Token) error

// PersistingTokenSource wraps an oauth2.TokenSource and saves every token
// whose access token differs from the last one seen, so refreshed tokens
// survive across runs.
type PersistingTokenSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	save TokenSaver
	last string
}

// NewTokenSource creates a persisting TokenSource. initial is the token
// already in the cache; it is not saved again.
func NewTokenSource(base oauth2.TokenSource, initial *oauth2.Token, save TokenSaver) *PersistingTokenSource {
	ts := &PersistingTokenSource{base: base, save: save}
	if initial != nil {
		ts.last = initial.AccessToken
	}
	return ts
}

// Token implements oauth2.TokenSource interface.
// Called by Google API clients when they need an access token.
func (t *PersistingTokenSource) Token() (*oauth2.Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tok, err := t.base.Token()
	if err != nil {
		return nil, err
	}

	if tok.AccessToken != t.last && t.save != nil {
		if err := t.save(tok); err != nil {
			return nil, err
		}
		t.last = tok.AccessToken
	}

	return tok, nil
}
