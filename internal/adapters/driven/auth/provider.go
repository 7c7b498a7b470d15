// Package auth obtains OAuth credentials for Google Drive: client secrets
// from a local JSON file, a cached token refreshed as needed, and an
// interactive loopback authorisation when no usable token exists.
package auth

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/term"
	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/drivetables/internal/adapters/driving/oauth"
	gconn "github.com/custodia-labs/drivetables/internal/connectors/google"
	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Verify interface compliance.
var _ driven.CredentialProvider = (*Provider)(nil)

// Scopes requested from the user.
var Scopes = []string{drive.DriveReadonlyScope}

// Provider implements driven.CredentialProvider.
type Provider struct {
	cfg         domain.AuthConfig
	cache       *TokenCache
	out         io.Writer
	isTerminal  func() bool
	openBrowser func(string) error
}

// Option customises a Provider.
type Option func(*Provider)

// WithOutput sets where the authorisation URL is printed.
func WithOutput(w io.Writer) Option {
	return func(p *Provider) { p.out = w }
}

// WithTerminalCheck replaces the check that stdin is interactive.
func WithTerminalCheck(fn func() bool) Option {
	return func(p *Provider) { p.isTerminal = fn }
}

// WithBrowser replaces the function that opens the authorisation URL.
func WithBrowser(fn func(string) error) Option {
	return func(p *Provider) { p.openBrowser = fn }
}

// NewProvider creates a credential provider for cfg.
func NewProvider(cfg domain.AuthConfig, opts ...Option) *Provider {
	p := &Provider{
		cfg:         cfg,
		cache:       NewTokenCache(cfg.TokenFile),
		out:         os.Stderr,
		isTerminal:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		openBrowser: oauth.OpenBrowser,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cfg.Timeout <= 0 {
		p.cfg.Timeout = domain.DefaultAuthTimeout
	}
	return p
}

// Obtain returns a token source whose refreshed tokens are written back to
// the cache.
func (p *Provider) Obtain(ctx context.Context) (oauth2.TokenSource, error) {
	oc, err := p.clientConfig()
	if err != nil {
		return nil, err
	}

	tok, err := p.cache.Load()
	if err != nil {
		logger.Warn("Ignoring token cache: %v", err)
		tok = nil
	}

	if tok != nil {
		ts, err := p.fromCache(ctx, oc, tok)
		if err == nil {
			return ts, nil
		}
		logger.Warn("Cached token unusable, authorising again: %v", err)
	}

	tok, err = p.authorise(ctx, oc)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Save(tok); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	return gconn.NewTokenSource(oc.TokenSource(ctx, tok), tok, p.cache.Save), nil
}

// Login runs interactive authorisation regardless of the cache and stores
// the new token.
func (p *Provider) Login(ctx context.Context) error {
	oc, err := p.clientConfig()
	if err != nil {
		return err
	}
	tok, err := p.authorise(ctx, oc)
	if err != nil {
		return err
	}
	if err := p.cache.Save(tok); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// TokenFile returns the token cache location.
func (p *Provider) TokenFile() string {
	return p.cache.Path()
}

// clientConfig reads the installed-app client secrets.
func (p *Provider) clientConfig() (*oauth2.Config, error) {
	data, err := os.ReadFile(p.cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read client secrets: %v", domain.ErrAuthInvalid, err)
	}
	oc, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secrets %s: %v", domain.ErrAuthInvalid, p.cfg.CredentialsFile, err)
	}
	return oc, nil
}

// fromCache reuses a valid token, or refreshes an expired one.
func (p *Provider) fromCache(ctx context.Context, oc *oauth2.Config, tok *oauth2.Token) (oauth2.TokenSource, error) {
	if tok.Valid() {
		logger.Debug("Using cached token from %s", p.cache.Path())
		return gconn.NewTokenSource(oc.TokenSource(ctx, tok), tok, p.cache.Save), nil
	}
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: cached token expired and has no refresh token", domain.ErrAuthInvalid)
	}

	base := oc.TokenSource(ctx, tok)
	fresh, err := base.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: refresh token: %v", domain.ErrAuthInvalid, err)
	}
	if err := p.cache.Save(fresh); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	logger.Debug("Refreshed cached token")
	return gconn.NewTokenSource(base, fresh, p.cache.Save), nil
}

// authorise runs the interactive installed-app flow.
func (p *Provider) authorise(ctx context.Context, oc *oauth2.Config) (*oauth2.Token, error) {
	if !p.isTerminal() {
		return nil, fmt.Errorf("%w: no usable token in %s and stdin is not a terminal; run 'drivetables auth' interactively",
			domain.ErrAuthRequired, p.cache.Path())
	}

	verifier, err := oauth.GenerateCodeVerifier()
	if err != nil {
		return nil, err
	}
	state := uuid.NewString()

	server := oauth.NewCallbackServer(p.cfg.CallbackPort, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	defer func() { _ = server.Stop() }()

	oc.RedirectURL = server.RedirectURI()
	authURL := oc.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("code_challenge", oauth.GenerateCodeChallenge(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	_, _ = fmt.Fprintf(p.out, "Open this URL to authorise drivetables:\n\n  %s\n\n", authURL)
	if !p.cfg.NoBrowser {
		if err := p.openBrowser(authURL); err != nil {
			logger.Warn("Could not open browser: %v", err)
		}
	}

	code, err := server.WaitForCode(ctx, p.cfg.Timeout)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthRequired, err)
	}

	tok, err := oc.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: exchange code: %v", domain.ErrAuthInvalid, err)
	}
	return tok, nil
}
