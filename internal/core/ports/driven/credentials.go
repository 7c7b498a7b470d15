package driven

import (
	"context"

	"golang.org/x/oauth2"
)

// CredentialProvider yields an authorised token source for the remote
// storage API. Implementations refresh and persist tokens transparently.
type CredentialProvider interface {
	// Obtain returns a token source, running interactive authorisation when
	// no usable cached token exists. Failure is fatal for the run.
	Obtain(ctx context.Context) (oauth2.TokenSource, error)
}
