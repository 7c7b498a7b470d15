// Package google provides shared infrastructure for the Google Drive connector.
//
// This package contains:
//   - A persisting TokenSource that writes refreshed tokens back to the cache
//   - A service factory for creating authenticated Drive API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Drive API quotas
//
// # Usage
//
//	ts := google.NewTokenSource(oauthCfg.TokenSource(ctx, tok), tok, cache.Save)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// Only https://www.googleapis.com/auth/drive.readonly is requested.
// For user-created internal apps, restricted scopes don't require verification.
package google
